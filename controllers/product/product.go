package productController

import (
	"encoding/json"
	"log"
	"sort"
	"strings"
	"time"
	"yafrican/database"
	"yafrican/middleware"
	"yafrican/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func ProductList(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	search := strings.TrimSpace(c.Query("search"))
	category := strings.TrimSpace(c.Query("category"))
	subcategory := strings.TrimSpace(c.Query("subcategory"))

	db := database.Database.Db

	query := db.Model(&models.Product{}).Where("status = ? AND is_deleted = ?", "active", false)
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if subcategory != "" {
		query = query.Where("subcategory = ?", subcategory)
	}

	var products []models.Product
	var total int64

	query.Count(&total)
	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&products).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch products!", nil)
	}

	response := map[string]interface{}{
		"products": products,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Product List.", response)
}

func ProductDetail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing ID parameter!", nil)
	}

	db := database.Database.Db

	var product models.Product
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&product).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product not found!", nil)
	}

	// Views counter is advisory; a lost increment is fine
	db.Model(&models.Product{}).Where("id = ?", product.ID).
		UpdateColumn("views", gorm.Expr("views + 1"))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Product detail.", product)
}

// TrackActivity records a search or product view on the authenticated user's
// history, feeding the recommendation engine
func TrackActivity(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := new(struct {
		Query       string `json:"query"`
		Category    string `json:"category"`
		Subcategory string `json:"subcategory"`
		ProductID   uint   `json:"productId"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if reqData.Query != "" {
		history := decodeSearchHistory(user.SearchHistory)
		history = append(history, models.SearchEntry{
			Query:       reqData.Query,
			Category:    reqData.Category,
			Subcategory: reqData.Subcategory,
			Timestamp:   time.Now(),
		})
		// Keep only the most recent entries
		if len(history) > 50 {
			history = history[len(history)-50:]
		}
		raw, err := json.Marshal(history)
		if err == nil {
			user.SearchHistory = datatypes.JSON(raw)
		}
	}

	if reqData.ProductID != 0 {
		views := decodeProductViews(user.ProductViews)
		views = append(views, models.ProductView{ProductID: reqData.ProductID, Timestamp: time.Now()})
		if len(views) > 50 {
			views = views[len(views)-50:]
		}
		raw, err := json.Marshal(views)
		if err == nil {
			user.ProductViews = datatypes.JSON(raw)
		}
	}

	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error saving activity for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record activity!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Activity recorded.", nil)
}

// Recommendations builds a personalized product feed from the user's search
// history, viewed products and preferred categories
func Recommendations(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	limit := c.QueryInt("limit", 10)
	if limit < 1 || limit > 50 {
		limit = 10
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	searchHistory := decodeSearchHistory(user.SearchHistory)
	productViews := decodeProductViews(user.ProductViews)

	seen := make(map[uint]bool)
	var recommendations []models.Product

	appendProducts := func(products []models.Product) {
		for _, p := range products {
			if !seen[p.ID] && len(recommendations) < limit {
				seen[p.ID] = true
				recommendations = append(recommendations, p)
			}
		}
	}

	// Strategy 1: products matching recent searches
	for i := len(searchHistory) - 1; i >= 0 && i >= len(searchHistory)-3; i-- {
		entry := searchHistory[i]
		var products []models.Product
		db.Where("status = ? AND is_deleted = ? AND in_stock = ?", "active", false, true).
			Where("name LIKE ? OR category = ?", "%"+entry.Query+"%", entry.Category).
			Order("created_at desc").Limit(5).Find(&products)
		appendProducts(products)
	}

	// Strategy 2: products in the same category as recently viewed ones
	if len(productViews) > 0 {
		var viewedIDs []uint
		for i := len(productViews) - 1; i >= 0 && i >= len(productViews)-5; i-- {
			viewedIDs = append(viewedIDs, productViews[i].ProductID)
		}

		var viewed []models.Product
		db.Where("id IN ?", viewedIDs).Find(&viewed)

		for _, vp := range viewed {
			var similar []models.Product
			db.Where("status = ? AND is_deleted = ? AND in_stock = ?", "active", false, true).
				Where("(category = ? OR subcategory = ?) AND id != ?", vp.Category, vp.Subcategory, vp.ID).
				Order("created_at desc").Limit(3).Find(&similar)
			appendProducts(similar)
		}
	}

	// Strategy 3: preferred categories from search history
	if categories := preferredCategories(searchHistory); len(categories) > 0 {
		var products []models.Product
		db.Where("status = ? AND is_deleted = ? AND in_stock = ?", "active", false, true).
			Where("category IN ?", categories).
			Order("views desc").Limit(limit).Find(&products)
		appendProducts(products)
	}

	// Fallback: most viewed active products
	if len(recommendations) < limit {
		var products []models.Product
		db.Where("status = ? AND is_deleted = ? AND in_stock = ?", "active", false, true).
			Order("views desc").Limit(limit).Find(&products)
		appendProducts(products)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recommendations.", recommendations)
}

func decodeSearchHistory(raw []byte) []models.SearchEntry {
	var history []models.SearchEntry
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &history); err != nil {
			log.Printf("Error decoding search history: %v", err)
		}
	}
	return history
}

func decodeProductViews(raw []byte) []models.ProductView {
	var views []models.ProductView
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &views); err != nil {
			log.Printf("Error decoding product views: %v", err)
		}
	}
	return views
}

// preferredCategories ranks categories by how often they appear in the
// user's search history, most frequent first
func preferredCategories(history []models.SearchEntry) []string {
	counts := make(map[string]int)
	for _, entry := range history {
		if entry.Category != "" {
			counts[entry.Category]++
		}
	}

	categories := make([]string, 0, len(counts))
	for cat := range counts {
		categories = append(categories, cat)
	}
	sort.Slice(categories, func(i, j int) bool {
		return counts[categories[i]] > counts[categories[j]]
	})

	if len(categories) > 3 {
		categories = categories[:3]
	}
	return categories
}
