package productController

import (
	"log"
	"strings"
	"yafrican/database"
	"yafrican/middleware"
	"yafrican/models"

	"github.com/gofiber/fiber/v2"
)

func CreateReview(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	productId, err := c.ParamsInt("id")
	if err != nil || productId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing ID parameter!", nil)
	}

	reqData := new(struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Rating < 1 || reqData.Rating > 5 {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"rating": "Rating must be between 1 and 5!",
		})
	}

	db := database.Database.Db

	if err := db.Where("id = ? AND is_deleted = ?", productId, false).First(&models.Product{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product not found!", nil)
	}

	// One review per user per product; a second submission updates it
	var review models.Review
	err = db.Where("user_id = ? AND product_id = ? AND is_deleted = ?", userId, productId, false).First(&review).Error
	if err == nil {
		review.Rating = reqData.Rating
		review.Comment = strings.TrimSpace(reqData.Comment)
		if err := db.Save(&review).Error; err != nil {
			log.Printf("Error updating review %d: %v", review.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save review!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Review updated.", review)
	}

	review = models.Review{
		UserID:    userId,
		ProductID: uint(productId),
		Rating:    reqData.Rating,
		Comment:   strings.TrimSpace(reqData.Comment),
	}
	if err := db.Create(&review).Error; err != nil {
		log.Printf("Error creating review for product %d: %v", productId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review created.", review)
}

func ProductReviews(c *fiber.Ctx) error {
	productId, err := c.ParamsInt("id")
	if err != nil || productId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing ID parameter!", nil)
	}

	db := database.Database.Db

	var reviews []models.Review
	if err := db.Where("product_id = ? AND is_deleted = ?", productId, false).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	var average float64
	if len(reviews) > 0 {
		var sum int
		for _, r := range reviews {
			sum += r.Rating
		}
		average = float64(sum) / float64(len(reviews))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review list.", fiber.Map{
		"reviews":       reviews,
		"count":         len(reviews),
		"averageRating": average,
	})
}
