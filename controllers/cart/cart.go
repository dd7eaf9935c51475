package cartController

import (
	"log"
	"yafrican/database"
	"yafrican/middleware"
	"yafrican/models"
	cartValidator "yafrican/validators/cart"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func CartList(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var items []models.CartItem
	if err := database.Database.Db.Where("user_id = ?", userId).
		Preload("Product").
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch cart!", nil)
	}

	var total float64
	for _, item := range items {
		total += item.Product.Price * float64(item.Quantity)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart.", fiber.Map{
		"items": items,
		"total": total,
	})
}

func AddToCart(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedAddItem").(*cartValidator.AddItemRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var product models.Product
	if err := db.Where("id = ? AND status = ? AND is_deleted = ?", reqData.ProductID, "active", false).First(&product).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product not found!", nil)
	}

	if !product.InStock {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Product is out of stock!", nil)
	}

	// Adding an item already in the cart bumps its quantity
	item := models.CartItem{
		UserID:    userId,
		ProductID: reqData.ProductID,
		Quantity:  reqData.Quantity,
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"quantity": gorm.Expr("cart_items.quantity + ?", reqData.Quantity)}),
	}).Create(&item).Error
	if err != nil {
		log.Printf("Error adding product %d to cart for user %d: %v", reqData.ProductID, userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add to cart!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Added to cart.", nil)
}

func UpdateCartItem(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedUpdateQuantity").(*cartValidator.UpdateQuantityRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	productId, err := c.ParamsInt("productId")
	if err != nil || productId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing product ID parameter!", nil)
	}

	result := database.Database.Db.Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userId, productId).
		Update("quantity", reqData.Quantity)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update cart!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Item not in cart!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart updated.", nil)
}

func RemoveFromCart(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	productId, err := c.ParamsInt("productId")
	if err != nil || productId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing product ID parameter!", nil)
	}

	result := database.Database.Db.Unscoped().
		Where("user_id = ? AND product_id = ?", userId, productId).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove from cart!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Item not in cart!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Removed from cart.", nil)
}

// ClearCart empties the user's cart, typically after checkout
func ClearCart(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if err := database.Database.Db.Unscoped().
		Where("user_id = ?", userId).
		Delete(&models.CartItem{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to clear cart!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart cleared.", nil)
}

func WishlistList(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var items []models.WishlistItem
	if err := database.Database.Db.Where("user_id = ?", userId).
		Preload("Product").
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch wishlist!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wishlist.", items)
}

func AddToWishlist(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedAddItem").(*cartValidator.AddItemRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("id = ? AND is_deleted = ?", reqData.ProductID, false).First(&models.Product{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product not found!", nil)
	}

	item := models.WishlistItem{UserID: userId, ProductID: reqData.ProductID}
	err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&item).Error
	if err != nil {
		log.Printf("Error adding product %d to wishlist for user %d: %v", reqData.ProductID, userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add to wishlist!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Added to wishlist.", nil)
}

func RemoveFromWishlist(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	productId, err := c.ParamsInt("productId")
	if err != nil || productId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing product ID parameter!", nil)
	}

	result := database.Database.Db.Unscoped().
		Where("user_id = ? AND product_id = ?", userId, productId).
		Delete(&models.WishlistItem{})
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove from wishlist!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Item not in wishlist!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Removed from wishlist.", nil)
}
