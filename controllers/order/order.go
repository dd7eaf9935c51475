package orderController

import (
	"encoding/json"
	"log"
	"time"
	"yafrican/database"
	"yafrican/middleware"
	"yafrican/models"
	"yafrican/utils"
	orderValidator "yafrican/validators/order"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

func CreateOrder(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateOrder").(*orderValidator.CreateOrderRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	orderNumber := reqData.OrderNumber
	if orderNumber == "" {
		orderNumber = utils.GenerateOrderNumber()
	}

	// Idempotency on the external identifier
	if err := db.Where("order_number = ?", orderNumber).First(&models.Order{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Order number already exists!", nil)
	}

	customerInfo, err := json.Marshal(reqData.CustomerInfo)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid customer info!", nil)
	}
	items, err := json.Marshal(reqData.Items)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid order items!", nil)
	}

	order := models.Order{
		OrderNumber:   orderNumber,
		Status:        models.OrderStatusPending,
		TotalAmount:   reqData.TotalAmount,
		PaymentMethod: reqData.PaymentMethod,
		CustomerInfo:  datatypes.JSON(customerInfo),
		Items:         datatypes.JSON(items),
		PaymentProof:  models.PaymentProof{},
	}

	if userId, ok := c.Locals("userId").(uint); ok {
		order.UserID = userId
	}

	if reqData.BankDetails != nil {
		bankDetails, err := json.Marshal(reqData.BankDetails)
		if err == nil {
			order.BankDetails = datatypes.JSON(bankDetails)
		}
	}

	if err := db.Create(&order).Error; err != nil {
		log.Printf("Error creating order %s: %v", orderNumber, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create order!", nil)
	}

	log.Printf("Order created: %s", order.OrderNumber)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Order created successfully.", fiber.Map{
		"id":          order.ID,
		"orderNumber": order.OrderNumber,
		"status":      order.Status,
	})
}

// OrderStatus lets the customer poll the review state of their order
func OrderStatus(c *fiber.Ctx) error {
	orderNumber := c.Params("orderNumber")
	if orderNumber == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Order number is required!", nil)
	}

	var order models.Order
	if err := database.Database.Db.Where("order_number = ?", orderNumber).First(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Order not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order status.", fiber.Map{
		"orderNumber":   order.OrderNumber,
		"status":        order.Status,
		"paymentProof":  order.PaymentProof,
		"adminVerified": order.PaymentProof.Verified,
	})
}

// UploadPaymentProof stores the customer's payment evidence image against the
// order and resets the review state to pending/unverified
func UploadPaymentProof(c *fiber.Ctx) error {
	orderNumber := c.FormValue("orderNumber")
	if orderNumber == "" {
		orderNumber = c.Params("orderNumber")
	}

	file, err := c.FormFile("paymentProof")
	if err != nil || orderNumber == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File and order number are required!", nil)
	}

	db := database.Database.Db

	if err := db.Where("order_number = ?", orderNumber).First(&models.Order{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Order not found!", nil)
	}

	imageURL, err := utils.UploadPaymentProof(file, orderNumber)
	if err != nil {
		log.Printf("Error uploading payment proof for %s: %v", orderNumber, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload payment proof!", nil)
	}

	now := time.Now()
	updates := map[string]interface{}{
		"payment_proof_image_url":   imageURL,
		"payment_proof_uploaded_at": now,
		"payment_proof_verified":    false,
		"status":                    models.OrderStatusPending,
	}
	if err := db.Model(&models.Order{}).Where("order_number = ?", orderNumber).Updates(updates).Error; err != nil {
		log.Printf("Error saving payment proof for %s: %v", orderNumber, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update order!", nil)
	}

	log.Printf("Payment proof uploaded: %s -> %s", orderNumber, imageURL)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment proof uploaded successfully.", fiber.Map{
		"imageUrl": imageURL,
	})
}

// UserOrders lists the authenticated user's orders, newest first
func UserOrders(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var orders []models.Order
	if err := database.Database.Db.Where("user_id = ?", userId).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch orders!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order list.", orders)
}
