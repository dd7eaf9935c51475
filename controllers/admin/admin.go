package adminController

import (
	"encoding/json"
	"errors"
	"log"
	"yafrican/config"
	"yafrican/database"
	"yafrican/middleware"
	"yafrican/models"
	"yafrican/services"
	"yafrican/utils"
	adminValidator "yafrican/validators/admin"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// PaymentProofList returns the admin review queue, filtered by review state
func PaymentProofList(c *fiber.Ctx) error {
	filter := c.Query("filter", "pending")

	db := database.Database.Db
	query := db.Model(&models.Order{})

	switch filter {
	case "pending":
		query = query.Where("payment_proof_image_url != '' AND payment_proof_verified = ? AND status = ?",
			false, models.OrderStatusPending)
	case "verified":
		query = query.Where("payment_proof_verified = ?", true)
	case "rejected":
		query = query.Where("status = ?", models.OrderStatusCancelled)
	case "all":
		query = query.Where("payment_proof_image_url != ''")
	default:
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unknown filter! Use pending, verified, rejected or all.", nil)
	}

	var orders []models.Order
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payment proofs!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment proof list.", fiber.Map{
		"paymentProofs": orders,
		"count":         len(orders),
		"filter":        filter,
	})
}

// VerifyOrder applies the admin verdict (confirmed/cancelled) to an order
func VerifyOrder(c *fiber.Ctx) error {
	admin, ok := middleware.AdminFromContext(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedVerifyOrder").(*adminValidator.VerifyOrderRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	orderID, err := c.ParamsInt("id")
	if err != nil || orderID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing ID parameter!", nil)
	}

	workflow := services.NewOrderVerificationService(database.Database.Db, config.AppConfig.AllowStatusReversal)
	order, err := workflow.SetOrderStatus(uint(orderID), models.OrderStatus(reqData.Status), admin, reqData.AdminNotes)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Order not found!", nil)
		case errors.Is(err, services.ErrInvalidStatus):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		case errors.Is(err, services.ErrStatusReversal):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Order has already been finalized!", nil)
		}
		log.Printf("Error verifying order %d: %v", orderID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update order!", nil)
	}

	// Tell the customer about the verdict
	var info models.CustomerInfo
	if err := json.Unmarshal(order.CustomerInfo, &info); err == nil && info.Email != "" {
		utils.SendOrderStatusEmail(info.Email, info.FullName, order.OrderNumber, string(order.Status), order.AdminNotes)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order "+reqData.Status+" successfully.", order)
}

func UserList(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	db := database.Database.Db

	var users []models.User
	var total int64

	if err := db.Where("is_deleted = ?", false).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user list!", nil)
	}

	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&total)

	for i := range users {
		users[i].Password = ""
	}

	response := map[string]interface{}{
		"users": users,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User List.", response)
}

// setUserStatus is shared by suspend and activate
func setUserStatus(c *fiber.Ctx, status string) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing ID parameter!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	// Admin accounts are managed out of band, never from this console
	if user.Role == "admin" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Cannot modify other admin users!", nil)
	}

	user.Status = status
	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error updating user %d status: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User "+status+" successfully.", user)
}

func SuspendUser(c *fiber.Ctx) error {
	return setUserStatus(c, "suspended")
}

func ActivateUser(c *fiber.Ctx) error {
	return setUserStatus(c, "active")
}

// Dashboard returns headline counts for the admin console
func Dashboard(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers, totalProducts, totalOrders int64
	var pendingOrders, confirmedOrders, cancelledOrders int64
	var pendingProofs int64

	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)
	db.Model(&models.Product{}).Where("is_deleted = ?", false).Count(&totalProducts)
	db.Model(&models.Order{}).Count(&totalOrders)
	db.Model(&models.Order{}).Where("status = ?", models.OrderStatusPending).Count(&pendingOrders)
	db.Model(&models.Order{}).Where("status = ?", models.OrderStatusConfirmed).Count(&confirmedOrders)
	db.Model(&models.Order{}).Where("status = ?", models.OrderStatusCancelled).Count(&cancelledOrders)
	db.Model(&models.Order{}).
		Where("payment_proof_image_url != '' AND payment_proof_verified = ? AND status = ?",
			false, models.OrderStatusPending).
		Count(&pendingProofs)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats.", fiber.Map{
		"totalUsers":           totalUsers,
		"totalProducts":        totalProducts,
		"totalOrders":          totalOrders,
		"pendingOrders":        pendingOrders,
		"confirmedOrders":      confirmedOrders,
		"cancelledOrders":      cancelledOrders,
		"pendingPaymentProofs": pendingProofs,
	})
}

func UpdateProfile(c *fiber.Ctx) error {
	admin, ok := middleware.AdminFromContext(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedUpdateProfile").(*adminValidator.UpdateProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, admin.UserID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if reqData.Name != "" {
		user.Name = reqData.Name
	}
	if reqData.Email != "" {
		user.Email = reqData.Email
	}

	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error updating admin profile %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully.", user)
}

func UpdatePassword(c *fiber.Ctx) error {
	admin, ok := middleware.AdminFromContext(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedUpdatePassword").(*adminValidator.UpdatePasswordRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, admin.UserID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.CurrentPassword)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Current password is incorrect!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	user.Password = string(hashedPassword)
	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error updating admin password %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update password!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password updated successfully.", nil)
}
