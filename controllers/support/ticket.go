package supportController

import (
	"encoding/json"
	"log"
	"strings"
	"time"
	"yafrican/database"
	"yafrican/middleware"
	"yafrican/models"
	supportValidator "yafrican/validators/support"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// ticketMessage is one entry of the conversation thread stored on a ticket
type ticketMessage struct {
	Sender string `json:"sender"` // user or admin
	Text   string `json:"text"`
	Time   string `json:"time"`
}

func CreateTicket(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCreateTicket").(*supportValidator.CreateTicketRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Build structured JSON message thread
	thread := []ticketMessage{{
		Sender: "user",
		Text:   reqData.Message,
		Time:   time.Now().UTC().Format(time.RFC3339),
	}}
	msgJSON, err := json.Marshal(thread)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to format message!", nil)
	}

	ticket := models.SupportTicket{
		UserID:   userId,
		Title:    reqData.Title,
		Message:  datatypes.JSON(msgJSON),
		Status:   "OPEN",
		Priority: "MEDIUM",
		Category: "GENERAL",
	}

	if reqData.Subject != nil {
		ticket.Subject = *reqData.Subject
	}
	if reqData.Priority != nil {
		ticket.Priority = strings.ToUpper(*reqData.Priority)
	}
	if reqData.Category != nil {
		ticket.Category = strings.ToUpper(*reqData.Category)
	}
	if reqData.OrderNumber != nil {
		// Tie the ticket to an order when the reference is real
		var order models.Order
		if err := db.Where("order_number = ?", *reqData.OrderNumber).First(&order).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Referenced order not found!", nil)
		}
		ticket.OrderNumber = order.OrderNumber
	}

	if err := db.Create(&ticket).Error; err != nil {
		log.Printf("Error creating support ticket for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create support ticket!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Support ticket created successfully!", ticket)
}

func TicketList(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var tickets []models.SupportTicket
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", userId, false).
		Order("created_at desc").
		Find(&tickets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tickets!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ticket list.", tickets)
}

// ReplyTicket appends a message to the ticket thread. Users reply to their own
// tickets; admins (role checked by the admin router) reply to any ticket and
// their messages are tagged accordingly.
func ReplyTicket(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedReplyTicket").(*supportValidator.ReplyTicketRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	ticketId, err := c.ParamsInt("id")
	if err != nil || ticketId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing ID parameter!", nil)
	}

	db := database.Database.Db

	_, isAdmin := middleware.AdminFromContext(c)

	var ticket models.SupportTicket
	query := db.Where("id = ? AND is_deleted = ?", ticketId, false)
	if !isAdmin {
		query = query.Where("user_id = ?", userId)
	}
	if err := query.First(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
	}

	var thread []ticketMessage
	if len(ticket.Message) > 0 {
		if err := json.Unmarshal(ticket.Message, &thread); err != nil {
			log.Printf("Error decoding ticket %d thread: %v", ticket.ID, err)
		}
	}

	sender := "user"
	if isAdmin {
		sender = "admin"
	}
	thread = append(thread, ticketMessage{
		Sender: sender,
		Text:   reqData.Message,
		Time:   time.Now().UTC().Format(time.RFC3339),
	})

	msgJSON, err := json.Marshal(thread)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to format message!", nil)
	}

	ticket.Message = datatypes.JSON(msgJSON)
	if err := db.Save(&ticket).Error; err != nil {
		log.Printf("Error saving reply on ticket %d: %v", ticket.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save reply!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reply added.", ticket)
}

// CloseTicket marks a ticket resolved
func CloseTicket(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	ticketId, err := c.ParamsInt("id")
	if err != nil || ticketId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing ID parameter!", nil)
	}

	db := database.Database.Db

	_, isAdmin := middleware.AdminFromContext(c)

	query := db.Model(&models.SupportTicket{}).Where("id = ? AND is_deleted = ?", ticketId, false)
	if !isAdmin {
		query = query.Where("user_id = ?", userId)
	}

	result := query.Update("status", "CLOSED")
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to close ticket!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ticket closed.", nil)
}
