package supportValidator

import (
	"strings"
	"yafrican/middleware"

	"github.com/gofiber/fiber/v2"
)

type CreateTicketRequest struct {
	Title       string  `json:"title"`
	Subject     *string `json:"subject"`
	Message     string  `json:"message"`
	Priority    *string `json:"priority"`
	Category    *string `json:"category"`
	OrderNumber *string `json:"orderNumber"`
}

// CreateTicket validator middleware
func CreateTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateTicketRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if strings.TrimSpace(reqData.Message) == "" {
			errors["message"] = "Message is required!"
		}

		if reqData.Priority != nil {
			switch strings.ToUpper(*reqData.Priority) {
			case "LOW", "MEDIUM", "HIGH":
			default:
				errors["priority"] = "Priority must be LOW, MEDIUM or HIGH!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateTicket", reqData)
		return c.Next()
	}
}

type ReplyTicketRequest struct {
	Message string `json:"message"`
}

// ReplyTicket validator middleware
func ReplyTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ReplyTicketRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Message) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"message": "Message is required!",
			})
		}

		c.Locals("validatedReplyTicket", reqData)
		return c.Next()
	}
}
