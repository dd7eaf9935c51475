package cartValidator

import (
	"yafrican/middleware"

	"github.com/gofiber/fiber/v2"
)

type AddItemRequest struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

// AddItem validator middleware, shared by cart and wishlist adds
func AddItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AddItemRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ProductID == 0 {
			errors["productId"] = "Product id is required!"
		}

		if reqData.Quantity < 0 {
			errors["quantity"] = "Quantity cannot be negative!"
		}

		if reqData.Quantity == 0 {
			reqData.Quantity = 1
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAddItem", reqData)
		return c.Next()
	}
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateQuantity validator middleware
func UpdateQuantity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateQuantityRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Quantity < 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"quantity": "Quantity must be at least 1!",
			})
		}

		c.Locals("validatedUpdateQuantity", reqData)
		return c.Next()
	}
}
