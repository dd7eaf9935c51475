package orderValidator

import (
	"fmt"
	"strings"
	"yafrican/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CustomerInfoPayload struct {
	FullName string `json:"fullName" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Address  string `json:"address" validate:"required"`
}

type OrderItemPayload struct {
	ProductID uint    `json:"productId"`
	Name      string  `json:"name" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	Price     float64 `json:"price" validate:"gte=0"`
	Image     string  `json:"image"`
}

type BankDetailsPayload struct {
	Name          string `json:"name"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
	Branch        string `json:"branch"`
}

type CreateOrderRequest struct {
	OrderNumber   string              `json:"orderNumber"`
	CustomerInfo  CustomerInfoPayload `json:"customerInfo" validate:"required"`
	Items         []OrderItemPayload  `json:"items" validate:"required,min=1,dive"`
	TotalAmount   float64             `json:"totalAmount" validate:"required,gt=0"`
	PaymentMethod string              `json:"paymentMethod" validate:"required"`
	BankDetails   *BankDetailsPayload `json:"bankDetails"`
}

// validationErrors flattens validator.v10 field errors into the response map
func validationErrors(err error) map[string]string {
	errors := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
			errors[field] = fmt.Sprintf("Failed validation: %s", fe.Tag())
		}
	} else {
		errors["request"] = "Invalid request data!"
	}
	return errors
}

// CreateOrder validator middleware
func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateOrderRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationErrors(err))
		}

		c.Locals("validatedCreateOrder", reqData)
		return c.Next()
	}
}
