package orderRoutes

import (
	orderControllers "yafrican/controllers/order"
	"yafrican/middleware"
	orderValidators "yafrican/validators/order"

	"github.com/gofiber/fiber/v2"
)

func SetupOrderRoutes(app *fiber.App) {
	orderGroup := app.Group("/orders")

	orderGroup.Post("/", middleware.JWTMiddleware, orderValidators.CreateOrder(), orderControllers.CreateOrder)
	orderGroup.Get("/mine", middleware.JWTMiddleware, orderControllers.UserOrders)
	orderGroup.Get("/:orderNumber/status", orderControllers.OrderStatus)
	orderGroup.Post("/:orderNumber/payment-proof", orderControllers.UploadPaymentProof)
}
