package productRoutes

import (
	productControllers "yafrican/controllers/product"
	"yafrican/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupProductRoutes(app *fiber.App) {
	productGroup := app.Group("/products")

	productGroup.Get("/", productControllers.ProductList)
	productGroup.Get("/recommendations", middleware.JWTMiddleware, productControllers.Recommendations)
	productGroup.Post("/track", middleware.JWTMiddleware, productControllers.TrackActivity)
	productGroup.Get("/:id", productControllers.ProductDetail)
	productGroup.Get("/:id/reviews", productControllers.ProductReviews)
	productGroup.Post("/:id/reviews", middleware.JWTMiddleware, productControllers.CreateReview)
}
