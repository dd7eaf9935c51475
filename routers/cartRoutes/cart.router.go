package cartRoutes

import (
	cartControllers "yafrican/controllers/cart"
	"yafrican/middleware"
	cartValidators "yafrican/validators/cart"

	"github.com/gofiber/fiber/v2"
)

func SetupCartRoutes(app *fiber.App) {
	cartGroup := app.Group("/cart", middleware.JWTMiddleware)

	cartGroup.Get("/", cartControllers.CartList)
	cartGroup.Post("/", cartValidators.AddItem(), cartControllers.AddToCart)
	cartGroup.Patch("/:productId", cartValidators.UpdateQuantity(), cartControllers.UpdateCartItem)
	cartGroup.Delete("/:productId", cartControllers.RemoveFromCart)
	cartGroup.Delete("/", cartControllers.ClearCart)

	wishlistGroup := app.Group("/wishlist", middleware.JWTMiddleware)

	wishlistGroup.Get("/", cartControllers.WishlistList)
	wishlistGroup.Post("/", cartValidators.AddItem(), cartControllers.AddToWishlist)
	wishlistGroup.Delete("/:productId", cartControllers.RemoveFromWishlist)
}
