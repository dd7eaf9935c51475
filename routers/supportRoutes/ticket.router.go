package supportRoutes

import (
	supportControllers "yafrican/controllers/support"
	"yafrican/middleware"
	supportValidators "yafrican/validators/support"

	"github.com/gofiber/fiber/v2"
)

func SetupSupportRoutes(app *fiber.App) {
	supportGroup := app.Group("/support", middleware.JWTMiddleware)

	supportGroup.Post("/tickets", supportValidators.CreateTicket(), supportControllers.CreateTicket)
	supportGroup.Get("/tickets", supportControllers.TicketList)
	supportGroup.Post("/tickets/:id/reply", supportValidators.ReplyTicket(), supportControllers.ReplyTicket)
	supportGroup.Patch("/tickets/:id/close", supportControllers.CloseTicket)
}
