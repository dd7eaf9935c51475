package adminRoutes

import (
	adminControllers "yafrican/controllers/admin"
	supportControllers "yafrican/controllers/support"
	"yafrican/middleware"
	adminValidators "yafrican/validators/admin"
	supportValidators "yafrican/validators/support"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.AdminMiddleware)

	adminGroup.Get("/dashboard", adminControllers.Dashboard)
	adminGroup.Get("/payment-proofs", adminControllers.PaymentProofList)
	adminGroup.Put("/orders/:id/verify", adminValidators.VerifyOrder(), adminControllers.VerifyOrder)

	adminGroup.Get("/users", adminControllers.UserList)
	adminGroup.Patch("/users/:id/suspend", adminControllers.SuspendUser)
	adminGroup.Patch("/users/:id/activate", adminControllers.ActivateUser)

	adminGroup.Patch("/update-profile", adminValidators.UpdateProfile(), adminControllers.UpdateProfile)
	adminGroup.Patch("/update-password", adminValidators.UpdatePassword(), adminControllers.UpdatePassword)

	adminGroup.Post("/tickets/:id/reply", supportValidators.ReplyTicket(), supportControllers.ReplyTicket)
	adminGroup.Patch("/tickets/:id/close", supportControllers.CloseTicket)
}
