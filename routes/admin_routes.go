package routes

import (
	"github.com/jaskaran778/grind-fuel/controller"

	"github.com/gofiber/fiber/v2"
)

func RegisterAdminRoutes(app *fiber.App, ac *controller.AdminController, authMiddleware, adminMiddleware fiber.Handler) {
	api := app.Group("/api")
	admin := api.Group("/admin", authMiddleware, adminMiddleware)
	admin.Get("/orders", ac.ListOrders)
	admin.Patch("/orders/:id/status", ac.UpdateOrderStatus)
	admin.Get("/users/:id", ac.GetUser)
}
