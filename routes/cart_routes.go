package routes

import (
	"github.com/jaskaran778/grind-fuel/controller"

	"github.com/gofiber/fiber/v2"
)

func RegisterCartRoutes(app *fiber.App, cc *controller.CartController, authMiddleware fiber.Handler) {
	api := app.Group("/api")
	cart := api.Group("/cart")
	cart.Get("/", authMiddleware, cc.Get)
	cart.Post("/items", authMiddleware, cc.AddItem)
	cart.Put("/items/:productId", authMiddleware, cc.UpdateItem)
	cart.Delete("/", authMiddleware, cc.Clear)
}
