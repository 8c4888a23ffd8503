package routes

import (
	"github.com/jaskaran778/grind-fuel/controller"

	"github.com/gofiber/fiber/v2"
)

func RegisterCheckoutRoutes(app *fiber.App, cc *controller.CheckoutController, authMiddleware fiber.Handler) {
	api := app.Group("/api")
	api.Post("/orders", authMiddleware, cc.CreateOrder)

	checkout := api.Group("/checkout")
	checkout.Post("/session", authMiddleware, cc.CreateSession)
	checkout.Post("/verify", authMiddleware, cc.VerifySession)
}
