package routes

import (
	"github.com/jaskaran778/grind-fuel/controller"

	"github.com/gofiber/fiber/v2"
)

func RegisterUserRoutes(app *fiber.App, uc *controller.UserController, authMiddleware fiber.Handler) {
	api := app.Group("/api")
	api.Get("/users/me", authMiddleware, uc.Me)
	api.Delete("/account", authMiddleware, uc.DeleteAccount)
}
