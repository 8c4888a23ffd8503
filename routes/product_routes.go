package routes

import (
	"github.com/jaskaran778/grind-fuel/controller"

	"github.com/gofiber/fiber/v2"
)

func RegisterProductRoutes(app *fiber.App, pc *controller.ProductController) {
	api := app.Group("/api")
	p := api.Group("/products")
	p.Get("/", pc.List)
	p.Get("/:id", pc.Get)
}
