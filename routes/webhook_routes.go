package routes

import (
	"github.com/jaskaran778/grind-fuel/controller"

	"github.com/gofiber/fiber/v2"
)

// The webhook endpoint is public; the payload signature is the only
// authentication.
func RegisterWebhookRoutes(app *fiber.App, wc *controller.WebhookController) {
	api := app.Group("/api")
	api.Post("/webhook/stripe", wc.HandleStripe)
}
