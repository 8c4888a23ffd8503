package controller

import (
	"log"
	"time"

	"github.com/jaskaran778/grind-fuel/kafka"
	"github.com/jaskaran778/grind-fuel/model"
	"github.com/jaskaran778/grind-fuel/payment"

	"github.com/gofiber/fiber/v2"
)

type WebhookController struct {
	Orders   OrderStore
	Payments PaymentClient
	Events   EventLog
	Producer Publisher
}

// HandleStripe is the public processor callback. Nothing in the
// payload is trusted until the signature checks out. A 500 here makes
// the processor redeliver, so side effects must survive replays: the
// event log skips already-processed ids and the status transition
// itself is a plain overwrite.
func (wc *WebhookController) HandleStripe(c *fiber.Ctx) error {
	event, err := wc.Payments.VerifyEvent(c.Body(), c.Get("Stripe-Signature"))
	if err != nil {
		log.Printf("webhook signature verification failed: %v", err)
		return c.Status(400).JSON(fiber.Map{"error": "invalid signature"})
	}

	if wc.Events != nil && event.ID != "" && wc.Events.Seen(c.Context(), event.ID) {
		log.Printf("event %s already processed, skipping", event.ID)
		return c.JSON(fiber.Map{"received": true})
	}

	switch event.Type {
	case payment.EventCheckoutCompleted:
		if event.OrderID == "" {
			log.Printf("event %s has no order id, ignoring", event.ID)
			break
		}
		if err := wc.Orders.UpdateStatus(c.Context(), event.OrderID, model.OrderStatusPaid); err != nil {
			log.Printf("failed to mark order %s paid: %v", event.OrderID, err)
			return c.Status(500).JSON(fiber.Map{"error": "failed to update order"})
		}
		if wc.Producer != nil {
			wc.Producer.PublishOrderPaid(kafka.OrderEventData{
				OrderID: event.OrderID,
				UserID:  event.UserID,
				PaidAt:  time.Now().UTC().Format(time.RFC3339),
			})
		}

	case payment.EventPaymentFailed:
		if event.OrderID == "" {
			log.Printf("event %s has no order id, ignoring", event.ID)
			break
		}
		if err := wc.Orders.UpdateStatus(c.Context(), event.OrderID, model.OrderStatusFailed); err != nil {
			log.Printf("failed to mark order %s failed: %v", event.OrderID, err)
			return c.Status(500).JSON(fiber.Map{"error": "failed to update order"})
		}
		if wc.Producer != nil {
			wc.Producer.PublishOrderFailed(kafka.OrderEventData{
				OrderID: event.OrderID,
				UserID:  event.UserID,
			})
		}

	default:
		log.Printf("unhandled event type %s", event.Type)
	}

	if wc.Events != nil && event.ID != "" {
		wc.Events.Mark(c.Context(), event.ID)
	}
	return c.JSON(fiber.Map{"received": true})
}
