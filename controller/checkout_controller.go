package controller

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jaskaran778/grind-fuel/model"
	"github.com/jaskaran778/grind-fuel/payment"
	"github.com/jaskaran778/grind-fuel/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CheckoutController struct {
	Orders   OrderStore
	Payments PaymentClient
}

// CreateOrder persists a pending order from the caller's cart
// snapshot. The total is recomputed here from the line items, so the
// stored figure always equals the sum regardless of what the client
// calculated.
func (cc *CheckoutController) CreateOrder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	email, _ := c.Locals("user_email").(string)

	var body struct {
		Items           model.OrderItems      `json:"items"`
		ShippingAddress model.ShippingAddress `json:"shipping_details"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}
	if len(body.Items) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "cart is empty"})
	}
	for _, item := range body.Items {
		if item.Quantity == 0 {
			return c.Status(400).JSON(fiber.Map{"error": "item quantity must be at least 1"})
		}
		if item.Name == "" {
			return c.Status(400).JSON(fiber.Map{"error": "item name is required"})
		}
	}
	if body.ShippingAddress.Name == "" || body.ShippingAddress.Address == "" {
		return c.Status(400).JSON(fiber.Map{"error": "shipping details are incomplete"})
	}

	now := time.Now()
	order := &model.Order{
		ID:              uuid.New().String(),
		UserID:          userID,
		UserEmail:       email,
		Items:           body.Items,
		Total:           body.Items.Sum(),
		ShippingAddress: body.ShippingAddress,
		Status:          model.OrderStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := cc.Orders.Create(c.Context(), order); err != nil {
		log.Printf("failed to create order: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to create order"})
	}
	return c.Status(201).JSON(order)
}

// CreateSession asks the processor for a hosted checkout redirect for
// an existing pending order.
func (cc *CheckoutController) CreateSession(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var body struct {
		OrderID string             `json:"order_id"`
		Items   []payment.LineItem `json:"items"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}
	if len(body.Items) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "invalid items data"})
	}

	order, err := cc.Orders.GetByID(c.Context(), body.OrderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "order not found"})
		}
		log.Printf("failed to fetch order: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch order"})
	}
	if order.UserID != userID {
		return c.Status(403).JSON(fiber.Map{"error": "not the owner"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	sessionID, err := cc.Payments.CreateCheckoutSession(ctx, payment.CheckoutInput{
		OrderID:       order.ID,
		UserID:        userID,
		CustomerEmail: order.ShippingAddress.Email,
		Items:         body.Items,
	})
	if err != nil {
		log.Printf("failed to create checkout session for order %s: %v", order.ID, err)
		return c.Status(502).JSON(fiber.Map{"error": "payment session unavailable"})
	}

	return c.JSON(fiber.Map{"id": sessionID})
}

// VerifySession resolves the order behind a checkout session when the
// buyer lands back from the hosted payment page.
func (cc *CheckoutController) VerifySession(c *fiber.Ctx) error {
	var body struct {
		SessionID string `json:"session_id"`
	}
	if err := c.BodyParser(&body); err != nil || body.SessionID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "session id is required"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	session, err := cc.Payments.GetCheckoutSession(ctx, body.SessionID)
	if err != nil {
		log.Printf("failed to fetch checkout session %s: %v", body.SessionID, err)
		return c.Status(400).JSON(fiber.Map{"error": "invalid session id"})
	}
	if session.OrderID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "order not found in session"})
	}

	order, err := cc.Orders.GetByID(c.Context(), session.OrderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "order not found"})
		}
		log.Printf("failed to fetch order %s: %v", session.OrderID, err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch order"})
	}

	return c.JSON(fiber.Map{"order": order})
}
