package controller

import (
	"testing"
	"time"

	"github.com/jaskaran778/grind-fuel/model"
	"github.com/jaskaran778/grind-fuel/payment"

	"github.com/gofiber/fiber/v2"
)

func newCheckoutApp(orders *fakeOrderStore, payments *fakePaymentClient) *fiber.App {
	cc := &CheckoutController{Orders: orders, Payments: payments}
	app := fiber.New()
	app.Post("/api/orders", withUser("user1", "buyer@example.com", "user"), cc.CreateOrder)
	app.Post("/api/checkout/session", withUser("user1", "buyer@example.com", "user"), cc.CreateSession)
	app.Post("/api/checkout/verify", withUser("user1", "buyer@example.com", "user"), cc.VerifySession)
	return app
}

func TestCreateOrderRoundTrip(t *testing.T) {
	orders := newFakeOrderStore()
	app := newCheckoutApp(orders, &fakePaymentClient{})

	resp, err := app.Test(jsonRequest("POST", "/api/orders", fiber.Map{
		"items": []fiber.Map{
			{"product_id": "h1", "name": "Energy Surge", "price": 3.99, "quantity": 2},
			{"product_id": "s1", "name": "Protein Bytes", "price": 399, "quantity": 1},
		},
		"shipping_details": fiber.Map{
			"name":    "Arjun Mehta",
			"address": "14 MG Road",
			"city":    "Bengaluru",
		},
	}))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.StatusCode != 201 {
		t.Fatalf("Expected status 201, got %d", resp.StatusCode)
	}

	var order model.Order
	decodeBody(t, resp, &order)

	if order.ID == "" {
		t.Error("Expected order ID to be set")
	}
	if order.Status != model.OrderStatusPending {
		t.Errorf("Expected status %s, got %s", model.OrderStatusPending, order.Status)
	}
	if order.UserID != "user1" {
		t.Errorf("Expected user ID user1, got %q", order.UserID)
	}

	expectedTotal := 2*3.99 + 399
	if order.Total != expectedTotal {
		t.Errorf("Expected total %.2f, got %.2f", expectedTotal, order.Total)
	}
	if len(order.Items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(order.Items))
	}
	if order.Items[0].Name != "Energy Surge" || order.Items[0].Quantity != 2 {
		t.Errorf("Items not preserved: %+v", order.Items)
	}

	stored, err := orders.GetByID(nil, order.ID)
	if err != nil {
		t.Fatalf("Expected order to be persisted: %v", err)
	}
	if stored.Total != expectedTotal {
		t.Errorf("Expected persisted total %.2f, got %.2f", expectedTotal, stored.Total)
	}
}

func TestCreateOrderIgnoresClientTotal(t *testing.T) {
	orders := newFakeOrderStore()
	app := newCheckoutApp(orders, &fakePaymentClient{})

	resp, err := app.Test(jsonRequest("POST", "/api/orders", fiber.Map{
		"items": []fiber.Map{
			{"product_id": "h1", "name": "Energy Surge", "price": 100, "quantity": 1},
		},
		"total": 1, // not part of the contract, must not be trusted
		"shipping_details": fiber.Map{
			"name":    "Arjun Mehta",
			"address": "14 MG Road",
		},
	}))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	var order model.Order
	decodeBody(t, resp, &order)
	if order.Total != 100 {
		t.Errorf("Expected recomputed total 100, got %.2f", order.Total)
	}
}

func TestCreateOrderEmptyCart(t *testing.T) {
	app := newCheckoutApp(newFakeOrderStore(), &fakePaymentClient{})

	resp, err := app.Test(jsonRequest("POST", "/api/orders", fiber.Map{
		"items":            []fiber.Map{},
		"shipping_details": fiber.Map{"name": "Arjun", "address": "14 MG Road"},
	}))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("Expected status 400 for empty cart, got %d", resp.StatusCode)
	}
}

func TestCreateOrderZeroQuantity(t *testing.T) {
	app := newCheckoutApp(newFakeOrderStore(), &fakePaymentClient{})

	resp, err := app.Test(jsonRequest("POST", "/api/orders", fiber.Map{
		"items": []fiber.Map{
			{"product_id": "h1", "name": "Energy Surge", "price": 3.99, "quantity": 0},
		},
		"shipping_details": fiber.Map{"name": "Arjun", "address": "14 MG Road"},
	}))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("Expected status 400 for zero quantity, got %d", resp.StatusCode)
	}
}

func TestCreateOrderMissingShipping(t *testing.T) {
	app := newCheckoutApp(newFakeOrderStore(), &fakePaymentClient{})

	resp, err := app.Test(jsonRequest("POST", "/api/orders", fiber.Map{
		"items": []fiber.Map{
			{"product_id": "h1", "name": "Energy Surge", "price": 3.99, "quantity": 1},
		},
	}))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("Expected status 400 for missing shipping, got %d", resp.StatusCode)
	}
}

func seedOrder(orders *fakeOrderStore, id, userID string) *model.Order {
	order := &model.Order{
		ID:     id,
		UserID: userID,
		Items: model.OrderItems{
			{ProductID: "1", Name: "Energy Surge", Price: 249, Quantity: 2},
		},
		Total:           498,
		ShippingAddress: model.ShippingAddress{Name: "Arjun", Email: "buyer@example.com", Address: "14 MG Road"},
		Status:          model.OrderStatusPending,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	orders.Create(nil, order)
	return order
}

func TestCreateSession(t *testing.T) {
	orders := newFakeOrderStore()
	seedOrder(orders, "order1", "user1")
	payments := &fakePaymentClient{sessionID: "cs_test_123"}
	app := newCheckoutApp(orders, payments)

	resp, err := app.Test(jsonRequest("POST", "/api/checkout/session", fiber.Map{
		"order_id": "order1",
		"items": []fiber.Map{
			{"name": "Energy Surge", "price": 249, "quantity": 2},
		},
	}))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var body struct {
		ID string `json:"id"`
	}
	decodeBody(t, resp, &body)
	if body.ID != "cs_test_123" {
		t.Errorf("Expected session id cs_test_123, got %q", body.ID)
	}

	if payments.lastInput.OrderID != "order1" || payments.lastInput.UserID != "user1" {
		t.Errorf("Expected correlation metadata on session input, got %+v", payments.lastInput)
	}
	if payments.lastInput.CustomerEmail != "buyer@example.com" {
		t.Errorf("Expected customer email from order, got %q", payments.lastInput.CustomerEmail)
	}
}

func TestCreateSessionNotOwner(t *testing.T) {
	orders := newFakeOrderStore()
	seedOrder(orders, "order2", "someone-else")
	app := newCheckoutApp(orders, &fakePaymentClient{sessionID: "cs_x"})

	resp, err := app.Test(jsonRequest("POST", "/api/checkout/session", fiber.Map{
		"order_id": "order2",
		"items":    []fiber.Map{{"name": "Energy Surge", "price": 249, "quantity": 1}},
	}))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.StatusCode != 403 {
		t.Errorf("Expected status 403, got %d", resp.StatusCode)
	}
}

func TestCreateSessionProcessorDownIsOpaque(t *testing.T) {
	orders := newFakeOrderStore()
	seedOrder(orders, "order3", "user1")
	payments := &fakePaymentClient{createErr: errTestBackend}
	app := newCheckoutApp(orders, payments)

	resp, err := app.Test(jsonRequest("POST", "/api/checkout/session", fiber.Map{
		"order_id": "order3",
		"items":    []fiber.Map{{"name": "Energy Surge", "price": 249, "quantity": 1}},
	}))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.StatusCode != 502 {
		t.Errorf("Expected status 502, got %d", resp.StatusCode)
	}

	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, resp, &body)
	if body.Error != "payment session unavailable" {
		t.Errorf("Internal error detail must not leak to the client, got %q", body.Error)
	}
}

func TestVerifySession(t *testing.T) {
	orders := newFakeOrderStore()
	seedOrder(orders, "order4", "user1")
	payments := &fakePaymentClient{
		session: &payment.Session{ID: "cs_ok", OrderID: "order4", UserID: "user1", PaymentStatus: "paid"},
	}
	app := newCheckoutApp(orders, payments)

	resp, err := app.Test(jsonRequest("POST", "/api/checkout/verify", fiber.Map{
		"session_id": "cs_ok",
	}))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var body struct {
		Order model.Order `json:"order"`
	}
	decodeBody(t, resp, &body)
	if body.Order.ID != "order4" {
		t.Errorf("Expected correlated order order4, got %q", body.Order.ID)
	}
	if body.Order.Total != 498 {
		t.Errorf("Expected order total 498, got %.2f", body.Order.Total)
	}
}

func TestVerifySessionMissingID(t *testing.T) {
	app := newCheckoutApp(newFakeOrderStore(), &fakePaymentClient{})

	resp, err := app.Test(jsonRequest("POST", "/api/checkout/verify", fiber.Map{}))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}

func TestVerifySessionLookupFailure(t *testing.T) {
	app := newCheckoutApp(newFakeOrderStore(), &fakePaymentClient{getErr: errTestBackend})

	resp, err := app.Test(jsonRequest("POST", "/api/checkout/verify", fiber.Map{
		"session_id": "cs_gone",
	}))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}
