package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
	"github.com/stripe/stripe-go/v80/webhook"
)

// Event kinds the webhook handler acts on. Everything else is
// acknowledged and ignored.
const (
	EventCheckoutCompleted = "checkout.session.completed"
	EventPaymentFailed     = "payment_intent.payment_failed"
)

// Settlement is INR with a flat shipping line appended to every
// checkout session.
const (
	currency      = "inr"
	shippingPaise = 41500
)

type LineItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"` // major units
	Quantity    uint    `json:"quantity"`
}

type CheckoutInput struct {
	OrderID       string
	UserID        string
	CustomerEmail string
	Items         []LineItem
}

// Session is the slice of a processor checkout session this system
// cares about.
type Session struct {
	ID            string
	OrderID       string
	UserID        string
	PaymentStatus string
}

// Event is a verified webhook event with the correlation metadata
// already extracted.
type Event struct {
	ID      string
	Type    string
	OrderID string
	UserID  string
}

type Client struct {
	webhookSecret string
	baseURL       string
}

func NewClient(secretKey, webhookSecret, baseURL string) *Client {
	stripe.Key = secretKey
	return &Client{webhookSecret: webhookSecret, baseURL: baseURL}
}

// CreateCheckoutSession requests a hosted checkout redirect. The order
// and user ids ride along as metadata on both the session and the
// payment intent, so both webhook event kinds can correlate back. The
// processor call is retried a few times before giving up.
func (c *Client) CreateCheckoutSession(ctx context.Context, in CheckoutInput) (string, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(in.Items)+1)
	for _, item := range in.Items {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(item.Name),
		}
		if item.Description != "" {
			productData.Description = stripe.String(item.Description)
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(currency),
				ProductData: productData,
				UnitAmount:  stripe.Int64(int64(math.Round(item.Price * 100))),
			},
			Quantity: stripe.Int64(int64(item.Quantity)),
		})
	}

	// flat-rate shipping line
	lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
		PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency: stripe.String(currency),
			ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name:        stripe.String("Shipping"),
				Description: stripe.String("Standard shipping"),
			},
			UnitAmount: stripe.Int64(shippingPaise),
		},
		Quantity: stripe.Int64(1),
	})

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  lineItems,
		SuccessURL: stripe.String(c.baseURL + "/order-success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(c.baseURL + "/checkout"),
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{
				"order_id": in.OrderID,
				"user_id":  in.UserID,
			},
		},
	}
	params.Context = ctx
	params.AddMetadata("order_id", in.OrderID)
	params.AddMetadata("user_id", in.UserID)
	if in.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(in.CustomerEmail)
	}

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		s, err := session.New(params)
		if err == nil {
			return s.ID, nil
		}
		lastErr = err
		log.Printf("checkout session attempt %d/3 failed: %v", attempt, err)

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(time.Duration(attempt) * 500 * time.Millisecond):
		}
	}
	return "", fmt.Errorf("create checkout session: %w", lastErr)
}

func (c *Client) GetCheckoutSession(ctx context.Context, id string) (*Session, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := session.Get(id, params)
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:            s.ID,
		OrderID:       s.Metadata["order_id"],
		UserID:        s.Metadata["user_id"],
		PaymentStatus: string(s.PaymentStatus),
	}, nil
}

// VerifyEvent checks the payload signature against the shared webhook
// secret before anything in it is trusted.
func (c *Client) VerifyEvent(payload []byte, sigHeader string) (Event, error) {
	// dashboard-configured endpoints can deliver events pinned to an
	// older API version than the SDK's
	ev, err := webhook.ConstructEventWithOptions(payload, sigHeader, c.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return Event{}, err
	}

	out := Event{ID: ev.ID, Type: string(ev.Type)}
	switch out.Type {
	case EventCheckoutCompleted:
		var s stripe.CheckoutSession
		if err := json.Unmarshal(ev.Data.Raw, &s); err != nil {
			return Event{}, fmt.Errorf("decode checkout session: %w", err)
		}
		out.OrderID = s.Metadata["order_id"]
		out.UserID = s.Metadata["user_id"]
	case EventPaymentFailed:
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(ev.Data.Raw, &pi); err != nil {
			return Event{}, fmt.Errorf("decode payment intent: %w", err)
		}
		out.OrderID = pi.Metadata["order_id"]
		out.UserID = pi.Metadata["user_id"]
	}
	return out, nil
}
