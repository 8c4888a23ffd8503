package kafka

import (
	"context"
	"encoding/json"
	"log"
	"time"
)

type CartClearer interface {
	ClearByOwner(ctx context.Context, ownerID string) error
}

// OrderPaidHandler empties the payer's cart once their order is paid.
func OrderPaidHandler(carts CartClearer) func([]byte) {
	return func(msg []byte) {
		var event OrderEvent
		if err := json.Unmarshal(msg, &event); err != nil {
			log.Printf("invalid order.paid payload: %v", err)
			return
		}

		if event.Data.UserID == "" {
			log.Printf("order.paid event without user id, skipping")
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := carts.ClearByOwner(ctx, event.Data.UserID); err != nil {
			log.Printf("failed to clear cart for user %s: %v", event.Data.UserID, err)
			return
		}

		log.Printf("cart cleared for user %s (order %s)", event.Data.UserID, event.Data.OrderID)
	}
}
