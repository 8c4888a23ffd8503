package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusFailed    OrderStatus = "failed"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusFailed:
		return true
	}
	return false
}

type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  uint    `json:"quantity"`
}

type OrderItems []OrderItem

// Sum is the order total: unit price times quantity across all lines.
func (items OrderItems) Sum() float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Value writes items as one canonical JSON array.
func (items OrderItems) Value() (driver.Value, error) {
	if items == nil {
		items = OrderItems{}
	}
	return json.Marshal(items)
}

// Scan accepts the shapes older rows were stored in: a JSON array, a
// JSON-encoded string wrapping one, or a single bare object. Anything
// unreadable becomes an empty list rather than failing the whole read.
func (items *OrderItems) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*items = OrderItems{}
		return nil
	case []byte:
		*items = NormalizeItems(v)
		return nil
	case string:
		*items = NormalizeItems([]byte(v))
		return nil
	default:
		return fmt.Errorf("unsupported items column type %T", src)
	}
}

func NormalizeItems(raw []byte) OrderItems {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return OrderItems{}
	}

	// doubly encoded: a JSON string holding the real payload
	var inner string
	if err := json.Unmarshal(raw, &inner); err == nil {
		raw = bytes.TrimSpace([]byte(inner))
		if len(raw) == 0 {
			return OrderItems{}
		}
	}

	var list []OrderItem
	if err := json.Unmarshal(raw, &list); err == nil {
		return OrderItems(list)
	}

	var one OrderItem
	if err := json.Unmarshal(raw, &one); err == nil {
		return OrderItems{one}
	}

	return OrderItems{}
}

type ShippingAddress struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

func (a ShippingAddress) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *ShippingAddress) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*a = ShippingAddress{}
		return nil
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return fmt.Errorf("unsupported shipping address column type %T", src)
	}
}

type Order struct {
	ID              string          `gorm:"primaryKey" json:"id"`
	UserID          string          `gorm:"index" json:"user_id"`
	UserEmail       string          `json:"user_email"`
	Items           OrderItems      `gorm:"type:json" json:"products"`
	Total           float64         `json:"total"`
	ShippingAddress ShippingAddress `gorm:"type:json" json:"shipping_address"`
	Status          OrderStatus     `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
