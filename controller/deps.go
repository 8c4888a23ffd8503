package controller

import (
	"context"

	"github.com/jaskaran778/grind-fuel/kafka"
	"github.com/jaskaran778/grind-fuel/model"
	"github.com/jaskaran778/grind-fuel/payment"
)

// Store and client handles are injected into controllers. The gorm
// stores in package store satisfy these; tests plug in fakes.

type OrderStore interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id string) (*model.Order, error)
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error
	ListAll(ctx context.Context) ([]model.Order, error)
	DeleteByOwner(ctx context.Context, userID string) (int64, error)
}

type CartStore interface {
	GetByOwner(ctx context.Context, ownerID string) (*model.Cart, error)
	Save(ctx context.Context, cart *model.Cart) error
	ClearByOwner(ctx context.Context, ownerID string) error
	DeleteByOwner(ctx context.Context, ownerID string) error
}

type ProductStore interface {
	List(ctx context.Context, category string) ([]model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
}

type UserStore interface {
	Ensure(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	Delete(ctx context.Context, id string) error
}

type PaymentClient interface {
	CreateCheckoutSession(ctx context.Context, in payment.CheckoutInput) (string, error)
	GetCheckoutSession(ctx context.Context, id string) (*payment.Session, error)
	VerifyEvent(payload []byte, sigHeader string) (payment.Event, error)
}

type Publisher interface {
	PublishOrderPaid(data kafka.OrderEventData)
	PublishOrderFailed(data kafka.OrderEventData)
}

type EventLog interface {
	Seen(ctx context.Context, eventID string) bool
	Mark(ctx context.Context, eventID string)
}
