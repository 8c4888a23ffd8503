package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/jaskaran778/grind-fuel/kafka"
	"github.com/jaskaran778/grind-fuel/model"
	"github.com/jaskaran778/grind-fuel/payment"
	"github.com/jaskaran778/grind-fuel/store"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// withUser stands in for the auth middleware in handler tests.
func withUser(id, email, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user_id", id)
		c.Locals("user_email", email)
		c.Locals("user_role", role)
		return c.Next()
	}
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("Failed to decode response %s: %v", data, err)
	}
}

type fakeOrderStore struct {
	mu       sync.Mutex
	orders   map[string]*model.Order
	failNext bool
	listed   int
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: make(map[string]*model.Order)}
}

func (f *fakeOrderStore) Create(_ context.Context, order *model.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext {
		return errTestBackend
	}
	clone := *order
	f.orders[order.ID] = &clone
	return nil
}

func (f *fakeOrderStore) GetByID(_ context.Context, id string) (*model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	clone := *order
	return &clone, nil
}

func (f *fakeOrderStore) UpdateStatus(_ context.Context, id string, status model.OrderStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext {
		return errTestBackend
	}
	if order, ok := f.orders[id]; ok {
		order.Status = status
	}
	return nil
}

func (f *fakeOrderStore) ListAll(_ context.Context) ([]model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listed++
	out := make([]model.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrderStore) DeleteByOwner(_ context.Context, userID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for id, o := range f.orders {
		if o.UserID == userID {
			delete(f.orders, id)
			n++
		}
	}
	return n, nil
}

type fakeCartStore struct {
	mu      sync.Mutex
	carts   map[string]*model.Cart
	cleared []string
	deleted []string
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: make(map[string]*model.Cart)}
}

func (f *fakeCartStore) GetByOwner(_ context.Context, ownerID string) (*model.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cart, ok := f.carts[ownerID]
	if !ok {
		return nil, store.ErrNotFound
	}
	clone := *cart
	return &clone, nil
}

func (f *fakeCartStore) Save(_ context.Context, cart *model.Cart) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *cart
	f.carts[cart.OwnerID] = &clone
	return nil
}

func (f *fakeCartStore) ClearByOwner(_ context.Context, ownerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleared = append(f.cleared, ownerID)
	if cart, ok := f.carts[ownerID]; ok {
		cart.Products = datatypes.JSON("[]")
	}
	return nil
}

func (f *fakeCartStore) DeleteByOwner(_ context.Context, ownerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, ownerID)
	delete(f.carts, ownerID)
	return nil
}

type fakeProductStore struct {
	products map[string]model.Product
}

func newFakeProductStore(products ...model.Product) *fakeProductStore {
	f := &fakeProductStore{products: make(map[string]model.Product)}
	for _, p := range products {
		f.products[p.ID] = p
	}
	return f
}

func (f *fakeProductStore) List(_ context.Context, category string) ([]model.Product, error) {
	out := make([]model.Product, 0, len(f.products))
	for _, p := range f.products {
		if category == "" || p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductStore) GetByID(_ context.Context, id string) (*model.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

type fakeUserStore struct {
	mu      sync.Mutex
	users   map[string]*model.User
	deleted []string
}

func newFakeUserStore(users ...*model.User) *fakeUserStore {
	f := &fakeUserStore{users: make(map[string]*model.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserStore) Ensure(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.users[user.ID]; ok {
		*user = *existing
		return nil
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	delete(f.users, id)
	return nil
}

type fakePaymentClient struct {
	sessionID string
	createErr error
	lastInput payment.CheckoutInput
	session   *payment.Session
	getErr    error
	event     payment.Event
	verifyErr error
}

func (f *fakePaymentClient) CreateCheckoutSession(_ context.Context, in payment.CheckoutInput) (string, error) {
	f.lastInput = in
	if f.createErr != nil {
		return "", f.createErr
	}
	return f.sessionID, nil
}

func (f *fakePaymentClient) GetCheckoutSession(_ context.Context, id string) (*payment.Session, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.session, nil
}

func (f *fakePaymentClient) VerifyEvent(_ []byte, _ string) (payment.Event, error) {
	if f.verifyErr != nil {
		return payment.Event{}, f.verifyErr
	}
	return f.event, nil
}

type fakePublisher struct {
	paid   []kafka.OrderEventData
	failed []kafka.OrderEventData
}

func (f *fakePublisher) PublishOrderPaid(data kafka.OrderEventData) {
	f.paid = append(f.paid, data)
}

func (f *fakePublisher) PublishOrderFailed(data kafka.OrderEventData) {
	f.failed = append(f.failed, data)
}

type fakeEventLog struct {
	seen map[string]bool
}

func newFakeEventLog() *fakeEventLog {
	return &fakeEventLog{seen: make(map[string]bool)}
}

func (f *fakeEventLog) Seen(_ context.Context, eventID string) bool {
	return f.seen[eventID]
}

func (f *fakeEventLog) Mark(_ context.Context, eventID string) {
	f.seen[eventID] = true
}

var errTestBackend = errors.New("backend unavailable")
