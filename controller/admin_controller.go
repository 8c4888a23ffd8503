package controller

import (
	"errors"
	"log"
	"sort"
	"strings"

	"github.com/jaskaran778/grind-fuel/model"
	"github.com/jaskaran778/grind-fuel/store"

	"github.com/gofiber/fiber/v2"
)

type AdminController struct {
	Orders OrderStore
	Users  UserStore
}

// ListOrders returns every order, optionally narrowed by a substring
// search (order id, buyer email, product name), a status filter and a
// sort key.
func (ac *AdminController) ListOrders(c *fiber.Ctx) error {
	orders, err := ac.Orders.ListAll(c.Context())
	if err != nil {
		log.Printf("failed to list orders: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch orders"})
	}

	search := strings.ToLower(c.Query("search"))
	status := c.Query("status")
	filtered := filterOrders(orders, search, status)
	sortOrders(filtered, c.Query("sort", "date-desc"))

	return c.JSON(fiber.Map{
		"orders": filtered,
		"count":  len(filtered),
	})
}

func (ac *AdminController) UpdateOrderStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var body struct {
		Status model.OrderStatus `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}
	if !body.Status.Valid() {
		return c.Status(400).JSON(fiber.Map{"error": "invalid status"})
	}

	if _, err := ac.Orders.GetByID(c.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "order not found"})
		}
		log.Printf("failed to fetch order %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch order"})
	}

	// manual override: any state may be set, the payment flow is
	// bypassed entirely
	if err := ac.Orders.UpdateStatus(c.Context(), id, body.Status); err != nil {
		log.Printf("failed to update order %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to update order"})
	}

	return c.JSON(fiber.Map{"id": id, "status": body.Status})
}

func (ac *AdminController) GetUser(c *fiber.Ctx) error {
	user, err := ac.Users.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "user not found"})
		}
		log.Printf("failed to fetch user: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch user"})
	}

	return c.JSON(fiber.Map{
		"id":         user.ID,
		"email":      user.Email,
		"created_at": user.CreatedAt,
	})
}

func filterOrders(orders []model.Order, search, status string) []model.Order {
	out := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if status != "" && string(o.Status) != status {
			continue
		}
		if search != "" && !orderMatches(o, search) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func orderMatches(o model.Order, search string) bool {
	if strings.Contains(strings.ToLower(o.ID), search) {
		return true
	}
	if strings.Contains(strings.ToLower(o.UserEmail), search) {
		return true
	}
	for _, item := range o.Items {
		if strings.Contains(strings.ToLower(item.Name), search) {
			return true
		}
	}
	return false
}

func sortOrders(orders []model.Order, sortBy string) {
	sort.SliceStable(orders, func(i, j int) bool {
		switch sortBy {
		case "date-asc":
			return orders[i].CreatedAt.Before(orders[j].CreatedAt)
		case "total-asc":
			return orders[i].Total < orders[j].Total
		case "total-desc":
			return orders[i].Total > orders[j].Total
		default: // date-desc
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
	})
}
