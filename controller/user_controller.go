package controller

import (
	"log"
	"time"

	"github.com/jaskaran778/grind-fuel/middleware"
	"github.com/jaskaran778/grind-fuel/model"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	Users  UserStore
	Orders OrderStore
	Carts  CartStore
	Auth   middleware.AuthConfig
}

// Me echoes the caller's identity and keeps the local users row in
// step with the auth provider.
func (uc *UserController) Me(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	email, _ := c.Locals("user_email").(string)
	role, _ := c.Locals("user_role").(string)
	if role == "" {
		role = "user"
	}

	user := &model.User{
		ID:        userID,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now(),
	}
	if err := uc.Users.Ensure(c.Context(), user); err != nil {
		log.Printf("failed to sync user %s: %v", userID, err)
	}

	return c.JSON(fiber.Map{
		"id":       userID,
		"email":    email,
		"role":     user.Role,
		"is_admin": middleware.IsAdmin(uc.Auth, userID, role),
	})
}

// DeleteAccount removes the caller's orders before the account row.
// If the account step fails the orders are already gone; there is no
// compensating rollback.
func (uc *UserController) DeleteAccount(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	deleted, err := uc.Orders.DeleteByOwner(c.Context(), userID)
	if err != nil {
		log.Printf("failed to delete orders for user %s: %v", userID, err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to delete orders"})
	}
	log.Printf("deleted %d orders for user %s", deleted, userID)

	if err := uc.Carts.DeleteByOwner(c.Context(), userID); err != nil {
		log.Printf("failed to delete cart for user %s: %v", userID, err)
	}

	if err := uc.Users.Delete(c.Context(), userID); err != nil {
		log.Printf("failed to delete account %s: %v", userID, err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to delete account"})
	}

	return c.JSON(fiber.Map{"success": true})
}
