package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

type AuthConfig struct {
	JWTSecret string
	// AdminUserID is honored alongside the role claim so existing
	// administrator identities keep working.
	AdminUserID string
}

// AuthRequired validates the bearer token minted by the identity
// provider and puts the caller's claims into locals.
func AuthRequired(cfg AuthConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" {
			return c.Status(401).JSON(fiber.Map{"error": "missing auth"})
		}

		raw := strings.TrimPrefix(auth, "Bearer ")
		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return c.Status(401).JSON(fiber.Map{"error": "invalid token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(401).JSON(fiber.Map{"error": "invalid token"})
		}

		userID, _ := claims["user_id"].(string)
		if userID == "" {
			return c.Status(401).JSON(fiber.Map{"error": "invalid token"})
		}
		email, _ := claims["email"].(string)
		role, _ := claims["role"].(string)

		c.Locals("user_id", userID)
		c.Locals("user_email", email)
		c.Locals("user_role", role)

		return c.Next()
	}
}

// AdminRequired gates privileged routes. Runs after AuthRequired.
func AdminRequired(cfg AuthConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		role, _ := c.Locals("user_role").(string)
		if !IsAdmin(cfg, userID, role) {
			return c.Status(403).JSON(fiber.Map{"error": "unauthorized access"})
		}
		return c.Next()
	}
}

// IsAdmin is the admin policy: an admin role claim, or the configured
// administrator identity.
func IsAdmin(cfg AuthConfig, userID, role string) bool {
	if role == "admin" {
		return true
	}
	return cfg.AdminUserID != "" && userID == cfg.AdminUserID
}
