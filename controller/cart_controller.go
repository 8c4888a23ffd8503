package controller

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/jaskaran778/grind-fuel/model"
	"github.com/jaskaran778/grind-fuel/store"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

type CartController struct {
	Carts    CartStore
	Products ProductStore
}

func (cc *CartController) Get(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	cart, err := cc.Carts.GetByOwner(c.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(model.Cart{OwnerID: userID, Products: datatypes.JSON("[]")})
		}
		log.Printf("failed to fetch cart: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch cart"})
	}
	return c.JSON(cart)
}

func (cc *CartController) AddItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var body struct {
		ProductID string `json:"product_id"`
		Qty       uint   `json:"qty"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}
	if body.ProductID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "product_id is required"})
	}
	if body.Qty == 0 {
		body.Qty = 1
	}

	product, err := cc.Products.GetByID(c.Context(), body.ProductID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "product not found"})
		}
		log.Printf("failed to fetch product: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch product"})
	}

	cart, err := cc.Carts.GetByOwner(c.Context(), userID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("failed to fetch cart: %v", err)
			return c.Status(500).JSON(fiber.Map{"error": "failed to fetch cart"})
		}
		cart = &model.Cart{
			OwnerID:   userID,
			Products:  datatypes.JSON("[]"),
			CreatedAt: time.Now(),
		}
	}

	var products []model.CartProduct
	if err := json.Unmarshal(cart.Products, &products); err != nil {
		products = []model.CartProduct{}
	}

	found := false
	for i := range products {
		if products[i].ProductID == body.ProductID {
			products[i].Qty += body.Qty
			found = true
			break
		}
	}
	if !found {
		products = append(products, model.CartProduct{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Qty:       body.Qty,
		})
	}

	raw, _ := json.Marshal(products)
	cart.Products = datatypes.JSON(raw)
	cart.UpdatedAt = time.Now()

	if err := cc.Carts.Save(c.Context(), cart); err != nil {
		log.Printf("failed to save cart: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to save cart"})
	}
	return c.Status(201).JSON(cart)
}

// UpdateItem sets a line's quantity. Zero removes the line, so a
// quantity below one never survives in the cart.
func (cc *CartController) UpdateItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	productID := c.Params("productId")

	var body struct {
		Qty uint `json:"qty"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}

	cart, err := cc.Carts.GetByOwner(c.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "cart not found"})
		}
		log.Printf("failed to fetch cart: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch cart"})
	}

	var products []model.CartProduct
	if err := json.Unmarshal(cart.Products, &products); err != nil {
		products = []model.CartProduct{}
	}

	found := false
	next := products[:0]
	for _, p := range products {
		if p.ProductID == productID {
			found = true
			if body.Qty == 0 {
				continue
			}
			p.Qty = body.Qty
		}
		next = append(next, p)
	}
	if !found {
		return c.Status(404).JSON(fiber.Map{"error": "item not in cart"})
	}

	raw, _ := json.Marshal(next)
	cart.Products = datatypes.JSON(raw)
	cart.UpdatedAt = time.Now()

	if err := cc.Carts.Save(c.Context(), cart); err != nil {
		log.Printf("failed to save cart: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to save cart"})
	}
	return c.JSON(cart)
}

func (cc *CartController) Clear(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := cc.Carts.ClearByOwner(c.Context(), userID); err != nil {
		log.Printf("failed to clear cart: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to clear cart"})
	}
	return c.SendStatus(204)
}
