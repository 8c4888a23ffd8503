package controller

import (
	"errors"
	"log"

	"github.com/jaskaran778/grind-fuel/store"

	"github.com/gofiber/fiber/v2"
)

type ProductController struct {
	Products ProductStore
}

func (pc *ProductController) List(c *fiber.Ctx) error {
	products, err := pc.Products.List(c.Context(), c.Query("category"))
	if err != nil {
		log.Printf("failed to list products: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch products"})
	}
	return c.JSON(products)
}

func (pc *ProductController) Get(c *fiber.Ctx) error {
	product, err := pc.Products.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "product not found"})
		}
		log.Printf("failed to fetch product: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch product"})
	}
	return c.JSON(product)
}
