package model

import (
	"time"

	"gorm.io/datatypes"
)

// Cart is the server-side cart, one row per owner. Products is a JSON
// array of CartProduct.
type Cart struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	OwnerID   string         `gorm:"uniqueIndex" json:"owner_id"`
	Products  datatypes.JSON `json:"products"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type CartProduct struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       uint    `json:"qty"`
}
