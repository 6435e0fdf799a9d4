package models

import (
	"time"

	"github.com/google/uuid"
)

type Brand struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ShopID    uuid.UUID `json:"shop_id" db:"shop_id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Category struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ShopID    uuid.UUID `json:"shop_id" db:"shop_id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Product is a named catalog entry belonging to one brand and one category.
type Product struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	ShopID     uuid.UUID  `json:"shop_id" db:"shop_id"`
	BrandID    *uuid.UUID `json:"brand_id" db:"brand_id"`
	CategoryID *uuid.UUID `json:"category_id" db:"category_id"`
	Name       string     `json:"name" db:"name"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
}

// Variant is a SKU-level configuration of a product (color, storage size).
type Variant struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ProductID uuid.UUID `json:"product_id" db:"product_id"`
	Name      string    `json:"name" db:"name"`
	Color     string    `json:"color" db:"color"`
	Storage   string    `json:"storage" db:"storage"`
	SKU       string    `json:"sku" db:"sku"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
