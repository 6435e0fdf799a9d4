package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/retail-pos/internal/models"
)

type VariantRef struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Color   string    `json:"color"`
	Storage string    `json:"storage"`
	SKU     string    `json:"sku"`
}

type ProductRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type BrandRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type CategoryRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Dimensions are the descriptive rows joined onto an item. Any of them is nil
// when the reference is unset or dangling.
type Dimensions struct {
	Variant  *VariantRef  `json:"variant"`
	Product  *ProductRef  `json:"product"`
	Brand    *BrandRef    `json:"brand"`
	Category *CategoryRef `json:"category"`
}

type UnitRow struct {
	ID                uuid.UUID           `json:"id"`
	ShopID            uuid.UUID           `json:"shop_id"`
	IMEI1             string              `json:"imei1"`
	IMEI2             string              `json:"imei2"`
	SerialNumber      string              `json:"serial_number"`
	Barcode           string              `json:"barcode"`
	PurchasePrice     decimal.NullDecimal `json:"purchase_price"`
	SalePrice         decimal.Decimal     `json:"sale_price"`
	Status            models.UnitStatus   `json:"status"`
	IsSold            bool                `json:"is_sold"`
	Condition         models.Condition    `json:"condition"`
	LowStockThreshold *int                `json:"low_stock_threshold"`
	CreatedAt         time.Time           `json:"created_at"`
	Dimensions
}

type BatchRow struct {
	ID                uuid.UUID           `json:"id"`
	ShopID            uuid.UUID           `json:"shop_id"`
	Barcode           string              `json:"barcode"`
	Quantity          int                 `json:"quantity"`
	PurchasePrice     decimal.NullDecimal `json:"purchase_price"`
	SalePrice         decimal.Decimal     `json:"sale_price"`
	LowStockThreshold int                 `json:"low_stock_threshold"`
	LowStock          bool                `json:"low_stock"`
	CreatedAt         time.Time           `json:"created_at"`
	Dimensions
}
