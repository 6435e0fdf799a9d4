package handlers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/retail-pos/internal/catalog"
	"github.com/rogerio-castellano/retail-pos/internal/models"
)

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type CreateUserRequest struct {
	Username string      `json:"username"`
	Password string      `json:"password"`
	Role     string      `json:"role"`
	ShopIDs  []uuid.UUID `json:"shop_ids"`
}

type NamedDimensionRequest struct {
	ShopID uuid.UUID `json:"shop_id"`
	Name   string    `json:"name"`
}

type ProductRequest struct {
	ShopID     uuid.UUID  `json:"shop_id"`
	BrandID    *uuid.UUID `json:"brand_id"`
	CategoryID *uuid.UUID `json:"category_id"`
	Name       string     `json:"name"`
}

type VariantRequest struct {
	Name    string `json:"name"`
	Color   string `json:"color"`
	Storage string `json:"storage"`
	SKU     string `json:"sku"`
}

type StockUnitRequest struct {
	ShopID            uuid.UUID           `json:"shop_id"`
	VariantID         *uuid.UUID          `json:"variant_id"`
	IMEI1             string              `json:"imei1"`
	IMEI2             string              `json:"imei2"`
	SerialNumber      string              `json:"serial_number"`
	Barcode           string              `json:"barcode"`
	PurchasePrice     decimal.NullDecimal `json:"purchase_price"`
	SalePrice         decimal.Decimal     `json:"sale_price"`
	Status            models.UnitStatus   `json:"status"`
	Condition         models.Condition    `json:"condition"`
	VendorID          *uuid.UUID          `json:"vendor_id"`
	Notes             string              `json:"notes"`
	LowStockThreshold *int                `json:"low_stock_threshold"`
}

type StockBatchRequest struct {
	ShopID            uuid.UUID           `json:"shop_id"`
	VariantID         *uuid.UUID          `json:"variant_id"`
	Barcode           string              `json:"barcode"`
	Quantity          int                 `json:"quantity"`
	PurchasePrice     decimal.NullDecimal `json:"purchase_price"`
	SalePrice         decimal.Decimal     `json:"sale_price"`
	LowStockThreshold *int                `json:"low_stock_threshold"`
	VendorID          *uuid.UUID          `json:"vendor_id"`
	Notes             string              `json:"notes"`
}

type StockBatchResponse struct {
	models.StockBatch
	LowStock bool `json:"low_stock"`
}

type QuantityAdjustmentRequest struct {
	Delta int `json:"delta"` // can be positive or negative
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type MovementResponse struct {
	ID        uuid.UUID `json:"id"`
	BatchID   uuid.UUID `json:"batch_id"`
	Delta     int       `json:"delta"`
	CreatedAt time.Time `json:"created_at"`
}

type MovementsSearchResult struct {
	Data []MovementResponse `json:"data"`
	Meta Meta               `json:"meta,omitempty"`
}

type ImportBatchesResult struct {
	Imported int               `json:"imported"`
	Errors   []ValidationError `json:"errors"`
}

// Listing envelopes, named for the generated API document.
type (
	StockUnitsPage   = catalog.Result[catalog.UnitRow]
	StockBatchesPage = catalog.Result[catalog.BatchRow]
)
