package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitStatus string

const (
	UnitInStock     UnitStatus = "in_stock"
	UnitReserved    UnitStatus = "reserved"
	UnitSold        UnitStatus = "sold"
	UnitTransferred UnitStatus = "transferred"
	UnitReturned    UnitStatus = "returned"
	UnitDefective   UnitStatus = "defective"
)

func (s UnitStatus) Valid() bool {
	switch s {
	case UnitInStock, UnitReserved, UnitSold, UnitTransferred, UnitReturned, UnitDefective:
		return true
	}
	return false
}

type Condition string

const (
	ConditionNew  Condition = "new"
	ConditionUsed Condition = "used"
)

func (c Condition) Valid() bool {
	return c == ConditionNew || c == ConditionUsed
}

// StockUnit is one individually tracked physical item, e.g. one phone.
// A sold unit has IsSold set and status UnitSold. Inactive units never show up in listings.
type StockUnit struct {
	ID                uuid.UUID           `json:"id" db:"id"`
	ShopID            uuid.UUID           `json:"shop_id" db:"shop_id"`
	VariantID         *uuid.UUID          `json:"variant_id" db:"variant_id"`
	IMEI1             string              `json:"imei1" db:"imei1"`
	IMEI2             string              `json:"imei2" db:"imei2"`
	SerialNumber      string              `json:"serial_number" db:"serial_number"`
	Barcode           string              `json:"barcode" db:"barcode"`
	PurchasePrice     decimal.NullDecimal `json:"purchase_price" db:"purchase_price"`
	SalePrice         decimal.Decimal     `json:"sale_price" db:"sale_price"`
	Status            UnitStatus          `json:"status" db:"status"`
	IsActive          bool                `json:"is_active" db:"is_active"`
	IsSold            bool                `json:"is_sold" db:"is_sold"`
	Condition         Condition           `json:"condition" db:"condition"`
	VendorID          *uuid.UUID          `json:"vendor_id" db:"vendor_id"`
	Notes             string              `json:"notes" db:"notes"`
	LowStockThreshold *int                `json:"low_stock_threshold" db:"low_stock_threshold"`
	CreatedAt         time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at" db:"updated_at"`
}

// StockBatch is a fungible quantity of one variant at one shop.
// Quantity never goes negative; Quantity <= LowStockThreshold means low stock.
type StockBatch struct {
	ID                uuid.UUID           `json:"id" db:"id"`
	ShopID            uuid.UUID           `json:"shop_id" db:"shop_id"`
	VariantID         *uuid.UUID          `json:"variant_id" db:"variant_id"`
	Barcode           string              `json:"barcode" db:"barcode"`
	Quantity          int                 `json:"quantity" db:"quantity"`
	PurchasePrice     decimal.NullDecimal `json:"purchase_price" db:"purchase_price"`
	SalePrice         decimal.Decimal     `json:"sale_price" db:"sale_price"`
	LowStockThreshold int                 `json:"low_stock_threshold" db:"low_stock_threshold"`
	VendorID          *uuid.UUID          `json:"vendor_id" db:"vendor_id"`
	Notes             string              `json:"notes" db:"notes"`
	IsActive          bool                `json:"is_active" db:"is_active"`
	CreatedAt         time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at" db:"updated_at"`
}

func (b StockBatch) LowStock() bool {
	return b.Quantity <= b.LowStockThreshold
}
