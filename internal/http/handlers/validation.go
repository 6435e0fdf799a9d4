package handlers

import (
	"strings"

	"github.com/google/uuid"

	"github.com/rogerio-castellano/retail-pos/internal/catalog"
	"github.com/rogerio-castellano/retail-pos/internal/models"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateStockUnit(u StockUnitRequest) []ValidationError {
	errs := []ValidationError{}
	if u.ShopID == uuid.Nil {
		errs = append(errs, ValidationError{Field: "shop_id", Description: "shop_id is required"})
	}
	if !u.SalePrice.IsPositive() {
		errs = append(errs, ValidationError{Field: "sale_price", Description: "sale_price must be greater than zero"})
	}
	if u.PurchasePrice.Valid && u.PurchasePrice.Decimal.IsNegative() {
		errs = append(errs, ValidationError{Field: "purchase_price", Description: "purchase_price cannot be negative"})
	}
	if u.Status != "" && !u.Status.Valid() {
		errs = append(errs, ValidationError{Field: "status", Description: "status is not a known lifecycle state"})
	}
	if u.Condition != "" && !u.Condition.Valid() {
		errs = append(errs, ValidationError{Field: "condition", Description: "condition must be new or used"})
	}
	if u.LowStockThreshold != nil && *u.LowStockThreshold < 0 {
		errs = append(errs, ValidationError{Field: "low_stock_threshold", Description: "low_stock_threshold cannot be negative"})
	}
	if strings.TrimSpace(u.IMEI1+u.SerialNumber+u.Barcode) == "" {
		errs = append(errs, ValidationError{Field: "imei1", Description: "one of imei1, serial_number or barcode is required"})
	}
	return errs
}

func validateStockBatch(b StockBatchRequest) []ValidationError {
	errs := []ValidationError{}
	if b.ShopID == uuid.Nil {
		errs = append(errs, ValidationError{Field: "shop_id", Description: "shop_id is required"})
	}
	if strings.TrimSpace(b.Barcode) == "" {
		errs = append(errs, ValidationError{Field: "barcode", Description: "barcode is required"})
	}
	if b.Quantity < 0 {
		errs = append(errs, ValidationError{Field: "quantity", Description: "quantity cannot be negative"})
	}
	if !b.SalePrice.IsPositive() {
		errs = append(errs, ValidationError{Field: "sale_price", Description: "sale_price must be greater than zero"})
	}
	if b.PurchasePrice.Valid && b.PurchasePrice.Decimal.IsNegative() {
		errs = append(errs, ValidationError{Field: "purchase_price", Description: "purchase_price cannot be negative"})
	}
	if b.LowStockThreshold != nil && *b.LowStockThreshold < 0 {
		errs = append(errs, ValidationError{Field: "low_stock_threshold", Description: "low_stock_threshold cannot be negative"})
	}
	return errs
}

func thresholdOrDefault(t *int) int {
	if t == nil {
		return catalog.DefaultLowStockThreshold
	}
	return *t
}

func unitFromRequest(req StockUnitRequest) models.StockUnit {
	status := req.Status
	if status == "" {
		status = models.UnitInStock
	}
	condition := req.Condition
	if condition == "" {
		condition = models.ConditionNew
	}
	return models.StockUnit{
		ShopID:            req.ShopID,
		VariantID:         req.VariantID,
		IMEI1:             strings.TrimSpace(req.IMEI1),
		IMEI2:             strings.TrimSpace(req.IMEI2),
		SerialNumber:      strings.TrimSpace(req.SerialNumber),
		Barcode:           strings.TrimSpace(req.Barcode),
		PurchasePrice:     req.PurchasePrice,
		SalePrice:         req.SalePrice,
		Status:            status,
		IsActive:          true,
		IsSold:            status == models.UnitSold,
		Condition:         condition,
		VendorID:          req.VendorID,
		Notes:             req.Notes,
		LowStockThreshold: req.LowStockThreshold,
	}
}

func batchFromRequest(req StockBatchRequest) models.StockBatch {
	return models.StockBatch{
		ShopID:            req.ShopID,
		VariantID:         req.VariantID,
		Barcode:           strings.TrimSpace(req.Barcode),
		Quantity:          req.Quantity,
		PurchasePrice:     req.PurchasePrice,
		SalePrice:         req.SalePrice,
		LowStockThreshold: thresholdOrDefault(req.LowStockThreshold),
		VendorID:          req.VendorID,
		Notes:             req.Notes,
		IsActive:          true,
	}
}
