package repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/retail-pos/internal/catalog"
	"github.com/rogerio-castellano/retail-pos/internal/models"
)

// PostgresCatalogRepository implements catalog.Repository.
type PostgresCatalogRepository struct {
	db *sqlx.DB
}

func NewPostgresCatalogRepository(db *sqlx.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: db}
}

// table describes how one item kind maps onto SQL.
type table struct {
	name    string
	alias   string
	columns string
	search  map[catalog.SearchField]string
}

const dimensionColumns = `,
	v.id AS variant_ref_id, v.name AS variant_name, v.color AS variant_color,
	v.storage AS variant_storage, v.sku AS variant_sku,
	p.id AS product_ref_id, p.name AS product_name,
	b.id AS brand_ref_id, b.name AS brand_name,
	c.id AS category_ref_id, c.name AS category_name`

var unitTable = table{
	name:  "stock_units",
	alias: "su",
	columns: `su.id, su.shop_id,
	COALESCE(su.imei1, '') AS imei1, COALESCE(su.imei2, '') AS imei2,
	COALESCE(su.serial_number, '') AS serial_number, COALESCE(su.barcode, '') AS barcode,
	su.purchase_price, su.sale_price, su.status, su.is_sold, su.condition,
	su.low_stock_threshold, su.created_at` + dimensionColumns,
	search: map[catalog.SearchField]string{
		catalog.FieldBarcode:      "su.barcode",
		catalog.FieldIMEI1:        "su.imei1",
		catalog.FieldIMEI2:        "su.imei2",
		catalog.FieldSerialNumber: "su.serial_number",
		catalog.FieldVariantName:  "v.name",
		catalog.FieldProductName:  "p.name",
		catalog.FieldBrandName:    "b.name",
	},
}

var batchTable = table{
	name:  "stock_batches",
	alias: "sb",
	columns: `sb.id, sb.shop_id, COALESCE(sb.barcode, '') AS barcode, sb.quantity,
	sb.purchase_price, sb.sale_price, sb.low_stock_threshold, sb.created_at` + dimensionColumns,
	search: map[catalog.SearchField]string{
		catalog.FieldBarcode:     "sb.barcode",
		catalog.FieldVariantName: "v.name",
		catalog.FieldProductName: "p.name",
		catalog.FieldBrandName:   "b.name",
	},
}

func tableFor(kind catalog.ItemKind) table {
	if kind == catalog.KindBatch {
		return batchTable
	}
	return unitTable
}

func (t table) from() string {
	return fmt.Sprintf(` FROM %s %s
	LEFT JOIN variants v ON v.id = %s.variant_id
	LEFT JOIN products p ON p.id = v.product_id
	LEFT JOIN brands b ON b.id = p.brand_id
	LEFT JOIN categories c ON c.id = p.category_id`, t.name, t.alias, t.alias)
}

// whereClause renders a Filter with '?' bind variables.
func (t table) whereClause(f catalog.Filter) (string, []any, error) {
	conditions := []string{}
	args := []any{}

	for _, cl := range f.Clauses {
		switch cl := cl.(type) {
		case catalog.ActiveOnly:
			conditions = append(conditions, t.alias+".is_active = TRUE")

		case catalog.ShopIn:
			cond, inArgs, err := inShops(t.alias+".shop_id", cl.ShopIDs)
			if err != nil {
				return "", nil, err
			}
			conditions = append(conditions, cond)
			args = append(args, inArgs...)

		case catalog.TextSearch:
			pattern := "%" + escapeLike(cl.Term) + "%"
			ors := make([]string, 0, len(cl.Fields))
			for _, field := range cl.Fields {
				col, ok := t.search[field]
				if !ok {
					continue
				}
				ors = append(ors, fmt.Sprintf("COALESCE(%s, '') ILIKE ?", col))
				args = append(args, pattern)
			}
			if len(ors) > 0 {
				conditions = append(conditions, "("+strings.Join(ors, " OR ")+")")
			}

		case catalog.LowStock:
			switch policy := cl.Policy.(type) {
			case catalog.RowThreshold:
				conditions = append(conditions, fmt.Sprintf("%s.quantity <= %s.low_stock_threshold", t.alias, t.alias))
			case catalog.GroupedThreshold:
				inCond, inArgs, err := inShops("g.shop_id", cl.ShopIDs)
				if err != nil {
					return "", nil, err
				}
				conditions = append(conditions, fmt.Sprintf(`%s.variant_id IN (
		SELECT g.variant_id FROM stock_units g
		WHERE g.is_active = TRUE AND g.is_sold = FALSE AND g.status <> '%s'
			AND g.variant_id IS NOT NULL AND %s
		GROUP BY g.variant_id
		HAVING COUNT(*) <= COALESCE(MIN(g.low_stock_threshold), ?))`, t.alias, models.UnitSold, inCond))
				args = append(args, inArgs...)
				args = append(args, policy.DefaultThreshold)
			}

		default:
			return "", nil, fmt.Errorf("unsupported filter clause %T", cl)
		}
	}

	if len(conditions) == 0 {
		return "", args, nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args, nil
}

// inShops renders "col IN (?, ...)"; an empty set matches nothing.
func inShops(col string, shopIDs []uuid.UUID) (string, []any, error) {
	if len(shopIDs) == 0 {
		return "FALSE", nil, nil
	}
	ids := make([]string, len(shopIDs))
	for i, id := range shopIDs {
		ids[i] = id.String()
	}
	return sqlx.In(col+" IN (?)", ids)
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// pageQuery and countQuery share one rendered WHERE clause.
func pageQuery(kind catalog.ItemKind, f catalog.Filter, p catalog.Page) (string, []any, error) {
	t := tableFor(kind)
	where, args, err := t.whereClause(f)
	if err != nil {
		return "", nil, err
	}
	query := "SELECT " + t.columns + t.from() + where +
		fmt.Sprintf(" ORDER BY %[1]s.created_at DESC, %[1]s.id DESC LIMIT ? OFFSET ?", t.alias)
	args = append(args, p.Limit, p.Offset)
	return sqlx.Rebind(sqlx.DOLLAR, query), args, nil
}

func countQuery(kind catalog.ItemKind, f catalog.Filter) (string, []any, error) {
	t := tableFor(kind)
	where, args, err := t.whereClause(f)
	if err != nil {
		return "", nil, err
	}
	return sqlx.Rebind(sqlx.DOLLAR, "SELECT COUNT(*)"+t.from()+where), args, nil
}

type dimensionRecord struct {
	VariantID      *uuid.UUID `db:"variant_ref_id"`
	VariantName    *string    `db:"variant_name"`
	VariantColor   *string    `db:"variant_color"`
	VariantStorage *string    `db:"variant_storage"`
	VariantSKU     *string    `db:"variant_sku"`
	ProductID      *uuid.UUID `db:"product_ref_id"`
	ProductName    *string    `db:"product_name"`
	BrandID        *uuid.UUID `db:"brand_ref_id"`
	BrandName      *string    `db:"brand_name"`
	CategoryID     *uuid.UUID `db:"category_ref_id"`
	CategoryName   *string    `db:"category_name"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (d dimensionRecord) toDimensions() catalog.Dimensions {
	var out catalog.Dimensions
	if d.VariantID != nil {
		out.Variant = &catalog.VariantRef{
			ID:      *d.VariantID,
			Name:    deref(d.VariantName),
			Color:   deref(d.VariantColor),
			Storage: deref(d.VariantStorage),
			SKU:     deref(d.VariantSKU),
		}
	}
	if d.ProductID != nil {
		out.Product = &catalog.ProductRef{ID: *d.ProductID, Name: deref(d.ProductName)}
	}
	if d.BrandID != nil {
		out.Brand = &catalog.BrandRef{ID: *d.BrandID, Name: deref(d.BrandName)}
	}
	if d.CategoryID != nil {
		out.Category = &catalog.CategoryRef{ID: *d.CategoryID, Name: deref(d.CategoryName)}
	}
	return out
}

type unitRecord struct {
	ID                uuid.UUID           `db:"id"`
	ShopID            uuid.UUID           `db:"shop_id"`
	IMEI1             string              `db:"imei1"`
	IMEI2             string              `db:"imei2"`
	SerialNumber      string              `db:"serial_number"`
	Barcode           string              `db:"barcode"`
	PurchasePrice     decimal.NullDecimal `db:"purchase_price"`
	SalePrice         decimal.Decimal     `db:"sale_price"`
	Status            models.UnitStatus   `db:"status"`
	IsSold            bool                `db:"is_sold"`
	Condition         models.Condition    `db:"condition"`
	LowStockThreshold *int                `db:"low_stock_threshold"`
	CreatedAt         time.Time           `db:"created_at"`
	dimensionRecord
}

type batchRecord struct {
	ID                uuid.UUID           `db:"id"`
	ShopID            uuid.UUID           `db:"shop_id"`
	Barcode           string              `db:"barcode"`
	Quantity          int                 `db:"quantity"`
	PurchasePrice     decimal.NullDecimal `db:"purchase_price"`
	SalePrice         decimal.Decimal     `db:"sale_price"`
	LowStockThreshold int                 `db:"low_stock_threshold"`
	CreatedAt         time.Time           `db:"created_at"`
	dimensionRecord
}

func (r *PostgresCatalogRepository) ListUnits(ctx context.Context, f catalog.Filter, p catalog.Page) ([]catalog.UnitRow, error) {
	query, args, err := pageQuery(catalog.KindUnit, f, p)
	if err != nil {
		return nil, err
	}

	var records []unitRecord
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, err
	}

	rows := make([]catalog.UnitRow, len(records))
	for i, rec := range records {
		rows[i] = catalog.UnitRow{
			ID:                rec.ID,
			ShopID:            rec.ShopID,
			IMEI1:             rec.IMEI1,
			IMEI2:             rec.IMEI2,
			SerialNumber:      rec.SerialNumber,
			Barcode:           rec.Barcode,
			PurchasePrice:     rec.PurchasePrice,
			SalePrice:         rec.SalePrice,
			Status:            rec.Status,
			IsSold:            rec.IsSold,
			Condition:         rec.Condition,
			LowStockThreshold: rec.LowStockThreshold,
			CreatedAt:         rec.CreatedAt,
			Dimensions:        rec.toDimensions(),
		}
	}
	return rows, nil
}

func (r *PostgresCatalogRepository) CountUnits(ctx context.Context, f catalog.Filter) (int, error) {
	return r.count(ctx, catalog.KindUnit, f)
}

func (r *PostgresCatalogRepository) ListBatches(ctx context.Context, f catalog.Filter, p catalog.Page) ([]catalog.BatchRow, error) {
	query, args, err := pageQuery(catalog.KindBatch, f, p)
	if err != nil {
		return nil, err
	}

	var records []batchRecord
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, err
	}

	rows := make([]catalog.BatchRow, len(records))
	for i, rec := range records {
		rows[i] = catalog.BatchRow{
			ID:                rec.ID,
			ShopID:            rec.ShopID,
			Barcode:           rec.Barcode,
			Quantity:          rec.Quantity,
			PurchasePrice:     rec.PurchasePrice,
			SalePrice:         rec.SalePrice,
			LowStockThreshold: rec.LowStockThreshold,
			LowStock:          rec.Quantity <= rec.LowStockThreshold,
			CreatedAt:         rec.CreatedAt,
			Dimensions:        rec.toDimensions(),
		}
	}
	return rows, nil
}

func (r *PostgresCatalogRepository) CountBatches(ctx context.Context, f catalog.Filter) (int, error) {
	return r.count(ctx, catalog.KindBatch, f)
}

func (r *PostgresCatalogRepository) count(ctx context.Context, kind catalog.ItemKind, f catalog.Filter) (int, error) {
	query, args, err := countQuery(kind, f)
	if err != nil {
		return 0, err
	}
	var total int
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, err
	}
	return total, nil
}
