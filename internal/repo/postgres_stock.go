package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/rogerio-castellano/retail-pos/internal/models"
)

const queryTimeout = 3 * time.Second

type PostgresStockRepository struct {
	db *sqlx.DB
}

func NewPostgresStockRepository(db *sqlx.DB) *PostgresStockRepository {
	return &PostgresStockRepository{db: db}
}

const unitColumns = `id, shop_id, variant_id, COALESCE(imei1, '') AS imei1, COALESCE(imei2, '') AS imei2,
	COALESCE(serial_number, '') AS serial_number, COALESCE(barcode, '') AS barcode,
	purchase_price, sale_price, status, is_active, is_sold, condition, vendor_id, notes,
	low_stock_threshold, created_at, updated_at`

const batchColumns = `id, shop_id, variant_id, COALESCE(barcode, '') AS barcode, quantity,
	purchase_price, sale_price, low_stock_threshold, vendor_id, notes, is_active, created_at, updated_at`

func (r *PostgresStockRepository) CreateUnit(ctx context.Context, u models.StockUnit) (models.StockUnit, error) {
	query := `
		INSERT INTO stock_units (
			id, shop_id, variant_id, imei1, imei2, serial_number, barcode,
			purchase_price, sale_price, status, is_active, is_sold, condition,
			vendor_id, notes, low_stock_threshold, created_at, updated_at
		) VALUES (
			:id, :shop_id, :variant_id, NULLIF(:imei1, ''), NULLIF(:imei2, ''), NULLIF(:serial_number, ''), NULLIF(:barcode, ''),
			:purchase_price, :sale_price, :status, :is_active, :is_sold, :condition,
			:vendor_id, :notes, :low_stock_threshold, :created_at, :updated_at
		)`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	now := time.Now().UTC()
	u.CreatedAt, u.UpdatedAt = now, now

	if _, err := r.db.NamedExecContext(ctx, query, u); err != nil {
		return models.StockUnit{}, translatePgError(err)
	}
	return u, nil
}

func (r *PostgresStockRepository) GetUnit(ctx context.Context, id uuid.UUID) (models.StockUnit, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var u models.StockUnit
	err := r.db.GetContext(ctx, &u, `SELECT `+unitColumns+` FROM stock_units WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StockUnit{}, ErrNotFound
	}
	return u, err
}

func (r *PostgresStockRepository) DeactivateUnit(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE stock_units SET is_active = FALSE, updated_at = $1 WHERE id = $2 AND is_active = TRUE`
	return r.execAffecting(ctx, query, time.Now().UTC(), id)
}

func (r *PostgresStockRepository) CreateBatch(ctx context.Context, b models.StockBatch) (models.StockBatch, error) {
	query := `
		INSERT INTO stock_batches (
			id, shop_id, variant_id, barcode, quantity, purchase_price, sale_price,
			low_stock_threshold, vendor_id, notes, is_active, created_at, updated_at
		) VALUES (
			:id, :shop_id, :variant_id, NULLIF(:barcode, ''), :quantity, :purchase_price, :sale_price,
			:low_stock_threshold, :vendor_id, :notes, :is_active, :created_at, :updated_at
		)`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := time.Now().UTC()
	b.CreatedAt, b.UpdatedAt = now, now

	if _, err := r.db.NamedExecContext(ctx, query, b); err != nil {
		return models.StockBatch{}, translatePgError(err)
	}
	return b, nil
}

func (r *PostgresStockRepository) GetBatch(ctx context.Context, id uuid.UUID) (models.StockBatch, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var b models.StockBatch
	err := r.db.GetContext(ctx, &b, `SELECT `+batchColumns+` FROM stock_batches WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StockBatch{}, ErrNotFound
	}
	return b, err
}

func (r *PostgresStockRepository) GetBatchByBarcode(ctx context.Context, shopID uuid.UUID, barcode string) (models.StockBatch, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var b models.StockBatch
	err := r.db.GetContext(ctx, &b,
		`SELECT `+batchColumns+` FROM stock_batches WHERE shop_id = $1 AND barcode = $2 AND is_active = TRUE`,
		shopID, barcode)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StockBatch{}, ErrNotFound
	}
	return b, err
}

func (r *PostgresStockRepository) UpdateBatch(ctx context.Context, b models.StockBatch) (models.StockBatch, error) {
	query := `
		UPDATE stock_batches
		SET variant_id = :variant_id, barcode = NULLIF(:barcode, ''), quantity = :quantity,
			purchase_price = :purchase_price, sale_price = :sale_price,
			low_stock_threshold = :low_stock_threshold, vendor_id = :vendor_id,
			notes = :notes, updated_at = :updated_at
		WHERE id = :id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if b.Quantity < 0 {
		return models.StockBatch{}, ErrInsufficientQuantity
	}
	b.UpdatedAt = time.Now().UTC()
	res, err := r.db.NamedExecContext(ctx, query, b)
	if err != nil {
		return models.StockBatch{}, translatePgError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.StockBatch{}, ErrNotFound
	}
	return b, nil
}

// AdjustBatchQuantity applies delta atomically; the row is left untouched when
// the result would be negative. Retired batches are reported as not found.
func (r *PostgresStockRepository) AdjustBatchQuantity(ctx context.Context, id uuid.UUID, delta int) (models.StockBatch, error) {
	query := `
		UPDATE stock_batches
		SET quantity = quantity + $1, updated_at = $2
		WHERE id = $3 AND is_active = TRUE AND quantity + $1 >= 0
		RETURNING ` + batchColumns
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var b models.StockBatch
	err := r.db.GetContext(ctx, &b, query, delta, time.Now().UTC(), id)
	if errors.Is(err, sql.ErrNoRows) {
		current, getErr := r.GetBatch(ctx, id)
		switch {
		case errors.Is(getErr, ErrNotFound), getErr == nil && !current.IsActive:
			return models.StockBatch{}, ErrNotFound
		case getErr != nil:
			return models.StockBatch{}, getErr
		}
		return models.StockBatch{}, ErrInsufficientQuantity
	}
	return b, err
}

func (r *PostgresStockRepository) DeactivateBatch(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE stock_batches SET is_active = FALSE, updated_at = $1 WHERE id = $2 AND is_active = TRUE`
	return r.execAffecting(ctx, query, time.Now().UTC(), id)
}

func (r *PostgresStockRepository) execAffecting(ctx context.Context, query string, args ...any) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
