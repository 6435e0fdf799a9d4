package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/rogerio-castellano/retail-pos/internal/catalog"
	"github.com/rogerio-castellano/retail-pos/internal/models"
)

type PostgresMetricsRepository struct {
	db *sqlx.DB
}

func NewPostgresMetricsRepository(db *sqlx.DB) *PostgresMetricsRepository {
	return &PostgresMetricsRepository{db: db}
}

func (r *PostgresMetricsRepository) GetDashboardMetrics(ctx context.Context, shopIDs []uuid.UUID) (Metrics, error) {
	var m Metrics
	if len(shopIDs) == 0 {
		return m, nil
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	queries := []struct {
		dest  *int
		query string
		extra []any
	}{
		{&m.ActiveUnits, `SELECT COUNT(*) FROM stock_units WHERE is_active = TRUE AND shop_id IN (?)`, nil},
		{&m.ActiveBatches, `SELECT COUNT(*) FROM stock_batches WHERE is_active = TRUE AND shop_id IN (?)`, nil},
		{&m.LowStockBatches, `SELECT COUNT(*) FROM stock_batches WHERE is_active = TRUE AND quantity <= low_stock_threshold AND shop_id IN (?)`, nil},
		{&m.TotalMovements, `SELECT COUNT(*) FROM movements WHERE shop_id IN (?)`, nil},
		{&m.LowStockVariants, fmt.Sprintf(`
			SELECT COUNT(*) FROM (
				SELECT variant_id FROM stock_units
				WHERE is_active = TRUE AND is_sold = FALSE AND status <> '%s'
					AND variant_id IS NOT NULL AND shop_id IN (?)
				GROUP BY variant_id
				HAVING COUNT(*) <= COALESCE(MIN(low_stock_threshold), ?)
			) low`, models.UnitSold), []any{catalog.DefaultLowStockThreshold}},
	}

	ids := make([]string, len(shopIDs))
	for i, id := range shopIDs {
		ids[i] = id.String()
	}

	for _, q := range queries {
		args := append([]any{ids}, q.extra...)
		query, inArgs, err := sqlx.In(q.query, args...)
		if err != nil {
			return Metrics{}, err
		}
		if err := r.db.GetContext(ctx, q.dest, r.db.Rebind(query), inArgs...); err != nil {
			return Metrics{}, err
		}
	}
	return m, nil
}
