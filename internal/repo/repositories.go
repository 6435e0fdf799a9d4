package repo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rogerio-castellano/retail-pos/internal/models"
)

// StockRepository covers writes and single-row reads of units and batches.
// Listings go through catalog.Repository.
type StockRepository interface {
	CreateUnit(ctx context.Context, u models.StockUnit) (models.StockUnit, error)
	GetUnit(ctx context.Context, id uuid.UUID) (models.StockUnit, error)
	DeactivateUnit(ctx context.Context, id uuid.UUID) error

	CreateBatch(ctx context.Context, b models.StockBatch) (models.StockBatch, error)
	GetBatch(ctx context.Context, id uuid.UUID) (models.StockBatch, error)
	GetBatchByBarcode(ctx context.Context, shopID uuid.UUID, barcode string) (models.StockBatch, error)
	UpdateBatch(ctx context.Context, b models.StockBatch) (models.StockBatch, error)
	AdjustBatchQuantity(ctx context.Context, id uuid.UUID, delta int) (models.StockBatch, error)
	DeactivateBatch(ctx context.Context, id uuid.UUID) error
}

type DimensionRepository interface {
	CreateShop(ctx context.Context, s models.Shop) (models.Shop, error)
	ListShops(ctx context.Context, shopIDs []uuid.UUID) ([]models.Shop, error)
	CreateBrand(ctx context.Context, b models.Brand) (models.Brand, error)
	ListBrands(ctx context.Context, shopIDs []uuid.UUID) ([]models.Brand, error)
	CreateCategory(ctx context.Context, c models.Category) (models.Category, error)
	ListCategories(ctx context.Context, shopIDs []uuid.UUID) ([]models.Category, error)
	CreateProduct(ctx context.Context, p models.Product) (models.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (models.Product, error)
	ListProducts(ctx context.Context, shopIDs []uuid.UUID) ([]models.Product, error)
	CreateVariant(ctx context.Context, v models.Variant) (models.Variant, error)
	GetVariant(ctx context.Context, id uuid.UUID) (models.Variant, error)
	ListVariants(ctx context.Context, productID uuid.UUID) ([]models.Variant, error)
}

type MovementFilter struct {
	Since  *time.Time
	Until  *time.Time
	Offset *int
	Limit  *int
}

type MovementRepository interface {
	Log(ctx context.Context, m models.Movement) error
	GetByBatchID(ctx context.Context, batchID uuid.UUID, mf MovementFilter) ([]models.Movement, int, error)
}

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.User, error)
	CreateUser(ctx context.Context, u models.User) (models.User, error)
}

type Metrics struct {
	ActiveUnits      int `json:"active_units"`
	ActiveBatches    int `json:"active_batches"`
	LowStockVariants int `json:"low_stock_variants"`
	LowStockBatches  int `json:"low_stock_batches"`
	TotalMovements   int `json:"total_movements"`
}

type MetricsRepository interface {
	GetDashboardMetrics(ctx context.Context, shopIDs []uuid.UUID) (Metrics, error)
}

const defaultMovementLimit = 100
