package repo

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/retail-pos/internal/catalog"
	"github.com/rogerio-castellano/retail-pos/internal/config"
	"github.com/rogerio-castellano/retail-pos/internal/db"
	"github.com/rogerio-castellano/retail-pos/internal/models"
)

// openTestDB connects to DATABASE_URL and applies migrations; the test is
// skipped when the variable is unset.
func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set; skipping PostgreSQL integration test")
	}
	if err := db.MigrateUp(url); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database, err := db.Connect(config.DatabaseConfig{URL: url, MaxOpenConns: 4, MaxIdleConns: 2})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func cleanupShops(t *testing.T, database *sqlx.DB, shopIDs ...uuid.UUID) {
	t.Cleanup(func() {
		for _, table := range []string{"movements", "stock_units", "stock_batches", "products", "brands", "categories", "shops"} {
			col := "shop_id"
			if table == "shops" {
				col = "id"
			}
			for _, id := range shopIDs {
				database.Exec("DELETE FROM "+table+" WHERE "+col+" = $1", id)
			}
		}
	})
}

func TestPostgres_CatalogListing(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()
	dims := NewPostgresDimensionRepository(database)
	stock := NewPostgresStockRepository(database)
	svc := catalog.NewService(NewPostgresCatalogRepository(database))

	s1, err := dims.CreateShop(ctx, models.Shop{Name: "S1"})
	if err != nil {
		t.Fatalf("create shop: %v", err)
	}
	s2, _ := dims.CreateShop(ctx, models.Shop{Name: "S2"})
	cleanupShops(t, database, s1.ID, s2.ID)

	brand, _ := dims.CreateBrand(ctx, models.Brand{ShopID: s1.ID, Name: "Apple"})
	product, _ := dims.CreateProduct(ctx, models.Product{ShopID: s1.ID, BrandID: &brand.ID, Name: "iPhone 15"})
	v1, err := dims.CreateVariant(ctx, models.Variant{ProductID: product.ID, Name: "128GB Blue"})
	if err != nil {
		t.Fatalf("create variant: %v", err)
	}
	v2ID := uuid.New()

	threshold := 5
	for i := range 2 {
		_, err := stock.CreateUnit(ctx, models.StockUnit{
			ShopID: s1.ID, VariantID: &v1.ID, IMEI1: "35000000000000" + string(rune('0'+i)),
			Barcode: "ABC12" + string(rune('0'+i)), SalePrice: decimal.NewFromInt(999),
			Status: models.UnitInStock, IsActive: true, Condition: models.ConditionNew, LowStockThreshold: &threshold,
		})
		if err != nil {
			t.Fatalf("create unit: %v", err)
		}
	}
	for i := range 10 {
		stock.CreateUnit(ctx, models.StockUnit{
			ShopID: s2.ID, VariantID: &v2ID, IMEI1: "36000000000000" + string(rune('0'+i)),
			SalePrice: decimal.NewFromInt(500), Status: models.UnitInStock, IsActive: true, Condition: models.ConditionNew,
		})
	}

	res, err := svc.ListUnits(ctx, catalog.Query{UserShopIDs: []uuid.UUID{s1.ID}, LowStock: true, Limit: 20})
	if err != nil {
		t.Fatalf("list units: %v", err)
	}
	if res.Total != 2 || len(res.Items) != 2 {
		t.Fatalf("expected S1's 2 units, got %d items, total %d", len(res.Items), res.Total)
	}
	row := res.Items[0]
	if row.Brand == nil || row.Brand.Name != "Apple" || row.Product == nil || row.Category != nil {
		t.Errorf("unexpected dimensions %+v", row.Dimensions)
	}

	res, err = svc.ListUnits(ctx, catalog.Query{UserShopIDs: []uuid.UUID{s1.ID, s2.ID}, Search: "abc", Limit: 20})
	if err != nil {
		t.Fatalf("search units: %v", err)
	}
	if res.Total != 2 {
		t.Errorf("expected 2 units matching 'abc', got %d", res.Total)
	}

	res, err = svc.ListUnits(ctx, catalog.Query{UserShopIDs: []uuid.UUID{s2.ID}, Offset: 5, Limit: 10})
	if err != nil {
		t.Fatalf("page units: %v", err)
	}
	if res.Total != 10 || len(res.Items) != 5 {
		t.Errorf("expected 5 items of 10, got %d of %d", len(res.Items), res.Total)
	}
	if res.Items[0].Variant != nil {
		t.Errorf("dangling variant must yield a nil variant, got %+v", res.Items[0].Variant)
	}
}

func TestPostgres_BatchAdjustAndMovements(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()
	dims := NewPostgresDimensionRepository(database)
	stock := NewPostgresStockRepository(database)
	movements := NewPostgresMovementRepository(database)

	shop, _ := dims.CreateShop(ctx, models.Shop{Name: "Batches"})
	cleanupShops(t, database, shop.ID)

	b, err := stock.CreateBatch(ctx, models.StockBatch{
		ShopID: shop.ID, Barcode: "CABLE-1", Quantity: 6, SalePrice: decimal.NewFromInt(15),
		LowStockThreshold: 5, IsActive: true,
	})
	if err != nil {
		t.Fatalf("create batch: %v", err)
	}

	adjusted, err := stock.AdjustBatchQuantity(ctx, b.ID, -1)
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if adjusted.Quantity != 5 || !adjusted.LowStock() {
		t.Errorf("expected quantity 5 at threshold, got %+v", adjusted)
	}
	if _, err := stock.AdjustBatchQuantity(ctx, b.ID, -6); !errors.Is(err, ErrInsufficientQuantity) {
		t.Errorf("expected ErrInsufficientQuantity, got %v", err)
	}
	if _, err := stock.AdjustBatchQuantity(ctx, uuid.New(), 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	retired, err := stock.CreateBatch(ctx, models.StockBatch{
		ShopID: shop.ID, Barcode: "CABLE-2", Quantity: 3, SalePrice: decimal.NewFromInt(15),
		LowStockThreshold: 5, IsActive: true,
	})
	if err != nil {
		t.Fatalf("create batch: %v", err)
	}
	if err := stock.DeactivateBatch(ctx, retired.ID); err != nil {
		t.Fatalf("retire batch: %v", err)
	}
	for _, delta := range []int{1, -10} {
		if _, err := stock.AdjustBatchQuantity(ctx, retired.ID, delta); !errors.Is(err, ErrNotFound) {
			t.Errorf("delta %d on a retired batch: expected ErrNotFound, got %v", delta, err)
		}
	}

	if err := movements.Log(ctx, models.Movement{BatchID: b.ID, ShopID: shop.ID, Delta: -1}); err != nil {
		t.Fatalf("log movement: %v", err)
	}
	list, total, err := movements.GetByBatchID(ctx, b.ID, MovementFilter{})
	if err != nil {
		t.Fatalf("movements: %v", err)
	}
	if total != 1 || len(list) != 1 || list[0].Delta != -1 {
		t.Errorf("unexpected movements %+v (total %d)", list, total)
	}

	svc := catalog.NewService(NewPostgresCatalogRepository(database))
	res, err := svc.ListBatches(ctx, catalog.Query{UserShopIDs: []uuid.UUID{shop.ID}, LowStock: true, Limit: 10})
	if err != nil {
		t.Fatalf("list batches: %v", err)
	}
	if res.Total != 1 || !res.Items[0].LowStock {
		t.Errorf("expected the batch listed as low stock, got %+v", res)
	}

	if _, err := stock.CreateBatch(ctx, models.StockBatch{
		ShopID: shop.ID, Barcode: "CABLE-1", SalePrice: decimal.NewFromInt(1), IsActive: true,
	}); !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate for an active barcode, got %v", err)
	}
}
