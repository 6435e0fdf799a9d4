package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rogerio-castellano/retail-pos/internal/catalog"
	"github.com/rogerio-castellano/retail-pos/internal/models"
	"github.com/rogerio-castellano/retail-pos/internal/repo"
)

type fixture struct {
	t     *testing.T
	store *repo.InMemoryStore
	svc   *catalog.Service
	clock time.Time
	seq   int
}

func newFixture(t *testing.T) *fixture {
	store := repo.NewInMemoryStore()
	return &fixture{
		t:     t,
		store: store,
		svc:   catalog.NewService(store),
		clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// tick hands out strictly increasing creation times.
func (f *fixture) tick() time.Time {
	f.clock = f.clock.Add(time.Minute)
	return f.clock
}

// imei returns a unique all-digit device identifier, so it never matches
// a letter search term by accident.
func (f *fixture) imei() string {
	f.seq++
	return fmt.Sprintf("35%013d", f.seq)
}

func (f *fixture) variant(shopID uuid.UUID, brand, product, name string) uuid.UUID {
	f.t.Helper()
	ctx := context.Background()
	b, err := f.store.CreateBrand(ctx, models.Brand{ShopID: shopID, Name: brand + "-" + uuid.NewString()[:8]})
	if err != nil {
		f.t.Fatalf("create brand: %v", err)
	}
	p, err := f.store.CreateProduct(ctx, models.Product{ShopID: shopID, BrandID: &b.ID, Name: product})
	if err != nil {
		f.t.Fatalf("create product: %v", err)
	}
	v, err := f.store.CreateVariant(ctx, models.Variant{ProductID: p.ID, Name: name})
	if err != nil {
		f.t.Fatalf("create variant: %v", err)
	}
	return v.ID
}

func (f *fixture) unit(shopID uuid.UUID, variantID *uuid.UUID, mutate ...func(*models.StockUnit)) models.StockUnit {
	f.t.Helper()
	u := models.StockUnit{
		ShopID:    shopID,
		VariantID: variantID,
		IMEI1:     f.imei(),
		SalePrice: decimal.NewFromInt(100),
		Status:    models.UnitInStock,
		IsActive:  true,
		Condition: models.ConditionNew,
		CreatedAt: f.tick(),
	}
	for _, m := range mutate {
		m(&u)
	}
	created, err := f.store.CreateUnit(context.Background(), u)
	if err != nil {
		f.t.Fatalf("create unit: %v", err)
	}
	return created
}

func (f *fixture) batch(shopID uuid.UUID, quantity, threshold int, mutate ...func(*models.StockBatch)) models.StockBatch {
	f.t.Helper()
	b := models.StockBatch{
		ShopID:            shopID,
		Barcode:           f.imei(),
		Quantity:          quantity,
		SalePrice:         decimal.NewFromInt(10),
		LowStockThreshold: threshold,
		IsActive:          true,
		CreatedAt:         f.tick(),
	}
	for _, m := range mutate {
		m(&b)
	}
	created, err := f.store.CreateBatch(context.Background(), b)
	if err != nil {
		f.t.Fatalf("create batch: %v", err)
	}
	return created
}

func (f *fixture) listUnits(q catalog.Query) catalog.Result[catalog.UnitRow] {
	f.t.Helper()
	if q.Limit == 0 {
		q.Limit = 100
	}
	res, err := f.svc.ListUnits(context.Background(), q)
	if err != nil {
		f.t.Fatalf("list units: %v", err)
	}
	return res
}

func (f *fixture) listBatches(q catalog.Query) catalog.Result[catalog.BatchRow] {
	f.t.Helper()
	if q.Limit == 0 {
		q.Limit = 100
	}
	res, err := f.svc.ListBatches(context.Background(), q)
	if err != nil {
		f.t.Fatalf("list batches: %v", err)
	}
	return res
}

func shopsOf(rows []catalog.UnitRow) map[uuid.UUID]int {
	out := map[uuid.UUID]int{}
	for _, r := range rows {
		out[r.ShopID]++
	}
	return out
}

func TestListUnits_ScopeNarrowsToRequestedShop(t *testing.T) {
	f := newFixture(t)
	s1, s2 := uuid.New(), uuid.New()
	for range 3 {
		f.unit(s1, nil)
	}
	for range 2 {
		f.unit(s2, nil)
	}

	res := f.listUnits(catalog.Query{UserShopIDs: []uuid.UUID{s1, s2}, ShopID: &s2})

	if res.Total != 2 || len(res.Items) != 2 {
		t.Fatalf("expected 2 units of the requested shop, got %d items, total %d", len(res.Items), res.Total)
	}
	if got := shopsOf(res.Items); got[s1] != 0 {
		t.Errorf("rows of other shops leaked into a narrowed scope: %v", got)
	}
}

func TestListUnits_UnauthorizedShopWidensToAllAuthorized(t *testing.T) {
	f := newFixture(t)
	s1, s2, foreign := uuid.New(), uuid.New(), uuid.New()
	f.unit(s1, nil)
	f.unit(s2, nil)
	f.unit(foreign, nil)

	res := f.listUnits(catalog.Query{UserShopIDs: []uuid.UUID{s1, s2}, ShopID: &foreign})

	if res.Total != 2 {
		t.Fatalf("expected the full authorized set (2 units), got total %d", res.Total)
	}
	if got := shopsOf(res.Items); got[foreign] != 0 || got[s1] != 1 || got[s2] != 1 {
		t.Errorf("unexpected shops in widened result: %v", got)
	}
}

func TestListUnits_TotalMatchesUnpaginatedCount(t *testing.T) {
	f := newFixture(t)
	shop := uuid.New()
	for range 7 {
		f.unit(shop, nil)
	}
	q := catalog.Query{UserShopIDs: []uuid.UUID{shop}, Limit: 3}

	page := f.listUnits(q)
	if len(page.Items) != 3 || page.Total != 7 {
		t.Fatalf("expected 3 items and total 7, got %d and %d", len(page.Items), page.Total)
	}

	q.Limit = page.Total
	all := f.listUnits(q)
	if len(all.Items) != page.Total {
		t.Errorf("limit=total must return exactly total rows, got %d", len(all.Items))
	}
}

func TestListUnits_OffsetPastHalfOfLastPage(t *testing.T) {
	f := newFixture(t)
	shop := uuid.New()
	for range 15 {
		f.unit(shop, nil)
	}

	res := f.listUnits(catalog.Query{UserShopIDs: []uuid.UUID{shop}, Offset: 10, Limit: 10})

	if len(res.Items) != 5 {
		t.Errorf("expected 5 items, got %d", len(res.Items))
	}
	if res.Total != 15 {
		t.Errorf("expected total 15, got %d", res.Total)
	}
}

func TestListUnits_NewestFirst(t *testing.T) {
	f := newFixture(t)
	shop := uuid.New()
	first := f.unit(shop, nil)
	second := f.unit(shop, nil)
	third := f.unit(shop, nil)

	res := f.listUnits(catalog.Query{UserShopIDs: []uuid.UUID{shop}})

	want := []uuid.UUID{third.ID, second.ID, first.ID}
	for i, row := range res.Items {
		if row.ID != want[i] {
			t.Fatalf("position %d: expected %v, got %v", i, want[i], row.ID)
		}
	}
}

func TestListUnits_Idempotent(t *testing.T) {
	f := newFixture(t)
	shop := uuid.New()
	v := f.variant(shop, "Apple", "iPhone 15", "128GB Black")
	for range 4 {
		f.unit(shop, &v)
	}
	q := catalog.Query{UserShopIDs: []uuid.UUID{shop}, Search: "iphone", LowStock: true, Limit: 2}

	a, _ := json.Marshal(f.listUnits(q))
	b, _ := json.Marshal(f.listUnits(q))

	if string(a) != string(b) {
		t.Errorf("repeated call changed the result:\n%s\n%s", a, b)
	}
}

func TestListUnits_InactiveRowsNeverListed(t *testing.T) {
	f := newFixture(t)
	shop := uuid.New()
	f.unit(shop, nil)
	f.unit(shop, nil, func(u *models.StockUnit) { u.IsActive = false })

	res := f.listUnits(catalog.Query{UserShopIDs: []uuid.UUID{shop}})
	if res.Total != 1 {
		t.Errorf("expected only the active unit, got total %d", res.Total)
	}
}

func TestListUnits_GroupedLowStock(t *testing.T) {
	tests := []struct {
		name      string
		units     int
		threshold *int
		wantLow   bool
	}{
		{"3 units under default threshold", 3, nil, true},
		{"5 units equal default threshold", 5, nil, true},
		{"6 units above default threshold", 6, nil, false},
		{"3 units under explicit threshold 5", 3, intPtr(5), true},
		{"6 units under explicit threshold 5", 6, intPtr(5), false},
		{"6 units under explicit threshold 10", 6, intPtr(10), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			shop := uuid.New()
			v := f.variant(shop, "Samsung", "Galaxy S24", "256GB")
			for range tt.units {
				f.unit(shop, &v, func(u *models.StockUnit) { u.LowStockThreshold = tt.threshold })
			}

			res := f.listUnits(catalog.Query{UserShopIDs: []uuid.UUID{shop}, LowStock: true})

			if tt.wantLow && res.Total != tt.units {
				t.Errorf("expected all %d units listed as low stock, got %d", tt.units, res.Total)
			}
			if !tt.wantLow && res.Total != 0 {
				t.Errorf("expected no low-stock units, got %d", res.Total)
			}
		})
	}
}

func TestListUnits_GroupUsesSmallestThreshold(t *testing.T) {
	f := newFixture(t)
	shop := uuid.New()
	v := f.variant(shop, "Apple", "iPhone 14", "64GB")
	for i := range 4 {
		f.unit(shop, &v, func(u *models.StockUnit) {
			if i == 0 {
				u.LowStockThreshold = intPtr(3)
			}
		})
	}

	res := f.listUnits(catalog.Query{UserShopIDs: []uuid.UUID{shop}, LowStock: true})
	if res.Total != 0 {
		t.Errorf("4 units against min threshold 3 must not be low stock, got %d", res.Total)
	}
}

func TestListUnits_SoldUnitsDoNotCountTowardsGroup(t *testing.T) {
	f := newFixture(t)
	shop := uuid.New()
	v := f.variant(shop, "Xiaomi", "Redmi Note 13", "128GB")
	for range 4 {
		f.unit(shop, &v)
	}
	for range 3 {
		f.unit(shop, &v, func(u *models.StockUnit) {
			u.Status = models.UnitSold
			u.IsSold = true
		})
	}

	res := f.listUnits(catalog.Query{UserShopIDs: []uuid.UUID{shop}, LowStock: true})

	// 4 sellable units <= 5: the variant is low, so all of its active rows appear.
	if res.Total != 7 {
		t.Errorf("expected the 7 active units of the low variant, got %d", res.Total)
	}
}

func TestListUnits_LowStockScenarioAcrossShops(t *testing.T) {
	f := newFixture(t)
	s1, s2 := uuid.New(), uuid.New()
	v1 := f.variant(s1, "Apple", "iPhone 13", "128GB")
	v2 := f.variant(s2, "Apple", "iPhone 13", "256GB")
	for range 2 {
		f.unit(s1, &v1, func(u *models.StockUnit) { u.LowStockThreshold = intPtr(5) })
	}
	for range 10 {
		f.unit(s2, &v2)
	}

	res := f.listUnits(catalog.Query{UserShopIDs: []uuid.UUID{s1}, LowStock: true})

	if res.Total != 2 || len(res.Items) != 2 {
		t.Fatalf("expected S1's 2 units, got %d items and total %d", len(res.Items), res.Total)
	}
	for _, row := range res.Items {
		if row.ShopID != s1 {
			t.Errorf("unexpected row from shop %v", row.ShopID)
		}
	}
}

func TestListUnits_GroupingBoundedByScope(t *testing.T) {
	f := newFixture(t)
	s1, s2 := uuid.New(), uuid.New()
	v := f.variant(s1, "Motorola", "Edge 40", "256GB")
	for range 3 {
		f.unit(s1, &v)
	}
	for range 3 {
		f.unit(s2, &v)
	}

	narrowed := f.listUnits(catalog.Query{UserShopIDs: []uuid.UUID{s1, s2}, ShopID: &s1, LowStock: true})
	if narrowed.Total != 3 {
		t.Errorf("3 units in the narrowed shop are low stock, got %d", narrowed.Total)
	}

	wide := f.listUnits(catalog.Query{UserShopIDs: []uuid.UUID{s1, s2}, LowStock: true})
	if wide.Total != 0 {
		t.Errorf("6 units across the full scope exceed the default threshold, got %d", wide.Total)
	}
}

func TestListUnits_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	f := newFixture(t)
	shop := uuid.New()
	match := f.unit(shop, nil, func(u *models.StockUnit) { u.Barcode = "ABC123" })
	f.unit(shop, nil, func(u *models.StockUnit) { u.Barcode = "XYZ999" })

	res := f.listUnits(catalog.Query{UserShopIDs: []uuid.UUID{shop}, Search: "abc"})

	if res.Total != 1 || res.Items[0].ID != match.ID {
		t.Fatalf("expected only the ABC123 unit, got %+v", res.Items)
	}
}

func TestListUnits_SearchCoversJoinedNames(t *testing.T) {
	f := newFixture(t)
	shop := uuid.New()
	v := f.variant(shop, "Apple", "iPhone 15 Pro", "Natural Titanium")
	f.unit(shop, &v)
	f.unit(shop, nil, func(u *models.StockUnit) { u.SerialNumber = "SN-PRO-42" })
	f.unit(shop, nil)

	tests := []struct {
		term string
		want int
	}{
		{"titanium", 1},
		{"IPHONE", 1},
		{"pro", 2},
		{"sn-pro", 1},
		{"nothing-matches", 0},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			res := f.listUnits(catalog.Query{UserShopIDs: []uuid.UUID{shop}, Search: tt.term})
			if res.Total != tt.want {
				t.Errorf("search %q: expected %d, got %d", tt.term, tt.want, res.Total)
			}
		})
	}
}

func TestListUnits_DanglingVariantYieldsNilDimensions(t *testing.T) {
	f := newFixture(t)
	shop := uuid.New()
	v := f.variant(shop, "Nokia", "3310", "Classic")
	f.unit(shop, &v)
	f.store.DeleteVariant(v)

	res := f.listUnits(catalog.Query{UserShopIDs: []uuid.UUID{shop}})

	if res.Total != 1 {
		t.Fatalf("a dangling reference must not drop the row, got total %d", res.Total)
	}
	row := res.Items[0]
	if row.Variant != nil || row.Product != nil || row.Brand != nil || row.Category != nil {
		t.Errorf("expected all dimensions nil, got %+v", row.Dimensions)
	}
}

func TestListUnits_EmptyResultEncodesAsEmptyArray(t *testing.T) {
	f := newFixture(t)

	res := f.listUnits(catalog.Query{UserShopIDs: []uuid.UUID{uuid.New()}})
	body, _ := json.Marshal(res)

	if string(body) != `{"products":[],"total":0}` {
		t.Errorf("unexpected envelope %s", body)
	}
}

func TestListBatches_RowLowStock(t *testing.T) {
	f := newFixture(t)
	shop := uuid.New()
	atThreshold := f.batch(shop, 5, 5)
	f.batch(shop, 6, 5)
	below := f.batch(shop, 0, 2)

	res := f.listBatches(catalog.Query{UserShopIDs: []uuid.UUID{shop}, LowStock: true})

	if res.Total != 2 {
		t.Fatalf("expected 2 low-stock batches, got %d", res.Total)
	}
	got := map[uuid.UUID]bool{}
	for _, row := range res.Items {
		got[row.ID] = true
		if !row.LowStock {
			t.Errorf("row %v should carry the low_stock flag", row.ID)
		}
	}
	if !got[atThreshold.ID] || !got[below.ID] {
		t.Errorf("unexpected low-stock set %v", got)
	}
}

func TestListBatches_SearchAndPagination(t *testing.T) {
	f := newFixture(t)
	shop := uuid.New()
	v := f.variant(shop, "Anker", "USB-C Cable", "1m")
	for i := range 12 {
		f.batch(shop, 20, 5, func(b *models.StockBatch) {
			b.Barcode = fmt.Sprintf("CBL-%02d", i)
			b.VariantID = &v
		})
	}
	f.batch(shop, 20, 5, func(b *models.StockBatch) { b.Barcode = "CASE-01" })

	res := f.listBatches(catalog.Query{UserShopIDs: []uuid.UUID{shop}, Search: "anker", Offset: 10, Limit: 5})

	if res.Total != 12 {
		t.Errorf("expected total 12, got %d", res.Total)
	}
	if len(res.Items) != 2 {
		t.Errorf("expected 2 items on the last page, got %d", len(res.Items))
	}
	if res.Items[0].Brand == nil || res.Items[0].Brand.Name == "" {
		t.Errorf("expected brand dimension on joined row, got %+v", res.Items[0].Dimensions)
	}
}

type failingRepo struct{ err error }

func (r failingRepo) ListUnits(context.Context, catalog.Filter, catalog.Page) ([]catalog.UnitRow, error) {
	return nil, r.err
}
func (r failingRepo) CountUnits(context.Context, catalog.Filter) (int, error) { return 3, nil }
func (r failingRepo) ListBatches(context.Context, catalog.Filter, catalog.Page) ([]catalog.BatchRow, error) {
	return []catalog.BatchRow{}, nil
}
func (r failingRepo) CountBatches(context.Context, catalog.Filter) (int, error) { return 0, r.err }

func TestService_PropagatesStoreErrors(t *testing.T) {
	boom := errors.New("connection reset")
	svc := catalog.NewService(failingRepo{err: boom})
	q := catalog.Query{UserShopIDs: []uuid.UUID{uuid.New()}, Limit: 10}

	if _, err := svc.ListUnits(context.Background(), q); !errors.Is(err, boom) {
		t.Errorf("expected page query error to propagate, got %v", err)
	}
	if _, err := svc.ListBatches(context.Background(), q); !errors.Is(err, boom) {
		t.Errorf("expected count query error to propagate, got %v", err)
	}
}

func TestService_PassesNegativePagingThrough(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.ListUnits(context.Background(), catalog.Query{UserShopIDs: []uuid.UUID{uuid.New()}, Offset: -1, Limit: 10})
	if !errors.Is(err, repo.ErrInvalidPage) {
		t.Errorf("expected the store's paging error, got %v", err)
	}
}

func intPtr(v int) *int { return &v }
