package repo

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rogerio-castellano/retail-pos/internal/catalog"
	"github.com/rogerio-castellano/retail-pos/internal/models"
)

// candidate is the view of one item row the filter clauses are evaluated on.
type candidate struct {
	active    bool
	shopID    uuid.UUID
	variantID *uuid.UUID
	quantity  int
	threshold int
	fields    map[catalog.SearchField]string
}

func (s *InMemoryStore) ListUnits(_ context.Context, f catalog.Filter, p catalog.Page) ([]catalog.UnitRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.matchUnits(f)
	return paginate(rows, p)
}

func (s *InMemoryStore) CountUnits(_ context.Context, f catalog.Filter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.matchUnits(f)), nil
}

func (s *InMemoryStore) ListBatches(_ context.Context, f catalog.Filter, p catalog.Page) ([]catalog.BatchRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.matchBatches(f)
	return paginate(rows, p)
}

func (s *InMemoryStore) CountBatches(_ context.Context, f catalog.Filter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.matchBatches(f)), nil
}

func (s *InMemoryStore) matchUnits(f catalog.Filter) []catalog.UnitRow {
	low := s.lowStockVariants(f)
	var out []catalog.UnitRow
	for _, u := range s.units {
		dims := s.dimensions(u.VariantID)
		c := candidate{
			active:    u.IsActive,
			shopID:    u.ShopID,
			variantID: u.VariantID,
			fields: searchValues(dims, map[catalog.SearchField]string{
				catalog.FieldBarcode:      u.Barcode,
				catalog.FieldIMEI1:        u.IMEI1,
				catalog.FieldIMEI2:        u.IMEI2,
				catalog.FieldSerialNumber: u.SerialNumber,
			}),
		}
		if !evaluate(f, c, low) {
			continue
		}
		out = append(out, catalog.UnitRow{
			ID:                u.ID,
			ShopID:            u.ShopID,
			IMEI1:             u.IMEI1,
			IMEI2:             u.IMEI2,
			SerialNumber:      u.SerialNumber,
			Barcode:           u.Barcode,
			PurchasePrice:     u.PurchasePrice,
			SalePrice:         u.SalePrice,
			Status:            u.Status,
			IsSold:            u.IsSold,
			Condition:         u.Condition,
			LowStockThreshold: u.LowStockThreshold,
			CreatedAt:         u.CreatedAt,
			Dimensions:        dims,
		})
	}
	sort.Slice(out, func(i, j int) bool { return newer(out[i].CreatedAt, out[j].CreatedAt, out[i].ID, out[j].ID) })
	return out
}

func (s *InMemoryStore) matchBatches(f catalog.Filter) []catalog.BatchRow {
	var out []catalog.BatchRow
	for _, b := range s.batches {
		dims := s.dimensions(b.VariantID)
		c := candidate{
			active:    b.IsActive,
			shopID:    b.ShopID,
			variantID: b.VariantID,
			quantity:  b.Quantity,
			threshold: b.LowStockThreshold,
			fields: searchValues(dims, map[catalog.SearchField]string{
				catalog.FieldBarcode: b.Barcode,
			}),
		}
		if !evaluate(f, c, nil) {
			continue
		}
		out = append(out, catalog.BatchRow{
			ID:                b.ID,
			ShopID:            b.ShopID,
			Barcode:           b.Barcode,
			Quantity:          b.Quantity,
			PurchasePrice:     b.PurchasePrice,
			SalePrice:         b.SalePrice,
			LowStockThreshold: b.LowStockThreshold,
			LowStock:          b.LowStock(),
			CreatedAt:         b.CreatedAt,
			Dimensions:        dims,
		})
	}
	sort.Slice(out, func(i, j int) bool { return newer(out[i].CreatedAt, out[j].CreatedAt, out[i].ID, out[j].ID) })
	return out
}

// newer orders by creation time, then id, both descending.
func newer(a, b time.Time, aID, bID uuid.UUID) bool {
	if !a.Equal(b) {
		return a.After(b)
	}
	return bytes.Compare(aID[:], bID[:]) > 0
}

// lowStockVariants evaluates the grouped low-stock policy, if f carries one.
func (s *InMemoryStore) lowStockVariants(f catalog.Filter) map[uuid.UUID]bool {
	for _, cl := range f.Clauses {
		ls, ok := cl.(catalog.LowStock)
		if !ok {
			continue
		}
		policy, ok := ls.Policy.(catalog.GroupedThreshold)
		if !ok {
			return nil
		}
		return groupedLowStock(s.units, policy, ls.ShopIDs)
	}
	return nil
}

func groupedLowStock(units []models.StockUnit, policy catalog.GroupedThreshold, shopIDs []uuid.UUID) map[uuid.UUID]bool {
	counts := map[uuid.UUID]int{}
	thresholds := map[uuid.UUID][]*int{}
	for _, u := range units {
		if !u.IsActive || u.IsSold || u.Status == models.UnitSold || u.VariantID == nil {
			continue
		}
		if !containsShop(shopIDs, u.ShopID) {
			continue
		}
		counts[*u.VariantID]++
		thresholds[*u.VariantID] = append(thresholds[*u.VariantID], u.LowStockThreshold)
	}

	low := map[uuid.UUID]bool{}
	for variantID, n := range counts {
		if n <= policy.GroupThreshold(thresholds[variantID]) {
			low[variantID] = true
		}
	}
	return low
}

func evaluate(f catalog.Filter, c candidate, lowVariants map[uuid.UUID]bool) bool {
	for _, cl := range f.Clauses {
		switch cl := cl.(type) {
		case catalog.ActiveOnly:
			if !c.active {
				return false
			}
		case catalog.ShopIn:
			if !containsShop(cl.ShopIDs, c.shopID) {
				return false
			}
		case catalog.TextSearch:
			if !matchesSearch(c.fields, cl) {
				return false
			}
		case catalog.LowStock:
			switch cl.Policy.(type) {
			case catalog.RowThreshold:
				if c.quantity > c.threshold {
					return false
				}
			case catalog.GroupedThreshold:
				if c.variantID == nil || !lowVariants[*c.variantID] {
					return false
				}
			}
		}
	}
	return true
}

func matchesSearch(values map[catalog.SearchField]string, ts catalog.TextSearch) bool {
	term := strings.ToLower(ts.Term)
	for _, field := range ts.Fields {
		if strings.Contains(strings.ToLower(values[field]), term) {
			return true
		}
	}
	return false
}

func searchValues(dims catalog.Dimensions, own map[catalog.SearchField]string) map[catalog.SearchField]string {
	if dims.Variant != nil {
		own[catalog.FieldVariantName] = dims.Variant.Name
	}
	if dims.Product != nil {
		own[catalog.FieldProductName] = dims.Product.Name
	}
	if dims.Brand != nil {
		own[catalog.FieldBrandName] = dims.Brand.Name
	}
	return own
}

// dimensions resolves the variant → product → brand/category chain the way a
// chain of left joins would: a missing link leaves the rest nil.
func (s *InMemoryStore) dimensions(variantID *uuid.UUID) catalog.Dimensions {
	var d catalog.Dimensions
	if variantID == nil {
		return d
	}
	v, ok := s.findVariant(*variantID)
	if !ok {
		return d
	}
	d.Variant = &catalog.VariantRef{ID: v.ID, Name: v.Name, Color: v.Color, Storage: v.Storage, SKU: v.SKU}

	p, ok := s.findProduct(v.ProductID)
	if !ok {
		return d
	}
	d.Product = &catalog.ProductRef{ID: p.ID, Name: p.Name}

	if p.BrandID != nil {
		for _, b := range s.brands {
			if b.ID == *p.BrandID {
				d.Brand = &catalog.BrandRef{ID: b.ID, Name: b.Name}
				break
			}
		}
	}
	if p.CategoryID != nil {
		for _, c := range s.categories {
			if c.ID == *p.CategoryID {
				d.Category = &catalog.CategoryRef{ID: c.ID, Name: c.Name}
				break
			}
		}
	}
	return d
}

func paginate[T any](rows []T, p catalog.Page) ([]T, error) {
	if p.Offset < 0 || p.Limit < 0 {
		return nil, ErrInvalidPage
	}
	start := clamp(p.Offset, 0, len(rows))
	end := len(rows)
	if p.Limit < end-start {
		end = start + p.Limit
	}
	return rows[start:end], nil
}

func containsShop(shopIDs []uuid.UUID, id uuid.UUID) bool {
	for _, s := range shopIDs {
		if s == id {
			return true
		}
	}
	return false
}
