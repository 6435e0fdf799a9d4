package catalog

import (
	"testing"

	"github.com/google/uuid"
)

func TestComposeFilter_BaseClauses(t *testing.T) {
	scope := []uuid.UUID{uuid.New()}
	f := ComposeFilter(KindUnit, scope, "", false)

	if f.Kind != KindUnit {
		t.Errorf("expected unit kind, got %v", f.Kind)
	}
	if len(f.Clauses) != 2 {
		t.Fatalf("expected 2 clauses, got %d", len(f.Clauses))
	}
	if _, ok := f.Clauses[0].(ActiveOnly); !ok {
		t.Errorf("expected ActiveOnly first, got %T", f.Clauses[0])
	}
	shopIn, ok := f.Clauses[1].(ShopIn)
	if !ok || len(shopIn.ShopIDs) != 1 || shopIn.ShopIDs[0] != scope[0] {
		t.Errorf("expected ShopIn over the scope, got %#v", f.Clauses[1])
	}
}

func TestComposeFilter_SearchAndLowStock(t *testing.T) {
	scope := []uuid.UUID{uuid.New(), uuid.New()}

	tests := []struct {
		kind       ItemKind
		wantFields int
		wantPolicy LowStockPolicy
	}{
		{KindUnit, 7, GroupedThreshold{DefaultThreshold: 5}},
		{KindBatch, 4, RowThreshold{}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			f := ComposeFilter(tt.kind, scope, "iphone", true)
			if len(f.Clauses) != 4 {
				t.Fatalf("expected 4 clauses, got %d", len(f.Clauses))
			}

			ts, ok := f.Clauses[2].(TextSearch)
			if !ok {
				t.Fatalf("expected TextSearch, got %T", f.Clauses[2])
			}
			if ts.Term != "iphone" || len(ts.Fields) != tt.wantFields {
				t.Errorf("unexpected search clause %#v", ts)
			}

			ls, ok := f.Clauses[3].(LowStock)
			if !ok {
				t.Fatalf("expected LowStock, got %T", f.Clauses[3])
			}
			if ls.Policy != tt.wantPolicy {
				t.Errorf("expected policy %#v, got %#v", tt.wantPolicy, ls.Policy)
			}
			if len(ls.ShopIDs) != len(scope) {
				t.Errorf("low-stock grouping must be bounded by the scope, got %v", ls.ShopIDs)
			}
		})
	}
}

func TestSearchFields_BatchesSkipDeviceIdentifiers(t *testing.T) {
	for _, f := range SearchFields(KindBatch) {
		switch f {
		case FieldIMEI1, FieldIMEI2, FieldSerialNumber:
			t.Errorf("batch search must not include %s", f)
		}
	}
}
