package catalog

import "github.com/google/uuid"

type ItemKind int

const (
	KindUnit ItemKind = iota
	KindBatch
)

func (k ItemKind) String() string {
	if k == KindBatch {
		return "batch"
	}
	return "unit"
}

type SearchField string

const (
	FieldBarcode      SearchField = "barcode"
	FieldIMEI1        SearchField = "imei1"
	FieldIMEI2        SearchField = "imei2"
	FieldSerialNumber SearchField = "serial_number"
	FieldVariantName  SearchField = "variant_name"
	FieldProductName  SearchField = "product_name"
	FieldBrandName    SearchField = "brand_name"
)

// SearchFields lists the fields free-text search looks at for a kind.
func SearchFields(kind ItemKind) []SearchField {
	if kind == KindBatch {
		return []SearchField{FieldBarcode, FieldVariantName, FieldProductName, FieldBrandName}
	}
	return []SearchField{
		FieldBarcode, FieldIMEI1, FieldIMEI2, FieldSerialNumber,
		FieldVariantName, FieldProductName, FieldBrandName,
	}
}

// Clause is one named condition of a Filter. All clauses are ANDed.
type Clause interface {
	clause()
}

// ActiveOnly keeps rows whose active flag is set.
type ActiveOnly struct{}

// ShopIn keeps rows owned by one of ShopIDs. An empty set matches nothing.
type ShopIn struct {
	ShopIDs []uuid.UUID
}

// TextSearch keeps rows where Term is a case-insensitive substring of any of
// Fields. Missing values compare as the empty string.
type TextSearch struct {
	Term   string
	Fields []SearchField
}

// LowStock keeps rows flagged by Policy. ShopIDs bounds the grouping subset
// for grouped policies.
type LowStock struct {
	Policy  LowStockPolicy
	ShopIDs []uuid.UUID
}

func (ActiveOnly) clause() {}
func (ShopIn) clause()     {}
func (TextSearch) clause() {}
func (LowStock) clause()   {}

// Filter is the predicate shared by a page query and its count query.
type Filter struct {
	Kind    ItemKind
	Clauses []Clause
}

// ComposeFilter builds the listing predicate: active rows in scope, plus a
// text search when search is non-empty and a low-stock clause when lowStock
// is set.
func ComposeFilter(kind ItemKind, scope []uuid.UUID, search string, lowStock bool) Filter {
	f := Filter{
		Kind: kind,
		Clauses: []Clause{
			ActiveOnly{},
			ShopIn{ShopIDs: scope},
		},
	}
	if search != "" {
		f.Clauses = append(f.Clauses, TextSearch{Term: search, Fields: SearchFields(kind)})
	}
	if lowStock {
		f.Clauses = append(f.Clauses, LowStock{Policy: PolicyFor(kind), ShopIDs: scope})
	}
	return f
}
