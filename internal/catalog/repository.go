package catalog

import "context"

// Page is an offset/limit window. Values are passed to the store unchecked.
type Page struct {
	Offset int
	Limit  int
}

// Repository is the read port the listing service runs against. List methods
// return rows ordered by creation time, newest first. Count methods ignore
// pagination and must apply the exact same Filter.
type Repository interface {
	ListUnits(ctx context.Context, f Filter, p Page) ([]UnitRow, error)
	CountUnits(ctx context.Context, f Filter) (int, error)
	ListBatches(ctx context.Context, f Filter, p Page) ([]BatchRow, error)
	CountBatches(ctx context.Context, f Filter) (int, error)
}
