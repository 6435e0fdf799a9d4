package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Query is one listing request. UserShopIDs comes from the authenticated
// caller, never from user input.
type Query struct {
	UserShopIDs []uuid.UUID
	ShopID      *uuid.UUID
	Search      string
	LowStock    bool
	Offset      int
	Limit       int
}

// Result is one page of rows plus the total number of matching rows.
type Result[T any] struct {
	Items []T `json:"products"`
	Total int `json:"total"`
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListUnits returns a page of individually tracked units.
func (s *Service) ListUnits(ctx context.Context, q Query) (Result[UnitRow], error) {
	f, p := plan(KindUnit, q)
	items, total, err := fetch(ctx, f, p, s.repo.ListUnits, s.repo.CountUnits)
	if err != nil {
		return Result[UnitRow]{}, fmt.Errorf("list stock units: %w", err)
	}
	return Result[UnitRow]{Items: items, Total: total}, nil
}

// ListBatches returns a page of count-tracked batches.
func (s *Service) ListBatches(ctx context.Context, q Query) (Result[BatchRow], error) {
	f, p := plan(KindBatch, q)
	items, total, err := fetch(ctx, f, p, s.repo.ListBatches, s.repo.CountBatches)
	if err != nil {
		return Result[BatchRow]{}, fmt.Errorf("list stock batches: %w", err)
	}
	return Result[BatchRow]{Items: items, Total: total}, nil
}

func plan(kind ItemKind, q Query) (Filter, Page) {
	scope := ResolveScope(q.UserShopIDs, q.ShopID)
	return ComposeFilter(kind, scope, q.Search, q.LowStock), Page{Offset: q.Offset, Limit: q.Limit}
}

// fetch runs the page and count queries concurrently against one Filter value.
func fetch[T any](
	ctx context.Context,
	f Filter,
	p Page,
	list func(context.Context, Filter, Page) ([]T, error),
	count func(context.Context, Filter) (int, error),
) ([]T, int, error) {
	var (
		items []T
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = list(gctx, f, p)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = count(gctx, f)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	if items == nil {
		items = []T{}
	}
	return items, total, nil
}
