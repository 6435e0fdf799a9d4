package repo

import (
	"sync"

	"github.com/rogerio-castellano/retail-pos/internal/models"
)

// InMemoryStore keeps every table in process memory. It implements
// catalog.Repository and the CRUD repositories of this package, so it can
// stand in for PostgreSQL in tests.
type InMemoryStore struct {
	mu         sync.RWMutex
	shops      []models.Shop
	brands     []models.Brand
	categories []models.Category
	products   []models.Product
	variants   []models.Variant
	units      []models.StockUnit
	batches    []models.StockBatch
	movements  []models.Movement
	users      []models.User
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

// Clear drops every row except shops and users.
func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.brands = nil
	s.categories = nil
	s.products = nil
	s.variants = nil
	s.units = nil
	s.batches = nil
	s.movements = nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
