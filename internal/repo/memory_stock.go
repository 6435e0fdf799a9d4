package repo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rogerio-castellano/retail-pos/internal/models"
)

func (s *InMemoryStore) CreateUnit(_ context.Context, u models.StockUnit) (models.StockUnit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	for _, existing := range s.units {
		if u.IMEI1 != "" && existing.ShopID == u.ShopID && existing.IMEI1 == u.IMEI1 {
			return models.StockUnit{}, ErrDuplicate
		}
	}
	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = u.CreatedAt
	s.units = append(s.units, u)
	return u, nil
}

func (s *InMemoryStore) GetUnit(_ context.Context, id uuid.UUID) (models.StockUnit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.units {
		if u.ID == id {
			return u, nil
		}
	}
	return models.StockUnit{}, ErrNotFound
}

func (s *InMemoryStore) DeactivateUnit(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.units {
		if u.ID == id && u.IsActive {
			s.units[i].IsActive = false
			s.units[i].UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return ErrNotFound
}

func (s *InMemoryStore) CreateBatch(_ context.Context, b models.StockBatch) (models.StockBatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	for _, existing := range s.batches {
		if b.Barcode != "" && existing.IsActive && existing.ShopID == b.ShopID && existing.Barcode == b.Barcode {
			return models.StockBatch{}, ErrDuplicate
		}
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	b.UpdatedAt = b.CreatedAt
	s.batches = append(s.batches, b)
	return b, nil
}

func (s *InMemoryStore) GetBatch(_ context.Context, id uuid.UUID) (models.StockBatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.batches {
		if b.ID == id {
			return b, nil
		}
	}
	return models.StockBatch{}, ErrNotFound
}

func (s *InMemoryStore) GetBatchByBarcode(_ context.Context, shopID uuid.UUID, barcode string) (models.StockBatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.batches {
		if b.IsActive && b.ShopID == shopID && b.Barcode == barcode {
			return b, nil
		}
	}
	return models.StockBatch{}, ErrNotFound
}

func (s *InMemoryStore) UpdateBatch(_ context.Context, b models.StockBatch) (models.StockBatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b.Quantity < 0 {
		return models.StockBatch{}, ErrInsufficientQuantity
	}
	for i, existing := range s.batches {
		if existing.ID == b.ID {
			b.CreatedAt = existing.CreatedAt
			b.UpdatedAt = time.Now().UTC()
			s.batches[i] = b
			return b, nil
		}
	}
	return models.StockBatch{}, ErrNotFound
}

func (s *InMemoryStore) AdjustBatchQuantity(_ context.Context, id uuid.UUID, delta int) (models.StockBatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.batches {
		if b.ID != id || !b.IsActive {
			continue
		}
		if b.Quantity+delta < 0 {
			return models.StockBatch{}, ErrInsufficientQuantity
		}
		s.batches[i].Quantity += delta
		s.batches[i].UpdatedAt = time.Now().UTC()
		return s.batches[i], nil
	}
	return models.StockBatch{}, ErrNotFound
}

func (s *InMemoryStore) DeactivateBatch(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.batches {
		if b.ID == id && b.IsActive {
			s.batches[i].IsActive = false
			s.batches[i].UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return ErrNotFound
}
