package repo

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/rogerio-castellano/retail-pos/internal/models"
)

// Log inserts a new batch movement
func (s *InMemoryStore) Log(_ context.Context, m models.Movement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	s.movements = append(s.movements, m)
	return nil
}

// GetByBatchID returns movements of one batch, newest first, optionally
// filtered by date range and paginated
func (s *InMemoryStore) GetByBatchID(_ context.Context, batchID uuid.UUID, mf MovementFilter) ([]models.Movement, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := []models.Movement{}
	for _, m := range s.movements {
		if m.BatchID != batchID {
			continue
		}
		if (mf.Since != nil && m.CreatedAt.Before(*mf.Since)) ||
			(mf.Until != nil && m.CreatedAt.After(*mf.Until)) {
			continue
		}
		filtered = append(filtered, m)
	}
	sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].CreatedAt.After(filtered[j].CreatedAt) })

	if mf.Offset != nil && *mf.Offset > len(filtered) {
		return []models.Movement{}, len(filtered), nil
	}

	start := 0
	if mf.Offset != nil {
		start = clamp(*mf.Offset, 0, len(filtered))
	}

	end := clamp(start+defaultMovementLimit, start, len(filtered))
	if mf.Limit != nil && *mf.Limit > 0 {
		end = clamp(start+min(*mf.Limit, defaultMovementLimit), start, len(filtered))
	}

	return filtered[start:end], len(filtered), nil
}
