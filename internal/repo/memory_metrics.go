package repo

import (
	"context"

	"github.com/google/uuid"

	"github.com/rogerio-castellano/retail-pos/internal/catalog"
)

// GetDashboardMetrics implements MetricsRepository.
func (s *InMemoryStore) GetDashboardMetrics(_ context.Context, shopIDs []uuid.UUID) (Metrics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var m Metrics
	for _, u := range s.units {
		if u.IsActive && containsShop(shopIDs, u.ShopID) {
			m.ActiveUnits++
		}
	}
	for _, b := range s.batches {
		if !b.IsActive || !containsShop(shopIDs, b.ShopID) {
			continue
		}
		m.ActiveBatches++
		if b.LowStock() {
			m.LowStockBatches++
		}
	}

	policy := catalog.PolicyFor(catalog.KindUnit).(catalog.GroupedThreshold)
	m.LowStockVariants = len(groupedLowStock(s.units, policy, shopIDs))

	for _, mv := range s.movements {
		if containsShop(shopIDs, mv.ShopID) {
			m.TotalMovements++
		}
	}
	return m, nil
}
