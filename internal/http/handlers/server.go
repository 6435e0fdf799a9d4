package handlers

import (
	"time"

	"github.com/rogerio-castellano/retail-pos/internal/auth"
	"github.com/rogerio-castellano/retail-pos/internal/catalog"
	"github.com/rogerio-castellano/retail-pos/internal/config"
	repo "github.com/rogerio-castellano/retail-pos/internal/repo"
)

var (
	catalogService *catalog.Service
	stockRepo      repo.StockRepository
	dimensionRepo  repo.DimensionRepository
	movementRepo   repo.MovementRepository
	metricsRepo    repo.MetricsRepository
	userRepo       repo.UserRepository

	refreshStore auth.RefreshStore
	refreshTTL   = 7 * 24 * time.Hour

	pagination = config.PaginationConfig{DefaultLimit: 20, MaxLimit: 100}
)

func SetCatalogService(s *catalog.Service) {
	catalogService = s
}

func SetStockRepo(r repo.StockRepository) {
	stockRepo = r
}

func SetDimensionRepo(r repo.DimensionRepository) {
	dimensionRepo = r
}

func SetMovementRepo(r repo.MovementRepository) {
	movementRepo = r
}

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetRefreshStore(s auth.RefreshStore, ttl time.Duration) {
	refreshStore = s
	if ttl > 0 {
		refreshTTL = ttl
	}
}

func SetPagination(cfg config.PaginationConfig) {
	pagination = cfg
}
