package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/retail-pos/internal/auth"
	"github.com/rogerio-castellano/retail-pos/internal/catalog"
	"github.com/rogerio-castellano/retail-pos/internal/config"
	"github.com/rogerio-castellano/retail-pos/internal/db"
	"github.com/rogerio-castellano/retail-pos/internal/http/ban"
	"github.com/rogerio-castellano/retail-pos/internal/http/handlers"
	mw "github.com/rogerio-castellano/retail-pos/internal/http/middleware"
	rl "github.com/rogerio-castellano/retail-pos/internal/http/rate_limiter"
	"github.com/rogerio-castellano/retail-pos/internal/http/router"
	"github.com/rogerio-castellano/retail-pos/internal/logger"
	"github.com/rogerio-castellano/retail-pos/internal/redissvc"
	"github.com/rogerio-castellano/retail-pos/internal/repo"
)

// @title Retail POS API
// @version 1.0
// @description Multi-shop point-of-sale catalog: stock units, stock batches and their catalog dimensions.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := logger.Init(cfg.Logger); err != nil {
		panic(err)
	}
	log := logger.L()
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	auth.Configure(cfg.JWT)

	redisService, err := redissvc.Connect(ctx, cfg.Redis)
	if err != nil {
		log.Fatal("could not connect to redis", zap.Error(err))
	}
	defer redisService.Close()

	database, err := db.Connect(cfg.Database)
	if err != nil {
		log.Fatal("could not connect to database", zap.Error(err))
	}
	defer database.Close()

	limiter := rl.New(cfg.RateLimit)
	guard := ban.NewGuard(redisService.Rdb(), cfg.Ban)
	mw.SetRateLimiter(limiter)
	mw.SetBanGuard(guard)
	go limiter.StartVisitorCleanupLoop(ctx, 5*time.Minute)
	go guard.StartDailyBanSummary(ctx, 24*time.Hour)

	handlers.SetCatalogService(catalog.NewService(repo.NewPostgresCatalogRepository(database)))
	handlers.SetStockRepo(repo.NewPostgresStockRepository(database))
	handlers.SetDimensionRepo(repo.NewPostgresDimensionRepository(database))
	handlers.SetMovementRepo(repo.NewPostgresMovementRepository(database))
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))
	handlers.SetMetricsRepo(repo.NewPostgresMetricsRepository(database))
	handlers.SetRefreshStore(auth.NewRedisRefreshStore(redisService.Rdb()), cfg.JWT.RefreshTTL)
	handlers.SetPagination(cfg.Pagination)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router.NewRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server running", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
