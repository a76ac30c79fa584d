package main

// @title Freight Estimator API
// @version 1.0.0
// @description Сервис расчёта стоимости грузоперевозок между городами.
// @description
// @description Основные возможности:
// @description - Расчёт стоимости по маршруту, объёму груза и типу транспорта (Газель, Камаз)
// @description - Справочники городов, маршрутов и ставок тарифа
// @description - Статистика по журналу выданных котировок

// @contact.name API Support
// @contact.email support@freight-estimator.local

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/freight-estimator/docs/swagger"
	"github.com/freight-estimator/internal/config"
	httpDelivery "github.com/freight-estimator/internal/delivery/http"
	"github.com/freight-estimator/internal/delivery/http/handler"
	"github.com/freight-estimator/internal/domain/repository"
	"github.com/freight-estimator/internal/estimator"
	"github.com/freight-estimator/internal/pkg/logger"
	"github.com/freight-estimator/internal/pkg/metrics"
	"github.com/freight-estimator/internal/repository/cache"
	"github.com/freight-estimator/internal/repository/postgres"
	redisRepo "github.com/freight-estimator/internal/repository/redis"
	"github.com/freight-estimator/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync(log)

	log.Info("Starting Freight Estimator")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("tariff_source", cfg.Tariff.Source),
		zap.Bool("journal_enabled", cfg.Journal.Enabled),
	)

	collector, err := metrics.NewCollector(nil)
	if err != nil {
		log.Fatal("Failed to register metrics", zap.Error(err))
	}

	checks := make(map[string]handler.HealthChecker)

	// 3. Connect to PostgreSQL (тариф из БД и/или журнал котировок)
	var db *postgres.DB
	if cfg.UsesPostgres() {
		db, err = postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		checks["postgres"] = db
	}

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	checks["redis"] = redisClient

	// 5. Initialize Repositories
	cacheRepo := cache.NewCacheRepository(redisClient)

	var (
		routeRepo   repository.RouteRepository
		journalRepo repository.QuoteJournalRepository
		streamRepo  repository.StreamRepository
	)
	if db != nil {
		routeRepo = postgres.NewRouteRepository(db, log)
	}
	if cfg.Journal.Enabled {
		journalRepo = postgres.NewQuoteJournalRepository(db, log)
		streamRepo = redisRepo.NewStreamRepository(redisClient.Client(), log)
	}

	log.Info("Repositories initialized")

	// 6. Load tariff
	loadCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	tr, err := usecase.LoadTariff(loadCtx, cfg.Tariff, routeRepo, log)
	cancel()
	if err != nil {
		log.Fatal("Failed to load tariff", zap.Error(err))
	}
	collector.SetTariffRoutes(tr.RouteCount())

	// 7. Initialize Use Cases
	quoteUC := usecase.NewQuoteUseCase(
		estimator.New(tr),
		cacheRepo,
		streamRepo,
		collector,
		log,
		cfg.Cache.QuoteCacheTTL,
	)
	routeUC := usecase.NewRouteUseCase(tr, log)
	statsUC := usecase.NewStatsUseCase(journalRepo, cacheRepo, log, cfg.Cache.StatsCacheTTL)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	handlers := httpDelivery.Handlers{
		Health: handler.NewHealthHandler(checks, log),
		Quote:  handler.NewQuoteHandler(quoteUC, log),
		Route:  handler.NewRouteHandler(routeUC, log),
		Stats:  handler.NewStatsHandler(statsUC, log),
	}

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, collector, handlers)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if db != nil {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL", zap.Error(err))
		}
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
