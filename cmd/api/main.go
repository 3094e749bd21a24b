package main

import (
	"context"
	"log"
	"time"

	"recovery-dashboard/internal/core/cache"
	"recovery-dashboard/internal/core/config"
	"recovery-dashboard/internal/core/logger"
	"recovery-dashboard/internal/core/server"
	"recovery-dashboard/internal/features/orders/adapters"
	"recovery-dashboard/internal/features/orders/handler"
	"recovery-dashboard/internal/features/orders/ports"
	"recovery-dashboard/internal/features/orders/service"

	"go.uber.org/zap"
)

// @title Recovery Dashboard API
// @version 1.0
// @description This API turns manufacturing order exports into a recovery dashboard.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.Int("assumed_year", cfg.Pipeline.AssumedYear),
	)

	loc, err := cfg.Pipeline.Location()
	if err != nil {
		l.Fatal("Invalid pipeline timezone", zap.Error(err))
	}

	// Publication slot: Redis when configured, process memory otherwise
	checks := map[string]server.Pinger{}
	var repo ports.SnapshotRepository
	if cfg.Redis.URL != "" {
		redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL, cfg.Redis.Namespace)
		if err != nil {
			l.Fatal("Invalid Redis configuration", zap.Error(err))
		}
		defer redisCache.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = redisCache.Ping(ctx)
		cancel()
		if err != nil {
			l.Fatal("Redis Health Check Failed", zap.Error(err))
		}
		l.Info("Redis connection verified")

		repo = adapters.NewRedisSnapshotRepository(redisCache, cfg.Redis.SnapshotTTL())
		checks["redis"] = redisCache
	} else {
		l.Info("REDIS_URL not set, keeping snapshots in memory")
		repo = adapters.NewMemorySnapshotRepository()
	}

	pipeline := service.NewPipeline(adapters.NewDelimitedParser(), service.PipelineConfig{
		AssumedYear:       cfg.Pipeline.AssumedYear,
		TopCustomers:      cfg.Pipeline.TopCustomers,
		Workers:           cfg.Pipeline.Workers,
		ParallelThreshold: cfg.Pipeline.ParallelThreshold,
		Location:          loc,
	})
	source := adapters.NewHTTPPayloadSource(cfg.Import.ImportTimeout(), int64(cfg.UploadLimit()), cfg.Import.AllowPrivateHosts)

	dashboardService := service.NewDashboardService(pipeline, repo, source)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	srv := server.New(cfg, checks)

	// Register Routes
	srv.App.Post("/dashboard/uploads", dashboardHandler.Upload)
	srv.App.Post("/dashboard/imports", dashboardHandler.Import)
	srv.App.Get("/dashboard", dashboardHandler.GetDashboard)
	srv.App.Get("/dashboard/records", dashboardHandler.GetRecords)
	srv.App.Get("/dashboard/aggregates", dashboardHandler.GetAggregates)
	srv.App.Delete("/dashboard", dashboardHandler.ResetDashboard)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
