package main

// @title Globe Engine API
// @version 1.0.0
// @description Данные интерактивного глобуса: реестр стран, контуры для пикинга, подсветка под указателем и плотность населения в точках спирали Фибоначчи.
// @description
// @description Основные возможности:
// @description - Реестр стран с центрами для подписей
// @description - Контуры в координатах карты и линии границ на сфере
// @description - Подсветка страны под лучом указателя или точкой карты
// @description - Плотность населения в точках спирали Фибоначчи

// @contact.name API Support

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

	"go.uber.org/zap"

	_ "github.com/globe-engine/docs/swagger"
	"github.com/globe-engine/internal/config"
	httpDelivery "github.com/globe-engine/internal/delivery/http"
	"github.com/globe-engine/internal/delivery/http/handler"
	"github.com/globe-engine/internal/domain/repository"
	"github.com/globe-engine/internal/pkg/logger"
	"github.com/globe-engine/internal/registry"
	"github.com/globe-engine/internal/repository/cache"
	"github.com/globe-engine/internal/repository/geojson"
	"github.com/globe-engine/internal/repository/postgres"
	"github.com/globe-engine/internal/repository/raster"
	redisRepo "github.com/globe-engine/internal/repository/redis"
	"github.com/globe-engine/internal/usecase"
	"github.com/globe-engine/internal/worker"
	"github.com/globe-engine/internal/worker/hover"
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
	defer log.Sync()

	log.Info("Starting Globe Engine")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("country_source", cfg.Sources.CountrySource),
		zap.Float64("radius", cfg.Globe.Radius),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 3. Country source
	featureRepo, closeSource := newFeatureRepository(ctx, cfg, log)
	defer closeSource()

	var centerRepo repository.CenterRepository
	if cfg.Sources.CentersFile != "" {
		centerRepo = geojson.NewCenterRepository(cfg.Sources.CentersFile, log)
	}

	var rasterRepo repository.RasterRepository
	if cfg.Sources.RasterFile != "" {
		rasterRepo = raster.NewFileRepository(cfg.Sources.RasterFile, log)
	}

	// 4. Build the globe session
	loader := usecase.NewSessionLoader(
		featureRepo,
		centerRepo,
		rasterRepo,
		registry.Options{Radius: cfg.Globe.Radius, BorderOffset: cfg.Globe.BorderOffset},
		log,
	)
	session, report, err := loader.Load(ctx)
	if err != nil {
		log.Fatal("Failed to load globe session", zap.Error(err))
	}
	if len(report.Issues) > 0 {
		log.Warn("Some countries were skipped", zap.Int("issues", len(report.Issues)))
	}

	// 5. Redis: density cache and hover stream. Без Redis сервис работает без них
	var cacheRepo repository.CacheRepository
	workerManager := worker.NewWorkerManager(log)
	workersCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Warn("Redis unavailable, running without density cache and hover stream", zap.Error(err))
	} else {
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()

		cacheRepo = cache.NewCacheRepository(redisClient)
		streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

		publisher := hover.NewPublisherWorker(streamRepo, hover.PublisherConfig{
			Stream: cfg.Hover.Stream,
			MaxLen: cfg.Hover.StreamMaxLen,
			Rate:   cfg.Hover.PublishRate,
			Buffer: cfg.Hover.PublishBuffer,
		}, log)
		workerManager.Register(publisher)

		if _, err := usecase.ForwardHoverEvents(session, publisher, log); err != nil {
			log.Fatal("Failed to subscribe hover publisher", zap.Error(err))
		}
		if err := workerManager.Start(workersCtx); err != nil {
			log.Fatal("Failed to start workers", zap.Error(err))
		}
	}

	// 6. Initialize Use Cases
	countryUC := usecase.NewCountryUseCase(session, log)
	hoverUC := usecase.NewHoverUseCase(session, log)
	densityUC := usecase.NewDensityUseCase(session, cacheRepo, cfg.Globe.PointCount, cfg.Cache.DensityCacheTTL, log)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		handler.NewHealthHandler(session),
		handler.NewCountryHandler(countryUC, log),
		handler.NewHoverHandler(hoverUC, log),
		handler.NewDensityHandler(densityUC, log),
	)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("session_id", session.ID().String()),
	)

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	// Close гасит подсветку, финальный unhighlight дописывается воркером при Stop
	session.Close()

	if redisClient != nil {
		if err := workerManager.Stop(); err != nil {
			log.Error("Error stopping workers", zap.Error(err))
		}
		stopWorkers()
	}

	log.Info("Server stopped successfully")
}

// newFeatureRepository - источник стран по COUNTRY_SOURCE
func newFeatureRepository(ctx context.Context, cfg *config.Config, log *zap.Logger) (repository.FeatureRepository, func()) {
	if cfg.Sources.CountrySource != config.SourcePostgres {
		props := geojson.Properties{Code: cfg.Sources.CodeProperty, Name: cfg.Sources.NameProperty}
		log.Info("Loading countries from file", zap.String("path", cfg.Sources.CountriesFile))
		return geojson.NewFileRepository(cfg.Sources.CountriesFile, props, log), func() {}
	}

	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	log.Info("PostgreSQL connected")

	repo, err := postgres.NewCountryRepository(db, cfg.Database.CountriesTable)
	if err != nil {
		log.Fatal("Invalid countries table", zap.Error(err))
	}

	return repo, func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}
}
