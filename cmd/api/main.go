package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/snkrsdev/snkrs-backend/api/middleware"
	"github.com/snkrsdev/snkrs-backend/api/routes"
	"github.com/snkrsdev/snkrs-backend/internal/catalog"
	"github.com/snkrsdev/snkrs-backend/internal/collection"
	"github.com/snkrsdev/snkrs-backend/internal/wishlist"
	"github.com/snkrsdev/snkrs-backend/pkg/config"
	"github.com/snkrsdev/snkrs-backend/pkg/db"
	"github.com/snkrsdev/snkrs-backend/pkg/logger"
	"github.com/snkrsdev/snkrs-backend/pkg/metrics"
	"github.com/snkrsdev/snkrs-backend/pkg/migrate"
	"github.com/snkrsdev/snkrs-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	var closers []func() error
	defer func() {
		var closeErr error
		for _, closer := range closers {
			closeErr = multierr.Append(closeErr, closer())
		}
		if closeErr != nil {
			logg.Error(context.Background(), "error closing resources", closeErr)
		}
	}()

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	closers = append(closers, dbClient.Close)

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		closers = append(closers, redisClient.Close)
	}

	catalogRepo := catalog.NewRepository(dbClient.DB())

	catalogService, err := catalog.NewService(catalog.ServiceParams{Repo: catalogRepo})
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}
	collectionService, err := collection.NewService(collection.ServiceParams{
		Repo:        collection.NewRepository(dbClient.DB()),
		CatalogRepo: catalogRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create collection service", err)
		os.Exit(1)
	}
	wishlistService, err := wishlist.NewService(wishlist.ServiceParams{
		Repo:        wishlist.NewRepository(dbClient.DB()),
		CatalogRepo: catalogRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create wishlist service", err)
		os.Exit(1)
	}

	if cfg.App.IsDev() && cfg.FeatureFlags.SeedCatalog {
		if err := catalog.Seed(context.Background(), catalogRepo, logg); err != nil {
			logg.Error(context.Background(), "failed to seed catalog", err)
			os.Exit(1)
		}
	}

	registry := prometheus.NewRegistry()
	requestMetrics := metrics.NewRequestMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:         cfg,
			Logger:         logg,
			DB:             dbClient,
			Redis:          redisClient,
			Identity:       middleware.StaticResolver{ID: cfg.Identity.DevUserID},
			RequestMetrics: requestMetrics,
			MetricsHandler: metrics.Handler(registry),
			Catalog:        catalogService,
			Collection:     collectionService,
			Wishlist:       wishlistService,
		}),
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-shutdown
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(shutdownCtx, "error shutting down server", err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
	logg.Info(ctx, "api server stopped")
}
