package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"productReco/app/echo-server/metrics"
	"productReco/app/echo-server/router"
	"productReco/business/recommend"
	"productReco/internal/middleware"
	"productReco/internal/repository/jsonfile"
	"productReco/internal/repository/breaker"
	psqlRepo "productReco/internal/repository/postgres"
	"productReco/internal/rest"
	"productReco/pkg/config"
	"productReco/pkg/database"
	"productReco/pkg/logger"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting "+cfg.App.Name, "version", cfg.App.Version, "store", cfg.Store.Driver)

	metrics.Init()

	// Init store
	var (
		store recommend.Store
		db    *gorm.DB
	)
	switch cfg.Store.Driver {
	case config.StorePostgres:
		db, err = database.InitPostgres(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to database", "error", err)
		}
		logger.Info("Database connected successfully")

		if cfg.Database.AutoMigrate {
			migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			err = psqlRepo.AutoMigrate(migrateCtx, db)
			cancel()
			if err != nil {
				logger.Fatal("Failed to migrate database", "error", err)
			}
		}
		store = psqlRepo.NewStore(db)
	default:
		store = jsonfile.NewStore(cfg.Store.DataDir)
		logger.Info("Using JSON data files", "dir", cfg.Store.DataDir)
	}

	if cfg.Breaker.Enabled {
		store = breaker.NewStore(store, breaker.Settings{
			ConsecutiveFailures: cfg.Breaker.ConsecutiveFailures,
			OpenTimeout:         cfg.Breaker.OpenTimeout,
		})
	}

	// Init service
	recommendService := recommend.NewService(store)

	// Init handler
	recommendHandler := rest.NewRecommendationHandler(recommendService, cfg.Server.RequestTimeout, cfg.Recommend.DefaultTop)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))
	e.Use(middleware.TraceID())
	e.Use(metrics.Middleware())
	if cfg.RateLimit.RPS > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		defer limiter.Stop()
		e.Use(limiter.Middleware())
	}

	// Static front end
	e.Static("/", cfg.Server.PublicDir)

	// Setup routes
	router.SetupMetricsRoutes(e)
	api := e.Group("/api/v1")
	router.SetupRecommendationRoutes(api, recommendHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	if db != nil {
		if err := database.ClosePostgres(db); err != nil {
			logger.Error("Database close error", "error", err)
		}
	}

	logger.Info("Server stopped")
}
