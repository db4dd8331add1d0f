package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/adapters/primary/http/handlers"
	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/adapters/primary/http/middleware"
	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/adapters/secondary/postgres"
	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/adapters/secondary/viewcache"
	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/config"
	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/services"
	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Create database pool
	poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		log.Fatalf("parse db config: %v", err)
	}
	poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("create db pool: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatalf("ping db: %v", err)
	}
	log.Info("database connection established")

	cache, err := viewcache.New(cfg.Cache.MaxEntries)
	if err != nil {
		log.Fatalf("init view cache: %v", err)
	}

	// Secondary Adapters (Output Ports - Repositories)
	brandRepo := postgres.NewBrandRepository(pool)
	modelRepo := postgres.NewModelRepository(pool)
	yearRepo := postgres.NewModelYearRepository(pool)
	configRepo := postgres.NewConfigurationRepository(pool)
	componentRepo := postgres.NewComponentRepository(pool)
	assignmentRepo := postgres.NewAssignmentRepository(pool)

	validate := validation.New()

	// Core Services (Application Layer)
	brandSvc := services.NewBrandService(brandRepo, modelRepo)
	modelSvc := services.NewModelService(modelRepo, brandRepo, yearRepo)
	configSvc := services.NewConfigurationService(configRepo, yearRepo)
	catalogSvc := services.NewComponentCatalogService(componentRepo, configRepo, validate)
	assignmentSvc := services.NewAssignmentService(assignmentRepo, componentRepo, configRepo, modelRepo, cache)
	trimSvc := services.NewTrimService(configRepo, yearRepo, cache)

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(brandSvc, modelSvc, configSvc, catalogSvc, assignmentSvc, trimSvc)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	api := router.Group("/api/v1/reference")
	h.RegisterRoutes(api)

	// Health check with DB ping
	router.GET("/healthz", func(c *gin.Context) {
		if err := pool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
