// cmd/api/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/sneakhaus/storefront/internal/config"
	"github.com/sneakhaus/storefront/internal/domain/catalog"
	"github.com/sneakhaus/storefront/internal/engine"
	"github.com/sneakhaus/storefront/internal/infrastructure/store"
	"github.com/sneakhaus/storefront/internal/interfaces/http"
	"github.com/sneakhaus/storefront/internal/interfaces/http/middleware"
	"github.com/sneakhaus/storefront/internal/pkg/events"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	logger := middleware.NewLogger(cfg.Logging.Level, cfg.Logging.Format)

	logger.WithFields(logrus.Fields{
		"name":        cfg.App.Name,
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
		"store":       cfg.Store.Driver,
	}).Info("starting storefront state engine")

	// Connect the persistence mirror
	var (
		st          store.Store
		redisClient *redis.Client
	)
	switch cfg.Store.Driver {
	case "redis":
		rs, err := store.NewRedis(cfg)
		if err != nil {
			logger.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer rs.Close()

		if err := rs.Health(); err != nil {
			logger.Fatalf("Redis health check failed: %v", err)
		}
		st = rs
		redisClient = rs.Client()
	default:
		st = store.NewMemory()
	}

	// Build the product catalog from seed data
	cat, err := catalog.NewService(catalog.Seed())
	if err != nil {
		logger.Fatalf("Failed to build catalog: %v", err)
	}

	// Wire the state engine
	eng := engine.New(st, cat, cfg, logger)

	if cfg.App.Debug {
		eng.Subscribe(func(e events.Event) {
			logger.WithFields(logrus.Fields{
				"session_id": e.SessionID,
				"topic":      string(e.Topic),
			}).Debug("state changed")
		})
	}

	// Create and start HTTP server
	server := http.NewServer(cfg, eng, st, redisClient, logger)

	go func() {
		if err := server.Start(); err != nil {
			logger.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logger.Errorf("Failed to shutdown HTTP server gracefully: %v", err)
	}
}
