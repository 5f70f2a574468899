// Package main is the entry point for the catalog service.
package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kugicode/catalog-service/internal/config"
	"github.com/kugicode/catalog-service/internal/handlers"
	"github.com/kugicode/catalog-service/internal/repository"
	"github.com/kugicode/catalog-service/internal/routes"
	"github.com/kugicode/catalog-service/internal/service"
	"github.com/kugicode/catalog-service/internal/session"
	"github.com/kugicode/catalog-service/pkg/mongodb"
	"github.com/kugicode/catalog-service/pkg/redis"
)

// @title Catalog Service API
// @version 1.0
// @description Item catalog with session-authenticated account management
// @host localhost:3000
// @BasePath /
func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger := newLogger(cfg)
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize MongoDB
	db, err := mongodb.Connect(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to connect to mongodb", zap.Error(err))
	}

	// Initialize Redis
	redisClient, err := redis.NewClient(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}

	// Initialize repositories
	userRepo, err := repository.NewUserRepository(ctx, db)
	if err != nil {
		logger.Fatal("failed to initialize user repository", zap.Error(err))
	}
	itemRepo := repository.NewItemRepository(db)

	// Initialize session store
	sessions := session.NewRedisStore(redisClient, cfg.SessionTTL)

	// Initialize services
	identityService := service.NewIdentityService(userRepo, sessions)
	catalogService := service.NewCatalogService(itemRepo)

	// Initialize handlers
	cookies := handlers.NewCookieHelper(handlers.CookieConfig{
		Secure:   cfg.Environment != "development",
		SameSite: http.SameSiteLaxMode,
	}, cfg.SessionTTL)
	identityHandler := handlers.NewIdentityHandler(identityService, cookies, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)
	healthHandler := handlers.NewHealthHandler()

	// Setup router
	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// Setup routes
	routes.Setup(router, identityHandler, catalogHandler, healthHandler, sessions, cfg, logger)

	// Start server
	logger.Info("starting catalog service", zap.String("port", cfg.Port))
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) *zap.Logger {
	if cfg.Environment == "development" {
		logger, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		return logger
	}
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return logger
}
