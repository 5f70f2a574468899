// Package routes defines HTTP routes for the catalog service.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kugicode/catalog-service/internal/config"
	"github.com/kugicode/catalog-service/internal/handlers"
	"github.com/kugicode/catalog-service/internal/middleware"
	"github.com/kugicode/catalog-service/internal/session"
)

// Setup configures all HTTP routes for the application.
func Setup(
	router *gin.Engine,
	identityHandler *handlers.IdentityHandler,
	catalogHandler *handlers.CatalogHandler,
	healthHandler *handlers.HealthHandler,
	sessions session.Store,
	cfg *config.Config,
	logger *zap.Logger,
) {
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CSRF(cfg.AllowedOrigins))
	router.Use(middleware.ResolveSession(sessions, logger))

	// Health and diagnostics
	router.GET("/health", healthHandler.Check)
	router.GET("/first", healthHandler.First)
	router.GET("/second", healthHandler.Second)
	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Identity routes
	router.POST("/register", identityHandler.Register)
	router.POST("/login", identityHandler.Login)
	router.POST("/logout", identityHandler.Logout)
	router.GET("/profile", identityHandler.Profile)
	router.DELETE("/profile", identityHandler.DeleteAccount)

	// Catalog routes
	router.GET("/items", catalogHandler.List)
	router.POST("/items", catalogHandler.Create)
	router.GET("/items/:id", catalogHandler.Get)
	router.PUT("/items/:id", catalogHandler.Update)
	router.GET("/my-items", catalogHandler.ListMine)
	router.DELETE("/my-items/:id", catalogHandler.DeleteMine)
}
