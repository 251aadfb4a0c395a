package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/barstock/backend/config"
	"github.com/barstock/backend/internal/api"
	"github.com/barstock/backend/internal/middleware"
)

// Handlers bundles the route handlers. Inventory and CustomRecipes are nil
// when their backing stores are not configured; their routes then answer
// 503.
type Handlers struct {
	Cocktails     *api.CocktailHandler
	Inventory     *api.InventoryHandler
	CustomRecipes *api.CustomRecipeHandler
}

// Setup configures the application routes
func Setup(cfg *config.Config, handlers Handlers, limiter *middleware.RateLimiter) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	// CORS middleware
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	if limiter != nil {
		v1.Use(limiter.RateLimitMiddleware())
	}

	handlers.Cocktails.RegisterRoutes(v1)
	if handlers.Inventory != nil {
		handlers.Inventory.RegisterRoutes(v1)
	}
	if handlers.CustomRecipes != nil {
		handlers.CustomRecipes.RegisterRoutes(v1)
	}

	return router
}
