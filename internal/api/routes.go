package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"itemsvc/internal/api/handlers"
	"itemsvc/internal/metrics"
	"itemsvc/internal/middleware"
	"itemsvc/internal/service"
	"itemsvc/internal/storage"
)

// SetupRoutes wires middleware and handlers onto the router.
func SetupRoutes(r *gin.Engine, services *service.Services, db *storage.PostgresDB, m *metrics.Metrics, logger *zap.Logger, environment string) {
	// Wildcard CORS, matching the template's documented
	// unsafe-for-production default. Tighten per deployment.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Accept", "Authorization", "Content-Type"}

	r.Use(
		cors.New(corsCfg),
		middleware.RequestLogger(logger),
		middleware.Metrics(m),
	)

	itemHandler := handlers.NewItemHandler(services.Item, m, logger)
	healthHandler := handlers.NewHealthHandler(db, environment, logger)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "path not found"})
	})

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Item Service API",
			"version": "1.0.0",
			"health":  "/health",
		})
	})
	r.GET("/health", healthHandler.Check)
	r.GET("/metrics", gin.WrapH(m.Handler()))

	items := r.Group("/items")
	{
		items.POST("", itemHandler.CreateItem)
		items.GET("", itemHandler.ListItems)
		items.GET("/:id", itemHandler.GetItem)
		items.DELETE("/:id", itemHandler.DeleteItem)
	}
}
