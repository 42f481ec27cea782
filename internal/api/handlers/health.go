package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"itemsvc/internal/storage"
)

// HealthHandler reports service and store liveness for orchestration
// probes. A failed store probe degrades the reported status; it never
// turns into a handler error.
type HealthHandler struct {
	db          *storage.PostgresDB
	environment string
	logger      *zap.Logger
}

func NewHealthHandler(db *storage.PostgresDB, environment string, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{db: db, environment: environment, logger: logger}
}

// Check handles GET /health.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := "healthy"
	dbStatus := "connected"
	if err := h.db.Ping(ctx); err != nil {
		h.logger.Error("database health check failed", zap.Error(err))
		status = "degraded"
		dbStatus = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      status,
		"database":    dbStatus,
		"environment": h.environment,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}
