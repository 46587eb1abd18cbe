package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/venturelink/venturelink-api/internal/database"
)

// HealthHandler reports service and database health
type HealthHandler struct {
	db *database.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// GetHealth returns liveness and database connectivity status
func (h *HealthHandler) GetHealth(c *gin.Context) {
	status := http.StatusOK
	dbStatus := "ok"

	if err := h.db.HealthCheck(); err != nil {
		status = http.StatusServiceUnavailable
		dbStatus = "unreachable"
	}

	stats := h.db.GetStats()
	c.JSON(status, gin.H{
		"status":    dbStatus,
		"timestamp": time.Now().UTC(),
		"database": gin.H{
			"status":           dbStatus,
			"open_connections": stats.OpenConnections,
			"in_use":           stats.InUse,
			"idle":             stats.Idle,
		},
	})
}
