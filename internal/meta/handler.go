package meta

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/changhyeonkim/member-registry/internal/config"
	"github.com/changhyeonkim/member-registry/internal/shared/database"
	"github.com/gin-gonic/gin"
)

// Handler handles meta endpoints (health check)
type Handler struct {
	cfg *config.Config
	db  *database.DB // nil for in-memory storage
}

// NewHandler creates a new meta handler
func NewHandler(cfg *config.Config, db *database.DB) *Handler {
	return &Handler{
		cfg: cfg,
		db:  db,
	}
}

// Health reports service health and, for database storage, database reachability
func (h *Handler) Health(c *gin.Context) {
	service := gin.H{
		"name":        h.cfg.App.Name,
		"environment": h.cfg.App.Env,
	}

	if h.db == nil {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": service,
			"checks": gin.H{
				"storage": gin.H{"driver": h.cfg.Storage.Driver, "status": "up"},
			},
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	start := time.Now()
	if err := h.db.HealthCheck(ctx); err != nil {
		slog.Error("Health check 실패", "error", err)

		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"service": service,
			"checks": gin.H{
				"storage": gin.H{"driver": h.db.Driver, "status": "down", "error": err.Error()},
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": service,
		"checks": gin.H{
			"storage": gin.H{
				"driver":     h.db.Driver,
				"status":     "up",
				"latency_ms": time.Since(start).Milliseconds(),
			},
		},
	})
}
