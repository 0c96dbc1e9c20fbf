package handlers

import (
	"context"
	"net/http"
	"time"

	"todo-app/backend/internal/cache"
	"todo-app/backend/internal/database"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	pool      *database.DatabasePool
	taskCache cache.Cache
}

func NewHealthHandler(pool *database.DatabasePool, taskCache cache.Cache) *HealthHandler {
	return &HealthHandler{pool: pool, taskCache: taskCache}
}

func (h *HealthHandler) Health(c *gin.Context) {
	checks := gin.H{}
	healthy := true

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.pool.HealthCheck(ctx); err != nil {
		checks["database"] = gin.H{"status": "down", "message": err.Error()}
		healthy = false
	} else {
		checks["database"] = gin.H{"status": "up", "stats": h.pool.Stats()}
	}

	if h.taskCache != nil {
		if err := h.taskCache.Health(); err != nil {
			checks["cache"] = gin.H{"status": "down", "message": err.Error()}
		} else {
			checks["cache"] = gin.H{"status": "up"}
		}
	}

	status := http.StatusOK
	overall := "ok"
	if !healthy {
		status = http.StatusServiceUnavailable
		overall = "degraded"
	}

	c.JSON(status, gin.H{
		"status": overall,
		"time":   time.Now().UTC(),
		"checks": checks,
	})
}
