// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// StoreCounter reports row counts for the liveness endpoint.
// Following Go convention: interfaces are defined by the consumer (handler).
type StoreCounter interface {
	Count(ctx context.Context) (int64, error)
}

// HealthHandler serves the liveness endpoint with store counts.
type HealthHandler struct {
	instruments StoreCounter
	bars        StoreCounter
}

// NewHealthHandler creates a new HealthHandler backed by the two counters.
func NewHealthHandler(instruments, bars StoreCounter) *HealthHandler {
	return &HealthHandler{instruments: instruments, bars: bars}
}

// Health handles the /healthz endpoint: a 200 with instrument and
// price-record counts while the database answers, 500 otherwise.
func (h *HealthHandler) Health(c *gin.Context) {
	// Explicitly prevent caching
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case "HEAD":
		c.Status(http.StatusOK)
		return
	case "OPTIONS":
		c.Status(http.StatusNoContent)
		return
	}

	ctx := c.Request.Context()
	instrumentCount, err := h.instruments.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "unhealthy", "error": err.Error()})
		return
	}
	barCount, err := h.bars.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "unhealthy", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"database":      "connected",
		"companies":     instrumentCount,
		"price_records": barCount,
	})
}

// Root handles the index endpoint with a short, self-describing endpoint map.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "CAC 40 market data API",
		"endpoints": gin.H{
			"instruments":    "/instruments",
			"sectors":        "/sectors",
			"prices":         "/prices/:ticker",
			"latest":         "/latest/:ticker",
			"statistics":     "/statistics/:ticker",
			"top_performers": "/top-performers",
			"health":         "/healthz",
		},
	})
}
