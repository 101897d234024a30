// Package router wires the HTTP route table.
package router

import (
	"github.com/gin-gonic/gin"

	analyticshandler "cac40_backend/internal/feature/analytics/transport/handler"
	barhandler "cac40_backend/internal/feature/bars/transport/handler"
	instrumenthandler "cac40_backend/internal/feature/instruments/transport/handler"
	platformhandler "cac40_backend/internal/platform/http/handler"
)

// NewRouter builds the Gin engine with all application routes registered.
func NewRouter(health *platformhandler.HealthHandler, instruments *instrumenthandler.InstrumentHandler,
	bars *barhandler.BarHandler, analytics *analyticshandler.AnalyticsHandler) *gin.Engine {
	r := gin.Default()

	// Index and liveness
	r.GET("/", platformhandler.Root)
	r.GET("/healthz", health.Health)

	// Universe
	r.GET("/instruments", instruments.List)
	r.GET("/sectors", instruments.Sectors)

	// Stored prices
	r.GET("/prices/:ticker", bars.GetPrices)

	// Analytics
	r.GET("/latest/:ticker", analytics.GetLatest)
	r.GET("/statistics/:ticker", analytics.GetStatistics)
	r.GET("/top-performers", analytics.GetTopPerformers)

	return r
}
