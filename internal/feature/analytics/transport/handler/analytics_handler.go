// Package handler provides the HTTP handlers for the analytics feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cac40_backend/internal/feature/analytics/transport/http/dto"
	"cac40_backend/internal/feature/analytics/usecase"
	barsentity "cac40_backend/internal/feature/bars/domain/entity"
	barsdto "cac40_backend/internal/feature/bars/transport/http/dto"
	barsusecase "cac40_backend/internal/feature/bars/usecase"
	instrumentsusecase "cac40_backend/internal/feature/instruments/usecase"
)

// AnalyticsUsecase defines the analytics operations the handler needs.
// Following Go convention: interfaces are defined by the consumer (handler).
type AnalyticsUsecase interface {
	Statistics(ctx context.Context, ticker string, windowDays int) (usecase.Statistics, error)
	LatestPrice(ctx context.Context, ticker string) (barsentity.Bar, error)
	TopPerformers(ctx context.Context, windowDays, limit int) ([]usecase.Performer, error)
}

// AnalyticsHandler handles HTTP requests for windowed statistics and rankings.
type AnalyticsHandler struct {
	uc AnalyticsUsecase
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(uc AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// GetStatistics returns close/volume aggregates over a trailing window.
// An empty window is a valid 200 with zero values.
//
// GET /statistics/:ticker?days=30
func (h *AnalyticsHandler) GetStatistics(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(usecase.DefaultWindowDays)))

	stats, err := h.uc.Statistics(c.Request.Context(), c.Param("ticker"), days)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatisticsResponse{
		Ticker:      stats.Ticker,
		Name:        stats.Name,
		AvgClose:    stats.AvgClose,
		MinClose:    stats.MinClose,
		MaxClose:    stats.MaxClose,
		TotalVolume: stats.TotalVolume,
		RecordCount: stats.RecordCount,
	})
}

// GetLatest returns the most recent bar for a ticker.
//
// GET /latest/:ticker
func (h *AnalyticsHandler) GetLatest(c *gin.Context) {
	bar, err := h.uc.LatestPrice(c.Request.Context(), c.Param("ticker"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, barsdto.BarResponse{
		Ticker: bar.Ticker,
		Date:   bar.Date.UTC().Format("2006-01-02"),
		Open:   bar.Open,
		High:   bar.High,
		Low:    bar.Low,
		Close:  bar.Close,
		Volume: bar.Volume,
	})
}

// GetTopPerformers returns the performance ranking over a trailing window.
//
// GET /top-performers?days=30&limit=10
func (h *AnalyticsHandler) GetTopPerformers(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(usecase.DefaultWindowDays)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(usecase.DefaultTopLimit)))

	performers, err := h.uc.TopPerformers(c.Request.Context(), days, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]dto.PerformerResponse, 0, len(performers))
	for _, p := range performers {
		out = append(out, dto.PerformerResponse{
			Ticker:         p.Ticker,
			Name:           p.Name,
			Sector:         p.Sector,
			PerformancePct: p.PerformancePct,
			StartPrice:     p.StartPrice,
			EndPrice:       p.EndPrice,
		})
	}
	c.JSON(http.StatusOK, dto.TopPerformersResponse{
		PeriodDays:    clampDays(days),
		TopPerformers: out,
	})
}

func clampDays(days int) int {
	if days <= 0 {
		return usecase.DefaultWindowDays
	}
	if days > usecase.MaxWindowDays {
		return usecase.MaxWindowDays
	}
	return days
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, instrumentsusecase.ErrInstrumentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "ticker not found"})
	case errors.Is(err, barsusecase.ErrNoData):
		c.JSON(http.StatusNotFound, gin.H{"error": "no price data available"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
