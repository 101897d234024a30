// Package handler provides the HTTP handlers for the bars feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"cac40_backend/internal/feature/bars/domain/entity"
	"cac40_backend/internal/feature/bars/transport/http/dto"
	barsusecase "cac40_backend/internal/feature/bars/usecase"
	instrumentsusecase "cac40_backend/internal/feature/instruments/usecase"
)

const dateLayout = "2006-01-02"

// BarsUsecase defines the price queries the handler needs.
// Following Go convention: interfaces are defined by the consumer (handler).
type BarsUsecase interface {
	GetPrices(ctx context.Context, ticker string, start, end *time.Time, limit int) ([]entity.Bar, error)
}

// BarHandler handles HTTP requests for stored price bars.
type BarHandler struct {
	uc BarsUsecase
}

// NewBarHandler creates a new BarHandler.
func NewBarHandler(uc BarsUsecase) *BarHandler {
	return &BarHandler{uc: uc}
}

// GetPrices returns stored bars for a ticker, newest first.
//
// GET /prices/:ticker?start_date=2024-01-01&end_date=2024-06-30&limit=100
func (h *BarHandler) GetPrices(c *gin.Context) {
	ticker := c.Param("ticker")

	start, ok := parseDateQuery(c, "start_date")
	if !ok {
		return
	}
	end, ok := parseDateQuery(c, "end_date")
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(barsusecase.DefaultLimit)))

	bars, err := h.uc.GetPrices(c.Request.Context(), ticker, start, end, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]dto.BarResponse, 0, len(bars))
	for _, b := range bars {
		out = append(out, toResponse(b))
	}
	c.JSON(http.StatusOK, out)
}

func toResponse(b entity.Bar) dto.BarResponse {
	return dto.BarResponse{
		Ticker: b.Ticker,
		Date:   b.Date.UTC().Format(dateLayout),
		Open:   b.Open,
		High:   b.High,
		Low:    b.Low,
		Close:  b.Close,
		Volume: b.Volume,
	}
}

// parseDateQuery reads an optional 2006-01-02 query parameter. On a malformed
// value it writes a 400 response and reports false.
func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + ", expected YYYY-MM-DD"})
		return nil, false
	}
	return &t, true
}

func writeError(c *gin.Context, err error) {
	if errors.Is(err, instrumentsusecase.ErrInstrumentNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "ticker not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
