// Package handler provides the HTTP handlers for the instruments feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"cac40_backend/internal/feature/instruments/domain/entity"
	"cac40_backend/internal/feature/instruments/transport/http/dto"
)

// InstrumentUsecase defines the universe operations the handler needs.
// Following Go convention: interfaces are defined by the consumer (handler).
type InstrumentUsecase interface {
	ListInstruments(ctx context.Context, sector string) ([]entity.Instrument, error)
	ListSectors(ctx context.Context) ([]string, error)
}

// InstrumentHandler handles HTTP requests for the instrument universe.
type InstrumentHandler struct {
	uc InstrumentUsecase
}

// NewInstrumentHandler creates a new InstrumentHandler.
func NewInstrumentHandler(uc InstrumentUsecase) *InstrumentHandler {
	return &InstrumentHandler{uc: uc}
}

// List returns the universe, optionally filtered by sector.
//
// GET /instruments?sector=Financials
func (h *InstrumentHandler) List(c *gin.Context) {
	instruments, err := h.uc.ListInstruments(c.Request.Context(), c.Query("sector"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]dto.InstrumentResponse, 0, len(instruments))
	for _, inst := range instruments {
		out = append(out, dto.InstrumentResponse{
			Ticker: inst.Ticker,
			Name:   inst.Name,
			Sector: inst.Sector,
		})
	}
	c.JSON(http.StatusOK, out)
}

// Sectors returns the distinct sector names of the universe.
//
// GET /sectors
func (h *InstrumentHandler) Sectors(c *gin.Context) {
	sectors, err := h.uc.ListSectors(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.SectorListResponse{Sectors: sectors})
}
