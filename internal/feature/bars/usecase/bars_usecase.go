package usecase

import (
	"context"
	"time"

	"cac40_backend/internal/feature/bars/domain/entity"
	instrumentsusecase "cac40_backend/internal/feature/instruments/usecase"
)

const (
	// DefaultLimit is the default number of bars returned by a range query.
	DefaultLimit = 100
	// MaxLimit is the hard ceiling on the number of bars a single range
	// query may return; larger requests are clamped.
	MaxLimit = 1000
)

// BarRepository abstracts the read side of the time-series store.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type BarRepository interface {
	// FindRange returns bars for the ticker ordered by date descending.
	// start and end bound the dates inclusively when non-nil.
	FindRange(ctx context.Context, ticker string, start, end *time.Time, limit int) ([]entity.Bar, error)
}

// InstrumentChecker reports whether a ticker belongs to the registered universe.
type InstrumentChecker interface {
	Exists(ctx context.Context, ticker string) (bool, error)
}

// BarsUsecase serves read queries against the time-series store.
type BarsUsecase struct {
	bars        BarRepository
	instruments InstrumentChecker
}

// NewBarsUsecase creates a new BarsUsecase.
func NewBarsUsecase(bars BarRepository, instruments InstrumentChecker) *BarsUsecase {
	return &BarsUsecase{bars: bars, instruments: instruments}
}

// GetPrices returns the stored bars for a ticker, newest first. An unknown
// ticker fails with ErrInstrumentNotFound; a known ticker with no bars in
// the requested bounds returns an empty slice. The limit is clamped to
// [1, MaxLimit], with DefaultLimit applied when it is not positive.
func (u *BarsUsecase) GetPrices(ctx context.Context, ticker string, start, end *time.Time, limit int) ([]entity.Bar, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	ok, err := u.instruments.Exists(ctx, ticker)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, instrumentsusecase.ErrInstrumentNotFound
	}

	return u.bars.FindRange(ctx, ticker, start, end, limit)
}
