// Package usecase implements the read-only analytics over the time-series store.
package usecase

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	barsentity "cac40_backend/internal/feature/bars/domain/entity"
	barsusecase "cac40_backend/internal/feature/bars/usecase"
	instrumentsentity "cac40_backend/internal/feature/instruments/domain/entity"
)

const (
	// DefaultWindowDays is the default trailing window for statistics and ranking.
	DefaultWindowDays = 30
	// MaxWindowDays caps the trailing window.
	MaxWindowDays = 365
	// DefaultTopLimit is the default number of ranking entries returned.
	DefaultTopLimit = 10
	// MaxTopLimit caps the number of ranking entries.
	MaxTopLimit = 40
)

// CloseStats is the aggregate over the closes of one ticker inside a window.
// All fields are zero when no bar falls in the window.
type CloseStats struct {
	AvgClose    float64
	MinClose    float64
	MaxClose    float64
	TotalVolume float64
	RecordCount int64
}

// BarReader abstracts the store reads the analytics need.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type BarReader interface {
	// Latest returns the bar with the maximum date for the ticker, or
	// bars usecase ErrNoData when the ticker has no bars.
	Latest(ctx context.Context, ticker string) (barsentity.Bar, error)
	// FirstCloseSince returns the close of the earliest bar with
	// date >= cutoff, or ErrNoData when none exists.
	FirstCloseSince(ctx context.Context, ticker string, cutoff time.Time) (float64, error)
	// CloseStatsSince aggregates closes and volume over date >= cutoff.
	CloseStatsSince(ctx context.Context, ticker string, cutoff time.Time) (CloseStats, error)
}

// InstrumentReader abstracts the universe reads the analytics need.
type InstrumentReader interface {
	// FindByTicker fails with instruments usecase ErrInstrumentNotFound
	// for an unregistered ticker.
	FindByTicker(ctx context.Context, ticker string) (instrumentsentity.Instrument, error)
	List(ctx context.Context, sector string) ([]instrumentsentity.Instrument, error)
}

// Statistics summarizes one ticker over a trailing window. An empty window
// is a valid state: every numeric field is zero and RecordCount is zero.
type Statistics struct {
	Ticker      string
	Name        string
	AvgClose    float64
	MinClose    float64
	MaxClose    float64
	TotalVolume float64
	RecordCount int64
}

// Performer is one ranking entry of TopPerformers.
type Performer struct {
	Ticker         string
	Name           string
	Sector         string
	PerformancePct float64
	StartPrice     float64
	EndPrice       float64
}

// AnalyticsUsecase computes windowed statistics and performance rankings.
// Every call is a stateless read against the store's last-committed state.
type AnalyticsUsecase struct {
	bars        BarReader
	instruments InstrumentReader
}

// NewAnalyticsUsecase creates a new AnalyticsUsecase.
func NewAnalyticsUsecase(bars BarReader, instruments InstrumentReader) *AnalyticsUsecase {
	return &AnalyticsUsecase{bars: bars, instruments: instruments}
}

// Statistics computes close/volume aggregates for a ticker over the trailing
// windowDays. Unknown tickers fail with ErrInstrumentNotFound; an empty
// window returns zero values, never an error.
func (u *AnalyticsUsecase) Statistics(ctx context.Context, ticker string, windowDays int) (Statistics, error) {
	windowDays = clampWindow(windowDays)

	inst, err := u.instruments.FindByTicker(ctx, ticker)
	if err != nil {
		return Statistics{}, err
	}

	stats, err := u.bars.CloseStatsSince(ctx, ticker, windowCutoff(windowDays))
	if err != nil {
		return Statistics{}, err
	}

	return Statistics{
		Ticker:      inst.Ticker,
		Name:        inst.Name,
		AvgClose:    stats.AvgClose,
		MinClose:    stats.MinClose,
		MaxClose:    stats.MaxClose,
		TotalVolume: stats.TotalVolume,
		RecordCount: stats.RecordCount,
	}, nil
}

// LatestPrice returns the most recent bar for a ticker, propagating
// ErrInstrumentNotFound and ErrNoData from the store.
func (u *AnalyticsUsecase) LatestPrice(ctx context.Context, ticker string) (barsentity.Bar, error) {
	if _, err := u.instruments.FindByTicker(ctx, ticker); err != nil {
		return barsentity.Bar{}, err
	}
	return u.bars.Latest(ctx, ticker)
}

// TopPerformers ranks instruments by close-price performance over the
// trailing windowDays: the earliest close inside the window against the most
// recent close overall. Instruments missing either price, or whose start
// price is zero, are omitted rather than reported as errors. Ties are broken
// by ticker ascending so the ordering is deterministic.
func (u *AnalyticsUsecase) TopPerformers(ctx context.Context, windowDays, limit int) ([]Performer, error) {
	windowDays = clampWindow(windowDays)
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	if limit > MaxTopLimit {
		limit = MaxTopLimit
	}

	instruments, err := u.instruments.List(ctx, "")
	if err != nil {
		return nil, err
	}

	cutoff := windowCutoff(windowDays)
	performers := make([]Performer, 0, len(instruments))
	for _, inst := range instruments {
		startPrice, err := u.bars.FirstCloseSince(ctx, inst.Ticker, cutoff)
		if errors.Is(err, barsusecase.ErrNoData) {
			continue
		}
		if err != nil {
			return nil, err
		}

		latest, err := u.bars.Latest(ctx, inst.Ticker)
		if errors.Is(err, barsusecase.ErrNoData) {
			continue
		}
		if err != nil {
			return nil, err
		}

		if startPrice == 0 {
			// Division is undefined. Dropped from the ranking.
			continue
		}

		performers = append(performers, Performer{
			Ticker:         inst.Ticker,
			Name:           inst.Name,
			Sector:         inst.Sector,
			PerformancePct: round2((latest.Close - startPrice) / startPrice * 100),
			StartPrice:     round2(startPrice),
			EndPrice:       round2(latest.Close),
		})
	}

	sort.Slice(performers, func(i, j int) bool {
		if performers[i].PerformancePct != performers[j].PerformancePct {
			return performers[i].PerformancePct > performers[j].PerformancePct
		}
		return performers[i].Ticker < performers[j].Ticker
	})

	if len(performers) > limit {
		performers = performers[:limit]
	}
	return performers, nil
}

func clampWindow(days int) int {
	if days <= 0 {
		return DefaultWindowDays
	}
	if days > MaxWindowDays {
		return MaxWindowDays
	}
	return days
}

// windowCutoff returns midnight UTC of today minus days, so a bar dated
// exactly on the cutoff day is inside the window.
func windowCutoff(days int) time.Time {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return today.AddDate(0, 0, -days)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
