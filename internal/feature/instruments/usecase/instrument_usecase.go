package usecase

import (
	"context"

	"cac40_backend/internal/feature/instruments/domain/entity"
)

// InstrumentRepository abstracts the persistence layer for the instrument
// universe. Following Go convention: interfaces are defined by the consumer
// (usecase), not the provider (adapters).
type InstrumentRepository interface {
	// List returns all instruments, filtered by sector when sector is non-empty.
	List(ctx context.Context, sector string) ([]entity.Instrument, error)
	// Sectors returns the distinct sector names across the universe.
	Sectors(ctx context.Context) ([]string, error)
	// Seed inserts the given instruments, silently skipping tickers that
	// already exist. Safe to call on every startup.
	Seed(ctx context.Context, instruments []entity.Instrument) error
}

// InstrumentUsecase provides business logic for universe operations.
type InstrumentUsecase struct {
	repo InstrumentRepository
}

// NewInstrumentUsecase creates a new InstrumentUsecase with the given repository.
func NewInstrumentUsecase(r InstrumentRepository) *InstrumentUsecase {
	return &InstrumentUsecase{repo: r}
}

// ListInstruments returns the universe, optionally restricted to one sector.
func (u *InstrumentUsecase) ListInstruments(ctx context.Context, sector string) ([]entity.Instrument, error) {
	return u.repo.List(ctx, sector)
}

// ListSectors returns the distinct sectors of the universe.
func (u *InstrumentUsecase) ListSectors(ctx context.Context) ([]string, error) {
	return u.repo.Sectors(ctx)
}

// SeedUniverse registers the configured universe. Existing tickers are kept
// untouched, so re-running it is a no-op.
func (u *InstrumentUsecase) SeedUniverse(ctx context.Context, instruments []entity.Instrument) error {
	return u.repo.Seed(ctx, instruments)
}
