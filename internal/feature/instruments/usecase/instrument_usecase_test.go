package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cac40_backend/internal/feature/instruments/domain/entity"
)

type mockInstrumentRepository struct {
	listFn    func(ctx context.Context, sector string) ([]entity.Instrument, error)
	sectorsFn func(ctx context.Context) ([]string, error)
	seedFn    func(ctx context.Context, instruments []entity.Instrument) error
}

func (m *mockInstrumentRepository) List(ctx context.Context, sector string) ([]entity.Instrument, error) {
	return m.listFn(ctx, sector)
}

func (m *mockInstrumentRepository) Sectors(ctx context.Context) ([]string, error) {
	return m.sectorsFn(ctx)
}

func (m *mockInstrumentRepository) Seed(ctx context.Context, instruments []entity.Instrument) error {
	return m.seedFn(ctx, instruments)
}

func TestInstrumentUsecase_ListInstruments(t *testing.T) {
	t.Parallel()

	repo := &mockInstrumentRepository{
		listFn: func(_ context.Context, sector string) ([]entity.Instrument, error) {
			assert.Equal(t, "Financials", sector)
			return []entity.Instrument{
				{Ticker: "ACA.PA", Name: "Credit Agricole", Sector: "Financials"},
				{Ticker: "BNP.PA", Name: "BNP Paribas", Sector: "Financials"},
			}, nil
		},
	}
	uc := NewInstrumentUsecase(repo)

	instruments, err := uc.ListInstruments(context.Background(), "Financials")
	require.NoError(t, err)
	require.Len(t, instruments, 2)
	assert.Equal(t, "ACA.PA", instruments[0].Ticker)
}

func TestInstrumentUsecase_ListSectors(t *testing.T) {
	t.Parallel()

	repo := &mockInstrumentRepository{
		sectorsFn: func(context.Context) ([]string, error) {
			return []string{"Energy", "Financials"}, nil
		},
	}
	uc := NewInstrumentUsecase(repo)

	sectors, err := uc.ListSectors(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Energy", "Financials"}, sectors)
}

func TestInstrumentUsecase_SeedUniverse(t *testing.T) {
	t.Parallel()

	var seeded []entity.Instrument
	repo := &mockInstrumentRepository{
		seedFn: func(_ context.Context, instruments []entity.Instrument) error {
			seeded = instruments
			return nil
		},
	}
	uc := NewInstrumentUsecase(repo)

	universe := []entity.Instrument{{Ticker: "MC.PA", Name: "LVMH"}}
	require.NoError(t, uc.SeedUniverse(context.Background(), universe))
	assert.Equal(t, universe, seeded)

	repo.seedFn = func(context.Context, []entity.Instrument) error {
		return errors.New("connection refused")
	}
	assert.Error(t, uc.SeedUniverse(context.Background(), universe))
}
