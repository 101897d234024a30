package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"cac40_backend/internal/feature/instruments/domain/entity"
	"cac40_backend/internal/feature/instruments/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&InstrumentModel{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func seedUniverse(t *testing.T, repo *instrumentGorm) {
	t.Helper()

	err := repo.Seed(context.Background(), []entity.Instrument{
		{Ticker: "MC.PA", Name: "LVMH", Sector: "Consumer Discretionary"},
		{Ticker: "AIR.PA", Name: "Airbus", Sector: "Industrials"},
		{Ticker: "BNP.PA", Name: "BNP Paribas", Sector: "Financials"},
		{Ticker: "CS.PA", Name: "AXA", Sector: "Financials"},
	})
	require.NoError(t, err, "failed to seed universe")
}

func TestInstrumentGorm_Seed_Idempotent(t *testing.T) {
	t.Parallel()

	repo := NewInstrumentRepository(setupTestDB(t))
	ctx := context.Background()

	seedUniverse(t, repo)
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)

	// Re-seeding with an overlapping universe keeps existing rows untouched.
	err = repo.Seed(ctx, []entity.Instrument{
		{Ticker: "MC.PA", Name: "renamed", Sector: "changed"},
		{Ticker: "OR.PA", Name: "L'Oréal", Sector: "Consumer Staples"},
	})
	require.NoError(t, err)

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count, "only the new ticker should be added")

	inst, err := repo.FindByTicker(ctx, "MC.PA")
	require.NoError(t, err)
	assert.Equal(t, "LVMH", inst.Name, "existing instrument must not be mutated")
}

func TestInstrumentGorm_List(t *testing.T) {
	t.Parallel()

	repo := NewInstrumentRepository(setupTestDB(t))
	seedUniverse(t, repo)
	ctx := context.Background()

	tests := []struct {
		name        string
		sector      string
		wantTickers []string
	}{
		{
			name:        "all instruments ordered by ticker",
			sector:      "",
			wantTickers: []string{"AIR.PA", "BNP.PA", "CS.PA", "MC.PA"},
		},
		{
			name:        "sector filter",
			sector:      "Financials",
			wantTickers: []string{"BNP.PA", "CS.PA"},
		},
		{
			name:        "unknown sector is empty",
			sector:      "Energy",
			wantTickers: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instruments, err := repo.List(ctx, tt.sector)
			require.NoError(t, err)

			tickers := make([]string, 0, len(instruments))
			for _, inst := range instruments {
				tickers = append(tickers, inst.Ticker)
			}
			assert.Equal(t, tt.wantTickers, tickers)
		})
	}
}

func TestInstrumentGorm_Sectors(t *testing.T) {
	t.Parallel()

	repo := NewInstrumentRepository(setupTestDB(t))
	seedUniverse(t, repo)

	sectors, err := repo.Sectors(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Consumer Discretionary", "Financials", "Industrials"}, sectors,
		"sectors should be distinct and sorted")
}

func TestInstrumentGorm_FindByTicker(t *testing.T) {
	t.Parallel()

	repo := NewInstrumentRepository(setupTestDB(t))
	seedUniverse(t, repo)
	ctx := context.Background()

	inst, err := repo.FindByTicker(ctx, "AIR.PA")
	require.NoError(t, err)
	assert.Equal(t, "Airbus", inst.Name)
	assert.Equal(t, "Industrials", inst.Sector)

	_, err = repo.FindByTicker(ctx, "ZZZ.XX")
	assert.ErrorIs(t, err, usecase.ErrInstrumentNotFound)
}

func TestInstrumentGorm_Exists(t *testing.T) {
	t.Parallel()

	repo := NewInstrumentRepository(setupTestDB(t))
	seedUniverse(t, repo)
	ctx := context.Background()

	ok, err := repo.Exists(ctx, "MC.PA")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(ctx, "ZZZ.XX")
	require.NoError(t, err)
	assert.False(t, ok)
}
