// Package adapters provides the repository implementations for the
// instruments feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cac40_backend/internal/feature/instruments/domain/entity"
	"cac40_backend/internal/feature/instruments/usecase"
)

type instrumentGorm struct {
	db *gorm.DB
}

var _ usecase.InstrumentRepository = (*instrumentGorm)(nil)

// NewInstrumentRepository creates a new GORM-backed instrument repository.
func NewInstrumentRepository(db *gorm.DB) *instrumentGorm {
	return &instrumentGorm{db: db}
}

// InstrumentModel is the persistence model for one instrument of the universe.
type InstrumentModel struct {
	ID     uint   `gorm:"primaryKey"`
	Ticker string `gorm:"size:32;not null;uniqueIndex"`
	Name   string `gorm:"size:128;not null"`
	Sector string `gorm:"size:64;not null;index"`
}

func (InstrumentModel) TableName() string {
	return "companies"
}

func toEntity(m InstrumentModel) entity.Instrument {
	return entity.Instrument{Ticker: m.Ticker, Name: m.Name, Sector: m.Sector}
}

// List returns instruments ordered by ticker, filtered by sector when given.
func (r *instrumentGorm) List(ctx context.Context, sector string) ([]entity.Instrument, error) {
	q := r.db.WithContext(ctx).Order("ticker ASC")
	if sector != "" {
		q = q.Where("sector = ?", sector)
	}
	var rows []InstrumentModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Instrument, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}

// Sectors returns the distinct sector names, ordered alphabetically.
func (r *instrumentGorm) Sectors(ctx context.Context) ([]string, error) {
	var sectors []string
	if err := r.db.WithContext(ctx).
		Model(&InstrumentModel{}).
		Distinct().
		Order("sector ASC").
		Pluck("sector", &sectors).Error; err != nil {
		return nil, err
	}
	return sectors, nil
}

// Seed inserts the given instruments, skipping tickers that already exist.
func (r *instrumentGorm) Seed(ctx context.Context, instruments []entity.Instrument) error {
	if len(instruments) == 0 {
		return nil
	}
	ms := make([]InstrumentModel, 0, len(instruments))
	for _, e := range instruments {
		ms = append(ms, InstrumentModel{Ticker: e.Ticker, Name: e.Name, Sector: e.Sector})
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ticker"}},
		DoNothing: true,
	}).Create(&ms).Error
}

// FindByTicker returns the instrument for the given ticker, or
// usecase.ErrInstrumentNotFound when the ticker is not registered.
func (r *instrumentGorm) FindByTicker(ctx context.Context, ticker string) (entity.Instrument, error) {
	var m InstrumentModel
	err := r.db.WithContext(ctx).Where("ticker = ?", ticker).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.Instrument{}, usecase.ErrInstrumentNotFound
	}
	if err != nil {
		return entity.Instrument{}, err
	}
	return toEntity(m), nil
}

// Exists reports whether the ticker belongs to a registered instrument.
func (r *instrumentGorm) Exists(ctx context.Context, ticker string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&InstrumentModel{}).
		Where("ticker = ?", ticker).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count returns the number of registered instruments.
func (r *instrumentGorm) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&InstrumentModel{}).Count(&count).Error
	return count, err
}
