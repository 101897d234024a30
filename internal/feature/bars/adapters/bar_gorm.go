// Package adapters provides the repository implementations for the bars feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	analyticsusecase "cac40_backend/internal/feature/analytics/usecase"
	"cac40_backend/internal/feature/bars/domain/entity"
	"cac40_backend/internal/feature/bars/usecase"
)

type barGorm struct {
	db *gorm.DB
}

var (
	_ usecase.BarRepository      = (*barGorm)(nil)
	_ usecase.BarWriter          = (*barGorm)(nil)
	_ analyticsusecase.BarReader = (*barGorm)(nil)
)

// NewBarRepository creates a new GORM-backed bar repository.
func NewBarRepository(db *gorm.DB) *barGorm {
	return &barGorm{db: db}
}

// BarModel is the persistence model for one daily OHLCV bar. The composite
// unique index on (ticker, date) is what makes ingestion idempotent: a
// colliding insert is resolved to DO NOTHING by the database, so exactly one
// row survives even under concurrent writers.
type BarModel struct {
	ID     uint      `gorm:"primaryKey"`
	Ticker string    `gorm:"size:32;not null;uniqueIndex:price_ticker_date,priority:1;index"`
	Date   time.Time `gorm:"not null;uniqueIndex:price_ticker_date,priority:2;index"`

	Open   float64 `gorm:"not null"`
	High   float64 `gorm:"not null"`
	Low    float64 `gorm:"not null"`
	Close  float64 `gorm:"not null"`
	Volume float64 `gorm:"not null;default:0"`
}

func (BarModel) TableName() string {
	return "stock_prices"
}

func toModel(e entity.Bar) BarModel {
	return BarModel{
		Ticker: e.Ticker,
		Date:   e.Date,
		Open:   e.Open,
		High:   e.High,
		Low:    e.Low,
		Close:  e.Close,
		Volume: e.Volume,
	}
}

func toEntity(m BarModel) entity.Bar {
	return entity.Bar{
		Ticker: m.Ticker,
		Date:   m.Date,
		Open:   m.Open,
		High:   m.High,
		Low:    m.Low,
		Close:  m.Close,
		Volume: m.Volume,
	}
}

// barConflict skips rows whose (ticker, date) already exists. Existing rows
// are never updated in place.
var barConflict = clause.OnConflict{
	Columns:   []clause.Column{{Name: "ticker"}, {Name: "date"}},
	DoNothing: true,
}

// InsertIgnore inserts one bar. It returns false when a bar with the same
// (ticker, date) already exists, leaving the stored row untouched.
func (r *barGorm) InsertIgnore(ctx context.Context, bar entity.Bar) (bool, error) {
	m := toModel(bar)
	res := r.db.WithContext(ctx).Clauses(barConflict).Create(&m)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// InsertIgnoreBatch inserts the bars of one ticker batch in a single
// statement and returns how many rows were actually inserted. Duplicates
// count as skipped, not as errors.
func (r *barGorm) InsertIgnoreBatch(ctx context.Context, bars []entity.Bar) (int64, error) {
	if len(bars) == 0 {
		return 0, nil
	}
	ms := make([]BarModel, 0, len(bars))
	for _, e := range bars {
		ms = append(ms, toModel(e))
	}
	res := r.db.WithContext(ctx).Clauses(barConflict).Create(&ms)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// FindRange returns bars for the ticker ordered by date descending, bounded
// inclusively by start and end when non-nil.
func (r *barGorm) FindRange(ctx context.Context, ticker string, start, end *time.Time, limit int) ([]entity.Bar, error) {
	q := r.db.WithContext(ctx).
		Where("ticker = ?", ticker).
		Order("date DESC")
	if start != nil {
		q = q.Where("date >= ?", *start)
	}
	if end != nil {
		q = q.Where("date <= ?", *end)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []BarModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Bar, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}

// Latest returns the bar with the maximum date for the ticker.
func (r *barGorm) Latest(ctx context.Context, ticker string) (entity.Bar, error) {
	var m BarModel
	err := r.db.WithContext(ctx).
		Where("ticker = ?", ticker).
		Order("date DESC").
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.Bar{}, usecase.ErrNoData
	}
	if err != nil {
		return entity.Bar{}, err
	}
	return toEntity(m), nil
}

// FirstCloseSince returns the close of the earliest bar with date >= cutoff.
func (r *barGorm) FirstCloseSince(ctx context.Context, ticker string, cutoff time.Time) (float64, error) {
	var m BarModel
	err := r.db.WithContext(ctx).
		Where("ticker = ? AND date >= ?", ticker, cutoff).
		Order("date ASC").
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, usecase.ErrNoData
	}
	if err != nil {
		return 0, err
	}
	return m.Close, nil
}

// CloseStatsSince aggregates closes and volume over date >= cutoff. With
// zero matching rows every aggregate is coalesced to 0 instead of NULL.
func (r *barGorm) CloseStatsSince(ctx context.Context, ticker string, cutoff time.Time) (analyticsusecase.CloseStats, error) {
	var out analyticsusecase.CloseStats
	err := r.db.WithContext(ctx).
		Model(&BarModel{}).
		Select("COALESCE(AVG(close), 0) AS avg_close, " +
			"COALESCE(MIN(close), 0) AS min_close, " +
			"COALESCE(MAX(close), 0) AS max_close, " +
			"COALESCE(SUM(volume), 0) AS total_volume, " +
			"COUNT(*) AS record_count").
		Where("ticker = ? AND date >= ?", ticker, cutoff).
		Scan(&out).Error
	return out, err
}

// Count returns the total number of stored bars.
func (r *barGorm) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&BarModel{}).Count(&count).Error
	return count, err
}
