package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"cac40_backend/internal/feature/bars/domain/entity"
	"cac40_backend/internal/shared/ratelimiter"
)

const (
	// DefaultWorkers is the number of concurrent fetch workers.
	DefaultWorkers = 4
	// MaxWorkers caps the number of in-flight requests against the quote source.
	MaxWorkers = 5
	// DefaultFetchTimeout bounds a single quote-source request.
	DefaultFetchTimeout = 30 * time.Second
)

// QuoteSource is the abstract external source of daily bars. It may return
// an empty slice (no trading days in range) without error.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type QuoteSource interface {
	FetchDailyBars(ctx context.Context, ticker string, start, end time.Time) ([]entity.Bar, error)
}

// BarWriter abstracts the write side of the time-series store. Inserts are
// idempotent: bars colliding with an existing (ticker, date) are skipped and
// not counted.
type BarWriter interface {
	InsertIgnoreBatch(ctx context.Context, bars []entity.Bar) (int64, error)
}

// Report aggregates the outcome of one ingestion run. Failures are recorded
// here instead of being raised, so one bad ticker never hides its siblings.
type Report struct {
	InsertedByTicker map[string]int64
	FailedTickers    []string
	TotalInserted    int64
}

// IngestUsecase pulls daily bars from the quote source and persists the ones
// not yet stored. Fetches run on a small worker pool; every request first
// passes a shared rate limiter that enforces a minimum spacing between calls
// to the source regardless of concurrency.
type IngestUsecase struct {
	source  QuoteSource
	bars    BarWriter
	limiter ratelimiter.Limiter
	workers int
	timeout time.Duration
}

// NewIngestUsecase creates a new IngestUsecase. workers is clamped to
// [1, MaxWorkers]; zero means DefaultWorkers. timeout bounds each fetch,
// zero means DefaultFetchTimeout.
func NewIngestUsecase(source QuoteSource, bars BarWriter, limiter ratelimiter.Limiter, workers int, timeout time.Duration) *IngestUsecase {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if workers > MaxWorkers {
		workers = MaxWorkers
	}
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &IngestUsecase{source: source, bars: bars, limiter: limiter, workers: workers, timeout: timeout}
}

// ingestOne fetches [start, end) for one ticker and stores the bars as a
// single batch. The returned count only includes newly inserted rows.
func (iu *IngestUsecase) ingestOne(ctx context.Context, ticker string, start, end time.Time) (int64, error) {
	if err := iu.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	fetchCtx, cancel := context.WithTimeout(ctx, iu.timeout)
	defer cancel()

	bars, err := iu.source.FetchDailyBars(fetchCtx, ticker, start, end)
	if err != nil {
		return 0, fmt.Errorf("fetch %s: %w", ticker, err)
	}
	if len(bars) == 0 {
		// No trading days in range. Not an error.
		return 0, nil
	}

	for i := range bars {
		bars[i].Ticker = ticker
	}
	inserted, err := iu.bars.InsertIgnoreBatch(ctx, bars)
	if err != nil {
		return 0, fmt.Errorf("store %s: %w", ticker, err)
	}
	return inserted, nil
}

// IngestRange fetches and persists bars in [start, end) for every given
// ticker. A failing ticker is logged, recorded in the report and retried on
// the next run; it never aborts the batch.
func (iu *IngestUsecase) IngestRange(ctx context.Context, tickers []string, start, end time.Time) Report {
	report := Report{InsertedByTicker: make(map[string]int64, len(tickers))}

	var mu sync.Mutex
	var wg sync.WaitGroup
	jobs := make(chan string)

	for i := 0; i < iu.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ticker := range jobs {
				inserted, err := iu.ingestOne(ctx, ticker, start, end)
				mu.Lock()
				if err != nil {
					slog.Error("failed to ingest bars", "ticker", ticker, "error", err)
					report.FailedTickers = append(report.FailedTickers, ticker)
				} else {
					report.InsertedByTicker[ticker] = inserted
					report.TotalInserted += inserted
				}
				mu.Unlock()
			}
		}()
	}

feed:
	for i, ticker := range tickers {
		select {
		case jobs <- ticker:
		case <-ctx.Done():
			// Remaining tickers are retried on the next scheduled run.
			mu.Lock()
			report.FailedTickers = append(report.FailedTickers, tickers[i:]...)
			mu.Unlock()
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	sort.Strings(report.FailedTickers)
	slog.Info("ingestion finished",
		"tickers", len(tickers),
		"inserted", report.TotalInserted,
		"failed", len(report.FailedTickers),
	)
	return report
}
