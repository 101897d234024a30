package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"cac40_backend/internal/app/di"
	"cac40_backend/internal/config"
	baradapters "cac40_backend/internal/feature/bars/adapters"
	barsusecase "cac40_backend/internal/feature/bars/usecase"
	instrumentadapters "cac40_backend/internal/feature/instruments/adapters"
	instrumentsusecase "cac40_backend/internal/feature/instruments/usecase"
	"cac40_backend/internal/platform/db"
	"cac40_backend/internal/shared/ratelimiter"
)

func main() {
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config validation: %v", err)
	}

	gdb := db.OpenDB()
	instrumentRepo := instrumentadapters.NewInstrumentRepository(gdb)
	barRepo := baradapters.NewBarRepository(gdb)
	source := di.NewQuoteSource(cfg)
	limiter := ratelimiter.NewIntervalLimiter(cfg.MinRequestInterval())

	instrumentUC := instrumentsusecase.NewInstrumentUsecase(instrumentRepo)
	ingestUC := barsusecase.NewIngestUsecase(source, barRepo, limiter, cfg.Ingest.Workers, cfg.QuoteTimeout())

	run := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()

		// Register the configured universe first; existing tickers are kept.
		if err := instrumentUC.SeedUniverse(ctx, cfg.Instruments()); err != nil {
			slog.Error("failed to seed universe", "error", err)
			return
		}

		end := time.Now().UTC()
		start := end.AddDate(0, 0, -cfg.Ingest.LookbackDays)
		report := ingestUC.IngestRange(ctx, cfg.Tickers(), start, end)

		slog.Info("ingest run complete",
			"inserted", report.TotalInserted,
			"failed_tickers", report.FailedTickers,
		)
	}

	if cfg.Ingest.Cron == "" {
		run()
		return
	}

	// Daemon mode: re-run on the configured schedule until interrupted.
	c := cron.New()
	if _, err := c.AddFunc(cfg.Ingest.Cron, run); err != nil {
		log.Fatalf("register ingest schedule: %v", err)
	}
	c.Start()
	slog.Info("ingest scheduler started", "cron", cfg.Ingest.Cron)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	c.Stop()
	slog.Info("ingest scheduler stopped")
}
