package main

import (
	"log"
	"os"

	redisv9 "github.com/redis/go-redis/v9"

	"cac40_backend/internal/app/router"
	"cac40_backend/internal/config"
	analyticshandler "cac40_backend/internal/feature/analytics/transport/handler"
	analyticsusecase "cac40_backend/internal/feature/analytics/usecase"
	baradapters "cac40_backend/internal/feature/bars/adapters"
	barhandler "cac40_backend/internal/feature/bars/transport/handler"
	barsusecase "cac40_backend/internal/feature/bars/usecase"
	instrumentadapters "cac40_backend/internal/feature/instruments/adapters"
	instrumenthandler "cac40_backend/internal/feature/instruments/transport/handler"
	instrumentsusecase "cac40_backend/internal/feature/instruments/usecase"
	"cac40_backend/internal/platform/cache"
	infradb "cac40_backend/internal/platform/db"
	platformhandler "cac40_backend/internal/platform/http/handler"
	infraredis "cac40_backend/internal/platform/redis"
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

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	instrumentRepo := instrumentadapters.NewInstrumentRepository(db)
	barRepo := baradapters.NewBarRepository(db)

	// Range reads go through Redis; entries expire at the next market open.
	ttl := cache.TimeUntilNextOpen()
	cachedBarRepo := cache.NewCachingBarRepository(rdb, ttl, barRepo, "bars")

	// Usecase
	instrumentUC := instrumentsusecase.NewInstrumentUsecase(instrumentRepo)
	barsUC := barsusecase.NewBarsUsecase(cachedBarRepo, instrumentRepo)
	analyticsUC := analyticsusecase.NewAnalyticsUsecase(barRepo, instrumentRepo)

	// Handler
	healthH := platformhandler.NewHealthHandler(instrumentRepo, barRepo)
	instrumentH := instrumenthandler.NewInstrumentHandler(instrumentUC)
	barH := barhandler.NewBarHandler(barsUC)
	analyticsH := analyticshandler.NewAnalyticsHandler(analyticsUC)

	r := router.NewRouter(healthH, instrumentH, barH, analyticsH)

	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatal(err)
	}
}
