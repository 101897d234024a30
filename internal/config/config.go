// Package config loads application configuration from YAML and environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"cac40_backend/internal/feature/instruments/domain/entity"
)

// InstrumentConfig is one universe entry of the config file.
type InstrumentConfig struct {
	Ticker string `yaml:"ticker"`
	Name   string `yaml:"name"`
	Sector string `yaml:"sector"`
}

// Config holds all application configuration. The Universe field is the
// explicit, immutable instrument list passed to the components that need it
// at construction time; there is no ambient global universe.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	QuoteSource struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"quote_source"`
	Ingest struct {
		LookbackDays         int    `yaml:"lookback_days"`
		Workers              int    `yaml:"workers"`
		MinRequestIntervalMS int    `yaml:"min_request_interval_ms"`
		Cron                 string `yaml:"cron"` // empty: run once and exit
	} `yaml:"ingest"`
	Universe []InstrumentConfig `yaml:"universe"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is fine: defaults still yield a
// runnable configuration with the built-in CAC 40 universe.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("QUOTE_BASE_URL"); v != "" {
		cfg.QuoteSource.BaseURL = v
	}
	if v := os.Getenv("INGEST_LOOKBACK_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			cfg.Ingest.LookbackDays = days
		}
	}
	if v := os.Getenv("INGEST_WORKERS"); v != "" {
		if workers, err := strconv.Atoi(v); err == nil {
			cfg.Ingest.Workers = workers
		}
	}
	if v := os.Getenv("INGEST_CRON"); v != "" {
		cfg.Ingest.Cron = v
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.QuoteSource.TimeoutSeconds <= 0 {
		cfg.QuoteSource.TimeoutSeconds = 30
	}
	if cfg.Ingest.LookbackDays <= 0 {
		cfg.Ingest.LookbackDays = 730 // two years of history
	}
	if cfg.Ingest.Workers <= 0 {
		cfg.Ingest.Workers = 4
	}
	if cfg.Ingest.MinRequestIntervalMS <= 0 {
		cfg.Ingest.MinRequestIntervalMS = 500
	}
	if len(cfg.Universe) == 0 {
		cfg.Universe = defaultUniverse
	}

	return cfg, nil
}

// Validate checks the configuration for contradictions before anything runs.
func (c *Config) Validate() error {
	if len(c.Universe) == 0 {
		return fmt.Errorf("universe is empty")
	}
	seen := make(map[string]struct{}, len(c.Universe))
	for i, inst := range c.Universe {
		if inst.Ticker == "" {
			return fmt.Errorf("universe entry %d: ticker is empty", i)
		}
		if _, ok := seen[inst.Ticker]; ok {
			return fmt.Errorf("universe entry %d: duplicate ticker %q", i, inst.Ticker)
		}
		seen[inst.Ticker] = struct{}{}
	}
	if c.Ingest.LookbackDays <= 0 {
		return fmt.Errorf("ingest.lookback_days must be positive")
	}
	return nil
}

// QuoteTimeout returns the quote-source request timeout as a duration.
func (c *Config) QuoteTimeout() time.Duration {
	return time.Duration(c.QuoteSource.TimeoutSeconds) * time.Second
}

// MinRequestInterval returns the minimum spacing between quote-source requests.
func (c *Config) MinRequestInterval() time.Duration {
	return time.Duration(c.Ingest.MinRequestIntervalMS) * time.Millisecond
}

// Instruments converts the configured universe into domain entities.
func (c *Config) Instruments() []entity.Instrument {
	out := make([]entity.Instrument, 0, len(c.Universe))
	for _, inst := range c.Universe {
		out = append(out, entity.Instrument{Ticker: inst.Ticker, Name: inst.Name, Sector: inst.Sector})
	}
	return out
}

// Tickers returns the tickers of the configured universe, in config order.
func (c *Config) Tickers() []string {
	out := make([]string, 0, len(c.Universe))
	for _, inst := range c.Universe {
		out = append(out, inst.Ticker)
	}
	return out
}
