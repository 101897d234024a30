package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	// A missing file still yields a runnable configuration.
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 30, cfg.QuoteSource.TimeoutSeconds)
	assert.Equal(t, 730, cfg.Ingest.LookbackDays)
	assert.Equal(t, 4, cfg.Ingest.Workers)
	assert.Equal(t, 500, cfg.Ingest.MinRequestIntervalMS)
	assert.Empty(t, cfg.Ingest.Cron)
	assert.Len(t, cfg.Universe, 34, "built-in CAC 40 universe")
	assert.NoError(t, cfg.Validate())
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9090"
quote_source:
  base_url: "http://localhost:8000"
  timeout_seconds: 10
ingest:
  lookback_days: 30
  workers: 2
  min_request_interval_ms: 250
  cron: "0 18 * * 1-5"
universe:
  - ticker: MC.PA
    name: LVMH
    sector: Consumer Discretionary
  - ticker: AIR.PA
    name: Airbus
    sector: Industrials
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "http://localhost:8000", cfg.QuoteSource.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.QuoteTimeout())
	assert.Equal(t, 30, cfg.Ingest.LookbackDays)
	assert.Equal(t, 2, cfg.Ingest.Workers)
	assert.Equal(t, 250*time.Millisecond, cfg.MinRequestInterval())
	assert.Equal(t, "0 18 * * 1-5", cfg.Ingest.Cron)
	assert.Equal(t, []string{"MC.PA", "AIR.PA"}, cfg.Tickers())

	instruments := cfg.Instruments()
	require.Len(t, instruments, 2)
	assert.Equal(t, "LVMH", instruments[0].Name)
	assert.Equal(t, "Industrials", instruments[1].Sector)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "server: [not a mapping")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9090"
ingest:
  lookback_days: 30
`)
	t.Setenv("SERVER_ADDR", ":7070")
	t.Setenv("QUOTE_BASE_URL", "http://stub:9000")
	t.Setenv("INGEST_LOOKBACK_DAYS", "7")
	t.Setenv("INGEST_WORKERS", "3")
	t.Setenv("INGEST_CRON", "30 17 * * *")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr, "environment wins over the file")
	assert.Equal(t, "http://stub:9000", cfg.QuoteSource.BaseURL)
	assert.Equal(t, 7, cfg.Ingest.LookbackDays)
	assert.Equal(t, 3, cfg.Ingest.Workers)
	assert.Equal(t, "30 17 * * *", cfg.Ingest.Cron)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		universe []InstrumentConfig
		lookback int
		wantErr  string
	}{
		{
			name:     "valid",
			universe: []InstrumentConfig{{Ticker: "MC.PA"}, {Ticker: "AIR.PA"}},
			lookback: 30,
		},
		{
			name:     "empty universe",
			universe: nil,
			lookback: 30,
			wantErr:  "universe is empty",
		},
		{
			name:     "empty ticker",
			universe: []InstrumentConfig{{Ticker: "MC.PA"}, {Name: "Nameless"}},
			lookback: 30,
			wantErr:  "ticker is empty",
		},
		{
			name:     "duplicate ticker",
			universe: []InstrumentConfig{{Ticker: "MC.PA"}, {Ticker: "MC.PA"}},
			lookback: 30,
			wantErr:  "duplicate ticker",
		},
		{
			name:     "non-positive lookback",
			universe: []InstrumentConfig{{Ticker: "MC.PA"}},
			lookback: 0,
			wantErr:  "lookback_days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Universe: tt.universe}
			cfg.Ingest.LookbackDays = tt.lookback

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
