package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"cac40_backend/internal/feature/bars/domain/entity"
	"cac40_backend/internal/feature/bars/usecase"
	"cac40_backend/internal/platform/externalapi/yahoo/dto"
)

// Client fetches daily OHLCV bars from the Yahoo Finance chart API.
type Client struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that Client implements the ingestion QuoteSource.
var _ usecase.QuoteSource = (*Client)(nil)

// NewClient creates a new Client with the given configuration and HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &Client{cfg: cfg, client: client}
}

// FetchDailyBars fetches the daily bars of one ticker for the half-open
// range [start, end). An empty result is returned as an empty slice, not an
// error. Bars come back in chronological order with dates normalized to
// midnight UTC; null sessions are dropped.
func (c *Client) FetchDailyBars(ctx context.Context, ticker string, start, end time.Time) ([]entity.Bar, error) {
	q := url.Values{}
	q.Set("interval", "1d")
	q.Set("period1", strconv.FormatInt(start.Unix(), 10))
	q.Set("period2", strconv.FormatInt(end.Unix(), 10))
	q.Set("events", "history")

	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s",
		strings.TrimRight(c.cfg.BaseURL, "/"), url.PathEscape(ticker), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	// Yahoo rejects requests without a browser-like user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("yahoo http %d", res.StatusCode)
	}

	var body dto.ChartResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if body.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", body.Chart.Error.Description)
	}
	if len(body.Chart.Result) == 0 || len(body.Chart.Result[0].Indicators.Quote) == 0 {
		// No trading days in the requested range.
		return []entity.Bar{}, nil
	}

	result := body.Chart.Result[0]
	quote := result.Indicators.Quote[0]

	bars := make([]entity.Bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		o := deref(quote.Open, i)
		h := deref(quote.High, i)
		l := deref(quote.Low, i)
		cl := deref(quote.Close, i)
		if o == 0 && h == 0 && l == 0 && cl == 0 {
			// Null session (holiday, halted listing).
			continue
		}

		day := toUTCDay(time.Unix(ts, 0))
		// Yahoo rounds period bounds to trading sessions; re-apply [start, end).
		if day.Before(toUTCDay(start)) || !day.Before(end) {
			continue
		}

		bars = append(bars, entity.Bar{
			Ticker: ticker,
			Date:   day,
			Open:   o,
			High:   h,
			Low:    l,
			Close:  cl,
			Volume: deref(quote.Volume, i),
		})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	return bars, nil
}

func deref(vs []*float64, i int) float64 {
	if i >= len(vs) || vs[i] == nil {
		return 0
	}
	return *vs[i]
}

// toUTCDay truncates a timestamp to midnight UTC of its calendar day.
func toUTCDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
