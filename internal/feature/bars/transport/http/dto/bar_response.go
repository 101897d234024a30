// Package dto defines response objects for the price endpoints.
package dto

// BarResponse is one daily OHLCV bar.
type BarResponse struct {
	Ticker string  `json:"ticker"`
	Date   string  `json:"date"` // 2006-01-02
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}
