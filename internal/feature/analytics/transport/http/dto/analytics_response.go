// Package dto defines response objects for the analytics endpoints.
package dto

// StatisticsResponse summarizes one ticker over a trailing window.
type StatisticsResponse struct {
	Ticker      string  `json:"ticker"`
	Name        string  `json:"name"`
	AvgClose    float64 `json:"avg_close"`
	MinClose    float64 `json:"min_close"`
	MaxClose    float64 `json:"max_close"`
	TotalVolume float64 `json:"total_volume"`
	RecordCount int64   `json:"record_count"`
}

// PerformerResponse is one entry of the performance ranking.
type PerformerResponse struct {
	Ticker         string  `json:"ticker"`
	Name           string  `json:"name"`
	Sector         string  `json:"sector"`
	PerformancePct float64 `json:"performance"`
	StartPrice     float64 `json:"start_price"`
	EndPrice       float64 `json:"end_price"`
}

// TopPerformersResponse wraps the ranking with the window it covers.
type TopPerformersResponse struct {
	PeriodDays    int                 `json:"period_days"`
	TopPerformers []PerformerResponse `json:"top_performers"`
}
