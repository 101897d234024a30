// Package entity defines the domain models for the bars feature.
package entity

import "time"

// Bar represents one day's OHLCV (Open, High, Low, Close, Volume) record
// for a single ticker. The pair (Ticker, Date) is unique across the store.
type Bar struct {
	Ticker string    // Ticker of the instrument this bar belongs to
	Date   time.Time // Trading day, normalized to midnight UTC
	Open   float64   // Opening price
	High   float64   // Highest price of the day
	Low    float64   // Lowest price of the day
	Close  float64   // Closing price
	Volume float64   // Trading volume; the source reports fractional volume for some listings
}
