// Package entity defines the domain models for the instruments feature.
package entity

// Instrument is one tracked listing of the universe: a ticker with its
// display name and sector classification. Instruments are created when
// the universe is seeded and never mutated at runtime.
type Instrument struct {
	Ticker string // Quote-source ticker (e.g., "MC.PA", "AIR.PA")
	Name   string // Display name (e.g., "LVMH")
	Sector string // Sector classification (e.g., "Financials")
}
