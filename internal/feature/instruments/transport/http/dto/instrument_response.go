// Package dto defines response objects for the instruments endpoints.
package dto

// InstrumentResponse is one instrument of the universe.
type InstrumentResponse struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name"`
	Sector string `json:"sector"`
}

// SectorListResponse wraps the distinct sector names.
type SectorListResponse struct {
	Sectors []string `json:"sectors"`
}
