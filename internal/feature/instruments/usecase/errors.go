// Package usecase implements the business logic for instrument operations.
package usecase

import "errors"

// ErrInstrumentNotFound is returned when a ticker does not belong to any
// registered instrument. It is distinct from a registered ticker that
// simply has no price data yet.
var ErrInstrumentNotFound = errors.New("instrument not found")
