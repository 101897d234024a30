// Package usecase implements the business logic for price-bar operations.
package usecase

import "errors"

// ErrNoData is returned when a ticker is registered but the store holds no
// bar satisfying the request. It is deliberately distinct from an unknown
// ticker (instruments usecase ErrInstrumentNotFound).
var ErrNoData = errors.New("no price data available")
