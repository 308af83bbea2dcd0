package drt

import "errors"

// Sentinel errors for drt package.
var (
	// ErrUnknownProcess is returned when no table is registered under a
	// process name.
	ErrUnknownProcess = errors.New("drt: unknown process")

	// ErrInvalidRules is returned when a decoded table is incomplete or
	// has non-positive lengths.
	ErrInvalidRules = errors.New("drt: invalid rules")
)
