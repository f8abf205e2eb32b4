package unit

import "errors"

// Sentinel kinds for conversion errors. These allow errors.Is/As from callers.
var (
	ErrUnknownUnit      = errors.New("unknown unit")
	ErrIncompatibleUnits = errors.New("incompatible units")
)
