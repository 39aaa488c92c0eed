package spare

import "errors"

// Sentinel errors returned by the calculation engine. Callers are expected
// to match them with errors.Is after unwrapping.
var (
	// ErrInvalidAmount reports a monetary input that is not a positive number.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidRate reports an annual rate outside the [0, 1] interval.
	ErrInvalidRate = errors.New("invalid rate")
	// ErrInvalidPeriod reports an unrecognized look-back window token.
	ErrInvalidPeriod = errors.New("invalid period")
)
