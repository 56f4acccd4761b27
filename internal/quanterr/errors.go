// Package quanterr defines the closed error taxonomy shared by every
// calculation package in the engine.
//
// Two kinds exist:
//   - ErrInvalidInput: the caller handed the engine something outside the
//     domain of the function (non-positive price, mismatched arrays, ...).
//   - ErrUndefined: the inputs are individually valid but the result is
//     mathematically undefined (singular matrix, zero denominator).
//
// Non-convergence of iterative solvers is deliberately NOT an error; solvers
// return their last estimate together with a Converged flag.
package quanterr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks domain violations detected at the call boundary.
	ErrInvalidInput = errors.New("invalid domain input")

	// ErrUndefined marks results that are mathematically undefined.
	ErrUndefined = errors.New("mathematically undefined")
)

// Positive returns ErrInvalidInput when v is not strictly positive.
func Positive(name string, v float64) error {
	if v <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidInput, name, v)
	}
	return nil
}

// NotEmpty returns ErrInvalidInput when a required slice is empty.
func NotEmpty(name string, n int) error {
	if n == 0 {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidInput, name)
	}
	return nil
}

// SameLen returns ErrInvalidInput when two parallel arrays differ in length.
func SameLen(nameA string, lenA int, nameB string, lenB int) error {
	if lenA != lenB {
		return fmt.Errorf("%w: %s has length %d but %s has length %d",
			ErrInvalidInput, nameA, lenA, nameB, lenB)
	}
	return nil
}

// InUnitInterval returns ErrInvalidInput when v is outside the open (0,1)
// interval. Used for confidence levels and rates expressed as fractions.
func InUnitInterval(name string, v float64) error {
	if v <= 0 || v >= 1 {
		return fmt.Errorf("%w: %s must be in (0,1), got %v", ErrInvalidInput, name, v)
	}
	return nil
}
