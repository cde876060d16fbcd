package skibot

import (
	"errors"
	"math"
)

var (
	// ErrNonFiniteInput indicates NaN or Inf in numeric input.
	ErrNonFiniteInput = errors.New("non-finite numeric input")
	// ErrNonPositiveStep indicates a zero or negative step duration.
	ErrNonPositiveStep = errors.New("non-positive step duration")
)

// Finite reports whether all values are finite numbers. Callers
// validating their own inputs (e.g. arena bounds) use it to tell
// non-finite input apart from out-of-range input.
func Finite(vals ...float64) bool {
	return finite(vals...)
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
