package spline

import (
	"errors"
	"math"
)

var (
	// ErrTooFewPoints is returned when there are not more samples than the
	// spline degree.
	ErrTooFewPoints = errors.New("spline: too few points for degree")
	// ErrNotIncreasing is returned when x is not strictly increasing.
	ErrNotIncreasing = errors.New("spline: x must be strictly increasing")
	// ErrInvalidDegree is returned for degrees outside 1..5.
	ErrInvalidDegree = errors.New("spline: degree must be in 1..5")
	// ErrLengthMismatch is returned when x, y and weights differ in length.
	ErrLengthMismatch = errors.New("spline: length mismatch")

	errInvalidWeight    = errors.New("spline: weights must be positive and finite")
	errInvalidSmoothing = errors.New("spline: smoothing must be non-negative")
)

func validateData(x, y, w []float64, k int) error {
	if k < 1 || k > 5 {
		return ErrInvalidDegree
	}

	if len(x) != len(y) || (w != nil && len(w) != len(x)) {
		return ErrLengthMismatch
	}

	if len(x) <= k {
		return ErrTooFewPoints
	}

	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return ErrNotIncreasing
		}
	}

	for _, v := range w {
		if !(v > 0) || math.IsInf(v, 0) {
			return errInvalidWeight
		}
	}

	return nil
}
