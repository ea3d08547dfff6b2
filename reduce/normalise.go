package reduce

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Normalise divides data by its maximum, returning the scaled copy and the
// maximum.
func Normalise(data []float64) ([]float64, float64, error) {
	if len(data) == 0 {
		return nil, 0, ErrNoData
	}

	peak := floats.Max(data)
	if peak == 0 {
		return nil, 0, ErrZeroMaximum
	}

	out, err := NormaliseTo(data, peak)
	if err != nil {
		return nil, 0, err
	}

	return out, peak, nil
}

// NormaliseTo is Normalise with an explicit divisor.
func NormaliseTo(data []float64, peak float64) ([]float64, error) {
	if peak == 0 {
		return nil, fmt.Errorf("%w: explicit divisor", ErrZeroMaximum)
	}

	out := make([]float64, len(data))
	vecmath.ScaleBlock(out, data, 1/peak)

	return out, nil
}
