package spectrum

import (
	"fmt"
	"math"
	"slices"

	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// Max returns the largest intensity of s, or NaN for an empty spectrum.
func Max(s Spectrum) float64 {
	in := s.Intensities()
	if len(in) == 0 {
		return math.NaN()
	}

	return floats.Max(in)
}

// ScaleTo returns a copy of s scaled so that its peak equals target,
// together with the applied factor.
func ScaleTo(s Spectrum, target float64) (*Sampled, float64, error) {
	wl, in, err := validateSamples(s)
	if err != nil {
		return nil, 0, err
	}

	peak := Max(s)
	if peak == 0 || math.IsNaN(peak) {
		return nil, 0, fmt.Errorf("%w: %s", ErrZeroMaximum, s.Label())
	}

	factor := target / peak
	scaled := make([]float64, len(in))
	vecmath.ScaleBlock(scaled, in, factor)

	return &Sampled{label: s.Label(), wavelengths: slices.Clone(wl), intensities: scaled}, factor, nil
}

// ScaleToMatch scales ref so that its peak equals the peak of observed.
func ScaleToMatch(ref, observed Spectrum) (*Sampled, float64, error) {
	return ScaleTo(ref, Max(observed))
}

// InterpolateTo resamples src onto the wavelengths of target by piecewise
// linear interpolation. Wavelengths outside the range of src take the value
// of the nearest end sample. Evaluating at src's own wavelengths returns its
// intensities unchanged.
func InterpolateTo(src, target Spectrum) ([]float64, error) {
	pl, err := linear(src)
	if err != nil {
		return nil, err
	}

	at := target.Wavelengths()
	out := make([]float64, len(at))

	for i, x := range at {
		out[i] = pl.Predict(x)
	}

	return out, nil
}

// DivideBy divides s by ref resampled onto the wavelengths of s. Samples
// where the resampled reference is zero are set to zero.
func DivideBy(s, ref Spectrum) ([]float64, error) {
	_, in, err := validateSamples(s)
	if err != nil {
		return nil, err
	}

	den, err := InterpolateTo(ref, s)
	if err != nil {
		return nil, err
	}

	return divide(in, den), nil
}

func divide(num, den []float64) []float64 {
	out := make([]float64, len(num))
	for i := range num {
		if den[i] != 0 {
			out[i] = num[i] / den[i]
		}
	}

	return out
}

// linear fits a piecewise linear predictor over src, reversing descending
// axes first.
func linear(src Spectrum) (*interp.PiecewiseLinear, error) {
	xs, ys, err := validateSamples(src)
	if err != nil {
		return nil, err
	}

	if len(xs) < 2 {
		return nil, fmt.Errorf("%w: %s has %d", ErrTooFewSamples, src.Label(), len(xs))
	}

	if xs[0] > xs[1] {
		xs, ys = reversed(xs), reversed(ys)
	}

	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return nil, fmt.Errorf("%w: %s at index %d", ErrNotMonotonic, src.Label(), i)
		}
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("spectrum: interpolate %s: %w", src.Label(), err)
	}

	return &pl, nil
}

func reversed(x []float64) []float64 {
	out := slices.Clone(x)
	slices.Reverse(out)

	return out
}
