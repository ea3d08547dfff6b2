package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-spectro/spline"
)

// CorrectConfig controls the response smoothing in Correct.
type CorrectConfig struct {
	// Smoothing bounds the residual sum of squares of the response spline.
	Smoothing float64
	// Degree of the response spline.
	Degree int
}

// CorrectOption mutates a CorrectConfig.
type CorrectOption func(*CorrectConfig)

// DefaultCorrectConfig returns a linear spline with smoothing 20.
func DefaultCorrectConfig() CorrectConfig {
	return CorrectConfig{
		Smoothing: 20,
		Degree:    1,
	}
}

// WithSmoothing sets the response smoothing factor.
func WithSmoothing(s float64) CorrectOption {
	return func(cfg *CorrectConfig) {
		if s >= 0 {
			cfg.Smoothing = s
		}
	}
}

// WithDegree sets the response spline degree.
func WithDegree(k int) CorrectOption {
	return func(cfg *CorrectConfig) {
		if k > 0 {
			cfg.Degree = k
		}
	}
}

// ApplyCorrectOptions applies opts to the default config.
func ApplyCorrectOptions(opts ...CorrectOption) CorrectConfig {
	cfg := DefaultCorrectConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// Response estimates the instrument response of s against ref: the ratio
// s/ref smoothed by a spline over the wavelength axis and evaluated at the
// wavelengths of s.
func Response(s, ref Spectrum, opts ...CorrectOption) ([]float64, error) {
	cfg := ApplyCorrectOptions(opts...)

	ratio, err := DivideBy(s, ref)
	if err != nil {
		return nil, err
	}

	wl := s.Wavelengths()
	xs, ys := wl, ratio

	descending := len(xs) > 1 && xs[0] > xs[1]
	if descending {
		xs, ys = reversed(xs), reversed(ys)
	}

	sp, err := spline.Fit(xs, ys, spline.WithDegree(cfg.Degree), spline.WithSmoothing(cfg.Smoothing))
	if err != nil {
		return nil, fmt.Errorf("spectrum: response of %s: %w", s.Label(), err)
	}

	return sp.EvalAll(wl), nil
}

// Correct divides s by its smoothed response against ref. Samples where
// the response is zero are set to zero. The result is labelled
// "Corrected".
func Correct(s, ref Spectrum, opts ...CorrectOption) (*Sampled, error) {
	response, err := Response(s, ref, opts...)
	if err != nil {
		return nil, err
	}

	return &Sampled{
		label:       "Corrected",
		wavelengths: s.Wavelengths(),
		intensities: divide(s.Intensities(), response),
	}, nil
}
