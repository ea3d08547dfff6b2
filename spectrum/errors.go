package spectrum

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is returned when wavelengths and intensities differ
	// in length.
	ErrLengthMismatch = errors.New("spectrum: wavelength and intensity lengths differ")
	// ErrTooFewSamples is returned when a spectrum has fewer than two
	// samples to interpolate between.
	ErrTooFewSamples = errors.New("spectrum: need at least two samples")
	// ErrNotMonotonic is returned when a wavelength axis is neither strictly
	// increasing nor strictly decreasing.
	ErrNotMonotonic = errors.New("spectrum: wavelengths not strictly monotonic")
	// ErrZeroMaximum is returned when scaling a spectrum whose peak is zero.
	ErrZeroMaximum = errors.New("spectrum: maximum intensity is zero")
)

func validateSamples(s Spectrum) ([]float64, []float64, error) {
	wl, in := s.Wavelengths(), s.Intensities()
	if len(wl) != len(in) {
		return nil, nil, fmt.Errorf("%w: %s has %d wavelengths, %d intensities", ErrLengthMismatch, s.Label(), len(wl), len(in))
	}

	return wl, in, nil
}
