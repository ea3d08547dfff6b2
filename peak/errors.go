package peak

import "errors"

var (
	// ErrEmptyTrace is returned for a trace without samples.
	ErrEmptyTrace = errors.New("peak: empty trace")
	// ErrInsufficientSamples is returned when the fit window is not wider
	// than the polynomial degree or the window is at least as wide as the
	// trace.
	ErrInsufficientSamples = errors.New("peak: insufficient samples for fit window")

	errInvalidHalfWidth = errors.New("peak: half-width must be positive")
	errInvalidDegree    = errors.New("peak: degree must be non-negative")
	errInvalidSamples   = errors.New("peak: resample count must be at least 2")
)

func validateConfig(cfg Config) error {
	switch {
	case cfg.HalfWidth < 1:
		return errInvalidHalfWidth
	case cfg.Degree < 0:
		return errInvalidDegree
	case cfg.Samples < 2:
		return errInvalidSamples
	}

	return nil
}
