package reduce

import "errors"

var (
	// ErrEmptyRange is returned when a wavelength crop selects no samples.
	ErrEmptyRange = errors.New("reduce: wavelength range selects no samples")
	// ErrZeroMaximum is returned when normalising data whose peak is zero.
	ErrZeroMaximum = errors.New("reduce: maximum is zero")
	// ErrNotAscending is returned for a calibration with non-positive
	// dispersion where an ascending wavelength axis is required.
	ErrNotAscending = errors.New("reduce: wavelengths must ascend with pixel")
	// ErrNoData is returned for empty input.
	ErrNoData = errors.New("reduce: no data")
)
