package calib

import "errors"

var (
	// ErrInvalidCalibrationFormat is returned when a calibration string does
	// not match either the two-anchor or the anchor-plus-rate form.
	ErrInvalidCalibrationFormat = errors.New("calib: invalid calibration format")

	// ErrUnknownLineName is returned when a wavelength token is neither a
	// known line name nor a number.
	ErrUnknownLineName = errors.New("calib: unknown line name")

	// ErrDivisionByZero is returned for two anchors that share the same pixel.
	ErrDivisionByZero = errors.New("calib: anchors share the same pixel")

	errNonFinite = errors.New("calib: non-finite value")
)

func validateReference(r Reference) error {
	if !isFinite(r.Pixel) || !isFinite(r.Angstrom) {
		return errNonFinite
	}

	return nil
}
