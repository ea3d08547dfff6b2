package calib

import (
	"fmt"
	"strconv"
	"strings"
)

// LineResolver resolves named spectral lines to wavelengths in angstrom.
type LineResolver interface {
	Lookup(key string) (float64, bool)
}

// Parse builds a calibration from its textual form. The number of
// comma-separated tokens selects the variant:
//
//	"p1:w1,p2:w2"  DoublePoint
//	"p,w,rate"     SinglePoint
//
// Wavelength tokens may name a line known to lines; lines may be nil.
func Parse(s string, lines LineResolver) (Calibration, error) {
	tokens := strings.Split(s, ",")
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}

	switch len(tokens) {
	case 2:
		r1, err := parseAnchor(tokens[0], lines)
		if err != nil {
			return nil, err
		}

		r2, err := parseAnchor(tokens[1], lines)
		if err != nil {
			return nil, err
		}

		return NewDoublePoint(r1, r2)
	case 3:
		pixel, err := parseNumber(tokens[0])
		if err != nil {
			return nil, err
		}

		wl, err := parseWavelength(tokens[1], lines)
		if err != nil {
			return nil, err
		}

		rate, err := parseNumber(tokens[2])
		if err != nil {
			return nil, err
		}

		return NewSinglePoint(Reference{Pixel: pixel, Angstrom: wl}, rate)
	default:
		return nil, fmt.Errorf("%w: %q has %d fields, want 2 or 3", ErrInvalidCalibrationFormat, s, len(tokens))
	}
}

func parseAnchor(token string, lines LineResolver) (Reference, error) {
	pixelText, wlText, ok := strings.Cut(token, ":")
	if !ok || strings.Contains(wlText, ":") {
		return Reference{}, fmt.Errorf("%w: anchor %q is not pixel:wavelength", ErrInvalidCalibrationFormat, token)
	}

	pixel, err := parseNumber(strings.TrimSpace(pixelText))
	if err != nil {
		return Reference{}, err
	}

	wl, err := parseWavelength(strings.TrimSpace(wlText), lines)
	if err != nil {
		return Reference{}, err
	}

	return Reference{Pixel: pixel, Angstrom: wl}, nil
}

func parseWavelength(token string, lines LineResolver) (float64, error) {
	if lines != nil {
		if wl, ok := lines.Lookup(token); ok {
			return wl, nil
		}
	}

	wl, err := strconv.ParseFloat(token, 64)
	if err != nil || !isFinite(wl) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLineName, token)
	}

	return wl, nil
}

func parseNumber(token string) (float64, error) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil || !isFinite(v) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidCalibrationFormat, token)
	}

	return v, nil
}
