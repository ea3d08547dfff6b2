package fitsfile

import (
	"github.com/cwbudde/algo-spectro/calib"
)

// BeSS wavelength calibration keywords.
const (
	KeyRefValue = "CRVAL1"
	KeyRefPixel = "CRPIX1"
	KeyDelta    = "CDELT1"
	KeyUnit     = "CUNIT1"
	KeyAxisType = "CTYPE1"

	UnitAngstrom   = "Angstrom"
	AxisWavelength = "Wavelength"
)

// Provenance keywords written by the reduction steps.
const (
	KeyCropTop    = "CROPTOP"
	KeyCropBottom = "CROPBOT"
	KeyCropFactor = "CROPFAC"
	KeyCropLeft   = "CRPLFT"
	KeyCropRight  = "CRPRGT"
	KeyFrameCount = "NBADD"
	KeyExposure   = "EXPTIME"
	KeyDateObs    = "DATE-OBS"
)

// Calibration reads the BeSS keywords. CRPIX1 is used as a 0-based
// pixel index.
func (h *Header) Calibration() (*calib.SinglePoint, error) {
	pixel, err := h.Float(KeyRefPixel)
	if err != nil {
		return nil, err
	}

	value, err := h.Float(KeyRefValue)
	if err != nil {
		return nil, err
	}

	delta, err := h.Float(KeyDelta)
	if err != nil {
		return nil, err
	}

	return calib.NewSinglePoint(calib.Reference{Pixel: pixel, Angstrom: value}, delta)
}

// HasCalibration reports whether all numeric BeSS keywords are present.
func (h *Header) HasCalibration() bool {
	_, err := h.Calibration()
	return err == nil
}

// SetCalibration writes c as BeSS keywords.
func (h *Header) SetCalibration(c calib.Calibration) {
	anchor := c.Anchor()
	h.Set(KeyRefValue, anchor.Angstrom, "")
	h.Set(KeyRefPixel, anchor.Pixel, "")
	h.Set(KeyDelta, c.AngstromPerPixel(), "")
	h.Set(KeyUnit, UnitAngstrom, "")
	h.Set(KeyAxisType, AxisWavelength, "")
}
