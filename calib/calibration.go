package calib

import (
	"fmt"
	"math"
)

// Reference anchors a pixel position to a known wavelength in angstrom.
type Reference struct {
	Pixel    float64
	Angstrom float64
}

// Calibration maps pixel positions to wavelengths.
type Calibration interface {
	// Angstrom returns the wavelength at the given pixel position.
	Angstrom(pixel float64) float64
	// AngstromPerPixel returns the dispersion of the linear map.
	AngstromPerPixel() float64
	// Anchor returns the reference the linear map is written against.
	Anchor() Reference
	String() string
}

// DoublePoint is a calibration derived from two anchors.
type DoublePoint struct {
	ref1, ref2 Reference
	slope      float64
}

// NewDoublePoint builds a calibration through r1 and r2. The two anchors must
// lie on different pixels.
func NewDoublePoint(r1, r2 Reference) (*DoublePoint, error) {
	if err := validateReference(r1); err != nil {
		return nil, err
	}

	if err := validateReference(r2); err != nil {
		return nil, err
	}

	if r1.Pixel == r2.Pixel {
		return nil, fmt.Errorf("%w: pixel %g", ErrDivisionByZero, r1.Pixel)
	}

	return &DoublePoint{
		ref1:  r1,
		ref2:  r2,
		slope: (r1.Angstrom - r2.Angstrom) / (r1.Pixel - r2.Pixel),
	}, nil
}

// Angstrom implements Calibration.
func (c *DoublePoint) Angstrom(pixel float64) float64 {
	return c.slope*(pixel-c.ref1.Pixel) + c.ref1.Angstrom
}

// AngstromPerPixel implements Calibration.
func (c *DoublePoint) AngstromPerPixel() float64 { return c.slope }

// Anchor returns the first reference.
func (c *DoublePoint) Anchor() Reference { return c.ref1 }

// References returns both anchors in construction order.
func (c *DoublePoint) References() (Reference, Reference) { return c.ref1, c.ref2 }

func (c *DoublePoint) String() string { return describe(c.slope) }

// SinglePoint is a calibration from one anchor and a known dispersion.
type SinglePoint struct {
	ref  Reference
	rate float64
}

// NewSinglePoint builds a calibration through r with the given
// angstrom-per-pixel rate.
func NewSinglePoint(r Reference, rate float64) (*SinglePoint, error) {
	if err := validateReference(r); err != nil {
		return nil, err
	}

	if !isFinite(rate) {
		return nil, fmt.Errorf("%w: rate %v", errNonFinite, rate)
	}

	return &SinglePoint{ref: r, rate: rate}, nil
}

// Angstrom implements Calibration.
func (c *SinglePoint) Angstrom(pixel float64) float64 {
	return c.rate*(pixel-c.ref.Pixel) + c.ref.Angstrom
}

// AngstromPerPixel implements Calibration.
func (c *SinglePoint) AngstromPerPixel() float64 { return c.rate }

// Anchor implements Calibration.
func (c *SinglePoint) Anchor() Reference { return c.ref }

func (c *SinglePoint) String() string { return describe(c.rate) }

// Rebase returns an equivalent single-point calibration anchored at pixel.
func Rebase(c Calibration, pixel float64) *SinglePoint {
	return &SinglePoint{
		ref:  Reference{Pixel: pixel, Angstrom: c.Angstrom(pixel)},
		rate: c.AngstromPerPixel(),
	}
}

func describe(rate float64) string {
	return fmt.Sprintf("<Calibration angstrom_per_pixel: %f>", rate)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
