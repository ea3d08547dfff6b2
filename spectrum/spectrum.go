package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-spectro/calib"
	"github.com/cwbudde/algo-spectro/frame"
)

// Spectrum is anything with a wavelength axis, matching intensities and a
// legend label.
type Spectrum interface {
	Wavelengths() []float64
	Intensities() []float64
	Label() string
}

// Calibrated is implemented by spectra that carry their pixel calibration.
type Calibrated interface {
	Calibration() calib.Calibration
}

// Wavelengths maps pixel indices 0..n-1 through cal. A nil calibration
// yields the pixel indices themselves.
func Wavelengths(cal calib.Calibration, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		if cal == nil {
			out[i] = float64(i)
		} else {
			out[i] = cal.Angstrom(float64(i))
		}
	}

	return out
}

// Image is a raw 2-D exposure viewed as a spectrum of column sums.
type Image struct {
	frame  *frame.Frame
	binned []float64
	cal    calib.Calibration
}

// NewImage wraps f. cal may be nil.
func NewImage(f *frame.Frame, cal calib.Calibration) *Image {
	return &Image{frame: f, binned: frame.Bin(f), cal: cal}
}

// Frame returns the underlying exposure.
func (s *Image) Frame() *frame.Frame { return s.frame }

// Calibration returns the pixel calibration, or nil.
func (s *Image) Calibration() calib.Calibration { return s.cal }

// SetCalibration replaces the pixel calibration.
func (s *Image) SetCalibration(cal calib.Calibration) { s.cal = cal }

// Wavelengths implements Spectrum.
func (s *Image) Wavelengths() []float64 { return Wavelengths(s.cal, len(s.binned)) }

// Intensities implements Spectrum.
func (s *Image) Intensities() []float64 { return s.binned }

// Label implements Spectrum.
func (s *Image) Label() string { return "Raw data" }

// Trace is a raw 1-D spectrum as stored in a BeSS file.
type Trace struct {
	data []float64
	cal  calib.Calibration
}

// NewTrace wraps data. cal may be nil.
func NewTrace(data []float64, cal calib.Calibration) *Trace {
	return &Trace{data: data, cal: cal}
}

// Calibration returns the pixel calibration, or nil.
func (s *Trace) Calibration() calib.Calibration { return s.cal }

// SetCalibration replaces the pixel calibration.
func (s *Trace) SetCalibration(cal calib.Calibration) { s.cal = cal }

// Wavelengths implements Spectrum.
func (s *Trace) Wavelengths() []float64 { return Wavelengths(s.cal, len(s.data)) }

// Intensities implements Spectrum.
func (s *Trace) Intensities() []float64 { return s.data }

// Label implements Spectrum.
func (s *Trace) Label() string { return "Raw spectra" }

// Sampled is a spectrum given by explicit wavelength/intensity pairs.
type Sampled struct {
	label       string
	wavelengths []float64
	intensities []float64
}

// NewSampled builds a spectrum from matching wavelength and intensity
// slices. The slices are not copied.
func NewSampled(label string, wavelengths, intensities []float64) (*Sampled, error) {
	if len(wavelengths) != len(intensities) {
		return nil, fmt.Errorf("%w: %s has %d wavelengths, %d intensities",
			ErrLengthMismatch, label, len(wavelengths), len(intensities))
	}

	return &Sampled{label: label, wavelengths: wavelengths, intensities: intensities}, nil
}

// Wavelengths implements Spectrum.
func (s *Sampled) Wavelengths() []float64 { return s.wavelengths }

// Intensities implements Spectrum.
func (s *Sampled) Intensities() []float64 { return s.intensities }

// Label implements Spectrum.
func (s *Sampled) Label() string { return s.label }
