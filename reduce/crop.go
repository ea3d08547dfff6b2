package reduce

import (
	"fmt"

	"github.com/cwbudde/algo-spectro/calib"
	"github.com/cwbudde/algo-spectro/spectrum"
)

// Crop bounds used when none are given, in angstrom.
const (
	DefaultCropMin = 3800
	DefaultCropMax = 8000
)

// CropResult is the outcome of WavelengthCrop.
type CropResult struct {
	// Data holds samples Left..Right-1 of the input.
	Data []float64
	// Left is the first sample above the lower bound, Right the first
	// sample above the upper bound (or the trace length).
	Left, Right int
	// Calibration describes Data, anchored at pixel 1.
	Calibration *calib.SinglePoint
}

// WavelengthCrop keeps the samples of data whose wavelength lies in
// (lo, hi].
func WavelengthCrop(data []float64, cal calib.Calibration, lo, hi float64) (CropResult, error) {
	if cal.AngstromPerPixel() <= 0 {
		return CropResult{}, fmt.Errorf("%w: %s", ErrNotAscending, cal)
	}

	wl := spectrum.Wavelengths(cal, len(data))

	res := CropResult{Left: firstAbove(wl, lo), Right: firstAbove(wl, hi)}
	if res.Right <= res.Left {
		return CropResult{}, fmt.Errorf("%w: %g..%g Å over %.2f..%.2f Å", ErrEmptyRange, lo, hi, first(wl), last(wl))
	}

	anchor := float64(res.Left + 1)

	var err error

	res.Calibration, err = calib.NewSinglePoint(calib.Reference{Pixel: 1, Angstrom: cal.Angstrom(anchor)}, cal.AngstromPerPixel())
	if err != nil {
		return CropResult{}, err
	}

	res.Data = append([]float64(nil), data[res.Left:res.Right]...)

	return res, nil
}

func firstAbove(wl []float64, limit float64) int {
	for i, w := range wl {
		if w > limit {
			return i
		}
	}

	return len(wl)
}

func first(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	return x[0]
}

func last(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	return x[len(x)-1]
}
