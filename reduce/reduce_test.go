package reduce

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-spectro/calib"
	"github.com/cwbudde/algo-spectro/internal/testutil"
	"github.com/cwbudde/algo-spectro/spectrum"
)

func TestWavelengthCrop(t *testing.T) {
	// Pixel i sits at 3700 + 100*i Å.
	cal, _ := calib.NewSinglePoint(calib.Reference{Pixel: 0, Angstrom: 3700}, 100)
	data := testutil.Linear(0, 1, 50)

	res, err := WavelengthCrop(data, cal, DefaultCropMin, DefaultCropMax)
	if err != nil {
		t.Fatalf("WavelengthCrop() error = %v", err)
	}

	// 3900 Å is the first sample above 3800; 8100 Å the first above 8000.
	if res.Left != 2 || res.Right != 44 {
		t.Fatalf("bounds = %d:%d, want 2:44", res.Left, res.Right)
	}

	testutil.RequireSliceNearlyEqual(t, res.Data, data[2:44], 0)

	if got := res.Calibration.Anchor(); got.Pixel != 1 || got.Angstrom != 4000 {
		t.Fatalf("anchor = %+v, want {1 4000}", got)
	}

	// The new calibration places the first kept sample at its old wavelength.
	if got := res.Calibration.Angstrom(0); got != 3900 {
		t.Fatalf("Angstrom(0) = %v, want 3900", got)
	}
}

func TestWavelengthCropPastEnd(t *testing.T) {
	cal, _ := calib.NewSinglePoint(calib.Reference{Pixel: 0, Angstrom: 4000}, 10)

	res, err := WavelengthCrop(testutil.DC(1, 100), cal, 4500, 9000)
	if err != nil {
		t.Fatalf("WavelengthCrop() error = %v", err)
	}

	if res.Left != 51 || res.Right != 100 {
		t.Fatalf("bounds = %d:%d, want 51:100", res.Left, res.Right)
	}
}

func TestWavelengthCropErrors(t *testing.T) {
	cal, _ := calib.NewSinglePoint(calib.Reference{Pixel: 0, Angstrom: 4000}, 10)
	if _, err := WavelengthCrop(testutil.DC(1, 10), cal, 5000, 6000); !errors.Is(err, ErrEmptyRange) {
		t.Fatalf("WavelengthCrop() error = %v, want ErrEmptyRange", err)
	}

	desc, _ := calib.NewSinglePoint(calib.Reference{Pixel: 0, Angstrom: 8000}, -10)
	if _, err := WavelengthCrop(testutil.DC(1, 10), desc, 3800, 8000); !errors.Is(err, ErrNotAscending) {
		t.Fatalf("WavelengthCrop() error = %v, want ErrNotAscending", err)
	}
}

func TestNormalise(t *testing.T) {
	got, peak, err := Normalise([]float64{2, 8, -4})
	if err != nil {
		t.Fatalf("Normalise() error = %v", err)
	}

	if peak != 8 {
		t.Fatalf("peak = %v, want 8", peak)
	}

	testutil.RequireSliceNearlyEqual(t, got, []float64{0.25, 1, -0.5}, 1e-15)

	if _, _, err := Normalise([]float64{0, 0}); !errors.Is(err, ErrZeroMaximum) {
		t.Fatalf("Normalise(zero) error = %v, want ErrZeroMaximum", err)
	}

	if _, _, err := Normalise(nil); !errors.Is(err, ErrNoData) {
		t.Fatalf("Normalise(nil) error = %v, want ErrNoData", err)
	}

	if _, err := NormaliseTo([]float64{1}, 0); !errors.Is(err, ErrZeroMaximum) {
		t.Fatalf("NormaliseTo(0) error = %v, want ErrZeroMaximum", err)
	}
}

func TestStackSpectra(t *testing.T) {
	masterCal, _ := calib.NewSinglePoint(calib.Reference{Pixel: 0, Angstrom: 4000}, 10)
	offsetCal, _ := calib.NewSinglePoint(calib.Reference{Pixel: 0, Angstrom: 4005}, 10)

	master := spectrum.NewTrace([]float64{10, 20, 30, 40}, masterCal)
	// Sampled half a pixel later; linear data resamples exactly inside.
	other := spectrum.NewTrace([]float64{15, 25, 35, 45}, offsetCal)

	got, err := StackSpectra(master, other)
	if err != nil {
		t.Fatalf("StackSpectra() error = %v", err)
	}

	if got.Count != 2 {
		t.Fatalf("Count = %d, want 2", got.Count)
	}

	// At 4000 Å the offset spectrum holds its first value (15).
	testutil.RequireSliceNearlyEqual(t, got.Data, []float64{12.5, 20, 30, 40}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, master.Intensities(), []float64{10, 20, 30, 40}, 0)
}

func TestStackSpectraMasterOnly(t *testing.T) {
	master := spectrum.NewTrace([]float64{1, 2}, nil)

	got, err := StackSpectra(master)
	if err != nil {
		t.Fatalf("StackSpectra() error = %v", err)
	}

	if got.Count != 1 {
		t.Fatalf("Count = %d, want 1", got.Count)
	}

	testutil.RequireSliceNearlyEqual(t, got.Data, []float64{1, 2}, 0)

	if _, err := StackSpectra(spectrum.NewTrace(nil, nil)); !errors.Is(err, ErrNoData) {
		t.Fatalf("StackSpectra(empty) error = %v, want ErrNoData", err)
	}
}
