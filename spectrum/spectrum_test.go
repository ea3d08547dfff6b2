package spectrum

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-spectro/calib"
	"github.com/cwbudde/algo-spectro/frame"
	"github.com/cwbudde/algo-spectro/internal/testutil"
)

func mustSampled(t *testing.T, label string, wl, in []float64) *Sampled {
	t.Helper()

	s, err := NewSampled(label, wl, in)
	if err != nil {
		t.Fatalf("NewSampled() error = %v", err)
	}

	return s
}

func TestWavelengths(t *testing.T) {
	testutil.RequireSliceNearlyEqual(t, Wavelengths(nil, 4), []float64{0, 1, 2, 3}, 0)

	cal, _ := calib.NewSinglePoint(calib.Reference{Pixel: 10, Angstrom: 500}, 2)
	testutil.RequireSliceNearlyEqual(t, Wavelengths(cal, 3), []float64{480, 482, 484}, 0)
}

func TestImage(t *testing.T) {
	f, _ := frame.New(3, 2, []float64{1, 2, 3, 4, 5, 6})
	img := NewImage(f, nil)

	testutil.RequireSliceNearlyEqual(t, img.Intensities(), []float64{5, 7, 9}, 0)
	testutil.RequireSliceNearlyEqual(t, img.Wavelengths(), []float64{0, 1, 2}, 0)

	if img.Label() != "Raw data" || img.Frame() != f {
		t.Fatalf("Label() = %q", img.Label())
	}

	cal, _ := calib.NewDoublePoint(calib.Reference{Pixel: 0, Angstrom: 4000}, calib.Reference{Pixel: 2, Angstrom: 4010})
	img.SetCalibration(cal)
	testutil.RequireSliceNearlyEqual(t, img.Wavelengths(), []float64{4000, 4005, 4010}, 1e-12)
}

func TestTrace(t *testing.T) {
	cal, _ := calib.NewSinglePoint(calib.Reference{Pixel: 0, Angstrom: 6000}, -1)
	tr := NewTrace([]float64{3, 2, 1}, cal)

	if tr.Label() != "Raw spectra" {
		t.Fatalf("Label() = %q", tr.Label())
	}

	testutil.RequireSliceNearlyEqual(t, tr.Wavelengths(), []float64{6000, 5999, 5998}, 0)

	if tr.Calibration() != cal {
		t.Fatal("Calibration() lost")
	}
}

func TestNewSampledMismatch(t *testing.T) {
	if _, err := NewSampled("x", []float64{1, 2}, []float64{1}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("NewSampled() error = %v, want ErrLengthMismatch", err)
	}
}

func TestScaleTo(t *testing.T) {
	ref := mustSampled(t, "Reference (A0V)", []float64{1, 2, 3}, []float64{1, 4, 2})

	scaled, factor, err := ScaleTo(ref, 100)
	if err != nil {
		t.Fatalf("ScaleTo() error = %v", err)
	}

	if factor != 25 {
		t.Fatalf("factor = %v, want 25", factor)
	}

	testutil.RequireSliceNearlyEqual(t, scaled.Intensities(), []float64{25, 100, 50}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, ref.Intensities(), []float64{1, 4, 2}, 0)

	if scaled.Label() != ref.Label() {
		t.Fatalf("Label() = %q, want %q", scaled.Label(), ref.Label())
	}

	zero := mustSampled(t, "zero", []float64{1, 2}, []float64{0, 0})
	if _, _, err := ScaleTo(zero, 1); !errors.Is(err, ErrZeroMaximum) {
		t.Fatalf("ScaleTo(zero) error = %v, want ErrZeroMaximum", err)
	}
}

func TestScaleToMatch(t *testing.T) {
	ref := mustSampled(t, "ref", []float64{1, 2}, []float64{2, 4})
	obs := NewTrace([]float64{10, 30, 20}, nil)

	scaled, factor, err := ScaleToMatch(ref, obs)
	if err != nil {
		t.Fatalf("ScaleToMatch() error = %v", err)
	}

	if factor != 7.5 || Max(scaled) != 30 {
		t.Fatalf("factor = %v, max = %v, want 7.5, 30", factor, Max(scaled))
	}
}

func TestInterpolateToRoundTrip(t *testing.T) {
	wl := testutil.Linear(4000, 3.7, 50)
	in := testutil.DeterministicNoise(5, 100, 50)
	s := mustSampled(t, "s", wl, in)

	got, err := InterpolateTo(s, s)
	if err != nil {
		t.Fatalf("InterpolateTo() error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, got, in, 0)
}

func TestInterpolateTo(t *testing.T) {
	src := mustSampled(t, "src", []float64{10, 20, 30}, []float64{1, 3, 2})
	target := mustSampled(t, "target", []float64{0, 10, 15, 25, 30, 99}, make([]float64, 6))

	got, err := InterpolateTo(src, target)
	if err != nil {
		t.Fatalf("InterpolateTo() error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, got, []float64{1, 1, 2, 2.5, 2, 2}, 1e-12)
}

func TestInterpolateToDescendingSource(t *testing.T) {
	src := mustSampled(t, "src", []float64{30, 20, 10}, []float64{2, 3, 1})
	target := mustSampled(t, "target", []float64{15, 25}, make([]float64, 2))

	got, err := InterpolateTo(src, target)
	if err != nil {
		t.Fatalf("InterpolateTo() error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, got, []float64{2, 2.5}, 1e-12)

	if src.Wavelengths()[0] != 30 {
		t.Fatal("InterpolateTo modified its source")
	}
}

func TestInterpolateToErrors(t *testing.T) {
	target := mustSampled(t, "t", []float64{1}, []float64{0})

	tests := []struct {
		name string
		src  Spectrum
		want error
	}{
		{"single sample", mustSampled(t, "s", []float64{1}, []float64{1}), ErrTooFewSamples},
		{"duplicate", mustSampled(t, "s", []float64{1, 2, 2}, []float64{1, 1, 1}), ErrNotMonotonic},
		{"zigzag", mustSampled(t, "s", []float64{1, 3, 2}, []float64{1, 1, 1}), ErrNotMonotonic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := InterpolateTo(tt.src, target); !errors.Is(err, tt.want) {
				t.Fatalf("InterpolateTo() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDivideByZeroReference(t *testing.T) {
	s := mustSampled(t, "s", []float64{1, 2, 3, 4}, []float64{5, 0, -3, 8})
	ref := mustSampled(t, "ref", []float64{1, 2, 3, 4}, []float64{0, 0, 0, 2})

	got, err := DivideBy(s, ref)
	if err != nil {
		t.Fatalf("DivideBy() error = %v", err)
	}

	testutil.RequireFinite(t, got)
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 0, 0, 4}, 0)
}

func TestDivideByResamplesReference(t *testing.T) {
	s := mustSampled(t, "s", []float64{15, 25}, []float64{10, 10})
	ref := mustSampled(t, "ref", []float64{10, 20, 30}, []float64{1, 3, 2})

	got, err := DivideBy(s, ref)
	if err != nil {
		t.Fatalf("DivideBy() error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, got, []float64{5, 4}, 1e-12)
}

func TestMax(t *testing.T) {
	if got := Max(NewTrace([]float64{-1, 7, 3}, nil)); got != 7 {
		t.Fatalf("Max() = %v, want 7", got)
	}

	if got := Max(NewTrace(nil, nil)); !math.IsNaN(got) {
		t.Fatalf("Max(empty) = %v, want NaN", got)
	}
}
