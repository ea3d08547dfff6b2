package spectrum

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-spectro/calib"
	"github.com/cwbudde/algo-spectro/internal/testutil"
)

func TestCorrectRemovesSmoothResponse(t *testing.T) {
	const n = 400

	cal, _ := calib.NewSinglePoint(calib.Reference{Pixel: 0, Angstrom: 4000}, 7.5)
	wl := Wavelengths(cal, n)

	// Reference continuum with an absorption line; the observation is the
	// reference times a slowly varying linear response.
	ref := make([]float64, n)
	obs := make([]float64, n)
	line := testutil.Gaussian(n, 200, 3, 0.5)

	for i, w := range wl {
		ref[i] = 1 - line[i]
		obs[i] = ref[i] * (2 + (w-4000)/3000)
	}

	observed := NewTrace(obs, cal)
	reference := mustSampled(t, "Reference (test)", wl, ref)

	got, err := Correct(observed, reference)
	if err != nil {
		t.Fatalf("Correct() error = %v", err)
	}

	if got.Label() != "Corrected" {
		t.Fatalf("Label() = %q, want Corrected", got.Label())
	}

	testutil.RequireFinite(t, got.Intensities())
	testutil.RequireSliceNearlyEqual(t, got.Intensities(), ref, 1e-6)
	testutil.RequireSliceNearlyEqual(t, got.Wavelengths(), wl, 0)
}

func TestCorrectZeroReference(t *testing.T) {
	wl := testutil.Linear(5000, 1, 20)
	obs := NewTrace(testutil.DC(4, 20), nil)
	ref := mustSampled(t, "zero", wl, make([]float64, 20))

	got, err := Correct(obs, ref)
	if err != nil {
		t.Fatalf("Correct() error = %v", err)
	}

	for i, v := range got.Intensities() {
		if v != 0 || math.IsNaN(v) {
			t.Fatalf("Intensities()[%d] = %v, want 0", i, v)
		}
	}
}

func TestCorrectDescendingAxis(t *testing.T) {
	cal, _ := calib.NewSinglePoint(calib.Reference{Pixel: 0, Angstrom: 7000}, -5)
	wl := Wavelengths(cal, 50)
	obs := NewTrace(testutil.DC(6, 50), cal)
	ref := mustSampled(t, "flat", wl, testutil.DC(3, 50))

	got, err := Correct(obs, ref, WithSmoothing(0.5), WithDegree(1))
	if err != nil {
		t.Fatalf("Correct() error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, got.Intensities(), testutil.DC(3, 50), 1e-9)
}

func TestCorrectOptions(t *testing.T) {
	cfg := ApplyCorrectOptions(WithSmoothing(5), WithDegree(3))
	if cfg.Smoothing != 5 || cfg.Degree != 3 {
		t.Fatalf("cfg = %+v", cfg)
	}

	cfg = ApplyCorrectOptions(WithSmoothing(-1), WithDegree(0), nil)
	if cfg != DefaultCorrectConfig() {
		t.Fatalf("invalid options changed config: %+v", cfg)
	}
}
