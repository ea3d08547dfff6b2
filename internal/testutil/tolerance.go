// Package testutil holds tolerance assertions and synthetic spectra and
// frames shared by package tests.
package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t unless got and want have the same length
// and agree sample by sample within eps.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("got %d samples, want %d", len(got), len(want))
	}

	for i, g := range got {
		if d := math.Abs(g - want[i]); d > eps {
			t.Fatalf("sample %d = %v, want %v (off by %v, eps %v)", i, g, want[i], d, eps)
		}
	}
}

// RequireNear fails t if |got-want| > eps. what names the quantity.
func RequireNear(t *testing.T, what string, got, want, eps float64) {
	t.Helper()

	if math.Abs(got-want) > eps {
		t.Fatalf("%s = %v, want %v ± %v", what, got, want, eps)
	}
}

// RequireFinite fails t on the first NaN or infinite sample.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("sample %d is %v", i, v)
		}
	}
}

// RequireAscending fails t unless axis is strictly increasing, as a
// wavelength or pixel axis must be.
func RequireAscending(t *testing.T, axis []float64) {
	t.Helper()

	for i := 1; i < len(axis); i++ {
		if !(axis[i] > axis[i-1]) {
			t.Fatalf("axis not ascending at %d: %v after %v", i, axis[i], axis[i-1])
		}
	}
}

// RMSDiff is the root-mean-square difference of a and b over their common
// length. It is zero for empty input.
func RMSDiff(a, b []float64) float64 {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}

	var sum float64
	for i := range n {
		d := a[i] - b[i]
		sum += d * d
	}

	return math.Sqrt(sum / float64(n))
}
