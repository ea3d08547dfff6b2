package testutil

import (
	"math"
	"testing"
)

func TestGaussian(t *testing.T) {
	g := Gaussian(41, 20, 3, 2)
	if len(g) != 41 {
		t.Fatalf("len = %d, want 41", len(g))
	}
	if g[20] != 2 {
		t.Fatalf("g[20] = %v, want 2", g[20])
	}
	for i := range 20 {
		if math.Abs(g[20-i]-g[20+i]) > 1e-15 {
			t.Fatalf("not symmetric at offset %d", i)
		}
	}
}

func TestLinear(t *testing.T) {
	l := Linear(4000, 2.5, 4)
	want := []float64{4000, 4002.5, 4005, 4007.5}
	RequireSliceNearlyEqual(t, l, want, 0)
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] > 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestDC(t *testing.T) {
	d := DC(0.5, 4)
	for i, v := range d {
		if v != 0.5 {
			t.Fatalf("DC[%d] = %v, want 0.5", i, v)
		}
	}
}

func TestBand(t *testing.T) {
	f := Band(3, 5, 1, 3, []float64{10, 20}, 1)
	want := []float64{
		1, 1, 1,
		11, 21, 11,
		11, 21, 11,
		1, 1, 1,
		1, 1, 1,
	}
	RequireSliceNearlyEqual(t, f, want, 0)
}

func TestBandClipsRows(t *testing.T) {
	f := Band(2, 2, -3, 9, []float64{1}, 0)
	RequireSliceNearlyEqual(t, f, []float64{1, 1, 1, 1}, 0)
}
