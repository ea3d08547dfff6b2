package testutil

import (
	"math"
	"testing"
)

func TestRMSDiff(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"constant offset", []float64{1, 2, 3, 4}, []float64{3, 4, 5, 6}, 2},
		{"alternating", []float64{1, -1}, []float64{0, 0}, 1},
		{"common length", []float64{1, 1, 99}, []float64{0, 0}, 1},
		{"empty", nil, []float64{1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RMSDiff(tt.a, tt.b); math.Abs(got-tt.want) > 1e-15 {
				t.Fatalf("RMSDiff() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAssertionsPass(t *testing.T) {
	RequireNear(t, "centre", 100.4, 100, 0.5)
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1.05, 1.95}, 0.1)
	RequireFinite(t, []float64{0, -1, math.MaxFloat64})
	RequireAscending(t, Linear(3800, 2.5, 10))
	RequireAscending(t, nil)
}
