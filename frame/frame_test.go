package frame

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-spectro/internal/testutil"
)

func mustFrame(t *testing.T, w, h int, data []float64) *Frame {
	t.Helper()

	f, err := New(w, h, data)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	return f
}

func TestNewShape(t *testing.T) {
	if _, err := New(3, 2, make([]float64, 5)); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("New() error = %v, want ErrShapeMismatch", err)
	}

	if _, err := New(0, 0, nil); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("New(0, 0) error = %v, want ErrShapeMismatch", err)
	}
}

func TestBin(t *testing.T) {
	f := mustFrame(t, 3, 2, []float64{
		1, 2, 3,
		10, 20, 30,
	})

	testutil.RequireSliceNearlyEqual(t, Bin(f), []float64{11, 22, 33}, 0)
	testutil.RequireSliceNearlyEqual(t, RowSums(f), []float64{6, 60}, 0)
}

func TestDarkSubtract(t *testing.T) {
	light := mustFrame(t, 4, 1, []float64{10, 300, 5, 255})
	dark := mustFrame(t, 4, 1, []float64{4, 20, 9, 0})

	got, err := DarkSubtract(light, dark)
	if err != nil {
		t.Fatalf("DarkSubtract() error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, got.Data, []float64{6, 255, 0, 255}, 0)

	if _, err := DarkSubtract(light, mustFrame(t, 2, 2, make([]float64, 4))); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("DarkSubtract() error = %v, want ErrShapeMismatch", err)
	}
}

func TestScaleDepth(t *testing.T) {
	f := mustFrame(t, 2, 1, []float64{1, 255})
	got := ScaleDepth(f, 256)
	testutil.RequireSliceNearlyEqual(t, got.Data, []float64{256, 65280}, 0)

	if f.Data[0] != 1 {
		t.Fatal("ScaleDepth modified its input")
	}
}

func TestCrop(t *testing.T) {
	f := mustFrame(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	got, err := Crop(f, 1, 3)
	if err != nil {
		t.Fatalf("Crop() error = %v", err)
	}

	if got.Height != 2 {
		t.Fatalf("Height = %d, want 2", got.Height)
	}

	testutil.RequireSliceNearlyEqual(t, got.Data, []float64{3, 4, 5, 6}, 0)

	if _, err := Crop(f, 2, 2); err == nil {
		t.Fatal("Crop() of empty range succeeded")
	}
}

func TestStackMean(t *testing.T) {
	frames := []*Frame{
		mustFrame(t, 2, 2, testutil.DC(1, 4)),
		mustFrame(t, 2, 2, testutil.DC(2, 4)),
		mustFrame(t, 2, 2, []float64{3, 3, 3, 6}),
	}

	res, err := Stack(frames)
	if err != nil {
		t.Fatalf("Stack() error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, res.Frame.Data, []float64{2, 2, 2, 3}, 1e-12)

	for i, lag := range res.Lags {
		if lag != 0 {
			t.Fatalf("Lags[%d] = %d, want 0", i, lag)
		}
	}
}

func TestStackErrors(t *testing.T) {
	if _, err := Stack(nil); !errors.Is(err, ErrNoFrames) {
		t.Fatalf("Stack(nil) error = %v, want ErrNoFrames", err)
	}

	frames := []*Frame{
		mustFrame(t, 2, 2, testutil.DC(1, 4)),
		mustFrame(t, 4, 1, testutil.DC(1, 4)),
	}

	if _, err := Stack(frames); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("Stack() error = %v, want ErrShapeMismatch", err)
	}
}

func TestStackAligned(t *testing.T) {
	const w, h = 128, 6

	a := mustFrame(t, w, h, testutil.Band(w, h, 0, h, testutil.Gaussian(w, 50, 3, 100), 0))
	b := mustFrame(t, w, h, testutil.Band(w, h, 0, h, testutil.Gaussian(w, 55, 3, 100), 0))

	res, err := Stack([]*Frame{a, b}, WithAlignment(20))
	if err != nil {
		t.Fatalf("Stack() error = %v", err)
	}

	if res.Lags[1] != 5 {
		t.Fatalf("Lags[1] = %d, want 5", res.Lags[1])
	}

	if got := res.Frame.At(50, 3); math.Abs(got-100) > 1e-9 {
		t.Fatalf("stacked peak = %v, want 100", got)
	}

	plain, _ := Stack([]*Frame{a, b})
	if got := plain.Frame.At(50, 3); got >= 100 {
		t.Fatalf("unaligned peak = %v, want below 100", got)
	}
}

func TestDescribe(t *testing.T) {
	s, err := Describe([]float64{4, 1, 3, 2})
	if err != nil {
		t.Fatalf("Describe() error = %v", err)
	}

	if s.Count != 4 || s.Min != 1 || s.Max != 4 || s.Mean != 2.5 || s.Median != 2.5 {
		t.Fatalf("Describe() = %+v", s)
	}

	testutil.RequireNear(t, "Std", s.Std, math.Sqrt(1.25), 1e-12)

	if _, err := Describe(nil); err == nil {
		t.Fatal("Describe(nil) succeeded")
	}
}
