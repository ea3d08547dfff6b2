package render

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-spectro/calib"
	"github.com/cwbudde/algo-spectro/frame"
	"github.com/cwbudde/algo-spectro/internal/testutil"
	"github.com/cwbudde/algo-spectro/lines"
	"github.com/cwbudde/algo-spectro/peak"
	"github.com/cwbudde/algo-spectro/spectrum"
)

func calibratedTrace(t *testing.T) *spectrum.Trace {
	t.Helper()

	cal, err := calib.NewSinglePoint(calib.Reference{Pixel: 0, Angstrom: 4000}, 10)
	if err != nil {
		t.Fatal(err)
	}

	return spectrum.NewTrace(testutil.Gaussian(300, 150, 12, 100), cal)
}

func TestGraphLabels(t *testing.T) {
	tests := []struct {
		name       string
		calibrated bool
		wantX      string
		wantTitle  string
		suptitle   string
	}{
		{"pixel", false, LabelPixel, "star.fits", ""},
		{"wavelength", true, LabelWavelength, "Vega\nstar.fits", "Vega"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Graph{Title: "star.fits", Suptitle: tt.suptitle, Calibrated: tt.calibrated}
			g.AddSpectrum(calibratedTrace(t))

			p, err := g.Plot()
			if err != nil {
				t.Fatalf("Plot() error = %v", err)
			}

			if p.X.Label.Text != tt.wantX {
				t.Fatalf("X label = %q, want %q", p.X.Label.Text, tt.wantX)
			}

			if p.Y.Label.Text != LabelIntensity {
				t.Fatalf("Y label = %q", p.Y.Label.Text)
			}

			if p.Title.Text != tt.wantTitle {
				t.Fatalf("Title = %q, want %q", p.Title.Text, tt.wantTitle)
			}
		})
	}
}

func TestGraphZeroOrderMarkerExtendsRange(t *testing.T) {
	hb, _ := lines.Get("Hb")

	g := &Graph{Calibrated: true}
	g.AddSpectrum(calibratedTrace(t))
	g.AddLines(hb)

	p, err := g.Plot()
	if err != nil {
		t.Fatalf("Plot() error = %v", err)
	}

	if p.X.Min != 0 {
		t.Fatalf("X.Min = %v, want 0 from the zero-order marker", p.X.Min)
	}

	g.XRange = &Range{Min: 3900, Max: 7000}

	p, err = g.Plot()
	if err != nil {
		t.Fatalf("Plot() error = %v", err)
	}

	if p.X.Min != 3900 || p.X.Max != 7000 {
		t.Fatalf("X range = %v..%v, want 3900..7000", p.X.Min, p.X.Max)
	}
}

func TestGraphErrors(t *testing.T) {
	if _, err := (&Graph{}).Plot(); !errors.Is(err, ErrEmptyGraph) {
		t.Fatalf("Plot() error = %v, want ErrEmptyGraph", err)
	}

	g := &Graph{XRange: &Range{Min: 5, Max: 5}}
	g.AddSpectrum(calibratedTrace(t))

	if _, err := g.Plot(); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("Plot() error = %v, want ErrInvalidRange", err)
	}
}

func TestMarkerDataRange(t *testing.T) {
	xmin, xmax, ymin, ymax := (&marker{x: 6563}).DataRange()
	if xmin != 6563 || xmax != 6563 || !math.IsInf(ymin, 1) || !math.IsInf(ymax, -1) {
		t.Fatalf("DataRange() = %v %v %v %v", xmin, xmax, ymin, ymax)
	}
}

func TestGrayscale(t *testing.T) {
	f, err := frame.New(2, 2, []float64{0, 51, 102, 255})
	if err != nil {
		t.Fatal(err)
	}

	img := Grayscale(f)

	want := [][]uint8{{0, 51}, {102, 255}}
	for y := range 2 {
		for x := range 2 {
			if got := img.GrayAt(x, y).Y; got != want[y][x] {
				t.Fatalf("GrayAt(%d,%d) = %d, want %d", x, y, got, want[y][x])
			}
		}
	}

	flat, _ := frame.New(2, 1, []float64{7, 7})
	if got := Grayscale(flat).GrayAt(1, 0).Y; got != 0 {
		t.Fatalf("flat frame GrayAt = %d, want 0", got)
	}
}

func TestImagePanelEmpty(t *testing.T) {
	if _, err := ImagePanel(&frame.Frame{}); !errors.Is(err, ErrEmptyFrame) {
		t.Fatalf("ImagePanel() error = %v, want ErrEmptyFrame", err)
	}
}

func TestSaveStackedPNG(t *testing.T) {
	data := testutil.Band(64, 16, 4, 12, testutil.Gaussian(64, 30, 5, 200), 3)

	f, err := frame.New(64, 16, data)
	if err != nil {
		t.Fatal(err)
	}

	g := &Graph{Title: "band"}
	g.AddSpectrum(spectrum.NewImage(f, nil))

	graph, err := g.Plot()
	if err != nil {
		t.Fatalf("Plot() error = %v", err)
	}

	img, err := ImagePanel(f)
	if err != nil {
		t.Fatalf("ImagePanel() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "quicklook.png")
	if err := Save(path, graph, img); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.HasPrefix(b, []byte("\x89PNG")) {
		t.Fatalf("output is not a PNG: % x", b[:min(8, len(b))])
	}
}

func TestSaveDrawsLineMarkers(t *testing.T) {
	g := &Graph{Title: "lines", Calibrated: true}
	g.AddSpectrum(calibratedTrace(t))
	g.AddLines(lines.All()...)

	p, err := g.Plot()
	if err != nil {
		t.Fatalf("Plot() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "lines.png")
	if err := Save(path, p, nil); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	if info.Size() == 0 {
		t.Fatal("Save() wrote an empty file")
	}
}

func TestSaveUnknownFormat(t *testing.T) {
	g := &Graph{}
	g.AddSpectrum(calibratedTrace(t))

	p, err := g.Plot()
	if err != nil {
		t.Fatal(err)
	}

	if err := Save(filepath.Join(t.TempDir(), "plot.xyz"), p, nil); err == nil {
		t.Fatal("Save() with unknown extension succeeded")
	}
}

func TestFitPlot(t *testing.T) {
	trace := testutil.Gaussian(200, 80, 8, 50)

	res, err := peak.FindCenter(trace)
	if err != nil {
		t.Fatalf("FindCenter() error = %v", err)
	}

	if _, err := FitPlot(trace, res, 100); err != nil {
		t.Fatalf("FitPlot() error = %v", err)
	}

	res.Right = len(trace)
	if _, err := FitPlot(trace, res, 100); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("FitPlot() error = %v, want ErrInvalidRange", err)
	}
}
