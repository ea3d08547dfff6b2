package render

import (
	"image"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/cwbudde/algo-spectro/frame"
)

// ImagePanel draws f as a grayscale image scaled between its minimum and
// maximum pixel values.
func ImagePanel(f *frame.Frame) (*plot.Plot, error) {
	if f.Width == 0 || f.Height == 0 {
		return nil, ErrEmptyFrame
	}

	p := plot.New()
	p.X.Label.Text = "x px"
	p.Y.Label.Text = "y px"

	img := Grayscale(f)
	p.Add(plotter.NewImage(img, 0, 0, float64(f.Width), float64(f.Height)))

	return p, nil
}

// Grayscale converts f to an 8-bit image. Row 0 is the top row.
func Grayscale(f *frame.Frame) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, f.Width, f.Height))
	if len(f.Data) == 0 {
		return img
	}

	lo, hi := floats.Min(f.Data), floats.Max(f.Data)

	scale := 0.0
	if hi > lo {
		scale = 255 / (hi - lo)
	}

	for y := range f.Height {
		for x, v := range f.Row(y) {
			img.SetGray(x, y, color.Gray{Y: uint8((v - lo) * scale)})
		}
	}

	return img
}
