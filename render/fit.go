package render

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-spectro/peak"
)

// FitPlot shows the trace samples inside a peak window against the fitted
// polynomial, resampled at n points.
func FitPlot(trace []float64, res peak.Result, n int) (*plot.Plot, error) {
	if res.Left < 0 || res.Right >= len(trace) || res.Left > res.Right {
		return nil, fmt.Errorf("%w: window %d..%d of %d samples", ErrInvalidRange, res.Left, res.Right, len(trace))
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Peak at %.2f", res.Center)
	p.X.Label.Text = LabelPixel
	p.Y.Label.Text = LabelIntensity
	p.Legend.Top = true

	pts := make(plotter.XYs, 0, res.Right-res.Left+1)
	for i := res.Left; i <= res.Right; i++ {
		pts = append(pts, plotter.XY{X: float64(i), Y: trace[i]})
	}

	samples, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}

	samples.GlyphStyle.Color = plotutil.Color(0)
	samples.GlyphStyle.Radius = vg.Points(2)

	xs := floats.Span(make([]float64, max(n, 2)), float64(res.Left), float64(res.Right))

	fit, err := plotter.NewLine(xys(xs, res.Fit.EvalAll(xs)))
	if err != nil {
		return nil, err
	}

	fit.LineStyle.Color = plotutil.Color(1)
	fit.LineStyle.Width = vg.Points(1)

	centre := &marker{x: res.Center, colour: lineColour}

	p.Add(samples, fit, centre)
	p.Legend.Add("Data", samples)
	p.Legend.Add("Fit", fit)

	return p, nil
}
