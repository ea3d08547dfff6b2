package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/cwbudde/algo-spectro/lines"
	"github.com/cwbudde/algo-spectro/spectrum"
)

// Axis labels.
const (
	LabelWavelength = "Wavelength (Å)"
	LabelPixel      = "Pixel"
	LabelIntensity  = "Relative intensity"
)

// lineLabelY is the data-space height at which line annotations start.
const lineLabelY = 10

var (
	lineColour = color.RGBA{R: 0xff, A: 0xff}
	zeroColour = color.RGBA{R: 0xff, G: 0xff, A: 0xff}
)

// Range is a closed axis interval.
type Range struct {
	Min, Max float64
}

// Graph describes the spectrum panel.
type Graph struct {
	Title    string
	Suptitle string
	// Calibrated switches the x axis to wavelength and adds the zero-order
	// marker at x = 0.
	Calibrated bool
	// XRange fixes the x axis when non-nil.
	XRange *Range

	spectra []spectrum.Spectrum
	lines   []lines.Line
}

// AddSpectrum appends spectra, each drawn as a line with a legend entry.
func (g *Graph) AddSpectrum(s ...spectrum.Spectrum) {
	g.spectra = append(g.spectra, s...)
}

// AddLines appends element-line markers.
func (g *Graph) AddLines(l ...lines.Line) {
	g.lines = append(g.lines, l...)
}

// Plot builds the panel.
func (g *Graph) Plot() (*plot.Plot, error) {
	if len(g.spectra) == 0 {
		return nil, ErrEmptyGraph
	}

	if g.XRange != nil && !(g.XRange.Min < g.XRange.Max) {
		return nil, fmt.Errorf("%w: %v..%v", ErrInvalidRange, g.XRange.Min, g.XRange.Max)
	}

	p := plot.New()
	p.Title.Text = g.Title

	if g.Suptitle != "" {
		p.Title.Text = g.Suptitle + "\n" + g.Title
	}

	p.X.Label.Text = LabelPixel
	if g.Calibrated {
		p.X.Label.Text = LabelWavelength
	}

	p.Y.Label.Text = LabelIntensity
	p.Legend.Top = true

	for i, s := range g.spectra {
		l, err := plotter.NewLine(xys(s.Wavelengths(), s.Intensities()))
		if err != nil {
			return nil, fmt.Errorf("render: %s: %w", s.Label(), err)
		}

		l.LineStyle.Color = plotutil.Color(i)
		l.LineStyle.Width = vg.Points(1)

		p.Add(l)
		p.Legend.Add(s.Label(), l)
	}

	if g.Calibrated {
		for _, l := range g.lines {
			p.Add(&marker{x: l.Angstrom, label: l.PlotLabel(), colour: lineColour})
		}

		p.Add(&marker{x: 0, colour: zeroColour})
	}

	if g.XRange != nil {
		p.X.Min, p.X.Max = g.XRange.Min, g.XRange.Max
	}

	return p, nil
}

func xys(x, y []float64) plotter.XYs {
	n := min(len(x), len(y))
	out := make(plotter.XYs, n)

	for i := range n {
		out[i].X, out[i].Y = x[i], y[i]
	}

	return out
}

// marker is a full-height vertical line with an optional vertical label.
type marker struct {
	x      float64
	label  string
	colour color.Color
}

// Plot implements plot.Plotter.
func (m *marker) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)

	x := trX(m.x)
	if !c.ContainsX(x) {
		return
	}

	c.StrokeLine2(draw.LineStyle{Color: m.colour, Width: vg.Points(1)}, x, c.Min.Y, x, c.Max.Y)

	if m.label == "" {
		return
	}

	sty := p.X.Tick.Label
	sty.Rotation = math.Pi / 2
	sty.XAlign = draw.XLeft
	sty.YAlign = draw.YTop

	y := min(max(trY(lineLabelY), c.Min.Y), c.Max.Y)
	c.FillText(sty, vg.Point{X: x, Y: y}, m.label)
}

// DataRange implements plot.DataRanger. Only the x position takes part in
// autoscaling.
func (m *marker) DataRange() (xmin, xmax, ymin, ymax float64) {
	return m.x, m.x, math.Inf(1), math.Inf(-1)
}
