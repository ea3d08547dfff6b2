package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Default output size for one panel.
const (
	Width       = 10 * vg.Inch
	PanelHeight = 4 * vg.Inch
)

// Save writes graph, with image stacked below it when non-nil, to path.
// The format is taken from the extension (png, jpg, tif, svg, pdf, eps).
func Save(path string, graph, image *plot.Plot) error {
	panels := [][]*plot.Plot{{graph}}
	if image != nil {
		panels = append(panels, []*plot.Plot{image})
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	c, err := draw.NewFormattedCanvas(Width, PanelHeight*vg.Length(len(panels)), format)
	if err != nil {
		return fmt.Errorf("render: %s: %w", path, err)
	}

	tiles := draw.Tiles{
		Rows: len(panels),
		Cols: 1,
		PadX: vg.Millimeter,
		PadY: 3 * vg.Millimeter,
	}

	canvases := plot.Align(panels, tiles, draw.New(c))
	for i := range panels {
		panels[i][0].Draw(canvases[i][0])
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("render: %s: %w", path, err)
	}

	return f.Close()
}
