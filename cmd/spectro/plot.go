package main

import (
	"fmt"
	"image/png"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/plot"

	"github.com/cwbudde/algo-spectro/colour"
	"github.com/cwbudde/algo-spectro/lines"
	"github.com/cwbudde/algo-spectro/reference"
	"github.com/cwbudde/algo-spectro/render"
	"github.com/cwbudde/algo-spectro/spectrum"
)

func runPlot(e *env, args []string) error {
	def := spectrum.DefaultCorrectConfig()

	fs := newFlagSet(e, "plot")
	spec := fs.String("c", "", "calibration: pixel:angstrom,pixel:angstrom or pixel,angstrom,angstrom_per_pixel")
	lineList := fs.String("lines", "", "comma separated element lines to mark, e.g. Ha,Hb")
	title := fs.String("title", "", "plot title (default: the file name)")
	suptitle := fs.String("suptitle", "", "super-title shown above the title")
	listLines := fs.Bool("listlines", false, "list available lines and exit")
	crop := fs.Bool("crop", false, "limit the x axis to -croprange")
	cropRange := fs.String("croprange", "3900:7000", "x axis range used with -crop, min:max")
	ref := fs.String("reference", "", "overlay a reference spectrum scaled to the data")
	correct := fs.Bool("correct", false, "overlay the data corrected by the reference response")
	smoothing := fs.Float64("smoothing", def.Smoothing, "response spline smoothing factor")
	degree := fs.Int("k", def.Degree, "response spline degree")
	refs := fs.String("references", "", "reference catalog directory (default $"+reference.EnvRoot+" or references/ beside the executable)")
	out := fs.String("o", "", "output image file, format from the extension (required)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *listLines {
		return printLines(e)
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("%w: plot takes one file", errUsage)
	}

	if err := requireOutput(fs, *out); err != nil {
		return err
	}

	if *correct && *ref == "" {
		fs.Usage()
		return fmt.Errorf("%w: -correct needs -reference", errUsage)
	}

	name := fs.Arg(0)

	img, data, f, err := readAny(name)
	if err != nil {
		return err
	}

	cal, err := headerCalibration(img.Header, *spec)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	var base spectrum.Spectrum = spectrum.NewTrace(data, cal)
	if f != nil {
		base = spectrum.NewImage(f, cal)
	}

	g := &render.Graph{Title: name, Suptitle: *suptitle, Calibrated: cal != nil}
	if *title != "" {
		g.Title = *title
	}

	g.AddSpectrum(base)

	if cal != nil {
		e.printf("%s\n", cal)

		if *lineList != "" {
			marks, err := lines.Parse(*lineList)
			if err != nil {
				return err
			}

			g.AddLines(marks...)
		}
	}

	if *crop {
		r, err := parseRange(*cropRange)
		if err != nil {
			return err
		}

		g.XRange = r
	}

	if *ref != "" {
		if cal == nil {
			return fmt.Errorf("%s: -reference needs a calibrated spectrum", name)
		}

		r, err := reference.New(reference.DefaultRoot(*refs)).Load(*ref)
		if err != nil {
			return err
		}

		scaled, _, err := spectrum.ScaleToMatch(r, base)
		if err != nil {
			return err
		}

		g.AddSpectrum(scaled)

		if *correct {
			corrected, err := spectrum.Correct(base, scaled, spectrum.WithSmoothing(*smoothing), spectrum.WithDegree(*degree))
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			g.AddSpectrum(corrected)
		}
	}

	graph, err := g.Plot()
	if err != nil {
		return err
	}

	var panel *plot.Plot
	if f != nil {
		if panel, err = render.ImagePanel(f); err != nil {
			return err
		}
	}

	return render.Save(*out, graph, panel)
}

func parseRange(s string) (*render.Range, error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return nil, fmt.Errorf("%w: range %q is not min:max", errUsage, s)
	}

	a, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: range %q: %v", errUsage, s, err)
	}

	b, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: range %q: %v", errUsage, s, err)
	}

	return &render.Range{Min: a, Max: b}, nil
}

func runColourize(e *env, args []string) error {
	fs := newFlagSet(e, "colourize")
	height := fs.Int("height", 50, "image height in pixels")
	export := fs.String("export", "", "output PNG file (required)")

	if err := parse(fs, args, 1, 1); err != nil {
		return err
	}

	if *export == "" {
		fs.Usage()
		return fmt.Errorf("%w: colourize requires -export", errUsage)
	}

	_, trace, err := readCalibrated(fs.Arg(0))
	if err != nil {
		return err
	}

	img, err := colour.Render(trace, *height)
	if err != nil {
		return fmt.Errorf("%s: %w", fs.Arg(0), err)
	}

	w, err := os.Create(*export)
	if err != nil {
		return err
	}

	if err := png.Encode(w, img); err != nil {
		w.Close()
		return err
	}

	return w.Close()
}
