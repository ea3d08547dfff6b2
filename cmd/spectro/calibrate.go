package main

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectro/calib"
	"github.com/cwbudde/algo-spectro/internal/fitsfile"
	"github.com/cwbudde/algo-spectro/lines"
	"github.com/cwbudde/algo-spectro/peak"
	"github.com/cwbudde/algo-spectro/render"
)

func runAutoCal(e *env, args []string) error {
	def := peak.DefaultConfig()

	fs := newFlagSet(e, "autocal")
	spacing := fs.Float64("spacing", math.NaN(), "channel spacing in Å per pixel (required)")
	width := fs.Int("samplewidth", def.HalfWidth, "samples taken each side of the zero-order peak")
	maxX := fs.Int("maxx", 0, "search for the zero order only below this column")
	degree := fs.Int("degree", def.Degree, "degree of the polynomial fit")
	refine := fs.Bool("refine", false, "polish the peak with the roots of the fit's derivative")
	visualise := fs.String("visualise", "", "write a plot of the peak and fitted curve to this image file")
	out := fs.String("o", "", "output FITS file (required)")

	if err := parse(fs, args, 1, 1); err != nil {
		return err
	}

	if err := requireOutput(fs, *out); err != nil {
		return err
	}

	if math.IsNaN(*spacing) {
		fs.Usage()
		return fmt.Errorf("%w: autocal requires -spacing", errUsage)
	}

	name := fs.Arg(0)

	img, trace, _, err := readAny(name)
	if err != nil {
		return err
	}

	opts := []peak.Option{
		peak.WithHalfWidth(*width),
		peak.WithDegree(*degree),
		peak.WithSearchLimit(*maxX),
	}
	if *refine {
		opts = append(opts, peak.WithRefine())
	}

	res, err := peak.FindCenter(trace, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	e.printf("%s: Data peak: %d, polyfit peak: %f\n", name, res.DataPeak, res.Center)

	if *visualise != "" {
		p, err := render.FitPlot(trace, res, def.Samples)
		if err != nil {
			return err
		}

		if err := render.Save(*visualise, p, nil); err != nil {
			return err
		}
	}

	cal, err := calib.NewSinglePoint(calib.Reference{Pixel: res.Center, Angstrom: 0}, *spacing)
	if err != nil {
		return err
	}

	hdr := img.Header.Clone()
	hdr.SetCalibration(cal)

	return writeTrace(*out, hdr, fitsfile.Format{Bitpix: 32}, trace)
}

func runCalibrate(e *env, args []string) error {
	fs := newFlagSet(e, "calibrate")
	spec := fs.String("c", "", "calibration: pixel:angstrom,pixel:angstrom or pixel,angstrom,angstrom_per_pixel (required)")
	out := fs.String("o", "", "output FITS file (required)")

	if err := parse(fs, args, 1, 1); err != nil {
		return err
	}

	if err := requireOutput(fs, *out); err != nil {
		return err
	}

	if *spec == "" {
		fs.Usage()
		return fmt.Errorf("%w: calibrate requires -c", errUsage)
	}

	cal, err := calib.Parse(*spec, lines.Catalog{})
	if err != nil {
		return err
	}

	e.printf("%s\n", cal)

	img, trace, f, err := readAny(fs.Arg(0))
	if err != nil {
		return err
	}

	hdr := img.Header.Clone()
	hdr.SetCalibration(cal)

	format := img.Format()
	if f != nil {
		format = fitsfile.Format{Bitpix: 32}
	}

	return writeTrace(*out, hdr, format, trace)
}

// headerCalibration is a helper for commands that accept either a -c flag
// or the calibration stored in the file.
func headerCalibration(hdr *fitsfile.Header, spec string) (calib.Calibration, error) {
	if spec != "" {
		return calib.Parse(spec, lines.Catalog{})
	}

	if !hdr.HasCalibration() {
		return nil, nil
	}

	return hdr.Calibration()
}
