package main

import (
	"fmt"

	"github.com/cwbudde/algo-spectro/internal/fitsfile"
	"github.com/cwbudde/algo-spectro/reduce"
	"github.com/cwbudde/algo-spectro/reference"
	"github.com/cwbudde/algo-spectro/spectrum"
)

func runWavelengthCrop(e *env, args []string) error {
	fs := newFlagSet(e, "wlcrop")
	lo := fs.Float64("min", reduce.DefaultCropMin, "minimum wavelength in Å")
	hi := fs.Float64("max", reduce.DefaultCropMax, "maximum wavelength in Å")
	out := fs.String("o", "", "output FITS file (required)")

	if err := parse(fs, args, 1, 1); err != nil {
		return err
	}

	if err := requireOutput(fs, *out); err != nil {
		return err
	}

	name := fs.Arg(0)

	img, trace, err := readCalibrated(name)
	if err != nil {
		return err
	}

	res, err := reduce.WavelengthCrop(img.Data, trace.Calibration(), *lo, *hi)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	e.printf("%s: Cropping %d to %d\n", name, res.Left, res.Right)

	hdr := img.Header.Clone()
	hdr.SetCalibration(res.Calibration)
	hdr.Set(fitsfile.KeyCropLeft, res.Left, "Left of crop area from wavelength crop")
	hdr.Set(fitsfile.KeyCropRight, res.Right, "Right of crop area from wavelength crop")

	return writeTrace(*out, hdr, img.Format(), res.Data)
}

func runNormalise(e *env, args []string) error {
	fs := newFlagSet(e, "normalise")
	out := fs.String("o", "", "output FITS file (required)")

	if err := parse(fs, args, 1, 1); err != nil {
		return err
	}

	if err := requireOutput(fs, *out); err != nil {
		return err
	}

	name := fs.Arg(0)

	img, err := readTrace(name)
	if err != nil {
		return err
	}

	data, factor, err := reduce.Normalise(img.Data)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	e.printf("%s: Normalising with factor %f\n", name, factor)

	return writeTrace(*out, img.Header, fitsfile.Format{Bitpix: -64}, data)
}

func runSpecStack(e *env, args []string) error {
	fs := newFlagSet(e, "specstack")
	out := fs.String("o", "", "output FITS file (required)")

	if err := parse(fs, args, 2, -1); err != nil {
		return err
	}

	if err := requireOutput(fs, *out); err != nil {
		return err
	}

	master, base, err := readCalibrated(fs.Arg(0))
	if err != nil {
		return err
	}

	exposure := master.Header.FloatOr(fitsfile.KeyExposure, 0)

	var others []spectrum.Spectrum

	for _, name := range fs.Args()[1:] {
		img, s, err := readCalibrated(name)
		if err != nil {
			return err
		}

		others = append(others, s)
		exposure += img.Header.FloatOr(fitsfile.KeyExposure, 0)
	}

	res, err := reduce.StackSpectra(base, others...)
	if err != nil {
		return err
	}

	e.printf("Stacked %d frames\n", res.Count)

	hdr := master.Header.Clone()
	hdr.Set(fitsfile.KeyFrameCount, res.Count, "Number of coadded frames")

	if exposure > 0 {
		hdr.Set(fitsfile.KeyExposure, exposure, "")
	}

	return writeTrace(*out, hdr, master.Format(), res.Data)
}

func runCorrect(e *env, args []string) error {
	def := spectrum.DefaultCorrectConfig()

	fs := newFlagSet(e, "correct")
	ref := fs.String("reference", "", "reference spectrum name (required)")
	refs := fs.String("references", "", "reference catalog directory (default $"+reference.EnvRoot+" or references/ beside the executable)")
	smoothing := fs.Float64("smoothing", def.Smoothing, "response spline smoothing factor")
	degree := fs.Int("k", def.Degree, "response spline degree")
	out := fs.String("o", "", "output FITS table (required)")

	if err := parse(fs, args, 1, 1); err != nil {
		return err
	}

	if err := requireOutput(fs, *out); err != nil {
		return err
	}

	if *ref == "" {
		fs.Usage()
		return fmt.Errorf("%w: correct requires -reference", errUsage)
	}

	_, trace, err := readCalibrated(fs.Arg(0))
	if err != nil {
		return err
	}

	catalog := reference.New(reference.DefaultRoot(*refs))

	r, err := catalog.Load(*ref)
	if err != nil {
		return err
	}

	scaled, _, err := spectrum.ScaleToMatch(r, trace)
	if err != nil {
		return err
	}

	corrected, err := spectrum.Correct(trace, scaled, spectrum.WithSmoothing(*smoothing), spectrum.WithDegree(*degree))
	if err != nil {
		return fmt.Errorf("%s: %w", fs.Arg(0), err)
	}

	return fitsfile.WriteTable(*out, "CORRECTED",
		[]string{"WAVELENGTH", "FLUX"},
		[][]float64{corrected.Wavelengths(), corrected.Intensities()})
}
