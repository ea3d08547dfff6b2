package main

import (
	"fmt"

	"github.com/cwbudde/algo-spectro/frame"
	"github.com/cwbudde/algo-spectro/internal/fitsfile"
)

func runBin(e *env, args []string) error {
	fs := newFlagSet(e, "bin")
	out := fs.String("o", "", "output FITS file (required)")

	if err := parse(fs, args, 1, 1); err != nil {
		return err
	}

	if err := requireOutput(fs, *out); err != nil {
		return err
	}

	img, f, err := readFrame(fs.Arg(0))
	if err != nil {
		return err
	}

	return writeTrace(*out, img.Header, fitsfile.Format{Bitpix: 32}, frame.Bin(f))
}

func runDarkSub(e *env, args []string) error {
	fs := newFlagSet(e, "darksub")
	out := fs.String("o", "", "output FITS file (required)")

	if err := parse(fs, args, 2, 2); err != nil {
		return err
	}

	if err := requireOutput(fs, *out); err != nil {
		return err
	}

	_, dark, err := readFrame(fs.Arg(0))
	if err != nil {
		return err
	}

	img, light, err := readFrame(fs.Arg(1))
	if err != nil {
		return err
	}

	sub, err := frame.DarkSubtract(light, dark)
	if err != nil {
		return fmt.Errorf("%s - %s: %w", fs.Arg(1), fs.Arg(0), err)
	}

	return writeFrame(*out, img.Header, fitsfile.Format{Bitpix: 8}, sub)
}

func runAutoCrop(e *env, args []string) error {
	def := frame.DefaultCropConfig()

	fs := newFlagSet(e, "autocrop")
	factor := fs.Float64("filterfactor", def.FilterFactor, "fraction of the largest row sum that marks the band")
	padding := fs.Int("padding", def.Padding, "rows added on either side of the band")
	out := fs.String("o", "", "output FITS file (required)")

	if err := parse(fs, args, 1, 1); err != nil {
		return err
	}

	if err := requireOutput(fs, *out); err != nil {
		return err
	}

	name := fs.Arg(0)

	img, f, err := readFrame(name)
	if err != nil {
		return err
	}

	res, err := frame.AutoCrop(f, frame.WithFilterFactor(*factor), frame.WithPadding(*padding))
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	e.printf("detected maxima: %d top: %d bottom: %d\n", int(res.Peak), res.BandTop, res.BandBottom)

	for _, w := range res.Warnings {
		e.warn(w)
	}

	e.printf("calculated crop %d rows (%d:%d) from %s\n", res.Bottom-res.Top, res.Top, res.Bottom, name)

	hdr := img.Header.Clone()
	hdr.Set(fitsfile.KeyCropTop, res.Top, "top of crop area in raw image")
	hdr.Set(fitsfile.KeyCropBottom, res.Bottom, "bottom of crop area in raw image")
	hdr.Set(fitsfile.KeyCropFactor, res.FilterFactor, "filterfactor for autocrop")

	return writeFrame(*out, hdr, img.Format(), res.Frame)
}

func runStack(e *env, args []string) error {
	fs := newFlagSet(e, "stack")
	maxLag := fs.Int("align", 0, "register frames along the dispersion axis, shifting at most this many columns")
	out := fs.String("o", "", "output FITS file (required)")

	if err := parse(fs, args, 1, -1); err != nil {
		return err
	}

	if err := requireOutput(fs, *out); err != nil {
		return err
	}

	var (
		master   *fitsfile.Image
		frames   []*frame.Frame
		exposure float64
	)

	for _, name := range fs.Args() {
		img, f, err := readFrame(name)
		if err != nil {
			return err
		}

		if master == nil {
			master = img
		}

		frames = append(frames, f)
		exposure += img.Header.FloatOr(fitsfile.KeyExposure, 0)
	}

	res, err := frame.Stack(frames, frame.WithAlignment(*maxLag))
	if err != nil {
		return err
	}

	if *maxLag > 0 {
		for i, lag := range res.Lags {
			e.printf("%s: shift %d\n", fs.Arg(i), lag)
		}
	}

	e.printf("Stacked %d frames\n", len(frames))

	hdr := master.Header.Clone()
	hdr.Set(fitsfile.KeyFrameCount, len(frames), "Number of coadded frames")

	if exposure > 0 {
		hdr.Set(fitsfile.KeyExposure, exposure, "")
	}

	return writeFrame(*out, hdr, master.Format(), res.Frame)
}

func runTo16Bit(e *env, args []string) error {
	fs := newFlagSet(e, "to16bit")
	out := fs.String("o", "", "output FITS file (required)")

	if err := parse(fs, args, 1, 1); err != nil {
		return err
	}

	if err := requireOutput(fs, *out); err != nil {
		return err
	}

	img, err := fitsfile.Read(fs.Arg(0))
	if err != nil {
		return err
	}

	f := &frame.Frame{Width: len(img.Data), Height: 1, Data: img.Data}
	img.Data = frame.ScaleDepth(f, 256).Data
	img.Bitpix, img.Unsigned = 16, true

	return fitsfile.Write(*out, img)
}
