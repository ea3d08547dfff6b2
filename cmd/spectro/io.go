package main

import (
	"fmt"

	"github.com/cwbudde/algo-spectro/frame"
	"github.com/cwbudde/algo-spectro/internal/fitsfile"
	"github.com/cwbudde/algo-spectro/spectrum"
)

// readFrame loads a 2-D exposure.
func readFrame(path string) (*fitsfile.Image, *frame.Frame, error) {
	img, err := fitsfile.Read(path)
	if err != nil {
		return nil, nil, err
	}

	if len(img.Axes) != 2 {
		return nil, nil, fmt.Errorf("%s: expected a 2-D image, got %d axes", path, len(img.Axes))
	}

	f, err := frame.New(img.Axes[0], img.Axes[1], img.Data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	return img, f, nil
}

// readTrace loads a 1-D spectrum.
func readTrace(path string) (*fitsfile.Image, error) {
	img, err := fitsfile.Read(path)
	if err != nil {
		return nil, err
	}

	if len(img.Axes) != 1 {
		return nil, fmt.Errorf("%s: expected a 1-D spectrum, got %d axes", path, len(img.Axes))
	}

	return img, nil
}

// readCalibrated loads a 1-D spectrum carrying BeSS calibration keys.
func readCalibrated(path string) (*fitsfile.Image, *spectrum.Trace, error) {
	img, err := readTrace(path)
	if err != nil {
		return nil, nil, err
	}

	cal, err := img.Header.Calibration()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	return img, spectrum.NewTrace(img.Data, cal), nil
}

// readAny loads a 1-D trace, or a 2-D exposure binned along columns.
// The frame is nil for 1-D input.
func readAny(path string) (*fitsfile.Image, []float64, *frame.Frame, error) {
	img, err := fitsfile.Read(path)
	if err != nil {
		return nil, nil, nil, err
	}

	switch len(img.Axes) {
	case 1:
		return img, img.Data, nil, nil
	case 2:
		f, err := frame.New(img.Axes[0], img.Axes[1], img.Data)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("%s: %w", path, err)
		}

		return img, frame.Bin(f), f, nil
	default:
		return nil, nil, nil, fmt.Errorf("%s: unsupported image with %d axes", path, len(img.Axes))
	}
}

// writeTrace stores data as a 1-D image with hdr.
func writeTrace(path string, hdr *fitsfile.Header, format fitsfile.Format, data []float64) error {
	return fitsfile.Write(path, &fitsfile.Image{
		Header:   hdr,
		Bitpix:   format.Bitpix,
		Unsigned: format.Unsigned,
		Axes:     []int{len(data)},
		Data:     data,
	})
}

// writeFrame stores f as a 2-D image with hdr.
func writeFrame(path string, hdr *fitsfile.Header, format fitsfile.Format, f *frame.Frame) error {
	return fitsfile.Write(path, &fitsfile.Image{
		Header:   hdr,
		Bitpix:   format.Bitpix,
		Unsigned: format.Unsigned,
		Axes:     []int{f.Width, f.Height},
		Data:     f.Data,
	})
}
