// Package colour renders spectra as strips of their perceived colour.
package colour

import (
	"errors"
	"image"
	"image/color"

	"github.com/cwbudde/algo-spectro/spectrum"
)

// ErrInvalidHeight is returned by Render for non-positive heights.
var ErrInvalidHeight = errors.New("colour: height must be positive")

// WavelengthToRGB maps a wavelength in nanometres to an approximate sRGB
// colour scaled by intensity in [0, 1]. Wavelengths outside 380-780 nm
// render as white.
func WavelengthToRGB(nm, intensity float64) color.RGBA {
	w := float64(int(nm))

	var r, g, b float64

	switch {
	case w >= 380 && w < 440:
		r, g, b = -(w-440)/(440-350), 0, 1
	case w >= 440 && w < 490:
		r, g, b = 0, (w-440)/(490-440), 1
	case w >= 490 && w < 510:
		r, g, b = 0, 1, -(w-510)/(510-490)
	case w >= 510 && w < 580:
		r, g, b = (w-510)/(580-510), 1, 0
	case w >= 580 && w < 645:
		r, g, b = 1, -(w-645)/(645-580), 0
	case w >= 645 && w <= 780:
		r, g, b = 1, 0, 0
	default:
		r, g, b = 1, 1, 1
	}

	// Perceived brightness falls off towards both ends of the visible band.
	sss := 1.0

	switch {
	case w >= 380 && w < 420:
		sss = 0.3 + 0.7*(w-350)/(420-350)
	case w > 700 && w <= 780:
		sss = 0.3 + 0.7*(780-w)/(780-700)
	}

	sss *= 255 * intensity

	return color.RGBA{R: channel(sss * r), G: channel(sss * g), B: channel(sss * b), A: 0xff}
}

// AngstromToRGB is WavelengthToRGB for a wavelength in Ångström.
func AngstromToRGB(angstrom, intensity float64) color.RGBA {
	return WavelengthToRGB(angstrom/10, intensity)
}

// Render draws s as a strip with one column per sample and the given
// height. Brightness is the sample intensity relative to the maximum.
func Render(s spectrum.Spectrum, height int) (*image.RGBA, error) {
	if height <= 0 {
		return nil, ErrInvalidHeight
	}

	wl := s.Wavelengths()
	in := s.Intensities()

	if len(in) == 0 || len(in) != len(wl) {
		return nil, spectrum.ErrTooFewSamples
	}

	peak := spectrum.Max(s)
	if peak == 0 {
		return nil, spectrum.ErrZeroMaximum
	}

	img := image.NewRGBA(image.Rect(0, 0, len(wl), height))

	for x := range wl {
		c := AngstromToRGB(wl[x], in[x]/peak)
		for y := range height {
			img.SetRGBA(x, y, c)
		}
	}

	return img, nil
}

func channel(v float64) uint8 {
	return uint8(min(max(int(v), 0), 255))
}
