// Package calib provides linear pixel-to-wavelength calibrations for
// spectrograph traces.
//
// A calibration is anchored at one or two (pixel, angstrom) reference points.
// Two anchors derive the dispersion from the anchors themselves; a single
// anchor takes an explicit angstrom-per-pixel rate. Both forms can be parsed
// from short textual specifications as given on a command line:
//
//	"120:Ha,860:Hb"     two anchors, wavelengths by line name
//	"0:0,1000:1000"     two anchors, numeric wavelengths
//	"120,6563,2.4"      one anchor plus rate
package calib
