// Package frame implements operations on 2-D detector frames: binning to a
// 1-D trace, dark subtraction, automatic cropping of the spectrum band,
// stacking and bit-depth scaling.
//
// Frames are row-major. Width runs along the dispersion axis (FITS NAXIS1)
// and Height across it (NAXIS2).
package frame
