// Package spectrum models calibrated and uncalibrated spectra and the
// arithmetic between them: scaling, resampling onto another spectrum's
// wavelength grid, division and instrument-response correction.
//
// Every variant satisfies Spectrum. Operations never mutate their inputs;
// they return new slices or new spectra.
package spectrum
