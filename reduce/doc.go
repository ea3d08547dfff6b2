// Package reduce implements reductions of calibrated 1-D spectra: cropping
// to a wavelength range, peak normalisation and co-adding spectra on a
// common wavelength grid.
package reduce
