// Package fitsfile reads and writes the FITS files the reduction tools
// exchange: primary-HDU images and traces with their headers, BeSS
// wavelength calibration keywords, provenance keywords and binary-table
// spectra.
package fitsfile
