package fitsfile

import "errors"

var (
	// ErrMissingHeaderField is returned when a keyword required by the
	// caller is absent or has the wrong type.
	ErrMissingHeaderField = errors.New("fitsfile: missing required header field")
	// ErrUnsupportedBitpix is returned for BITPIX values outside
	// 8, 16, 32, 64, -32, -64.
	ErrUnsupportedBitpix = errors.New("fitsfile: unsupported BITPIX")
	// ErrNotImage is returned when the primary HDU holds no image.
	ErrNotImage = errors.New("fitsfile: primary HDU is not an image")
	// ErrNotTable is returned when an HDU expected to hold a table does not.
	ErrNotTable = errors.New("fitsfile: HDU is not a table")
	// ErrShape is returned when data length and axes disagree.
	ErrShape = errors.New("fitsfile: data does not match axes")
)
