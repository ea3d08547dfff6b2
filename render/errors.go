package render

import "errors"

var (
	// ErrEmptyGraph is returned when a graph holds no spectra.
	ErrEmptyGraph = errors.New("render: graph has no spectra")
	// ErrInvalidRange is returned for an x range with Min >= Max.
	ErrInvalidRange = errors.New("render: invalid axis range")
	// ErrEmptyFrame is returned by ImagePanel for frames without pixels.
	ErrEmptyFrame = errors.New("render: frame has no pixels")
)
