package frame

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned when frames that must align differ in
	// size, or when data does not fill the declared shape.
	ErrShapeMismatch = errors.New("frame: shape mismatch")
	// ErrNoFrames is returned by Stack for empty input.
	ErrNoFrames = errors.New("frame: no frames")
	// ErrCropOutOfBounds marks a crop bound that was clamped to the frame.
	// It is reported as a warning, not returned as an error.
	ErrCropOutOfBounds = errors.New("frame: crop extends past frame")
	// ErrEmptyCropRegion is returned when the detected band is not wider
	// than twice the padding.
	ErrEmptyCropRegion = errors.New("frame: zero height area to crop")

	errInvalidFilterFactor = errors.New("frame: filter factor must be in (0, 1]")
	errInvalidPadding      = errors.New("frame: padding must be non-negative")
)

func validateSameShape(a, b *Frame) error {
	if a.Width != b.Width || a.Height != b.Height {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch, a.Width, a.Height, b.Width, b.Height)
	}

	return nil
}

func validateCropConfig(cfg CropConfig) error {
	if !(cfg.FilterFactor > 0 && cfg.FilterFactor <= 1) {
		return errInvalidFilterFactor
	}

	if cfg.Padding < 0 {
		return errInvalidPadding
	}

	return nil
}
