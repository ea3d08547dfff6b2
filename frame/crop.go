package frame

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// CropConfig controls AutoCrop.
type CropConfig struct {
	// FilterFactor selects rows whose sum exceeds FilterFactor times the
	// largest row sum.
	FilterFactor float64
	// Padding is the number of rows added on either side of the band.
	Padding int
}

// CropOption mutates a CropConfig.
type CropOption func(*CropConfig)

// DefaultCropConfig returns the standard band detection settings.
func DefaultCropConfig() CropConfig {
	return CropConfig{
		FilterFactor: 0.5,
		Padding:      10,
	}
}

// WithFilterFactor sets the band threshold relative to the brightest row.
func WithFilterFactor(f float64) CropOption {
	return func(cfg *CropConfig) {
		cfg.FilterFactor = f
	}
}

// WithPadding sets the rows added either side of the detected band.
func WithPadding(rows int) CropOption {
	return func(cfg *CropConfig) {
		cfg.Padding = rows
	}
}

// ApplyCropOptions applies opts to the default config.
func ApplyCropOptions(opts ...CropOption) CropConfig {
	cfg := DefaultCropConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// CropResult is the outcome of AutoCrop.
type CropResult struct {
	// Peak is the largest row sum.
	Peak float64
	// BandTop and BandBottom delimit the detected band before padding.
	BandTop, BandBottom int
	// Top and Bottom are the final half-open row range.
	Top, Bottom int
	// FilterFactor echoes the threshold factor used.
	FilterFactor float64
	// Frame holds rows Top..Bottom-1.
	Frame *Frame
	// Warnings lists clamped bounds; each wraps ErrCropOutOfBounds.
	Warnings []error
}

// AutoCrop finds the band of bright rows holding the spectrum and crops
// the frame to it, widened by the configured padding.
func AutoCrop(f *Frame, opts ...CropOption) (CropResult, error) {
	cfg := ApplyCropOptions(opts...)
	if err := validateCropConfig(cfg); err != nil {
		return CropResult{}, err
	}

	sums := RowSums(f)

	peak, err := stats.Max(sums)
	if err != nil {
		return CropResult{}, fmt.Errorf("frame: row sums: %w", err)
	}

	threshold := peak * cfg.FilterFactor
	res := CropResult{Peak: peak, FilterFactor: cfg.FilterFactor}

	res.BandTop = 0
	for res.BandTop < len(sums) && !(sums[res.BandTop] > threshold) {
		res.BandTop++
	}

	res.BandBottom = res.BandTop
	for res.BandBottom < len(sums) && !(sums[res.BandBottom] < threshold) {
		res.BandBottom++
	}

	res.Top = res.BandTop - cfg.Padding
	res.Bottom = res.BandBottom + cfg.Padding

	if res.Top < 0 {
		res.Warnings = append(res.Warnings, fmt.Errorf("%w: top %d clamped to 0", ErrCropOutOfBounds, res.Top))
		res.Top = 0
	}

	if res.Bottom > f.Height {
		res.Warnings = append(res.Warnings, fmt.Errorf("%w: bottom %d clamped to %d", ErrCropOutOfBounds, res.Bottom, f.Height))
		res.Bottom = f.Height
	}

	if res.Bottom-res.Top <= 2*cfg.Padding {
		return res, fmt.Errorf("%w: rows %d:%d with padding %d", ErrEmptyCropRegion, res.Top, res.Bottom, cfg.Padding)
	}

	res.Frame, err = Crop(f, res.Top, res.Bottom)

	return res, err
}

// Crop returns a copy of rows top..bottom-1.
func Crop(f *Frame, top, bottom int) (*Frame, error) {
	if top < 0 || bottom > f.Height || bottom <= top {
		return nil, fmt.Errorf("%w: rows %d:%d of %d", ErrCropOutOfBounds, top, bottom, f.Height)
	}

	data := append([]float64(nil), f.Data[top*f.Width:bottom*f.Width]...)

	return &Frame{Width: f.Width, Height: bottom - top, Data: data}, nil
}
