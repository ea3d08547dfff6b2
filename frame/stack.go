package frame

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectro/align"
)

// StackConfig controls Stack.
type StackConfig struct {
	// MaxLag enables registration along the dispersion axis when positive:
	// each frame is shifted by the cross-correlation lag (|lag| <= MaxLag)
	// of its binned trace against the first frame.
	MaxLag int
}

// StackOption mutates a StackConfig.
type StackOption func(*StackConfig)

// WithAlignment registers frames before averaging.
func WithAlignment(maxLag int) StackOption {
	return func(cfg *StackConfig) {
		if maxLag > 0 {
			cfg.MaxLag = maxLag
		}
	}
}

// StackResult is the outcome of Stack.
type StackResult struct {
	Frame *Frame
	// Lags holds the applied shift per input frame (all zero without
	// alignment).
	Lags []int
}

// Stack averages frames pixel by pixel.
func Stack(frames []*Frame, opts ...StackOption) (StackResult, error) {
	var cfg StackConfig

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if len(frames) == 0 {
		return StackResult{}, ErrNoFrames
	}

	master := frames[0]
	res := StackResult{
		Frame: &Frame{Width: master.Width, Height: master.Height, Data: make([]float64, len(master.Data))},
		Lags:  make([]int, len(frames)),
	}

	var ref []float64
	if cfg.MaxLag > 0 {
		ref = Bin(master)
	}

	for i, f := range frames {
		if err := validateSameShape(master, f); err != nil {
			return StackResult{}, fmt.Errorf("frame %d: %w", i, err)
		}

		if cfg.MaxLag > 0 && i > 0 {
			lag, err := align.Lag(ref, Bin(f), cfg.MaxLag)
			if err != nil {
				return StackResult{}, fmt.Errorf("frame %d: %w", i, err)
			}

			res.Lags[i] = lag
			f = shiftColumns(f, -lag)
		}

		vecmath.AddBlockInPlace(res.Frame.Data, f.Data)
	}

	vecmath.ScaleBlockInPlace(res.Frame.Data, 1/float64(len(frames)))

	return res, nil
}

func shiftColumns(f *Frame, lag int) *Frame {
	if lag == 0 {
		return f
	}

	out := &Frame{Width: f.Width, Height: f.Height, Data: make([]float64, 0, len(f.Data))}
	for y := range f.Height {
		out.Data = append(out.Data, align.Shift(f.Row(y), lag)...)
	}

	return out
}
