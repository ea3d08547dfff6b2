package peak

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-spectro/internal/polyroot"
)

// Result describes a located peak.
type Result struct {
	// DataPeak is the index of the largest sample.
	DataPeak int
	// Center is the fitted sub-pixel peak position.
	Center float64
	// Left and Right are the inclusive window bounds.
	Left, Right int
	// Fit is the polynomial fitted over the window.
	Fit Polynomial
}

// FindCenter estimates the sub-pixel position of the maximum of trace.
func FindCenter(trace []float64, opts ...Option) (Result, error) {
	cfg := ApplyOptions(opts...)
	if err := validateConfig(cfg); err != nil {
		return Result{}, err
	}

	n := len(trace)
	if n == 0 {
		return Result{}, ErrEmptyTrace
	}

	if 2*cfg.HalfWidth >= n {
		return Result{}, fmt.Errorf("%w: window of %d samples on a trace of %d",
			ErrInsufficientSamples, 2*cfg.HalfWidth+1, n)
	}

	// Samples past the search limit take no part in the fit either.
	limit := n
	if cfg.SearchLimit > 0 && cfg.SearchLimit < n {
		limit = cfg.SearchLimit
	}

	res := Result{DataPeak: floats.MaxIdx(trace[:limit])}
	res.Left = max(res.DataPeak-cfg.HalfWidth, 0)
	res.Right = min(res.DataPeak+cfg.HalfWidth, limit-1)

	window := trace[res.Left : res.Right+1]
	if len(window) <= cfg.Degree {
		return Result{}, fmt.Errorf("%w: %d samples for degree %d",
			ErrInsufficientSamples, len(window), cfg.Degree)
	}

	fit, err := fitPolynomial(res.Left, window, cfg.Degree)
	if err != nil {
		return Result{}, err
	}

	res.Fit = fit

	xs := floats.Span(make([]float64, cfg.Samples), float64(res.Left), float64(res.Right))
	res.Center = xs[floats.MaxIdx(fit.EvalAll(xs))]

	if cfg.Refine {
		res.Center = refine(fit, res.Center, float64(res.Left), float64(res.Right))
	}

	return res, nil
}

// refine returns the stationary point of p inside [lo, hi] with the largest
// value, or x0 when none beats it.
func refine(p Polynomial, x0, lo, hi float64) float64 {
	desc := make([]float64, len(p.Coeffs))
	for i, c := range p.Coeffs {
		desc[len(desc)-1-i] = c
	}

	roots, err := polyroot.RealRoots(polyroot.Trim(polyroot.Derivative(desc), 1e-9), 1e-9)
	if err != nil {
		return x0
	}

	best, bestVal := x0, p.Eval(x0)

	for _, u := range roots {
		x := p.Offset + u*p.Scale
		if x < lo || x > hi {
			continue
		}

		if v := p.Eval(x); v > bestVal {
			best, bestVal = x, v
		}
	}

	return best
}
