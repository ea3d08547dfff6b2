package spline

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Spline is a fitted B-spline in knot/coefficient form.
type Spline struct {
	t  []float64
	c  []float64
	k  int
	fp float64
}

// Fit computes a smoothing spline through (x, y).
func Fit(x, y []float64, opts ...Option) (*Spline, error) {
	cfg := ApplyOptions(opts...)

	if err := validateData(x, y, cfg.Weights, cfg.Degree); err != nil {
		return nil, err
	}

	if cfg.Smoothing < 0 {
		return nil, errInvalidSmoothing
	}

	f := fitter{x: x, y: y, w: cfg.Weights, k: cfg.Degree}

	maxInterior := len(x) - cfg.Degree - 1
	if cfg.Smoothing == 0 || maxInterior == 0 {
		return f.interpolate()
	}

	var interior []float64

	s, err := f.solve(interior)
	if err != nil {
		return nil, err
	}

	for nplus := 1; s.fp > cfg.Smoothing; {
		// Stay below the interpolating knot count until no room is left.
		room := maxInterior - len(interior) - 1
		if room <= 0 {
			return f.interpolate()
		}

		next, ok := f.refine(s, interior, knotBatch(nplus, room))
		if !ok {
			return f.interpolate()
		}

		candidate, err := f.solve(next)
		if err != nil {
			return f.interpolate()
		}

		nplus = growBatch(len(next)-len(interior), s.fp-candidate.fp, candidate.fp-cfg.Smoothing)
		interior, s = next, candidate
	}

	return s, nil
}

// Eval returns the spline value at x. Outside the data range the end
// pieces are extended.
func (s *Spline) Eval(x float64) float64 {
	nc := len(s.c)
	span := findSpan(s.t, s.k, nc, x)
	n := make([]float64, s.k+1)
	left := make([]float64, s.k+1)
	right := make([]float64, s.k+1)
	basisFuns(s.t, s.k, span, x, n, left, right)

	var v float64
	for r := range n {
		v += s.c[span-s.k+r] * n[r]
	}

	return v
}

// EvalAll evaluates the spline at every element of xs.
func (s *Spline) EvalAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = s.Eval(x)
	}

	return out
}

// knotBatch limits a round of knot insertion to the remaining room.
func knotBatch(nplus, room int) int {
	return max(min(nplus, room), 0)
}

// growBatch estimates the size of the next round from the residual drop
// gained by the last one. The batch at most doubles and never falls below
// half the previous batch or one knot.
func growBatch(added int, gain, excess float64) int {
	added = max(added, 1)
	if gain <= 0 || excess <= 0 {
		return 2 * added
	}

	est := float64(added) * excess / gain
	if est >= float64(2*added) {
		return 2 * added
	}

	return max(int(est), added/2, 1)
}

// Knots returns a copy of the full knot vector including the k+1 repeated
// boundary knots at each end.
func (s *Spline) Knots() []float64 { return append([]float64(nil), s.t...) }

// Degree returns k.
func (s *Spline) Degree() int { return s.k }

// Residual returns the weighted residual sum of squares of the fit.
func (s *Spline) Residual() float64 { return s.fp }

type fitter struct {
	x, y, w []float64
	k       int
}

func (f *fitter) weight(i int) float64 {
	if f.w == nil {
		return 1
	}

	return f.w[i]
}

func (f *fitter) knots(interior []float64) []float64 {
	lo, hi := f.x[0], f.x[len(f.x)-1]
	t := make([]float64, 0, len(interior)+2*(f.k+1))

	for range f.k + 1 {
		t = append(t, lo)
	}

	t = append(t, interior...)

	for range f.k + 1 {
		t = append(t, hi)
	}

	return t
}

// solve computes the weighted least-squares coefficients for the given
// interior knots.
func (f *fitter) solve(interior []float64) (*Spline, error) {
	t := f.knots(interior)
	m := len(f.x)
	nc := len(interior) + f.k + 1

	a := mat.NewDense(m, nc, nil)
	b := mat.NewVecDense(m, nil)

	n := make([]float64, f.k+1)
	left := make([]float64, f.k+1)
	right := make([]float64, f.k+1)

	for i, xi := range f.x {
		wi := f.weight(i)
		span := findSpan(t, f.k, nc, xi)
		basisFuns(t, f.k, span, xi, n, left, right)

		for r, v := range n {
			a.Set(i, span-f.k+r, wi*v)
		}

		b.SetVec(i, wi*f.y[i])
	}

	var c mat.VecDense
	if err := c.SolveVec(a, b); err != nil {
		return nil, fmt.Errorf("spline: least-squares solve with %d knots: %w", len(t), err)
	}

	s := &Spline{t: t, c: make([]float64, nc), k: f.k}
	for i := range nc {
		s.c[i] = c.AtVec(i)
	}

	for i, xi := range f.x {
		r := f.weight(i) * (f.y[i] - s.Eval(xi))
		s.fp += r * r
	}

	return s, nil
}

// interpolate fits the spline through every sample using n-k-1 interior
// knots placed at data points (odd k) or midpoints (even k).
func (f *fitter) interpolate() (*Spline, error) {
	m := len(f.x)
	interior := make([]float64, 0, m-f.k-1)

	for j := range m - f.k - 1 {
		if f.k%2 == 1 {
			interior = append(interior, f.x[j+(f.k+1)/2])
		} else {
			interior = append(interior, (f.x[j+f.k/2]+f.x[j+f.k/2+1])/2)
		}
	}

	return f.solve(interior)
}

// refine inserts up to nplus knots into the intervals with the largest
// residual share. It reports false when no interval can take another knot.
func (f *fitter) refine(s *Spline, interior []float64, nplus int) ([]float64, bool) {
	bounds := append([]float64{f.x[0]}, interior...)
	bounds = append(bounds, f.x[len(f.x)-1])

	type interval struct {
		score float64
		split float64
	}

	candidates := make([]interval, 0, len(bounds)-1)
	lo := 0

	for iv := 0; iv+1 < len(bounds); iv++ {
		a, b := bounds[iv], bounds[iv+1]

		for lo < len(f.x) && f.x[lo] <= a {
			lo++
		}

		hi := lo
		score := 0.0

		for hi < len(f.x) && f.x[hi] < b {
			r := f.weight(hi) * (f.y[hi] - s.Eval(f.x[hi]))
			score += r * r
			hi++
		}

		// Strictly interior points lo..hi-1; keep at least one on each side.
		if hi-lo >= 3 {
			candidates = append(candidates, interval{score: score, split: f.x[(lo+hi)/2]})
		}
	}

	if len(candidates) == 0 {
		return nil, false
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })

	next := append([]float64(nil), interior...)
	for i := range min(nplus, len(candidates)) {
		next = append(next, candidates[i].split)
	}

	sort.Float64s(next)

	return next, true
}
