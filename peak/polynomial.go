package peak

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Polynomial is a least-squares fit in the normalised variable
// u = (x - Offset) / Scale.
type Polynomial struct {
	// Coeffs are ascending in u.
	Coeffs []float64
	Offset float64
	Scale  float64
}

// Eval evaluates the polynomial at pixel position x.
func (p Polynomial) Eval(x float64) float64 {
	u := (x - p.Offset) / p.Scale

	var v float64
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		v = v*u + p.Coeffs[i]
	}

	return v
}

// EvalAll evaluates the polynomial at every element of xs.
func (p Polynomial) EvalAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = p.Eval(x)
	}

	return out
}

// fitPolynomial fits y sampled at x = first..first+len(y)-1.
func fitPolynomial(first int, y []float64, degree int) (Polynomial, error) {
	m := len(y)
	half := float64(m-1) / 2
	p := Polynomial{
		Offset: float64(first) + half,
		Scale:  max(half, 1),
	}

	a := mat.NewDense(m, degree+1, nil)
	b := mat.NewVecDense(m, nil)

	for i := range m {
		u := (float64(i) - half) / p.Scale
		pow := 1.0

		for j := 0; j <= degree; j++ {
			a.Set(i, j, pow)
			pow *= u
		}

		b.SetVec(i, y[i])
	}

	var c mat.VecDense
	if err := c.SolveVec(a, b); err != nil {
		return Polynomial{}, fmt.Errorf("peak: polynomial fit of degree %d: %w", degree, err)
	}

	p.Coeffs = make([]float64, degree+1)
	for j := range p.Coeffs {
		p.Coeffs[j] = c.AtVec(j)
	}

	return p, nil
}
