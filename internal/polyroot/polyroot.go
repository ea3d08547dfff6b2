// Package polyroot finds roots of polynomials with real coefficients. It is
// used to locate stationary points of fitted line profiles.
package polyroot

import (
	"errors"
	"math"
	"math/cmplx"
	"sort"
)

// ErrDegeneratePolynomial is returned when a polynomial has no usable
// leading coefficient or the iteration fails to converge.
var ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")

// Eval evaluates a real polynomial at x using Horner's method. Coefficients
// are in descending power order: coeff[0]*x^n + ... + coeff[n].
func Eval(coeff []float64, x float64) float64 {
	var v float64
	for _, c := range coeff {
		v = v*x + c
	}

	return v
}

// Derivative returns the coefficients of the first derivative, descending.
func Derivative(coeff []float64) []float64 {
	n := len(coeff) - 1
	if n <= 0 {
		return []float64{0}
	}

	out := make([]float64, n)
	for i := range n {
		out[i] = coeff[i] * float64(n-i)
	}

	return out
}

// Trim drops leading coefficients that are negligible relative to the
// largest one (|c| <= rel*max|c|).
func Trim(coeff []float64, rel float64) []float64 {
	largest := 0.0
	for _, c := range coeff {
		largest = max(largest, math.Abs(c))
	}

	i := 0
	for i < len(coeff)-1 && math.Abs(coeff[i]) <= rel*largest {
		i++
	}

	return coeff[i:]
}

// RealRoots returns the real roots of a real polynomial (descending
// coefficients) in ascending order. Roots whose imaginary part exceeds tol
// relative to their magnitude are discarded.
func RealRoots(coeff []float64, tol float64) ([]float64, error) {
	coeff = Trim(coeff, 1e-14)
	if len(coeff) < 2 {
		return nil, nil
	}

	c := make([]complex128, len(coeff))
	for i, v := range coeff {
		c[i] = complex(v, 0)
	}

	roots, err := DurandKerner(c)
	if err != nil {
		return nil, err
	}

	var out []float64

	for _, r := range roots {
		if math.Abs(imag(r)) <= tol*math.Max(1, cmplx.Abs(r)) {
			out = append(out, real(r))
		}
	}

	sort.Float64s(out)

	return out, nil
}

// DurandKerner finds all roots of a polynomial using the Durand-Kerner
// (Weierstrass) simultaneous iteration method. Coefficients are in descending
// power order: coeff[0]*z^n + coeff[1]*z^(n-1) + ... + coeff[n].
//
//nolint:cyclop
func DurandKerner(coeff []complex128) ([]complex128, error) {
	if len(coeff) < 2 || coeff[0] == 0 {
		return nil, ErrDegeneratePolynomial
	}

	n := len(coeff) - 1
	monic := make([]complex128, len(coeff))

	// Cauchy-style bound on the root moduli seeds the starting circle.
	radius := 1.0

	for i := range coeff {
		monic[i] = coeff[i] / coeff[0]
		if i > 0 {
			radius = max(radius, cmplx.Abs(monic[i]))
		}
	}

	roots := make([]complex128, n)
	for i := range n {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.3
		r := radius * (1 + 0.1*float64(i)/float64(n))
		roots[i] = cmplx.Rect(r, angle)
	}

	const (
		maxIter = 500
		tol     = 1e-12
	)

	for range maxIter {
		maxDelta := 0.0

		for i := range n {
			den := complex(1, 0)

			for j := range n {
				if i != j {
					den *= roots[i] - roots[j]
				}
			}

			if den == 0 {
				roots[i] += complex(1e-10, 1e-10)
				continue
			}

			delta := polyEval(monic, roots[i]) / den
			roots[i] -= delta
			maxDelta = max(maxDelta, cmplx.Abs(delta))
		}

		if maxDelta < tol {
			return roots, nil
		}
	}

	for _, r := range roots {
		if cmplx.Abs(polyEval(monic, r)) >= 1e-6 {
			return nil, ErrDegeneratePolynomial
		}
	}

	return roots, nil
}

func polyEval(coeff []complex128, x complex128) complex128 {
	v := coeff[0]
	for i := 1; i < len(coeff); i++ {
		v = v*x + coeff[i]
	}

	return v
}
