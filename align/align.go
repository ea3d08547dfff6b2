// Package align estimates and removes integer shifts between 1-D profiles
// using FFT cross-correlation. Frame stacking uses it to register exposures
// whose spectra drifted along the dispersion axis.
package align

import (
	"errors"
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"
)

// ErrEmptyInput is returned when either profile has no samples.
var ErrEmptyInput = errors.New("align: empty input")

// CorrelateFFT computes the full linear cross-correlation of a and b.
// The result has length len(a) + len(b) - 1 and index k holds
// sum_i a[i+lag] * b[i] for lag = k - (len(b) - 1).
func CorrelateFFT(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	n, m := len(a), len(b)
	fftSize := nextPowerOf2(n + m - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("align: failed to create FFT plan: %w", err)
	}

	aFreq, err := forward(plan.Forward, a, fftSize)
	if err != nil {
		return nil, err
	}

	bFreq, err := forward(plan.Forward, b, fftSize)
	if err != nil {
		return nil, err
	}

	// A * conj(B)
	for i := range aFreq {
		aFreq[i] *= complex(real(bFreq[i]), -imag(bFreq[i]))
	}

	circular := make([]complex128, fftSize)
	if err := plan.Inverse(circular, aFreq); err != nil {
		return nil, fmt.Errorf("align: inverse FFT failed: %w", err)
	}

	// Non-negative lags sit at the start of the circular result, negative
	// lags wrap around to its end.
	result := make([]float64, n+m-1)
	for i := range n {
		result[m-1+i] = real(circular[i])
	}

	for i := range m - 1 {
		result[i] = real(circular[fftSize-m+1+i])
	}

	return result, nil
}

func forward(fft func(dst, src []complex128) error, x []float64, size int) ([]complex128, error) {
	padded := make([]complex128, size)
	for i, v := range x {
		padded[i] = complex(v, 0)
	}

	freq := make([]complex128, size)
	if err := fft(freq, padded); err != nil {
		return nil, fmt.Errorf("align: forward FFT failed: %w", err)
	}

	return freq, nil
}

// FindPeak returns the index and value of the maximum of corr, or -1 for
// an empty slice.
func FindPeak(corr []float64) (index int, value float64) {
	if len(corr) == 0 {
		return -1, 0
	}

	for i, v := range corr {
		if i == 0 || v > value {
			index, value = i, v
		}
	}

	return index, value
}

// LagFromIndex converts a correlation index to a lag for a second operand
// of length lenB.
func LagFromIndex(index, lenB int) int {
	return index - (lenB - 1)
}

// Lag estimates the offset of x relative to ref, so that x[i] ≈ ref[i-lag].
// Means are removed before correlating. A positive maxLag limits the search
// to |lag| <= maxLag. Shift(x, -lag) aligns x with ref.
func Lag(ref, x []float64, maxLag int) (int, error) {
	corr, err := CorrelateFFT(centred(x), centred(ref))
	if err != nil {
		return 0, err
	}

	lo, hi := 0, len(corr)
	if maxLag > 0 {
		zero := len(ref) - 1
		lo = max(zero-maxLag, 0)
		hi = min(zero+maxLag+1, len(corr))
	}

	idx, _ := FindPeak(corr[lo:hi])

	return LagFromIndex(lo+idx, len(ref)), nil
}

// Shift returns x moved right by lag samples (left for negative lag).
// Vacated samples are zero.
func Shift(x []float64, lag int) []float64 {
	out := make([]float64, len(x))
	for i := range out {
		if j := i - lag; j >= 0 && j < len(x) {
			out[i] = x[j]
		}
	}

	return out
}

func centred(x []float64) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}

	mean := vecmath.Sum(x) / float64(len(x))
	for i, v := range x {
		out[i] = v - mean
	}

	return out
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
