package spline

import "sort"

// findSpan returns the knot span index i with t[i] <= x < t[i+1], limited
// to the valid range [k, nc-1] so that evaluation outside the data
// extrapolates the end pieces.
func findSpan(t []float64, k, nc int, x float64) int {
	if x < t[k+1] {
		return k
	}

	if x >= t[nc] {
		return nc - 1
	}

	// First index in t[k+1:nc+1] greater than x.
	i := sort.Search(nc-k, func(j int) bool { return t[k+1+j] > x })

	return k + i
}

// basisFuns writes the k+1 non-zero basis functions N[span-k..span] at x
// into n, using the Cox-de Boor triangular scheme.
func basisFuns(t []float64, k, span int, x float64, n, left, right []float64) {
	n[0] = 1

	for j := 1; j <= k; j++ {
		left[j] = x - t[span+1-j]
		right[j] = t[span+j] - x
		saved := 0.0

		for r := range j {
			temp := n[r] / (right[r+1] + left[j-r])
			n[r] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}

		n[j] = saved
	}
}
