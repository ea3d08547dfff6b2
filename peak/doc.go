// Package peak locates the sub-pixel centre of the brightest feature in a
// 1-D trace, typically the zero-order image of a slitless spectrograph.
//
// The trace is windowed symmetrically around its maximum sample, a
// least-squares polynomial is fitted to the window, and the polynomial is
// resampled densely to find its maximum. WithRefine additionally polishes
// that estimate with the real stationary points of the polynomial.
package peak
