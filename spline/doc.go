// Package spline fits smoothing B-splines to sampled data.
//
// Fit computes a least-squares spline of degree k whose weighted residual
// sum of squares does not exceed a smoothing bound s. Starting from a single
// polynomial piece, knots are inserted at data points inside the knot
// intervals carrying the largest residual until the bound holds. A bound of
// zero yields the interpolating spline with the classic FITPACK knot
// placement.
//
// Unlike FITPACK's curfit, the fit does not solve for a smoothing parameter p
// once enough knots are present; the returned spline is the plain
// least-squares fit on the final knot set, so its residual lies at or below
// the requested bound rather than on it.
package spline
