// Package render draws spectra, annotated element lines and raw frames
// with gonum/plot.
//
// A Graph collects what should appear on the spectrum panel and builds a
// *plot.Plot on demand. ImagePanel renders a frame as a grayscale image
// panel, and Save writes one or two stacked panels to an image file whose
// format follows the file extension.
package render
