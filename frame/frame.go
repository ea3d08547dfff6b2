package frame

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// Frame is a row-major 2-D image.
type Frame struct {
	Width  int
	Height int
	Data   []float64
}

// New wraps data as a width×height frame. data is not copied.
func New(width, height int, data []float64) (*Frame, error) {
	if width <= 0 || height <= 0 || len(data) != width*height {
		return nil, fmt.Errorf("%w: %d samples for %dx%d", ErrShapeMismatch, len(data), width, height)
	}

	return &Frame{Width: width, Height: height, Data: data}, nil
}

// Row returns row y as a sub-slice of Data.
func (f *Frame) Row(y int) []float64 {
	return f.Data[y*f.Width : (y+1)*f.Width]
}

// At returns the sample at column x, row y.
func (f *Frame) At(x, y int) float64 {
	return f.Data[y*f.Width+x]
}

// Clone returns a deep copy.
func (f *Frame) Clone() *Frame {
	return &Frame{Width: f.Width, Height: f.Height, Data: append([]float64(nil), f.Data...)}
}

// Bin collapses the frame to a trace by summing every column.
func Bin(f *Frame) []float64 {
	out := make([]float64, f.Width)
	for y := range f.Height {
		vecmath.AddBlockInPlace(out, f.Row(y))
	}

	return out
}

// RowSums returns the sum of each row.
func RowSums(f *Frame) []float64 {
	out := make([]float64, f.Height)
	for y := range f.Height {
		out[y] = vecmath.Sum(f.Row(y))
	}

	return out
}

// DarkSubtract removes dark from light and clips the result to the 8-bit
// range 0..255.
func DarkSubtract(light, dark *Frame) (*Frame, error) {
	if err := validateSameShape(light, dark); err != nil {
		return nil, err
	}

	out := &Frame{Width: light.Width, Height: light.Height, Data: make([]float64, len(light.Data))}
	for i, v := range light.Data {
		out.Data[i] = min(max(v-dark.Data[i], 0), 255)
	}

	return out, nil
}

// ScaleDepth multiplies every sample by factor, e.g. 256 to move 8-bit data
// into the 16-bit range.
func ScaleDepth(f *Frame, factor float64) *Frame {
	out := &Frame{Width: f.Width, Height: f.Height, Data: make([]float64, len(f.Data))}
	vecmath.ScaleBlock(out.Data, f.Data, factor)

	return out
}
