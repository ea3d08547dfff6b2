package frame

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Summary holds descriptive statistics of a sample set.
type Summary struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	Std    float64
}

// Describe summarises data, e.g. a frame's pixels or a trace.
func Describe(data []float64) (Summary, error) {
	d, err := stats.Describe(data, false, nil)
	if err != nil {
		return Summary{}, fmt.Errorf("frame: describe: %w", err)
	}

	median, err := stats.Median(data)
	if err != nil {
		return Summary{}, fmt.Errorf("frame: describe: %w", err)
	}

	return Summary{
		Count:  d.Count,
		Min:    d.Min,
		Max:    d.Max,
		Mean:   d.Mean,
		Median: median,
		Std:    d.Std,
	}, nil
}
