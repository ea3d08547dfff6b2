package reduce

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectro/spectrum"
)

// Stacked is the mean of several spectra on the master's wavelength grid.
type Stacked struct {
	Data []float64
	// Count is the number of co-added spectra including the master.
	Count int
}

// StackSpectra resamples every spectrum in others onto the wavelengths of
// master and averages them together with master.
func StackSpectra(master spectrum.Spectrum, others ...spectrum.Spectrum) (Stacked, error) {
	base := master.Intensities()
	if len(base) == 0 {
		return Stacked{}, ErrNoData
	}

	sum := append([]float64(nil), base...)

	for i, s := range others {
		resampled, err := spectrum.InterpolateTo(s, master)
		if err != nil {
			return Stacked{}, fmt.Errorf("reduce: spectrum %d: %w", i+1, err)
		}

		vecmath.AddBlockInPlace(sum, resampled)
	}

	count := 1 + len(others)
	vecmath.ScaleBlockInPlace(sum, 1/float64(count))

	return Stacked{Data: sum, Count: count}, nil
}
