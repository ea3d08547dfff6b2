package peak_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectro/peak"
)

func ExampleFindCenter() {
	trace := make([]float64, 120)
	for i := range trace {
		d := float64(i) - 42
		trace[i] = 900 * math.Exp(-d*d/18)
	}

	res, err := peak.FindCenter(trace, peak.WithRefine())
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("data peak %d, fitted %.2f\n", res.DataPeak, res.Center)
	// Output:
	// data peak 42, fitted 42.00
}
