package lines_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectro/calib"
	"github.com/cwbudde/algo-spectro/lines"
)

func ExampleCatalog() {
	cal, err := calib.Parse("120:Hb,860:Ha", lines.Catalog{})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(cal)
	fmt.Printf("%.1f\n", cal.Angstrom(490))
	// Output:
	// <Calibration angstrom_per_pixel: 2.300000>
	// 5712.0
}

func ExampleLine() {
	l, _ := lines.Get("CaK")
	fmt.Println(l)
	fmt.Println(l.PlotLabel())
	// Output:
	// 3934.000000 (Ca K)
	// Ca K (3934.00 Å)
}
