// Command find-best-interpolator ranks interpolation schemes on the
// Daubechies scaling functions phi_2..phi_15. It takes no arguments and
// writes one convergence CSV per scaling function to the working directory,
// printing the per-level rankings as it goes.
//
// Historical results for reference: linear interpolation wins for p = 2 and
// p = 3, the cubic Hermite spline for p = 4 and 5, the quintic Hermite
// spline for mid-range p, and the septic Hermite spline for large p.
package main

import (
	"fmt"
	"os"

	waveletbench "github.com/tphakala/go-wavelet-bench"
)

func main() {
	if err := waveletbench.Run[float64, float64](waveletbench.DefaultConfig()); err != nil {
		fmt.Fprintln(os.Stderr, "find-best-interpolator:", err)
		os.Exit(1)
	}
}
