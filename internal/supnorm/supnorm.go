// Package supnorm measures how far an interpolant strays from a dense
// reference grid, reporting the sup norm of the pointwise error together
// with a worst-case ULP distance diagnostic.
package supnorm

import (
	"math"

	"github.com/tphakala/go-wavelet-bench/internal/mathutil"
	"github.com/tphakala/go-wavelet-bench/internal/vecops"
)

// maskFloorScale times machine epsilon is the default near-zero mask:
// reference samples smaller in magnitude are skipped, so relative-error
// noise where the function is numerically zero never drives the sup.
const maskFloorScale = 100

// Options configures one evaluation.
type Options[R vecops.Float] struct {
	// SkipLast excludes the final reference sample. Needed for
	// interpolants whose last cell boundary is unchecked.
	SkipLast bool

	// MaskFloor overrides the default near-zero mask 100*eps when > 0.
	MaskFloor R
}

// Result is the error record of one candidate against the reference.
type Result[R vecops.Float] struct {
	// Sup is the maximum absolute error over unmasked samples. +Inf when
	// the candidate produced NaN or Inf anywhere.
	Sup R

	// WorstULP is the largest ULP distance observed, with the sample
	// where it occurred.
	WorstULP      int64
	WorstAbscissa R
	WorstExpected R
	WorstComputed R
}

// Evaluate samples f at i*dxDense for every unmasked reference sample and
// tracks the worst absolute and ULP deviations. Iteration is sequential and
// deterministic. A NaN or Inf from f short-circuits to Sup = +Inf.
func Evaluate[R vecops.Float](reference []R, f func(R) R, dxDense R, opts Options[R]) Result[R] {
	floor := opts.MaskFloor
	if floor <= 0 {
		floor = maskFloorScale * mathutil.Eps[R]()
	}
	n := len(reference)
	if opts.SkipLast {
		n--
	}

	var res Result[R]
	for i := 0; i < n; i++ {
		expected := reference[i]
		if abs(expected) < floor {
			continue
		}
		t := R(i) * dxDense
		computed := f(t)
		f64 := float64(computed)
		if math.IsNaN(f64) || math.IsInf(f64, 0) {
			res.Sup = R(math.Inf(1))
			return res
		}
		if diff := abs(expected - computed); diff > res.Sup {
			res.Sup = diff
		}
		if ulp := absInt64(mathutil.FloatDistance(computed, expected)); ulp > res.WorstULP {
			res.WorstULP = ulp
			res.WorstAbscissa = t
			res.WorstExpected = expected
			res.WorstComputed = computed
		}
	}
	return res
}

func abs[R vecops.Float](x R) R {
	if x < 0 {
		return -x
	}
	return x
}

func absInt64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
