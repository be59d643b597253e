package interp

import (
	"math"

	"github.com/tphakala/go-wavelet-bench/internal/vecops"
)

// NewMatchedHolder returns a local model that carries the Hölder cusp of
// the scaling function into every cell: on [x_i, x_{i+1}] it evaluates
//
//	a + b*t + c*sqrt(1-t), t = (x - x_i)/dx,
//
// value-matched at both cell ends and derivative-matched at the left end.
// The exponent 1/2 stands in for the exact Hölder exponent
// 2 - log2(1+sqrt(3)) of the p=2 scaling function.
//
// The model is unchecked at the right boundary of the last cell, so the
// evaluator must not sample the final dense abscissa.
func NewMatchedHolder[R vecops.Float](phi, phiPrime []R, level int, support R) (Func[R], error) {
	if err := checkLen("matched_holder", len(phi), 2); err != nil {
		return nil, err
	}
	inv := R(int64(1) << level)
	h := 1 / inv
	return func(x R) R {
		if x <= 0 || x >= support {
			return 0
		}
		y := inv * x
		k := R(math.Floor(float64(y)))
		i := int(k)
		t := y - k
		c := 2 * (h*phiPrime[i] - (phi[i+1] - phi[i]))
		a := phi[i] - c
		b := phi[i+1] - a
		return a + b*t + c*R(math.Sqrt(float64(1-t)))
	}, nil
}
