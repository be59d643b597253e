package interp

import (
	"math"

	"github.com/tphakala/go-wavelet-bench/internal/vecops"
)

// NewLinear returns the piecewise-linear interpolant of phi sampled at
// k/2^level, zero outside (0, support).
func NewLinear[R vecops.Float](phi []R, level int, support R) (Func[R], error) {
	if err := checkLen("linear", len(phi), 2); err != nil {
		return nil, err
	}
	inv := R(int64(1) << level)
	return func(x R) R {
		if x <= 0 || x >= support {
			return 0
		}
		y := inv * x
		k := R(math.Floor(float64(y)))
		kk := int(k)
		t := y - k
		return (1-t)*phi[kk] + t*phi[kk+1]
	}, nil
}
