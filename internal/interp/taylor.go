package interp

import (
	"math"

	"github.com/tphakala/go-wavelet-bench/internal/vecops"
)

// NewTaylor returns the local Taylor interpolant of order len(grids)-1.
// grids[o] holds the o-th derivative samples at k/2^level. Each evaluation
// expands about the nearest grid point; exact midpoints round up to the
// right anchor (the tie test is strict less-than).
func NewTaylor[R vecops.Float](grids [][]R, level int, support R) (Func[R], error) {
	for _, g := range grids {
		if err := checkLen("taylor", len(g), 2); err != nil {
			return nil, err
		}
	}
	inv := R(int64(1) << level)
	return func(x R) R {
		if x <= 0 || x >= support {
			return 0
		}
		y := inv * x
		k := R(math.Floor(float64(y)))
		anchor := int(k)
		if y-k >= k+1-y {
			anchor++
		}
		eps := (y - R(anchor)) / inv
		s := grids[0][anchor]
		ek := R(1)
		fact := R(1)
		for o := 1; o < len(grids); o++ {
			ek *= eps
			fact *= R(o)
			s += ek * grids[o][anchor] / fact
		}
		return s
	}, nil
}
