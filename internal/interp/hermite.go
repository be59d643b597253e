package interp

import (
	"math"

	"github.com/tphakala/go-wavelet-bench/internal/vecops"
)

// Cardinal Hermite basis polynomials in ascending power order. Row k is the
// left-endpoint basis for the k-th derivative; the right-endpoint basis is
// its reflection (-1)^k * B_k(1-t). The rows solve the 2(k_max+1)
// interpolation conditions B_k^(j)(0) = delta_{kj}, B_k^(j)(1) = 0 exactly.
var (
	hermiteCubic = [][]float64{
		{1, 0, -3, 2},
		{0, 1, -2, 1},
	}

	hermiteQuintic = [][]float64{
		{1, 0, 0, -10, 15, -6},
		{0, 1, 0, -6, 8, -3},
		{0, 0, 0.5, -1.5, 1.5, -0.5},
	}

	hermiteSeptic = [][]float64{
		{1, 0, 0, 0, -35, 84, -70, 20},
		{0, 1, 0, 0, -20, 45, -36, 10},
		{0, 0, 0.5, 0, -5, 10, -7.5, 2},
		{0, 0, 0, 1.0 / 6, -2.0 / 3, 1, -2.0 / 3, 1.0 / 6},
	}
)

// NewCardinalHermite returns the piecewise Hermite interpolant of degree
// 2*len(grids)-1 on a uniform grid with spacing dx. grids[k] holds the k-th
// derivative samples; basis is one of the hermite* tables above.
func NewCardinalHermite[R vecops.Float](basis [][]float64, grids [][]R, dx R) (Func[R], error) {
	n := len(grids[0])
	if err := checkLen("hermite", n, 2); err != nil {
		return nil, err
	}
	for _, g := range grids[1:] {
		if err := checkLen("hermite", len(g), n); err != nil {
			return nil, err
		}
	}
	b := make([][]R, len(basis))
	for k, row := range basis {
		b[k] = make([]R, len(row))
		for j, w := range row {
			b[k][j] = R(w)
		}
	}
	xmax := R(n-1) * dx
	return func(x R) R {
		if x <= 0 || x >= xmax {
			return 0
		}
		t := x / dx
		i := int(math.Floor(float64(t)))
		if i >= n-1 {
			i = n - 2
		}
		t -= R(i)
		var s R
		hk := R(1)
		for k, g := range grids {
			left := polyval(b[k], t)
			right := polyval(b[k], 1-t)
			if k%2 == 1 {
				right = -right
			}
			s += hk * (left*g[i] + right*g[i+1])
			hk *= dx
		}
		return s
	}, nil
}

// polyval evaluates a polynomial in ascending power order by Horner's rule.
func polyval[R vecops.Float](coef []R, t R) R {
	var s R
	for j := len(coef) - 1; j >= 0; j-- {
		s = s*t + coef[j]
	}
	return s
}
