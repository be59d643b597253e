package scaling

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/tphakala/go-wavelet-bench/internal/vecops"
)

// DyadicGrid returns the d-th derivative of the scaling function with p
// vanishing moments sampled at k/2^r for k = 0..(2p-1)*2^r. The first and
// last samples are exact zeros.
//
// The integer-grid values solve the eigenvector equation of the two-scale
// transfer matrix; each refinement level doubles the grid with the
// two-scale relation phi(x) = sqrt(2) * sum_k h_k * phi(2x - k).
//
// Derivative orders are limited by smoothness: d=1 exists for all supported
// p, d=2 requires p >= 3, d=3 requires p >= 4.
func DyadicGrid[P vecops.Float](p, d, r int) ([]P, error) {
	h, err := Filter(p)
	if err != nil {
		return nil, err
	}
	switch {
	case d < 0 || d > 3:
		return nil, fmt.Errorf("%w: d=%d (supported: 0..3)", ErrUnsupportedDerivative, d)
	case d >= 2 && p < 3:
		return nil, fmt.Errorf("%w: d=%d requires p >= 3", ErrUnsupportedDerivative, d)
	case d == 3 && p < 4:
		return nil, fmt.Errorf("%w: d=3 requires p >= 4", ErrUnsupportedDerivative)
	case r < 0:
		return nil, fmt.Errorf("%w: r=%d", ErrUnsupportedLevel, r)
	}

	// Two-scale coefficients c_k = sqrt(2)*h_k, sum(c) = 2.
	c := make([]P, len(h))
	for j, hj := range h {
		c[j] = P(math.Sqrt2 * hj)
	}

	interior := integerGrid(h, d)
	v := make([]P, 2*p)
	for j, w := range interior {
		v[j+1] = P(w)
	}

	ops := vecops.For[P]()
	scale := P(int64(1) << d)
	for rho := 0; rho < r; rho++ {
		m := len(v)
		stride := 1 << rho
		odd := make([]P, m)
		for i := 0; i < m-1; i++ {
			y := 2*i + 1
			var s P
			for j := range c {
				idx := y - j*stride
				if idx >= 0 && idx < m {
					s += c[j] * v[idx]
				}
			}
			odd[i] = s
		}
		if d > 0 {
			ops.Scale(odd, odd, scale)
		}
		buf := make([]P, 2*m)
		ops.Interleave2(buf, v, odd)
		v = buf[: 2*m-1 : 2*m-1]
	}

	v[0] = 0
	v[len(v)-1] = 0
	return v, nil
}

// PartitionOfUnity returns sum_k v[k] * 2^-r. For a d=0 grid at level r the
// result is 1 up to rounding.
func PartitionOfUnity[P vecops.Float](v []P, r int) P {
	return vecops.For[P]().Sum(v) / P(int64(1)<<r)
}

// integerGrid solves for the interior integer-grid values v_1..v_{2p-2} of
// the d-th derivative. The defining system v = 2^d * C * v with
// C[m][j] = c_{2m-j} is rank deficient by one; the moment normalization
// row sum_m m^d v_m = (-1)^d * d! pins the scale, and the stacked system is
// solved in the least-squares sense.
func integerGrid(h []float64, d int) []float64 {
	p := len(h) / 2
	n := 2*p - 2
	scale := float64(int64(1) << d)

	a := mat.NewDense(n+1, n, nil)
	b := mat.NewVecDense(n+1, nil)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			idx := 2*(row+1) - (col + 1)
			if idx >= 0 && idx < 2*p {
				a.Set(row, col, scale*math.Sqrt2*h[idx])
			}
		}
		a.Set(row, row, a.At(row, row)-1)
	}
	rhs := math.Gamma(float64(d) + 1)
	if d%2 == 1 {
		rhs = -rhs
	}
	for col := 0; col < n; col++ {
		a.Set(n, col, math.Pow(float64(col+1), float64(d)))
	}
	b.SetVec(n, rhs)

	var qr mat.QR
	qr.Factorize(a)
	var x mat.VecDense
	if err := qr.SolveVecTo(&x, false, b); err != nil {
		// The stacked system is full column rank for every supported
		// (p, d); a failure here means the filter table is corrupt.
		panic(fmt.Sprintf("scaling: integer grid solve failed: %v", err))
	}
	return x.RawVector().Data
}
