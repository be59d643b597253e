package interp

import (
	"fmt"
	"math"

	"github.com/tphakala/go-wavelet-bench/internal/vecops"
)

// EndCondition pins a derivative value at a boundary of a B-spline fit.
// Order 1 or 2; Value is the prescribed derivative at the end abscissa.
type EndCondition[R vecops.Float] struct {
	Order int
	Value R
}

// bsplineKernel evaluates the centered cardinal B-spline of degree deg at u
// by the Cox-de Boor recursion. The degree-0 kernel is the half-open
// indicator of [-1/2, 1/2).
func bsplineKernel[R vecops.Float](deg int, u R) R {
	if deg == 0 {
		if -0.5 <= u && u < 0.5 {
			return 1
		}
		return 0
	}
	half := R(deg+1) / 2
	if u <= -half || u >= half {
		return 0
	}
	return ((u+half)*bsplineKernel(deg-1, u+0.5) + (half-u)*bsplineKernel(deg-1, u-0.5)) / R(deg)
}

// First and second kernel derivatives via the difference relations
// B'_d(u) = B_{d-1}(u+1/2) - B_{d-1}(u-1/2) and its iterate.
func bsplineKernelD1[R vecops.Float](deg int, u R) R {
	return bsplineKernel(deg-1, u+0.5) - bsplineKernel(deg-1, u-0.5)
}

func bsplineKernelD2[R vecops.Float](deg int, u R) R {
	return bsplineKernel(deg-2, u+1) - 2*bsplineKernel(deg-2, u) + bsplineKernel(deg-2, u-1)
}

func bsplineKernelDeriv[R vecops.Float](deg, order int, u R) R {
	switch order {
	case 1:
		return bsplineKernelD1(deg, u)
	case 2:
		return bsplineKernelD2(deg, u)
	default:
		return bsplineKernel(deg, u)
	}
}

// NewCardinalBSpline fits sum_j c_j * B_deg(x/dx - j) through the samples
// y[i] at abscissas i*dx. The deg/2 ghost coefficients per side are pinned
// by the left and right end conditions; the collocation system is banded
// and solved by LU with partial pivoting.
func NewCardinalBSpline[R vecops.Float](deg int, y []R, dx R, left, right []EndCondition[R]) (Func[R], error) {
	n := len(y)
	if err := checkLen("b-spline", n, deg+1); err != nil {
		return nil, err
	}
	lo := deg / 2
	ncoef := n + 2*lo
	if len(left)+len(right) != 2*lo {
		return nil, fmt.Errorf("b-spline of degree %d needs %d end conditions, got %d", deg, 2*lo, len(left)+len(right))
	}

	m := newBandedMatrix[R](ncoef, 2*lo, 2*lo)
	rhs := make([]R, ncoef)
	row := 0
	for _, ec := range left {
		for j := -lo; j <= lo; j++ {
			w := bsplineKernelDeriv(deg, ec.Order, R(-j)) / powInt(dx, ec.Order)
			if w != 0 {
				m.set(row, j+lo, w)
			}
		}
		rhs[row] = ec.Value
		row++
	}
	for i := 0; i < n; i++ {
		for j := i - lo; j <= i+lo; j++ {
			w := bsplineKernel(deg, R(i-j))
			if w != 0 {
				m.set(row, j+lo, w)
			}
		}
		rhs[row] = y[i]
		row++
	}
	for _, ec := range right {
		i := n - 1
		for j := i - lo; j <= i+lo; j++ {
			w := bsplineKernelDeriv(deg, ec.Order, R(i-j)) / powInt(dx, ec.Order)
			if w != 0 {
				m.set(row, j+lo, w)
			}
		}
		rhs[row] = ec.Value
		row++
	}

	if err := m.factor(); err != nil {
		return nil, err
	}
	c := m.solve(rhs)

	xmax := R(n-1) * dx
	halfWidth := float64(deg+1) / 2
	return func(x R) R {
		if x <= 0 || x >= xmax {
			return 0
		}
		t := x / dx
		jmin := int(math.Ceil(float64(t) - halfWidth))
		jmax := int(math.Floor(float64(t) + halfWidth))
		var s R
		for j := jmin; j <= jmax; j++ {
			if k := j + lo; k >= 0 && k < len(c) {
				s += c[k] * bsplineKernel(deg, t-R(j))
			}
		}
		return s
	}, nil
}

func powInt[R vecops.Float](x R, k int) R {
	p := R(1)
	for ; k > 0; k-- {
		p *= x
	}
	return p
}
