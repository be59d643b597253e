package interp

import (
	"errors"

	"github.com/tphakala/go-wavelet-bench/internal/vecops"
)

// errSingular reports an exactly zero pivot during banded factorization.
var errSingular = errors.New("banded matrix is singular")

// bandedMatrix is an n x n matrix with kl subdiagonals and ku
// superdiagonals in LAPACK band storage: element (i, j) lives at
// ab[j*ldab + kl + ku + i - j], with kl extra rows for the fill-in of
// partial pivoting. It factors and solves in place, O(n) memory.
//
// gonum's dense solvers are float64-only; the spline coefficient systems
// here must stay generic over the sample type, hence the local kernel.
type bandedMatrix[R vecops.Float] struct {
	n, kl, ku int
	ldab      int
	ab        []R
	ipiv      []int
}

func newBandedMatrix[R vecops.Float](n, kl, ku int) *bandedMatrix[R] {
	ldab := 2*kl + ku + 1
	return &bandedMatrix[R]{
		n:    n,
		kl:   kl,
		ku:   ku,
		ldab: ldab,
		ab:   make([]R, n*ldab),
		ipiv: make([]int, n),
	}
}

func (m *bandedMatrix[R]) set(i, j int, v R) {
	m.ab[j*m.ldab+m.kl+m.ku+i-j] = v
}

// factor computes the LU decomposition with partial pivoting. Row swaps
// widen the upper band up to kl columns into the fill-in rows.
func (m *bandedMatrix[R]) factor() error {
	n, kl, ab, ldab := m.n, m.kl, m.ab, m.ldab
	kv := m.kl + m.ku
	ju := 0
	for j := 0; j < n; j++ {
		km := kl
		if n-1-j < km {
			km = n - 1 - j
		}
		piv := j
		pmax := abs(ab[j*ldab+kv])
		for i := 1; i <= km; i++ {
			if t := abs(ab[j*ldab+kv+i]); t > pmax {
				pmax = t
				piv = j + i
			}
		}
		m.ipiv[j] = piv
		if pmax == 0 {
			return errSingular
		}
		if jw := j + m.ku + (piv - j); jw > ju {
			ju = jw
			if ju > n-1 {
				ju = n - 1
			}
		}
		if piv != j {
			for col := j; col <= ju; col++ {
				a := col*ldab + kv + j - col
				b := col*ldab + kv + piv - col
				ab[a], ab[b] = ab[b], ab[a]
			}
		}
		d := ab[j*ldab+kv]
		for i := 1; i <= km; i++ {
			ab[j*ldab+kv+i] /= d
		}
		for col := j + 1; col <= ju; col++ {
			f := ab[col*ldab+kv+j-col]
			if f != 0 {
				for i := 1; i <= km; i++ {
					ab[col*ldab+kv+j-col+i] -= f * ab[j*ldab+kv+i]
				}
			}
		}
	}
	return nil
}

// solve returns the solution of m*x = b using the factorization.
func (m *bandedMatrix[R]) solve(b []R) []R {
	n, kl, ab, ldab := m.n, m.kl, m.ab, m.ldab
	kv := m.kl + m.ku
	x := make([]R, n)
	copy(x, b)
	for j := 0; j < n; j++ {
		if piv := m.ipiv[j]; piv != j {
			x[j], x[piv] = x[piv], x[j]
		}
		km := kl
		if n-1-j < km {
			km = n - 1 - j
		}
		for i := 1; i <= km; i++ {
			x[j+i] -= ab[j*ldab+kv+i] * x[j]
		}
	}
	for j := n - 1; j >= 0; j-- {
		lo := j - kv
		if lo < 0 {
			lo = 0
		}
		x[j] /= ab[j*ldab+kv]
		for i := lo; i < j; i++ {
			x[i] -= ab[j*ldab+kv+i-j] * x[j]
		}
	}
	return x
}
