package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quadraticGrids samples x^2 and its first two derivatives at k/2^r over
// [0, support].
func quadraticGrids(r int, support float64) [][]float64 {
	n := int(support)*(1<<r) + 1
	h := 1.0 / float64(int64(1)<<r)
	y := make([]float64, n)
	d1 := make([]float64, n)
	d2 := make([]float64, n)
	for k := 0; k < n; k++ {
		x := float64(k) * h
		y[k] = x * x
		d1[k] = 2 * x
		d2[k] = 2
	}
	return [][]float64{y, d1, d2}
}

func TestTaylorExactForQuadratic(t *testing.T) {
	g := quadraticGrids(2, 3)
	f, err := NewTaylor(g, 2, 3)
	require.NoError(t, err)
	for _, x := range []float64{0.1, 0.9, 1.3, 2.71} {
		assert.InDelta(t, x*x, f(x), 1e-14, "x=%v", x)
	}
}

func TestTaylorFirstOrderError(t *testing.T) {
	// A first-order expansion of x^2 about the nearest node has error
	// eps^2, at most (h/2)^2.
	g := quadraticGrids(3, 3)
	f, err := NewTaylor(g[:2], 3, 3)
	require.NoError(t, err)
	h := 1.0 / 8
	for _, x := range []float64{0.4, 1.77, 2.9} {
		assert.InDelta(t, x*x, f(x), (h/2)*(h/2)+1e-15, "x=%v", x)
	}
}

// Exact midpoints anchor on the right node: the tie test is strict
// less-than on the left distance.
func TestTaylorMidpointAnchorsRight(t *testing.T) {
	phi := []float64{0, 1, 5, 0}
	phiPrime := []float64{0, 0, 0, 0}
	f, err := NewTaylor([][]float64{phi, phiPrime}, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, 5.0, f(1.5), "midpoint of [1,2] must use node 2")
	assert.Equal(t, 1.0, f(0.5), "midpoint of [0,1] must use node 1")
}

func TestTaylorZeroOutsideSupport(t *testing.T) {
	g := quadraticGrids(1, 3)
	f, err := NewTaylor(g, 1, 3)
	require.NoError(t, err)
	assert.Zero(t, f(0))
	assert.Zero(t, f(-0.5))
	assert.Zero(t, f(3))
	assert.Zero(t, f(4))
}
