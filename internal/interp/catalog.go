// Package interp implements the candidate interpolators under study: local
// Taylor and Hölder models, cardinal Hermite splines, cardinal B-splines,
// and the shape-preserving cubics (pchip, makima). Every candidate
// evaluates to exactly 0 outside the open support (0, 2p-1).
package interp

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-wavelet-bench/internal/vecops"
)

// ErrGridTooSmall reports a grid shorter than a candidate's stencil.
var ErrGridTooSmall = errors.New("grid too small for interpolator")

// Func evaluates an interpolant at a point.
type Func[R vecops.Float] func(x R) R

// Grids bundles the uniform sample grids a candidate may consume. Dx is the
// grid spacing (2p-1)/(len(Phi)-1) = 2^-Level; the abscissas start at 0.
// Derivative grids beyond what the moment count p supports are nil.
type Grids[R vecops.Float] struct {
	Moments int // p
	Level   int // r
	Dx      R

	Phi       []R
	PhiPrime  []R
	PhiDbl    []R
	PhiTriple []R
}

// Support returns the right end 2p-1 of the support interval.
func (g *Grids[R]) Support() R {
	return R(2*g.Moments - 1)
}

// Candidate is one entry of the closed catalog.
type Candidate[R vecops.Float] struct {
	// Column is the CSV column name.
	Column string

	// Display is the name used in console ranking lines.
	Display string

	// MinMoments gates the candidate: it runs only for p >= MinMoments.
	MinMoments int

	// SkipLastDense excludes the final dense sample from evaluation.
	// Set for matched_holder, whose right cell boundary is unchecked.
	SkipLastDense bool

	// Build constructs the interpolant from the grids.
	Build func(g *Grids[R]) (Func[R], error)
}

// Catalog returns the candidates applicable to p, in the fixed column order
// shared by the CSV header and the driver.
func Catalog[R vecops.Float](p int) []Candidate[R] {
	all := []Candidate[R]{
		{
			Column:        "matched_holder",
			Display:       "matched_holder",
			MinMoments:    2,
			SkipLastDense: true,
			Build: func(g *Grids[R]) (Func[R], error) {
				return NewMatchedHolder(g.Phi, g.PhiPrime, g.Level, g.Support())
			},
		},
		{
			Column:     "linear",
			Display:    "linear interpolation",
			MinMoments: 2,
			Build: func(g *Grids[R]) (Func[R], error) {
				return NewLinear(g.Phi, g.Level, g.Support())
			},
		},
		{
			Column:     "quadratic_b_spline",
			Display:    "quadratic_b_spline",
			MinMoments: 2,
			Build: func(g *Grids[R]) (Func[R], error) {
				return NewCardinalBSpline(2, g.Phi, g.Dx,
					[]EndCondition[R]{{Order: 1, Value: g.PhiPrime[0]}},
					[]EndCondition[R]{{Order: 1, Value: g.PhiPrime[len(g.PhiPrime)-1]}})
			},
		},
		{
			Column:     "cubic_b_spline",
			Display:    "cubic_b_spline",
			MinMoments: 2,
			Build: func(g *Grids[R]) (Func[R], error) {
				return NewCardinalBSpline(3, g.Phi, g.Dx,
					[]EndCondition[R]{{Order: 1, Value: g.PhiPrime[0]}},
					[]EndCondition[R]{{Order: 1, Value: g.PhiPrime[len(g.PhiPrime)-1]}})
			},
		},
		{
			Column:     "quintic_b_spline",
			Display:    "quintic_b_spline",
			MinMoments: 2,
			Build: func(g *Grids[R]) (Func[R], error) {
				return NewCardinalBSpline(5, g.Phi, g.Dx,
					[]EndCondition[R]{{Order: 1}, {Order: 2}},
					[]EndCondition[R]{{Order: 1}, {Order: 2}})
			},
		},
		{
			Column:     "cubic_hermite",
			Display:    "cubic_hermite_spline",
			MinMoments: 2,
			Build: func(g *Grids[R]) (Func[R], error) {
				return NewCardinalHermite(hermiteCubic, [][]R{g.Phi, g.PhiPrime}, g.Dx)
			},
		},
		{
			Column:     "pchip",
			Display:    "pchip",
			MinMoments: 2,
			Build: func(g *Grids[R]) (Func[R], error) {
				d, err := PchipSlopes(g.Phi, g.Dx)
				if err != nil {
					return nil, err
				}
				return NewCardinalHermite(hermiteCubic, [][]R{g.Phi, d}, g.Dx)
			},
		},
		{
			Column:     "makima",
			Display:    "makima",
			MinMoments: 2,
			Build: func(g *Grids[R]) (Func[R], error) {
				d, err := MakimaSlopes(g.Phi, g.Dx)
				if err != nil {
					return nil, err
				}
				return NewCardinalHermite(hermiteCubic, [][]R{g.Phi, d}, g.Dx)
			},
		},
		{
			Column:     "fo_taylor",
			Display:    "First-order Taylor",
			MinMoments: 2,
			Build: func(g *Grids[R]) (Func[R], error) {
				return NewTaylor([][]R{g.Phi, g.PhiPrime}, g.Level, g.Support())
			},
		},
		{
			Column:     "quintic_hermite",
			Display:    "quintic_hermite_spline",
			MinMoments: 3,
			Build: func(g *Grids[R]) (Func[R], error) {
				return NewCardinalHermite(hermiteQuintic, [][]R{g.Phi, g.PhiPrime, g.PhiDbl}, g.Dx)
			},
		},
		{
			Column:     "second_order_taylor",
			Display:    "Second-order Taylor",
			MinMoments: 3,
			Build: func(g *Grids[R]) (Func[R], error) {
				return NewTaylor([][]R{g.Phi, g.PhiPrime, g.PhiDbl}, g.Level, g.Support())
			},
		},
		{
			Column:     "third_order_taylor",
			Display:    "Third-order Taylor",
			MinMoments: 4,
			Build: func(g *Grids[R]) (Func[R], error) {
				return NewTaylor([][]R{g.Phi, g.PhiPrime, g.PhiDbl, g.PhiTriple}, g.Level, g.Support())
			},
		},
		{
			Column:     "septic_hermite",
			Display:    "septic_hermite_spline",
			MinMoments: 4,
			Build: func(g *Grids[R]) (Func[R], error) {
				return NewCardinalHermite(hermiteSeptic, [][]R{g.Phi, g.PhiPrime, g.PhiDbl, g.PhiTriple}, g.Dx)
			},
		},
	}

	enabled := all[:0]
	for _, c := range all {
		if p >= c.MinMoments {
			enabled = append(enabled, c)
		}
	}
	return enabled
}

func checkLen(name string, n, min int) error {
	if n < min {
		return fmt.Errorf("%w: %s needs at least %d samples, got %d", ErrGridTooSmall, name, min, n)
	}
	return nil
}
