// Package testutil provides reusable test helper functions for the
// benchmark's numeric tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-wavelet-bench/internal/vecops"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-12
	GridTolerance    = 1e-10
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf[F vecops.Float](t *testing.T, s []F) bool {
	t.Helper()
	for i, v := range s {
		f := float64(v)
		if math.IsNaN(f) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(f, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertZeroEnds verifies that the first and last elements are exactly 0.
func AssertZeroEnds[F vecops.Float](t *testing.T, s []F) bool {
	t.Helper()
	if len(s) == 0 {
		return assert.Fail(t, "empty slice")
	}
	ok := assert.Zero(t, s[0], "first element must be exactly 0")
	return assert.Zero(t, s[len(s)-1], "last element must be exactly 0") && ok
}

// AssertAllInDelta verifies element-wise |a[i] - b[i]| <= tolerance.
func AssertAllInDelta[F vecops.Float](t *testing.T, a, b []F, tolerance float64) bool {
	t.Helper()
	if !assert.Equal(t, len(a), len(b), "length mismatch") {
		return false
	}
	for i := range a {
		if !assert.InDelta(t, float64(a[i]), float64(b[i]), tolerance, "element %d", i) {
			return false
		}
	}
	return true
}
