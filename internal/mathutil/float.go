// Package mathutil provides floating-point type introspection and ULP
// arithmetic shared by the grid generator and the error evaluator.
package mathutil

import "github.com/tphakala/go-wavelet-bench/internal/vecops"

// Eps returns the machine epsilon of F: the gap between 1 and the next
// representable value.
func Eps[F vecops.Float]() F {
	var zero F
	switch any(zero).(type) {
	case float32:
		return F(0x1p-23)
	default:
		return F(0x1p-52)
	}
}

// Digits10 returns the number of decimal digits F can round-trip
// (6 for float32, 15 for float64).
func Digits10[F vecops.Float]() int {
	var zero F
	switch any(zero).(type) {
	case float32:
		return 6
	default:
		return 15
	}
}

// Bits returns the storage width of F in bits.
func Bits[F vecops.Float]() int {
	var zero F
	switch any(zero).(type) {
	case float32:
		return 32
	default:
		return 64
	}
}
