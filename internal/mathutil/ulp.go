package mathutil

import (
	"math"

	"github.com/tphakala/go-wavelet-bench/internal/vecops"
)

// FloatDistance returns the number of representable values of F strictly
// between a and b, plus one: the ULP distance. The result is signed
// (positive when b > a) and well defined across zero.
//
// The mapping from float bits to a monotone integer line is the usual
// sign-magnitude to two's-complement fold.
func FloatDistance[F vecops.Float](a, b F) int64 {
	switch av := any(a).(type) {
	case float32:
		return orderedInt32(any(b).(float32)) - orderedInt32(av)
	default:
		return orderedInt64(any(b).(float64)) - orderedInt64(any(a).(float64))
	}
}

func orderedInt64(x float64) int64 {
	i := int64(math.Float64bits(x))
	if i < 0 {
		i = math.MinInt64 - i
	}
	return i
}

func orderedInt32(x float32) int64 {
	i := int32(math.Float32bits(x))
	if i < 0 {
		i = math.MinInt32 - i
	}
	return int64(i)
}
