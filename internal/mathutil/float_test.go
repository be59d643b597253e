package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEps(t *testing.T) {
	// Machine epsilon is the gap between 1 and the next float up.
	assert.Equal(t, float64(math.Nextafter(1, 2)-1), Eps[float64]())
	assert.Equal(t, math.Nextafter32(1, 2)-1, Eps[float32]())
}

func TestDigits10(t *testing.T) {
	assert.Equal(t, 15, Digits10[float64]())
	assert.Equal(t, 6, Digits10[float32]())
}

func TestBits(t *testing.T) {
	assert.Equal(t, 64, Bits[float64]())
	assert.Equal(t, 32, Bits[float32]())
}

func TestFloatDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want int64
	}{
		{"equal", 1.5, 1.5, 0},
		{"adjacent up", 1.0, math.Nextafter(1, 2), 1},
		{"adjacent down", 1.0, math.Nextafter(1, 0), -1},
		{"two ulps", 1.0, math.Nextafter(math.Nextafter(1, 2), 2), 2},
		{"signed zero", math.Copysign(0, -1), 0, 0},
		{"across zero", -math.SmallestNonzeroFloat64, math.SmallestNonzeroFloat64, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FloatDistance(tt.a, tt.b))
		})
	}
}

func TestFloatDistanceFloat32(t *testing.T) {
	assert.Equal(t, int64(1), FloatDistance[float32](1, math.Nextafter32(1, 2)))
	assert.Equal(t, int64(-1), FloatDistance[float32](1, math.Nextafter32(1, 0)))
	assert.Equal(t, int64(0), FloatDistance[float32](0.25, 0.25))
}

func TestFloatDistanceAntisymmetric(t *testing.T) {
	a, b := 0.1, 0.3
	assert.Equal(t, FloatDistance(a, b), -FloatDistance(b, a))
}
