package interp

import "github.com/tphakala/go-wavelet-bench/internal/vecops"

// PchipSlopes returns the Fritsch-Carlson slopes for a uniform grid: the
// weighted harmonic mean of adjacent secants at interior points (zero when
// the secants change sign), and Moler's shape-clamped one-sided estimates
// at the ends. Feeding these to the cubic Hermite kernel gives a monotone
// interpolant.
func PchipSlopes[R vecops.Float](y []R, h R) ([]R, error) {
	n := len(y)
	if err := checkLen("pchip", n, 4); err != nil {
		return nil, err
	}
	s := make([]R, n-1)
	for i := range s {
		s[i] = (y[i+1] - y[i]) / h
	}
	d := make([]R, n)
	for i := 1; i < n-1; i++ {
		if s[i-1]*s[i] > 0 {
			d[i] = 2 * s[i-1] * s[i] / (s[i-1] + s[i])
		}
	}
	d[0] = endSlope(s[0], s[1])
	d[n-1] = endSlope(s[n-2], s[n-3])
	return d, nil
}

// endSlope is the one-sided parabolic estimate (3*s0 - s1)/2 clamped to
// preserve shape near the boundary.
func endSlope[R vecops.Float](s0, s1 R) R {
	d := (3*s0 - s1) / 2
	switch {
	case d*s0 <= 0:
		return 0
	case s0*s1 < 0 && abs(d) > 3*abs(s0):
		return 3 * s0
	}
	return d
}

// MakimaSlopes returns the modified Akima slopes: a weighted mean of the
// adjacent secants with weights built from secant differences plus an
// averaged-magnitude term, which keeps the weights nonzero on flat data.
// Two ghost secants per side extend the grid by linear extrapolation.
func MakimaSlopes[R vecops.Float](y []R, h R) ([]R, error) {
	n := len(y)
	if err := checkLen("makima", n, 4); err != nil {
		return nil, err
	}
	// sx[i+2] is the secant of cell i; two ghost cells on each side.
	sx := make([]R, n+3)
	for i := 0; i < n-1; i++ {
		sx[i+2] = (y[i+1] - y[i]) / h
	}
	sx[1] = 2*sx[2] - sx[3]
	sx[0] = 2*sx[1] - sx[2]
	sx[n+1] = 2*sx[n] - sx[n-1]
	sx[n+2] = 2*sx[n+1] - sx[n]

	d := make([]R, n)
	for i := 0; i < n; i++ {
		w1 := abs(sx[i+3]-sx[i+2]) + abs(sx[i+3]+sx[i+2])/2
		w2 := abs(sx[i+1]-sx[i]) + abs(sx[i+1]+sx[i])/2
		if w1+w2 != 0 {
			d[i] = (w1*sx[i+1] + w2*sx[i+2]) / (w1 + w2)
		}
	}
	return d, nil
}

func abs[R vecops.Float](x R) R {
	if x < 0 {
		return -x
	}
	return x
}
