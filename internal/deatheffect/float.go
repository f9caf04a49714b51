package deatheffect

import "math"

// Epsilon is the relative tolerance used when ranking severities.
// It is the float32 machine epsilon, applied to the larger magnitude.
const Epsilon float32 = 0x1p-23

func absf(v float32) float32 {
	return float32(math.Abs(float64(v)))
}

// ApproximatelyEqual reports whether a and b are within Epsilon of each
// other, relative to the larger of the two.
func ApproximatelyEqual(a, b float32) bool {
	return absf(a-b) <= max(absf(a), absf(b))*Epsilon
}

// DefinitelyLessThan reports whether a is smaller than b by more than the
// relative tolerance. Near-equal values are never definitely less.
func DefinitelyLessThan(a, b float32) bool {
	return (b - a) > max(absf(a), absf(b))*Epsilon
}
