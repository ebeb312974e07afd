// Package gmath provides the spatial value types used by game-server
// state: vectors, rotators, quaternions and affine transforms. All
// types are immutable values; every operation returns a new value, so
// instances may be shared across goroutines without coordination.
package gmath

import "math"

// Tolerances shared across the package. KindaSmallNumber is the
// default comparison tolerance, SmallNumber guards divisions.
const (
	KindaSmallNumber = 1e-4
	SmallNumber      = 1e-8
)

const (
	degToRad = math.Pi / 180.0
	radToDeg = 180.0 / math.Pi
)

// Lerp linearly interpolates between a and b. Alpha is not clamped.
func Lerp(a, b, alpha float64) float64 {
	return a + alpha*(b-a)
}

// Clamp limits v to the inclusive range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// IsNearlyEqual reports whether a and b differ by at most tolerance.
func IsNearlyEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// IsNearlyZero reports whether v is within tolerance of zero.
func IsNearlyZero(v, tolerance float64) bool {
	return math.Abs(v) <= tolerance
}

// NormalizeAngle maps an angle in degrees into (-180, 180].
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle, 360.0)
	if a > 180.0 {
		a -= 360.0
	} else if a <= -180.0 {
		a += 360.0
	}
	return a
}

// AngleDifference returns the shortest signed angular distance, in
// degrees, from a to b.
func AngleDifference(a, b float64) float64 {
	return NormalizeAngle(b - a)
}
