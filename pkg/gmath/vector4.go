package gmath

import "math"

// Vector4 is a 4D vector for homogeneous coordinates and packed
// channel data.
type Vector4 struct {
	X, Y, Z, W float64
}

// NewVector4 returns the vector (x, y, z, w).
func NewVector4(x, y, z, w float64) Vector4 {
	return Vector4{x, y, z, w}
}

// Vector4FromVector widens v to a Vector4 with the given w.
func Vector4FromVector(v Vector, w float64) Vector4 {
	return Vector4{v.X, v.Y, v.Z, w}
}

// XYZ truncates v to its first three components.
func (v Vector4) XYZ() Vector {
	return Vector{v.X, v.Y, v.Z}
}

// Add returns v + other.
func (v Vector4) Add(other Vector4) Vector4 {
	return Vector4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Sub returns v - other.
func (v Vector4) Sub(other Vector4) Vector4 {
	return Vector4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Scale returns v * s.
func (v Vector4) Scale(s float64) Vector4 {
	return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Dot returns the 4D dot product of v and other.
func (v Vector4) Dot(other Vector4) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// Size returns the magnitude of v.
func (v Vector4) Size() float64 {
	return math.Sqrt(v.Dot(v))
}

// SizeSquared returns the squared magnitude.
func (v Vector4) SizeSquared() float64 {
	return v.Dot(v)
}

// Lerp linearly interpolates from v to other. Alpha is not clamped.
func (v Vector4) Lerp(other Vector4, alpha float64) Vector4 {
	return Vector4{
		Lerp(v.X, other.X, alpha),
		Lerp(v.Y, other.Y, alpha),
		Lerp(v.Z, other.Z, alpha),
		Lerp(v.W, other.W, alpha),
	}
}

// IsNearlyEqual reports whether v and other differ by at most
// tolerance on every component.
func (v Vector4) IsNearlyEqual(other Vector4, tolerance float64) bool {
	return IsNearlyEqual(v.X, other.X, tolerance) &&
		IsNearlyEqual(v.Y, other.Y, tolerance) &&
		IsNearlyEqual(v.Z, other.Z, tolerance) &&
		IsNearlyEqual(v.W, other.W, tolerance)
}
