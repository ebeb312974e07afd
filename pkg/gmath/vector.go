package gmath

import "math"

// Vector is a 3D point or direction in world space. The coordinate
// system is left-handed with X forward, Y right and Z up.
type Vector struct {
	X, Y, Z float64
}

// Basis and common vector constants.
var (
	ZeroVector    = Vector{}
	OneVector     = Vector{1, 1, 1}
	ForwardVector = Vector{1, 0, 0}
	RightVector   = Vector{0, 1, 0}
	UpVector      = Vector{0, 0, 1}
)

// NewVector returns the vector (x, y, z).
func NewVector(x, y, z float64) Vector {
	return Vector{x, y, z}
}

// SplatVector returns a vector with all components set to v.
func SplatVector(v float64) Vector {
	return Vector{v, v, v}
}

// Add returns v + other.
func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Mul returns the componentwise product of v and other.
func (v Vector) Mul(other Vector) Vector {
	return Vector{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Div returns the componentwise quotient of v and other.
func (v Vector) Div(other Vector) Vector {
	return Vector{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// Scale returns v * s.
func (v Vector) Scale(s float64) Vector {
	return Vector{v.X * s, v.Y * s, v.Z * s}
}

// Negate returns -v.
func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of v and other.
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of v and other.
func (v Vector) Cross(other Vector) Vector {
	return Vector{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Size returns the magnitude of v.
func (v Vector) Size() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// SizeSquared returns the squared magnitude, avoiding the sqrt.
func (v Vector) SizeSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Distance returns the distance between v and other.
func (v Vector) Distance(other Vector) float64 {
	return v.Sub(other).Size()
}

// DistanceSquared returns the squared distance between v and other.
func (v Vector) DistanceSquared(other Vector) float64 {
	return v.Sub(other).SizeSquared()
}

// Normalize returns a unit-length copy of v, or the zero vector when
// v has zero length.
func (v Vector) Normalize() Vector {
	size := v.Size()
	if size == 0 {
		return Vector{}
	}
	return v.Scale(1 / size)
}

// SafeNormal returns a unit-length copy of v, or the zero vector when
// the length is below tolerance or not finite. Non-finite inputs are
// never "fixed" elsewhere; this is the one place that guards them.
func (v Vector) SafeNormal(tolerance float64) Vector {
	squareSum := v.SizeSquared()
	if squareSum == 1.0 {
		return v
	}
	if squareSum < tolerance*tolerance || math.IsNaN(squareSum) || math.IsInf(squareSum, 0) {
		return Vector{}
	}
	return v.Scale(1 / math.Sqrt(squareSum))
}

// Lerp linearly interpolates from v to other. Alpha is not clamped.
func (v Vector) Lerp(other Vector, alpha float64) Vector {
	return Vector{
		Lerp(v.X, other.X, alpha),
		Lerp(v.Y, other.Y, alpha),
		Lerp(v.Z, other.Z, alpha),
	}
}

// Min returns the componentwise minimum of v and other.
func (v Vector) Min(other Vector) Vector {
	return Vector{math.Min(v.X, other.X), math.Min(v.Y, other.Y), math.Min(v.Z, other.Z)}
}

// Max returns the componentwise maximum of v and other.
func (v Vector) Max(other Vector) Vector {
	return Vector{math.Max(v.X, other.X), math.Max(v.Y, other.Y), math.Max(v.Z, other.Z)}
}

// Abs returns the componentwise absolute value of v.
func (v Vector) Abs() Vector {
	return Vector{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)}
}

// Clamp limits each component of v to the corresponding [lo, hi] range.
func (v Vector) Clamp(lo, hi Vector) Vector {
	return Vector{
		Clamp(v.X, lo.X, hi.X),
		Clamp(v.Y, lo.Y, hi.Y),
		Clamp(v.Z, lo.Z, hi.Z),
	}
}

// MaxComponent returns the largest component of v.
func (v Vector) MaxComponent() float64 {
	return math.Max(v.X, math.Max(v.Y, v.Z))
}

// IsNearlyZero reports whether the magnitude of v is within tolerance.
func (v Vector) IsNearlyZero(tolerance float64) bool {
	return v.SizeSquared() <= tolerance*tolerance
}

// IsNearlyEqual reports whether v and other differ by at most
// tolerance on every component.
func (v Vector) IsNearlyEqual(other Vector, tolerance float64) bool {
	return IsNearlyEqual(v.X, other.X, tolerance) &&
		IsNearlyEqual(v.Y, other.Y, tolerance) &&
		IsNearlyEqual(v.Z, other.Z, tolerance)
}

// IsNormalized reports whether v has approximately unit length.
func (v Vector) IsNormalized() bool {
	return math.Abs(v.SizeSquared()-1.0) < 0.01
}

// IsFinite reports whether all components are finite numbers.
func (v Vector) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}
