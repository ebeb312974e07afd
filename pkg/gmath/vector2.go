package gmath

import "math"

// Vector2D is a 2D point or direction, used for screen positions,
// texture coordinates and planar game logic.
type Vector2D struct {
	X, Y float64
}

var (
	ZeroVector2D = Vector2D{}
	OneVector2D  = Vector2D{1, 1}
)

// NewVector2D returns the vector (x, y).
func NewVector2D(x, y float64) Vector2D {
	return Vector2D{x, y}
}

// Add returns v + other.
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{v.X - other.X, v.Y - other.Y}
}

// Mul returns the componentwise product of v and other.
func (v Vector2D) Mul(other Vector2D) Vector2D {
	return Vector2D{v.X * other.X, v.Y * other.Y}
}

// Scale returns v * s.
func (v Vector2D) Scale(s float64) Vector2D {
	return Vector2D{v.X * s, v.Y * s}
}

// Negate returns -v.
func (v Vector2D) Negate() Vector2D {
	return Vector2D{-v.X, -v.Y}
}

// Dot returns the dot product of v and other.
func (v Vector2D) Dot(other Vector2D) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the 2D cross product (the signed area of the
// parallelogram spanned by v and other).
func (v Vector2D) Cross(other Vector2D) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Size returns the magnitude of v.
func (v Vector2D) Size() float64 {
	return math.Hypot(v.X, v.Y)
}

// SizeSquared returns the squared magnitude.
func (v Vector2D) SizeSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Distance returns the distance between v and other.
func (v Vector2D) Distance(other Vector2D) float64 {
	return v.Sub(other).Size()
}

// Normalize returns a unit-length copy of v, or the zero vector when
// v has zero length.
func (v Vector2D) Normalize() Vector2D {
	size := v.Size()
	if size == 0 {
		return Vector2D{}
	}
	return v.Scale(1 / size)
}

// Lerp linearly interpolates from v to other. Alpha is not clamped.
func (v Vector2D) Lerp(other Vector2D, alpha float64) Vector2D {
	return Vector2D{Lerp(v.X, other.X, alpha), Lerp(v.Y, other.Y, alpha)}
}

// IsNearlyZero reports whether the magnitude of v is within tolerance.
func (v Vector2D) IsNearlyZero(tolerance float64) bool {
	return v.SizeSquared() <= tolerance*tolerance
}

// IsNearlyEqual reports whether v and other differ by at most
// tolerance on every component.
func (v Vector2D) IsNearlyEqual(other Vector2D, tolerance float64) bool {
	return IsNearlyEqual(v.X, other.X, tolerance) && IsNearlyEqual(v.Y, other.Y, tolerance)
}
