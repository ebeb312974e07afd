package gmath

import "math"

// IntVector is a 3D grid coordinate (tiles, chunks, voxel addresses).
type IntVector struct {
	X, Y, Z int32
}

// NewIntVector returns the integer vector (x, y, z).
func NewIntVector(x, y, z int32) IntVector {
	return IntVector{x, y, z}
}

// IntVectorFromVector rounds each component of v to the nearest
// integer.
func IntVectorFromVector(v Vector) IntVector {
	return IntVector{int32(math.Round(v.X)), int32(math.Round(v.Y)), int32(math.Round(v.Z))}
}

// Vector widens v to a float vector.
func (v IntVector) Vector() Vector {
	return Vector{float64(v.X), float64(v.Y), float64(v.Z)}
}

// Add returns v + other.
func (v IntVector) Add(other IntVector) IntVector {
	return IntVector{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v IntVector) Sub(other IntVector) IntVector {
	return IntVector{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * s.
func (v IntVector) Scale(s int32) IntVector {
	return IntVector{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and other.
func (v IntVector) Dot(other IntVector) int32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of v and other.
func (v IntVector) Cross(other IntVector) IntVector {
	return IntVector{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// SizeSquared returns the squared magnitude of v.
func (v IntVector) SizeSquared() int32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Size returns the magnitude of v.
func (v IntVector) Size() float64 {
	return math.Sqrt(float64(v.SizeSquared()))
}

// IntVector2 is a 2D grid coordinate.
type IntVector2 struct {
	X, Y int32
}

// NewIntVector2 returns the integer vector (x, y).
func NewIntVector2(x, y int32) IntVector2 {
	return IntVector2{x, y}
}

// IntVector2FromVector2D rounds each component of v to the nearest
// integer.
func IntVector2FromVector2D(v Vector2D) IntVector2 {
	return IntVector2{int32(math.Round(v.X)), int32(math.Round(v.Y))}
}

// Vector2D widens v to a float vector.
func (v IntVector2) Vector2D() Vector2D {
	return Vector2D{float64(v.X), float64(v.Y)}
}

// Add returns v + other.
func (v IntVector2) Add(other IntVector2) IntVector2 {
	return IntVector2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v IntVector2) Sub(other IntVector2) IntVector2 {
	return IntVector2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * s.
func (v IntVector2) Scale(s int32) IntVector2 {
	return IntVector2{v.X * s, v.Y * s}
}

// SizeSquared returns the squared magnitude of v.
func (v IntVector2) SizeSquared() int32 {
	return v.X*v.X + v.Y*v.Y
}

// Size returns the magnitude of v.
func (v IntVector2) Size() float64 {
	return math.Sqrt(float64(v.SizeSquared()))
}
