package gmath

import "errors"

// ErrNonInvertibleTransform is returned by Transform.Inverse when any
// scale component is too close to zero to divide by safely.
var ErrNonInvertibleTransform = errors.New("transform is not invertible: near-zero scale component")

// Transform is an affine map: location, rotation and non-uniform
// scale. A point p maps to Rotation*(Scale*p) + Location. Scale
// components may be zero or negative (mirroring); a zero component
// makes the transform non-invertible.
type Transform struct {
	Location Vector
	Rotation Quat
	Scale    Vector
}

// TransformIdentity returns the identity transform.
func TransformIdentity() Transform {
	return Transform{Rotation: QuatIdentity(), Scale: OneVector}
}

// NewTransform returns a transform with the given location, rotation
// and scale.
func NewTransform(location Vector, rotation Quat, scale Vector) Transform {
	return Transform{location, rotation, scale}
}

// TransformFromLocation returns a pure translation.
func TransformFromLocation(location Vector) Transform {
	t := TransformIdentity()
	t.Location = location
	return t
}

// TransformFromRotation returns a pure rotation.
func TransformFromRotation(rotation Quat) Transform {
	t := TransformIdentity()
	t.Rotation = rotation
	return t
}

// TransformFromScale returns a pure scale.
func TransformFromScale(scale Vector) Transform {
	t := TransformIdentity()
	t.Scale = scale
	return t
}

// TransformFromLocationRotator returns a transform at location facing
// the given Euler rotation, with unit scale.
func TransformFromLocationRotator(location Vector, rotator Rotator) Transform {
	return Transform{location, rotator.Quaternion(), OneVector}
}

// Combine composes two transforms: the result applies child inside
// parent's space. Parent scale and rotation act on the child's
// location before the parent's translation. Transforms do not
// commute; this ordering is part of the type's contract.
func Combine(parent, child Transform) Transform {
	return Transform{
		Location: parent.Location.Add(parent.Rotation.RotateVector(parent.Scale.Mul(child.Location))),
		Rotation: parent.Rotation.Mul(child.Rotation),
		Scale:    parent.Scale.Mul(child.Scale),
	}
}

// TransformPoint applies the full affine map to a position: scale,
// then rotate, then translate.
func (t Transform) TransformPoint(p Vector) Vector {
	return t.Rotation.RotateVector(t.Scale.Mul(p)).Add(t.Location)
}

// TransformVector applies scale and rotation only. Use this for
// displacements and velocities; positions go through TransformPoint.
func (t Transform) TransformVector(v Vector) Vector {
	return t.Rotation.RotateVector(t.Scale.Mul(v))
}

// TransformDirection applies rotation only, preserving length.
func (t Transform) TransformDirection(d Vector) Vector {
	return t.Rotation.RotateVector(d)
}

// Inverse returns the transform that undoes t, such that
// Combine(t, inv) is the identity. It fails with
// ErrNonInvertibleTransform when any scale component magnitude is
// below SmallNumber: near-singular scales amplify the division
// instead of merely hitting zero.
//
// With non-uniform scale under rotation the exact inverse map is
// scale-after-rotation, which this representation cannot carry; the
// returned value is exact for uniform scale and for unrotated
// transforms, matching the Combine identity in both cases.
func (t Transform) Inverse() (Transform, error) {
	abs := t.Scale.Abs()
	if abs.X < SmallNumber || abs.Y < SmallNumber || abs.Z < SmallNumber {
		return Transform{}, ErrNonInvertibleTransform
	}
	invScale := Vector{1 / t.Scale.X, 1 / t.Scale.Y, 1 / t.Scale.Z}
	invRotation := t.Rotation.Inverse()
	return Transform{
		Location: invScale.Mul(invRotation.RotateVector(t.Location.Negate())),
		Rotation: invRotation,
		Scale:    invScale,
	}, nil
}

// Matrix converts t to its 4x4 matrix form.
func (t Transform) Matrix() Matrix4 {
	return MatrixFromScaleRotationTranslation(t.Scale, t.Rotation, t.Location)
}

// TransformFromMatrix decomposes an affine matrix into a transform.
// Reflections fold their sign into Scale.X (see Matrix4.Decompose).
func TransformFromMatrix(m Matrix4) Transform {
	scale, rotation, translation := m.Decompose()
	return Transform{translation, rotation, scale}
}

// Rotator returns the Euler-angle view of the rotation.
func (t Transform) Rotator() Rotator {
	return t.Rotation.Rotator()
}

// ForwardVector returns the transform's rotated +X basis vector.
func (t Transform) ForwardVector() Vector {
	return t.TransformDirection(ForwardVector)
}

// RightVector returns the transform's rotated +Y basis vector.
func (t Transform) RightVector() Vector {
	return t.TransformDirection(RightVector)
}

// UpVector returns the transform's rotated +Z basis vector.
func (t Transform) UpVector() Vector {
	return t.TransformDirection(UpVector)
}

// Lerp interpolates location and scale linearly and the rotation
// spherically.
func (t Transform) Lerp(other Transform, alpha float64) Transform {
	return Transform{
		Location: t.Location.Lerp(other.Location, alpha),
		Rotation: t.Rotation.Slerp(other.Rotation, alpha),
		Scale:    t.Scale.Lerp(other.Scale, alpha),
	}
}

// IsNearlyEqual reports whether t and other match within tolerance on
// every part.
func (t Transform) IsNearlyEqual(other Transform, tolerance float64) bool {
	return t.Location.IsNearlyEqual(other.Location, tolerance) &&
		t.Rotation.IsNearlyEqual(other.Rotation, tolerance) &&
		t.Scale.IsNearlyEqual(other.Scale, tolerance)
}

// IsNearlyIdentity reports whether t is within tolerance of the
// identity transform.
func (t Transform) IsNearlyIdentity(tolerance float64) bool {
	return t.IsNearlyEqual(TransformIdentity(), tolerance)
}
