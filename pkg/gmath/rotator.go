package gmath

import "math"

// Rotator is an Euler-angle rotation in degrees.
//
//   - Pitch rotates around Y (up/down)
//   - Yaw rotates around Z (left/right)
//   - Roll rotates around X (banking)
//
// Rotations apply in the fixed order yaw, then pitch, then roll. That
// order is a protocol constant: Rotator.Quaternion is the single
// owner of the conversion and every derived quantity (basis vectors,
// transforms) goes through it, so all call sites agree by
// construction.
//
// Components carry no range restriction; Normalized maps them into
// (-180, 180]. Add is deliberately componentwise without normalizing.
type Rotator struct {
	Pitch, Yaw, Roll float64
}

// ZeroRotator is the identity rotation.
var ZeroRotator = Rotator{}

// NewRotator returns a rotator with the given pitch, yaw and roll in
// degrees.
func NewRotator(pitch, yaw, roll float64) Rotator {
	return Rotator{pitch, yaw, roll}
}

// RotatorFromYaw returns a yaw-only rotation.
func RotatorFromYaw(yaw float64) Rotator {
	return Rotator{Yaw: yaw}
}

// RotatorFromPitch returns a pitch-only rotation.
func RotatorFromPitch(pitch float64) Rotator {
	return Rotator{Pitch: pitch}
}

// RotatorFromRoll returns a roll-only rotation.
func RotatorFromRoll(roll float64) Rotator {
	return Rotator{Roll: roll}
}

// Quaternion converts r to its unit quaternion equivalent, composing
// yaw (Z), pitch (Y) and roll (X) in that order. The output has no
// singularity; only the inverse conversion is gimbal-ambiguous.
func (r Rotator) Quaternion() Quat {
	halfPitch := r.Pitch * degToRad * 0.5
	halfYaw := r.Yaw * degToRad * 0.5
	halfRoll := r.Roll * degToRad * 0.5

	sp, cp := math.Sincos(halfPitch)
	sy, cy := math.Sincos(halfYaw)
	sr, cr := math.Sincos(halfRoll)

	return Quat{
		X: sr*cp*cy - cr*sp*sy,
		Y: cr*sp*cy + sr*cp*sy,
		Z: cr*cp*sy - sr*sp*cy,
		W: cr*cp*cy + sr*sp*sy,
	}
}

// Normalized maps each component into (-180, 180].
func (r Rotator) Normalized() Rotator {
	return Rotator{
		Pitch: NormalizeAngle(r.Pitch),
		Yaw:   NormalizeAngle(r.Yaw),
		Roll:  NormalizeAngle(r.Roll),
	}
}

// Add returns the componentwise sum of r and other. The result is not
// normalized; callers normalize explicitly when needed.
func (r Rotator) Add(other Rotator) Rotator {
	return Rotator{r.Pitch + other.Pitch, r.Yaw + other.Yaw, r.Roll + other.Roll}
}

// Sub returns the componentwise difference of r and other.
func (r Rotator) Sub(other Rotator) Rotator {
	return Rotator{r.Pitch - other.Pitch, r.Yaw - other.Yaw, r.Roll - other.Roll}
}

// Scale returns r with each component multiplied by factor.
func (r Rotator) Scale(factor float64) Rotator {
	return Rotator{r.Pitch * factor, r.Yaw * factor, r.Roll * factor}
}

// Lerp interpolates from r to other along the shortest angular path
// on each component.
func (r Rotator) Lerp(other Rotator, alpha float64) Rotator {
	return Rotator{
		Pitch: r.Pitch + alpha*AngleDifference(r.Pitch, other.Pitch),
		Yaw:   r.Yaw + alpha*AngleDifference(r.Yaw, other.Yaw),
		Roll:  r.Roll + alpha*AngleDifference(r.Roll, other.Roll),
	}
}

// ForwardVector returns the +X basis vector rotated by r.
func (r Rotator) ForwardVector() Vector {
	return r.Quaternion().RotateVector(ForwardVector)
}

// RightVector returns the +Y basis vector rotated by r.
func (r Rotator) RightVector() Vector {
	return r.Quaternion().RotateVector(RightVector)
}

// UpVector returns the +Z basis vector rotated by r.
func (r Rotator) UpVector() Vector {
	return r.Quaternion().RotateVector(UpVector)
}

// IsNearlyZero reports whether every component is within tolerance of
// zero.
func (r Rotator) IsNearlyZero(tolerance float64) bool {
	return IsNearlyZero(r.Pitch, tolerance) &&
		IsNearlyZero(r.Yaw, tolerance) &&
		IsNearlyZero(r.Roll, tolerance)
}

// IsNearlyEqual reports whether r and other differ by at most
// tolerance on every component.
func (r Rotator) IsNearlyEqual(other Rotator, tolerance float64) bool {
	return IsNearlyEqual(r.Pitch, other.Pitch, tolerance) &&
		IsNearlyEqual(r.Yaw, other.Yaw, tolerance) &&
		IsNearlyEqual(r.Roll, other.Roll, tolerance)
}
