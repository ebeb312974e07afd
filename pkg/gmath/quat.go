package gmath

import "math"

// Quat is a unit quaternion rotation. Values produced by this
// package's constructors have magnitude ~1 but are never renormalized
// implicitly: long chains of Mul accumulate drift that only an
// explicit Normalize corrects.
type Quat struct {
	X, Y, Z, W float64
}

// QuatIdentity returns the identity rotation.
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromAxisAngle builds the rotation of angle radians about axis.
// The axis must be normalized.
func QuatFromAxisAngle(axis Vector, angle float64) Quat {
	half := angle * 0.5
	s := math.Sin(half)
	return Quat{axis.X * s, axis.Y * s, axis.Z * s, math.Cos(half)}
}

// Mul returns the Hamilton product q*other: the rotation that applies
// other first, then q. Transform composition relies on this ordering.
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Conjugate returns the quaternion with the vector part negated.
func (q Quat) Conjugate() Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

// Inverse returns the inverse rotation. The receiver is assumed to be
// a unit quaternion, for which the inverse is the conjugate.
func (q Quat) Inverse() Quat {
	return q.Conjugate()
}

// Dot returns the 4D dot product of q and other.
func (q Quat) Dot(other Quat) float64 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Size returns the magnitude of q.
func (q Quat) Size() float64 {
	return math.Sqrt(q.Dot(q))
}

// Normalize returns a unit-length copy of q, or the identity when the
// magnitude is too small to divide by.
func (q Quat) Normalize() Quat {
	size := q.Size()
	if size < SmallNumber {
		return QuatIdentity()
	}
	inv := 1 / size
	return Quat{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

// IsNormalized reports whether q has approximately unit length.
func (q Quat) IsNormalized() bool {
	return math.Abs(q.Dot(q)-1.0) < 0.01
}

// RotateVector rotates v by q (q v q^-1).
func (q Quat) RotateVector(v Vector) Vector {
	// t = 2 q_v x v; v' = v + w t + q_v x t
	qv := Vector{q.X, q.Y, q.Z}
	t := qv.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(qv.Cross(t))
}

// UnrotateVector rotates v by the inverse of q.
func (q Quat) UnrotateVector(v Vector) Vector {
	return q.Conjugate().RotateVector(v)
}

// Slerp spherically interpolates from q to other, taking the shorter
// arc. The result is normalized.
func (q Quat) Slerp(other Quat, alpha float64) Quat {
	dot := q.Dot(other)
	if dot < 0 {
		other = Quat{-other.X, -other.Y, -other.Z, -other.W}
		dot = -dot
	}
	// Nearly parallel quaternions: fall back to nlerp to avoid a
	// division by a vanishing sin.
	if dot > 0.9995 {
		return Quat{
			Lerp(q.X, other.X, alpha),
			Lerp(q.Y, other.Y, alpha),
			Lerp(q.Z, other.Z, alpha),
			Lerp(q.W, other.W, alpha),
		}.Normalize()
	}
	theta0 := math.Acos(dot)
	theta := theta0 * alpha
	sinTheta0 := math.Sin(theta0)
	s0 := math.Cos(theta) - dot*math.Sin(theta)/sinTheta0
	s1 := math.Sin(theta) / sinTheta0
	return Quat{
		q.X*s0 + other.X*s1,
		q.Y*s0 + other.Y*s1,
		q.Z*s0 + other.Z*s1,
		q.W*s0 + other.W*s1,
	}
}

// Rotator recovers Euler angles from q, inverting Rotator.Quaternion.
// Inside the gimbal band (|pitch| ~ 90 degrees) the yaw/roll split is
// not unique; this decomposition deterministically assigns roll = 0
// and folds the remaining rotation into yaw.
func (q Quat) Rotator() Rotator {
	const gimbalThreshold = 1.0 - KindaSmallNumber*KindaSmallNumber

	sinPitch := 2 * (q.W*q.Y - q.Z*q.X)
	if sinPitch > gimbalThreshold {
		return Rotator{Pitch: 90, Yaw: 2 * math.Atan2(q.Z, q.W) * radToDeg}
	}
	if sinPitch < -gimbalThreshold {
		return Rotator{Pitch: -90, Yaw: 2 * math.Atan2(q.Z, q.W) * radToDeg}
	}
	return Rotator{
		Pitch: math.Asin(sinPitch) * radToDeg,
		Yaw:   math.Atan2(2*(q.W*q.Z+q.X*q.Y), 1-2*(q.Y*q.Y+q.Z*q.Z)) * radToDeg,
		Roll:  math.Atan2(2*(q.W*q.X+q.Y*q.Z), 1-2*(q.X*q.X+q.Y*q.Y)) * radToDeg,
	}
}

// IsNearlyEqual reports whether q and other represent nearly the same
// rotation, accounting for the double cover (q and -q are the same
// rotation).
func (q Quat) IsNearlyEqual(other Quat, tolerance float64) bool {
	return math.Abs(q.Dot(other)) >= 1.0-tolerance
}
