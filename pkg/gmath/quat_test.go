package gmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mglQuat(q Quat) mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}

func mglVec(v Vector) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func assertSameRotation(t *testing.T, want mgl64.Quat, got Quat) {
	t.Helper()
	// q and -q are the same rotation.
	dot := want.Dot(mglQuat(got))
	assert.InDelta(t, 1.0, math.Abs(dot), 1e-9)
}

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	assert.Equal(t, Quat{W: 1}, q)
	assert.Equal(t, NewVector(1, 2, 3), q.RotateVector(NewVector(1, 2, 3)))
}

func TestQuatFromAxisAngle(t *testing.T) {
	// 90 degrees about Z takes +X to +Y.
	q := QuatFromAxisAngle(UpVector, math.Pi/2)
	assert.True(t, q.IsNormalized())
	assert.True(t, q.RotateVector(ForwardVector).IsNearlyEqual(RightVector, 1e-12))

	// Cross-check against the reference implementation.
	ref := mgl64.QuatRotate(math.Pi/2, mglVec(UpVector))
	assertSameRotation(t, ref, q)
}

func TestQuatMulComposition(t *testing.T) {
	qz := QuatFromAxisAngle(UpVector, math.Pi/2)
	qy := QuatFromAxisAngle(RightVector, math.Pi/4)

	// q.Mul(other) applies other first.
	got := qz.Mul(qy).RotateVector(ForwardVector)
	want := qz.RotateVector(qy.RotateVector(ForwardVector))
	assert.True(t, got.IsNearlyEqual(want, 1e-12))

	ref := mgl64.QuatRotate(math.Pi/2, mglVec(UpVector)).
		Mul(mgl64.QuatRotate(math.Pi/4, mglVec(RightVector)))
	assertSameRotation(t, ref, qz.Mul(qy))
}

func TestQuatRotateVectorAgainstReference(t *testing.T) {
	axes := []Vector{UpVector, RightVector, ForwardVector, NewVector(1, 1, 1).Normalize()}
	angles := []float64{0, math.Pi / 6, math.Pi / 2, 2.1, -math.Pi / 3}
	points := []Vector{ForwardVector, NewVector(1, 2, 3), NewVector(-4, 0.5, 2)}

	for _, axis := range axes {
		for _, angle := range angles {
			q := QuatFromAxisAngle(axis, angle)
			ref := mgl64.QuatRotate(angle, mglVec(axis))
			for _, p := range points {
				got := q.RotateVector(p)
				want := ref.Rotate(mglVec(p))
				assert.InDelta(t, want.X(), got.X, 1e-9)
				assert.InDelta(t, want.Y(), got.Y, 1e-9)
				assert.InDelta(t, want.Z(), got.Z, 1e-9)
			}
		}
	}
}

func TestQuatInverseUndoesRotation(t *testing.T) {
	q := NewRotator(30, 60, -45).Quaternion()
	v := NewVector(1, -2, 3)

	roundTrip := q.Inverse().RotateVector(q.RotateVector(v))
	assert.True(t, roundTrip.IsNearlyEqual(v, 1e-12))
	assert.True(t, q.UnrotateVector(q.RotateVector(v)).IsNearlyEqual(v, 1e-12))

	// q * q^-1 is the identity rotation.
	assert.True(t, q.Mul(q.Inverse()).IsNearlyEqual(QuatIdentity(), 1e-12))
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{1, 2, 3, 4}.Normalize()
	assert.InDelta(t, 1.0, q.Size(), 1e-12)
	assert.True(t, q.IsNormalized())

	// Degenerate input falls back to identity.
	assert.Equal(t, QuatIdentity(), Quat{}.Normalize())
}

func TestQuatSlerp(t *testing.T) {
	a := QuatIdentity()
	b := QuatFromAxisAngle(UpVector, math.Pi/2)

	assert.True(t, a.Slerp(b, 0).IsNearlyEqual(a, 1e-9))
	assert.True(t, a.Slerp(b, 1).IsNearlyEqual(b, 1e-9))

	// The midpoint is the 45 degree rotation.
	mid := a.Slerp(b, 0.5)
	want := QuatFromAxisAngle(UpVector, math.Pi/4)
	assert.True(t, mid.IsNearlyEqual(want, 1e-9))
	assert.InDelta(t, 1.0, mid.Size(), 1e-9)
}

func TestQuatSlerpShorterArc(t *testing.T) {
	a := QuatFromAxisAngle(UpVector, 0.1)
	b := QuatFromAxisAngle(UpVector, 0.3)
	negB := Quat{-b.X, -b.Y, -b.Z, -b.W}

	// Interpolating toward -b must take the same short path as b.
	v := ForwardVector
	wantMid := a.Slerp(b, 0.5).RotateVector(v)
	gotMid := a.Slerp(negB, 0.5).RotateVector(v)
	assert.True(t, wantMid.IsNearlyEqual(gotMid, 1e-9))
}

func TestQuatSlerpNearlyParallel(t *testing.T) {
	a := QuatFromAxisAngle(UpVector, 1e-7)
	b := QuatFromAxisAngle(UpVector, 2e-7)
	q := a.Slerp(b, 0.5)
	require.False(t, math.IsNaN(q.W))
	assert.InDelta(t, 1.0, q.Size(), 1e-9)
}

func TestQuatDoubleCoverEquality(t *testing.T) {
	q := NewRotator(10, 20, 30).Quaternion()
	neg := Quat{-q.X, -q.Y, -q.Z, -q.W}
	assert.True(t, q.IsNearlyEqual(neg, KindaSmallNumber))
	assert.False(t, q.IsNearlyEqual(QuatFromAxisAngle(UpVector, 1), KindaSmallNumber))
}
