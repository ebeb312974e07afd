package gmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

// yawPitchRollQuat composes the reference rotation Rz(yaw)*Ry(pitch)*Rx(roll)
// from single-axis quaternions, with angles in degrees.
func yawPitchRollQuat(pitch, yaw, roll float64) mgl64.Quat {
	qYaw := mgl64.QuatRotate(yaw*degToRad, mgl64.Vec3{0, 0, 1})
	qPitch := mgl64.QuatRotate(pitch*degToRad, mgl64.Vec3{0, 1, 0})
	qRoll := mgl64.QuatRotate(roll*degToRad, mgl64.Vec3{1, 0, 0})
	return qYaw.Mul(qPitch).Mul(qRoll)
}

func TestRotatorQuaternionAgainstReference(t *testing.T) {
	rotators := []Rotator{
		{},
		{Yaw: 90},
		{Pitch: 45},
		{Roll: 30},
		{Pitch: 30, Yaw: 60, Roll: -45},
		{Pitch: -10, Yaw: 170, Roll: 120},
		{Pitch: 89, Yaw: -135, Roll: 5},
	}
	for _, r := range rotators {
		got := r.Quaternion()
		want := yawPitchRollQuat(r.Pitch, r.Yaw, r.Roll)
		assertSameRotation(t, want, got)
		assert.True(t, got.IsNormalized())
	}
}

func TestRotatorBasisVectors(t *testing.T) {
	// Yaw 90 turns forward (+X) to the right (+Y).
	yaw90 := RotatorFromYaw(90)
	assert.True(t, yaw90.ForwardVector().IsNearlyEqual(RightVector, 1e-12))
	assert.True(t, yaw90.RightVector().IsNearlyEqual(NewVector(-1, 0, 0), 1e-12))
	assert.True(t, yaw90.UpVector().IsNearlyEqual(UpVector, 1e-12))

	// Pitch +90 looks straight down: forward becomes -Z.
	pitch90 := RotatorFromPitch(90)
	assert.True(t, pitch90.ForwardVector().IsNearlyEqual(NewVector(0, 0, -1), 1e-12))

	// Roll banks around the forward axis, leaving forward unchanged.
	roll90 := RotatorFromRoll(90)
	assert.True(t, roll90.ForwardVector().IsNearlyEqual(ForwardVector, 1e-12))
	assert.True(t, roll90.RightVector().IsNearlyEqual(UpVector, 1e-12))
}

func TestRotatorQuaternionRoundTrip(t *testing.T) {
	rotators := []Rotator{
		{},
		{Pitch: 30, Yaw: 60, Roll: -45},
		{Pitch: -89, Yaw: 170, Roll: 10},
		{Pitch: 45, Yaw: -120, Roll: 179},
		{Pitch: 0.5, Yaw: 0, Roll: -0.5},
	}
	for _, r := range rotators {
		back := r.Quaternion().Rotator()
		assert.True(t, r.Normalized().IsNearlyEqual(back, 1e-6), "round trip of %+v gave %+v", r, back)
	}
}

func TestRotatorGimbalBand(t *testing.T) {
	// At pitch +-90 the decomposition pins roll to zero and folds the
	// remaining rotation into yaw. The recovered rotator must still
	// describe the same rotation.
	for _, r := range []Rotator{
		{Pitch: 90, Yaw: 30},
		{Pitch: -90, Yaw: 30},
		{Pitch: 90, Yaw: 45, Roll: 15},
		{Pitch: -90, Yaw: -60, Roll: -20},
	} {
		q := r.Quaternion()
		back := q.Rotator()

		assert.InDelta(t, math.Copysign(90, r.Pitch), back.Pitch, 1e-6)
		assert.Zero(t, back.Roll)

		// Same rotation even though the yaw/roll split changed.
		assert.True(t, q.IsNearlyEqual(back.Quaternion(), 1e-9), "gimbal %+v gave %+v", r, back)
	}
}

func TestRotatorNormalized(t *testing.T) {
	r := Rotator{Pitch: 190, Yaw: -270, Roll: 540}.Normalized()
	assert.InDelta(t, -170, r.Pitch, 1e-12)
	assert.InDelta(t, 90, r.Yaw, 1e-12)
	assert.InDelta(t, 180, r.Roll, 1e-12)
}

func TestRotatorAddDoesNotNormalize(t *testing.T) {
	sum := Rotator{Yaw: 170}.Add(Rotator{Yaw: 30})
	assert.Equal(t, 200.0, sum.Yaw)
	assert.InDelta(t, -160, sum.Normalized().Yaw, 1e-12)

	diff := Rotator{Pitch: 10, Yaw: 20, Roll: 30}.Sub(Rotator{Pitch: 1, Yaw: 2, Roll: 3})
	assert.Equal(t, Rotator{Pitch: 9, Yaw: 18, Roll: 27}, diff)
}

func TestRotatorLerpShortestPath(t *testing.T) {
	a := Rotator{Yaw: 170}
	b := Rotator{Yaw: -170}

	// The short way from 170 to -170 crosses 180, not zero.
	mid := a.Lerp(b, 0.5)
	assert.InDelta(t, 180, math.Abs(NormalizeAngle(mid.Yaw)), 1e-9)

	assert.True(t, a.Lerp(b, 0).IsNearlyEqual(a, 1e-12))
	end := a.Lerp(b, 1)
	assert.InDelta(t, NormalizeAngle(b.Yaw), NormalizeAngle(end.Yaw), 1e-9)
}

func TestRotatorScale(t *testing.T) {
	r := Rotator{Pitch: 10, Yaw: 20, Roll: 30}.Scale(0.5)
	assert.Equal(t, Rotator{Pitch: 5, Yaw: 10, Roll: 15}, r)
}

func TestRotatorPredicates(t *testing.T) {
	assert.True(t, Rotator{Pitch: 1e-5}.IsNearlyZero(KindaSmallNumber))
	assert.False(t, Rotator{Yaw: 1}.IsNearlyZero(KindaSmallNumber))
	assert.True(t, Rotator{Pitch: 10}.IsNearlyEqual(Rotator{Pitch: 10 + 1e-6}, KindaSmallNumber))
}
