package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stormforge/gametypes/pkg/gmath"
)

func TestSphereValidity(t *testing.T) {
	assert.True(t, NewSphere(gmath.ZeroVector, 1).IsValid())

	// Radius zero is a valid point sphere that contains its center.
	point := NewSphere(gmath.OneVector, 0)
	assert.True(t, point.IsValid())
	assert.True(t, point.ContainsPoint(gmath.OneVector))

	negative := NewSphere(gmath.ZeroVector, -1)
	assert.False(t, negative.IsValid())
	assert.False(t, negative.ContainsPoint(gmath.ZeroVector))
}

func TestSphereFromBox(t *testing.T) {
	b := BoxFromCenterExtent(gmath.NewVector(1, 2, 3), gmath.NewVector(1, 1, 1))
	s := SphereFromBox(b)
	assert.Equal(t, gmath.NewVector(1, 2, 3), s.Center)
	assert.InDelta(t, math.Sqrt(3), s.Radius, 1e-12)

	// Every corner of the box is enclosed.
	for _, c := range b.Corners() {
		assert.True(t, s.ContainsPoint(c))
	}

	var invalid Box
	assert.Equal(t, Sphere{}, SphereFromBox(invalid))
}

func TestSphereFromPoints(t *testing.T) {
	assert.Equal(t, Sphere{}, SphereFromPoints(nil))

	points := []gmath.Vector{
		{X: -2, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
	s := SphereFromPoints(points)
	for _, p := range points {
		assert.True(t, s.ContainsPoint(p))
	}
}

func TestSphereEnclosesSurfacePoints(t *testing.T) {
	// Radii produced by the constructors are rounded sqrts; points at
	// exactly that distance (box corners, the adopted point) must
	// still count as contained.
	unit := NewBox(gmath.ZeroVector, gmath.NewVector(2, 2, 2))
	s := SphereFromBox(unit)
	for _, c := range unit.Corners() {
		assert.True(t, s.ContainsPoint(c), "corner %+v at radius distance", c)
	}

	grown := NewSphere(gmath.ZeroVector, 0).ExpandToInclude(gmath.OneVector)
	assert.True(t, grown.ContainsPoint(gmath.OneVector))

	// Touching box faces still intersect.
	assert.True(t, grown.IntersectsBox(BoxFromCenterExtent(gmath.NewVector(2, 2, 2), gmath.OneVector)))
}

func TestSphereMeasures(t *testing.T) {
	s := NewSphere(gmath.ZeroVector, 2)
	assert.InDelta(t, (4.0/3.0)*math.Pi*8, s.Volume(), 1e-12)
	assert.InDelta(t, 16*math.Pi, s.SurfaceArea(), 1e-12)
}

func TestSphereContainsAndIntersects(t *testing.T) {
	s := NewSphere(gmath.ZeroVector, 5)

	assert.True(t, s.ContainsPoint(gmath.NewVector(3, 4, 0)))
	assert.False(t, s.ContainsPoint(gmath.NewVector(3, 4, 1)))

	inner := NewSphere(gmath.NewVector(1, 0, 0), 2)
	assert.True(t, s.ContainsSphere(inner))
	assert.False(t, inner.ContainsSphere(s))

	// Touching spheres intersect.
	touching := NewSphere(gmath.NewVector(10, 0, 0), 5)
	assert.True(t, s.IntersectsSphere(touching))
	assert.False(t, s.IntersectsSphere(NewSphere(gmath.NewVector(11, 0, 0), 5)))
}

func TestSphereIntersectsBox(t *testing.T) {
	s := NewSphere(gmath.ZeroVector, 2)

	assert.True(t, s.IntersectsBox(NewBox(gmath.OneVector, gmath.NewVector(5, 5, 5))))
	assert.False(t, s.IntersectsBox(NewBox(gmath.NewVector(3, 3, 3), gmath.NewVector(5, 5, 5))))

	// A box face touching the sphere surface intersects.
	assert.True(t, s.IntersectsBox(NewBox(gmath.NewVector(2, -1, -1), gmath.NewVector(4, 1, 1))))

	var invalid Box
	assert.False(t, s.IntersectsBox(invalid))
}

func TestSphereDistanceToPoint(t *testing.T) {
	s := NewSphere(gmath.ZeroVector, 5)

	// 10 units out from a radius-5 sphere leaves 5 to the surface.
	assert.InDelta(t, 5.0, s.DistanceToPoint(gmath.NewVector(10, 0, 0)), 1e-12)

	// Inside and on the surface the distance is zero, never negative.
	assert.Equal(t, 0.0, s.DistanceToPoint(gmath.ZeroVector))
	assert.Equal(t, 0.0, s.DistanceToPoint(gmath.NewVector(5, 0, 0)))
	assert.Equal(t, 0.0, s.DistanceToPoint(gmath.NewVector(1, 1, 1)))
}

func TestSphereExpand(t *testing.T) {
	s := NewSphere(gmath.ZeroVector, 1)

	grown := s.ExpandToInclude(gmath.NewVector(3, 0, 0))
	assert.Equal(t, gmath.ZeroVector, grown.Center)
	assert.InDelta(t, 3.0, grown.Radius, 1e-12)

	// Contained points leave the sphere untouched.
	assert.Equal(t, s, s.ExpandToInclude(gmath.NewVector(0.5, 0, 0)))

	union := s.ExpandToIncludeSphere(NewSphere(gmath.NewVector(4, 0, 0), 2))
	assert.InDelta(t, 6.0, union.Radius, 1e-12)
	assert.True(t, union.ContainsSphere(NewSphere(gmath.NewVector(4, 0, 0), 2)))
}

func TestSphereTransform(t *testing.T) {
	s := NewSphere(gmath.NewVector(1, 0, 0), 2)

	// The radius follows the largest scale component magnitude.
	tr := gmath.NewTransform(
		gmath.NewVector(0, 0, 10),
		gmath.RotatorFromYaw(90).Quaternion(),
		gmath.NewVector(1, -3, 2),
	)
	out := s.Transform(tr)
	assert.InDelta(t, 6.0, out.Radius, 1e-12)
	assert.True(t, out.Center.IsNearlyEqual(tr.TransformPoint(s.Center), 1e-12))
}

func TestSphereBox(t *testing.T) {
	s := NewSphere(gmath.NewVector(1, 2, 3), 2)
	b := s.Box()
	require.True(t, b.IsValid())
	assert.Equal(t, gmath.NewVector(-1, 0, 1), b.Min)
	assert.Equal(t, gmath.NewVector(3, 4, 5), b.Max)
	assert.True(t, b.ContainsPoint(s.Center))
}
