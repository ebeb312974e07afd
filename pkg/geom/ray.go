package geom

import (
	"math"

	"github.com/stormforge/gametypes/pkg/gmath"
)

// Ray is a half-line from Origin along a unit Direction.
type Ray struct {
	Origin    gmath.Vector
	Direction gmath.Vector
}

// NewRay returns a ray from origin along direction. The direction is
// normalized here so parametric distances are world units.
func NewRay(origin, direction gmath.Vector) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// RayToTarget returns the ray from origin through target.
func RayToTarget(origin, target gmath.Vector) Ray {
	return NewRay(origin, target.Sub(origin))
}

// PointAt returns the point at the given distance along the ray.
func (r Ray) PointAt(distance float64) gmath.Vector {
	return r.Origin.Add(r.Direction.Scale(distance))
}

// ClosestPoint returns the point on the ray nearest to p. The
// parameter is clamped at the origin; a ray has no points behind it.
func (r Ray) ClosestPoint(p gmath.Vector) gmath.Vector {
	distance := math.Max(0, p.Sub(r.Origin).Dot(r.Direction))
	return r.PointAt(distance)
}

// DistanceToPoint returns the distance from p to the ray.
func (r Ray) DistanceToPoint(p gmath.Vector) float64 {
	return p.Sub(r.ClosestPoint(p)).Size()
}

// ContainsPoint reports whether p lies on the ray within tolerance.
func (r Ray) ContainsPoint(p gmath.Vector, tolerance float64) bool {
	return r.DistanceToPoint(p) <= tolerance
}

// Transform maps the ray through t, renormalizing the direction
// (scale may stretch it).
func (r Ray) Transform(t gmath.Transform) Ray {
	return Ray{
		Origin:    t.TransformPoint(r.Origin),
		Direction: t.TransformVector(r.Direction).Normalize(),
	}
}
