package geom

import "github.com/stormforge/gametypes/pkg/gmath"

// Plane is the set of points p with Dot(Normal, p) == Distance. The
// normal is expected to be unit length; the constructors normalize.
type Plane struct {
	Normal   gmath.Vector
	Distance float64
}

// NewPlane returns a plane with the given (unit) normal and distance
// from the origin along it.
func NewPlane(normal gmath.Vector, distance float64) Plane {
	return Plane{Normal: normal, Distance: distance}
}

// PlaneFromPointNormal returns the plane through point with the given
// normal direction.
func PlaneFromPointNormal(point, normal gmath.Vector) Plane {
	n := normal.Normalize()
	return Plane{Normal: n, Distance: point.Dot(n)}
}

// PlaneFromPoints returns the plane through three points, with the
// normal following the winding p1->p2->p3.
func PlaneFromPoints(p1, p2, p3 gmath.Vector) Plane {
	normal := p2.Sub(p1).Cross(p3.Sub(p1)).Normalize()
	return PlaneFromPointNormal(p1, normal)
}

// DistanceToPoint returns the signed distance from p to the plane:
// positive in front (along the normal), negative behind.
func (pl Plane) DistanceToPoint(p gmath.Vector) float64 {
	return pl.Normal.Dot(p) - pl.Distance
}

// IsInFront reports whether p lies strictly on the normal side.
func (pl Plane) IsInFront(p gmath.Vector) bool {
	return pl.DistanceToPoint(p) > 0
}

// ProjectPoint returns the closest point on the plane to p.
func (pl Plane) ProjectPoint(p gmath.Vector) gmath.Vector {
	return p.Sub(pl.Normal.Scale(pl.DistanceToPoint(p)))
}

// Flipped returns the plane facing the opposite direction.
func (pl Plane) Flipped() Plane {
	return Plane{Normal: pl.Normal.Negate(), Distance: -pl.Distance}
}

// Plane2D is the 2D analogue of Plane: a line with a unit normal.
type Plane2D struct {
	Normal   gmath.Vector2D
	Distance float64
}

// NewPlane2D returns a 2D plane with the given (unit) normal and
// distance from the origin along it.
func NewPlane2D(normal gmath.Vector2D, distance float64) Plane2D {
	return Plane2D{Normal: normal, Distance: distance}
}

// Plane2DFromPointNormal returns the 2D plane through point with the
// given normal direction.
func Plane2DFromPointNormal(point, normal gmath.Vector2D) Plane2D {
	n := normal.Normalize()
	return Plane2D{Normal: n, Distance: point.Dot(n)}
}

// DistanceToPoint returns the signed distance from p to the plane.
func (pl Plane2D) DistanceToPoint(p gmath.Vector2D) float64 {
	return pl.Normal.Dot(p) - pl.Distance
}

// IsInFront reports whether p lies strictly on the normal side.
func (pl Plane2D) IsInFront(p gmath.Vector2D) bool {
	return pl.DistanceToPoint(p) > 0
}

// ProjectPoint returns the closest point on the plane to p.
func (pl Plane2D) ProjectPoint(p gmath.Vector2D) gmath.Vector2D {
	return p.Sub(pl.Normal.Scale(pl.DistanceToPoint(p)))
}
