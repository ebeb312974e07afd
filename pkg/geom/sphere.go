package geom

import (
	"math"

	"github.com/stormforge/gametypes/pkg/gmath"
)

// Sphere is a bounding sphere. A radius of 0 is a valid degenerate
// (point) sphere; a negative radius is invalid.
type Sphere struct {
	Center gmath.Vector
	Radius float64
}

// NewSphere returns the sphere at center with the given radius.
func NewSphere(center gmath.Vector, radius float64) Sphere {
	return Sphere{Center: center, Radius: radius}
}

// SphereFromBox returns the sphere enclosing the box, or a point
// sphere at the origin for an invalid box.
func SphereFromBox(b Box) Sphere {
	if !b.IsValid() {
		return Sphere{}
	}
	center := b.Center()
	return Sphere{Center: center, Radius: b.Max.Sub(center).Size()}
}

// SphereFromPoints returns a sphere enclosing all points: centered on
// their bounding box, radius the farthest point. Not minimal, but
// cheap and enclosing.
func SphereFromPoints(points []gmath.Vector) Sphere {
	if len(points) == 0 {
		return Sphere{}
	}
	center := BoxFromPoints(points).Center()
	var radius float64
	for _, p := range points {
		radius = math.Max(radius, p.Sub(center).Size())
	}
	return Sphere{Center: center, Radius: radius}
}

// IsValid reports whether the radius is non-negative.
func (s Sphere) IsValid() bool {
	return s.Radius >= 0
}

// Volume returns the enclosed volume.
func (s Sphere) Volume() float64 {
	return (4.0 / 3.0) * math.Pi * s.Radius * s.Radius * s.Radius
}

// SurfaceArea returns the sphere's surface area.
func (s Sphere) SurfaceArea() float64 {
	return 4 * math.Pi * s.Radius * s.Radius
}

// ContainsPoint reports whether p lies inside or on the sphere. The
// comparison uses the same rounded sqrt the constructors use for the
// radius, so a point at exact radius distance compares equal instead
// of falling outside by one ulp of re-squaring.
func (s Sphere) ContainsPoint(p gmath.Vector) bool {
	if !s.IsValid() {
		return false
	}
	return p.Sub(s.Center).Size() <= s.Radius
}

// ContainsSphere reports whether other lies entirely inside s.
func (s Sphere) ContainsSphere(other Sphere) bool {
	if !s.IsValid() || !other.IsValid() {
		return false
	}
	return other.Center.Sub(s.Center).Size()+other.Radius <= s.Radius
}

// IntersectsSphere reports whether the spheres overlap or touch.
func (s Sphere) IntersectsSphere(other Sphere) bool {
	if !s.IsValid() || !other.IsValid() {
		return false
	}
	sum := s.Radius + other.Radius
	return other.Center.Sub(s.Center).SizeSquared() <= sum*sum
}

// IntersectsBox reports whether the sphere overlaps the box, by
// comparing the closest point on the box to the sphere's radius.
func (s Sphere) IntersectsBox(b Box) bool {
	if !b.IsValid() {
		return false
	}
	return s.ContainsPoint(b.ClosestPoint(s.Center))
}

// DistanceToPoint returns the distance from p to the sphere surface,
// or 0 when p is inside.
func (s Sphere) DistanceToPoint(p gmath.Vector) float64 {
	return math.Max(0, p.Sub(s.Center).Size()-s.Radius)
}

// ExpandToInclude grows the radius just enough to contain p.
func (s Sphere) ExpandToInclude(p gmath.Vector) Sphere {
	distance := p.Sub(s.Center).Size()
	if distance <= s.Radius {
		return s
	}
	return Sphere{Center: s.Center, Radius: distance}
}

// ExpandToIncludeSphere grows the radius just enough to contain
// other, keeping the center fixed.
func (s Sphere) ExpandToIncludeSphere(other Sphere) Sphere {
	needed := other.Center.Sub(s.Center).Size() + other.Radius
	return Sphere{Center: s.Center, Radius: math.Max(s.Radius, needed)}
}

// Transform maps the sphere through t. The center is fully
// transformed; the radius is scaled by the largest scale component
// magnitude. Non-uniform scale turns a sphere into an ellipsoid this
// type cannot represent, so the largest axis is the conservative,
// enclosing choice.
func (s Sphere) Transform(t gmath.Transform) Sphere {
	maxScale := t.Scale.Abs().MaxComponent()
	return Sphere{
		Center: t.TransformPoint(s.Center),
		Radius: s.Radius * maxScale,
	}
}

// Box returns the axis-aligned box enclosing the sphere.
func (s Sphere) Box() Box {
	return BoxFromCenterExtent(s.Center, gmath.SplatVector(s.Radius))
}

// IsNearlyEqual reports whether the spheres match within tolerance.
func (s Sphere) IsNearlyEqual(other Sphere, tolerance float64) bool {
	return s.Center.IsNearlyEqual(other.Center, tolerance) &&
		gmath.IsNearlyEqual(s.Radius, other.Radius, tolerance)
}
