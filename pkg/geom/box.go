// Package geom provides bounding volumes and auxiliary geometry
// (planes, rays, segments) built on the gmath value types. Degenerate
// geometry is data, not an error: an invalid box or a zero-radius
// sphere is a representable state queried through a validity
// predicate, and queries on invalid volumes answer false or zero
// rather than failing.
package geom

import (
	"github.com/stormforge/gametypes/pkg/gmath"
)

// Box is an axis-aligned bounding box. The zero Box is invalid; boxes
// become valid through the constructors or by expanding an invalid
// box to include a point. Valid mirrors the min<=max invariant
// explicitly so that an empty box is distinguishable from a
// zero-extent one.
type Box struct {
	Min, Max gmath.Vector
	Valid    bool
}

// NewBox returns the box spanning min to max.
func NewBox(min, max gmath.Vector) Box {
	return Box{Min: min, Max: max, Valid: true}
}

// BoxFromCenterExtent returns the box centered at center with the
// given half-size on each axis.
func BoxFromCenterExtent(center, extent gmath.Vector) Box {
	return Box{Min: center.Sub(extent), Max: center.Add(extent), Valid: true}
}

// BoxFromPoints returns the smallest box enclosing all points, or an
// invalid box when points is empty.
func BoxFromPoints(points []gmath.Vector) Box {
	var box Box
	for _, p := range points {
		box = box.ExpandToInclude(p)
	}
	return box
}

// IsValid reports whether the box holds a real volume: it was
// constructed (or expanded into existence) and min <= max on every
// axis.
func (b Box) IsValid() bool {
	return b.Valid &&
		b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y && b.Min.Z <= b.Max.Z
}

// Center returns the midpoint of the box.
func (b Box) Center() gmath.Vector {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Extent returns the half-size of the box on each axis.
func (b Box) Extent() gmath.Vector {
	return b.Max.Sub(b.Min).Scale(0.5)
}

// Size returns the full dimensions of the box.
func (b Box) Size() gmath.Vector {
	return b.Max.Sub(b.Min)
}

// Volume returns the enclosed volume, or 0 for an invalid box.
func (b Box) Volume() float64 {
	if !b.IsValid() {
		return 0
	}
	s := b.Size()
	return s.X * s.Y * s.Z
}

// SurfaceArea returns the total face area, or 0 for an invalid box.
func (b Box) SurfaceArea() float64 {
	if !b.IsValid() {
		return 0
	}
	s := b.Size()
	return 2 * (s.X*s.Y + s.Y*s.Z + s.Z*s.X)
}

// ContainsPoint reports whether p lies inside the box. Boundaries are
// closed: a point on a face counts as contained.
func (b Box) ContainsPoint(p gmath.Vector) bool {
	if !b.IsValid() {
		return false
	}
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// ContainsBox reports whether other lies entirely inside the box.
func (b Box) ContainsBox(other Box) bool {
	if !other.IsValid() {
		return false
	}
	return b.ContainsPoint(other.Min) && b.ContainsPoint(other.Max)
}

// Intersects reports whether the boxes overlap. Touching faces count
// as intersecting (closed intervals).
func (b Box) Intersects(other Box) bool {
	if !b.IsValid() || !other.IsValid() {
		return false
	}
	return b.Min.X <= other.Max.X && b.Max.X >= other.Min.X &&
		b.Min.Y <= other.Max.Y && b.Max.Y >= other.Min.Y &&
		b.Min.Z <= other.Max.Z && b.Max.Z >= other.Min.Z
}

// Intersection returns the overlapping region of the two boxes, or an
// invalid box when they do not intersect.
func (b Box) Intersection(other Box) Box {
	if !b.Intersects(other) {
		return Box{}
	}
	return NewBox(b.Min.Max(other.Min), b.Max.Min(other.Max))
}

// ExpandToInclude grows the box to contain p. An invalid box adopts
// the point rather than propagating invalidity.
func (b Box) ExpandToInclude(p gmath.Vector) Box {
	if !b.IsValid() {
		return Box{Min: p, Max: p, Valid: true}
	}
	return Box{Min: b.Min.Min(p), Max: b.Max.Max(p), Valid: true}
}

// ExpandToIncludeBox grows the box to contain other. Invalid inputs
// are skipped rather than propagated.
func (b Box) ExpandToIncludeBox(other Box) Box {
	if !other.IsValid() {
		return b
	}
	if !b.IsValid() {
		return other
	}
	return NewBox(b.Min.Min(other.Min), b.Max.Max(other.Max))
}

// ExpandBy grows the box by amount in every direction. An invalid box
// adopts the expansion as a box of that extent around the origin.
func (b Box) ExpandBy(amount float64) Box {
	if !b.IsValid() {
		return BoxFromCenterExtent(gmath.ZeroVector, gmath.SplatVector(amount))
	}
	e := gmath.SplatVector(amount)
	return NewBox(b.Min.Sub(e), b.Max.Add(e))
}

// DistanceToPoint returns the distance from p to the box surface, or
// 0 when p is inside (or the box is invalid).
func (b Box) DistanceToPoint(p gmath.Vector) float64 {
	if !b.IsValid() {
		return 0
	}
	return p.Sub(b.ClosestPoint(p)).Size()
}

// ClosestPoint returns the point on or inside the box nearest to p.
func (b Box) ClosestPoint(p gmath.Vector) gmath.Vector {
	return p.Clamp(b.Min, b.Max)
}

// Corners returns the eight corner points of the box.
func (b Box) Corners() [8]gmath.Vector {
	return [8]gmath.Vector{
		{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
	}
}

// Transform maps the box through t and returns the axis-aligned box
// enclosing the result. Under rotation the min/max corners cannot be
// transformed independently, so all eight corners are mapped and
// re-enclosed. An invalid box stays invalid.
func (b Box) Transform(t gmath.Transform) Box {
	if !b.IsValid() {
		return Box{}
	}
	var out Box
	for _, corner := range b.Corners() {
		out = out.ExpandToInclude(t.TransformPoint(corner))
	}
	return out
}

// IsNearlyEqual reports whether both boxes are valid and their
// corners match within tolerance, or both are invalid.
func (b Box) IsNearlyEqual(other Box, tolerance float64) bool {
	if !b.IsValid() || !other.IsValid() {
		return b.IsValid() == other.IsValid()
	}
	return b.Min.IsNearlyEqual(other.Min, tolerance) && b.Max.IsNearlyEqual(other.Max, tolerance)
}
