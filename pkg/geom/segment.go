package geom

import "github.com/stormforge/gametypes/pkg/gmath"

// Segment is a finite line between two points.
type Segment struct {
	Start, End gmath.Vector
}

// NewSegment returns the segment from start to end.
func NewSegment(start, end gmath.Vector) Segment {
	return Segment{Start: start, End: end}
}

// Delta returns the unnormalized vector from start to end.
func (s Segment) Delta() gmath.Vector {
	return s.End.Sub(s.Start)
}

// Direction returns the unit vector from start to end.
func (s Segment) Direction() gmath.Vector {
	return s.Delta().Normalize()
}

// Length returns the segment length.
func (s Segment) Length() float64 {
	return s.Delta().Size()
}

// LengthSquared returns the squared segment length.
func (s Segment) LengthSquared() float64 {
	return s.Delta().SizeSquared()
}

// Center returns the segment midpoint.
func (s Segment) Center() gmath.Vector {
	return s.Start.Add(s.End).Scale(0.5)
}

// PointAt evaluates the segment at parameter t clamped to [0, 1].
func (s Segment) PointAt(t float64) gmath.Vector {
	return s.Start.Lerp(s.End, gmath.Clamp(t, 0, 1))
}

// PointAtUnclamped evaluates the infinite line through the segment.
func (s Segment) PointAtUnclamped(t float64) gmath.Vector {
	return s.Start.Lerp(s.End, t)
}

// ClosestPoint returns the point on the segment nearest to p.
func (s Segment) ClosestPoint(p gmath.Vector) gmath.Vector {
	lengthSquared := s.LengthSquared()
	if lengthSquared < gmath.SmallNumber {
		return s.Start
	}
	t := p.Sub(s.Start).Dot(s.Delta()) / lengthSquared
	return s.PointAt(t)
}

// DistanceToPoint returns the distance from p to the segment.
func (s Segment) DistanceToPoint(p gmath.Vector) float64 {
	return p.Sub(s.ClosestPoint(p)).Size()
}

// ContainsPoint reports whether p lies on the segment within
// tolerance.
func (s Segment) ContainsPoint(p gmath.Vector, tolerance float64) bool {
	return s.DistanceToPoint(p) <= tolerance
}

// Extend returns the segment lengthened by distance at both ends.
func (s Segment) Extend(distance float64) Segment {
	d := s.Direction().Scale(distance)
	return Segment{Start: s.Start.Sub(d), End: s.End.Add(d)}
}

// Transform maps both endpoints through t.
func (s Segment) Transform(t gmath.Transform) Segment {
	return Segment{Start: t.TransformPoint(s.Start), End: t.TransformPoint(s.End)}
}
