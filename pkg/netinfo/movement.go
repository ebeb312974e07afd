package netinfo

import "github.com/stormforge/gametypes/pkg/gmath"

// RepMovement is a replicated movement snapshot: where an actor is,
// how it is oriented and how fast it moves, optionally relative to a
// movement base (a platform or vehicle the actor stands on).
type RepMovement struct {
	Location        gmath.Vector  `json:"location" yaml:"location"`
	Rotation        gmath.Rotator `json:"rotation" yaml:"rotation"`
	LinearVelocity  gmath.Vector  `json:"linear_velocity" yaml:"linear_velocity"`
	AngularVelocity gmath.Vector  `json:"angular_velocity" yaml:"angular_velocity"`

	LocationBase     NetworkGUID  `json:"location_base,omitempty" yaml:"location_base,omitempty"`
	RelativeLocation gmath.Vector `json:"relative_location,omitempty" yaml:"relative_location,omitempty"`

	ServerFrame uint32 `json:"server_frame" yaml:"server_frame"`
	IsSimulated bool   `json:"is_simulated" yaml:"is_simulated"`
}

// NewRepMovement returns a snapshot at location with the given
// rotation and velocity.
func NewRepMovement(location gmath.Vector, rotation gmath.Rotator, velocity gmath.Vector) RepMovement {
	return RepMovement{Location: location, Rotation: rotation, LinearVelocity: velocity}
}

// HasLocationBase reports whether the snapshot is relative to a
// movement base.
func (m RepMovement) HasLocationBase() bool {
	return m.LocationBase.IsValid()
}

// WithLocationBase returns the snapshot rebased onto base at the
// given relative location.
func (m RepMovement) WithLocationBase(base NetworkGUID, relative gmath.Vector) RepMovement {
	m.LocationBase = base
	m.RelativeLocation = relative
	return m
}

// WorldLocation resolves the snapshot's world position. resolveBase
// maps a movement base to its world transform; it is consulted only
// when a base is set, and the absolute location is the fallback when
// the base cannot be resolved.
func (m RepMovement) WorldLocation(resolveBase func(NetworkGUID) (gmath.Transform, bool)) gmath.Vector {
	if !m.HasLocationBase() || resolveBase == nil {
		return m.Location
	}
	base, ok := resolveBase(m.LocationBase)
	if !ok {
		return m.Location
	}
	return base.TransformPoint(m.RelativeLocation)
}

// Extrapolate advances the snapshot by dt seconds of its own
// velocity, for simple dead reckoning between server frames.
func (m RepMovement) Extrapolate(dt float64) RepMovement {
	m.Location = m.Location.Add(m.LinearVelocity.Scale(dt))
	m.Rotation = m.Rotation.Add(gmath.NewRotator(
		m.AngularVelocity.Y*dt,
		m.AngularVelocity.Z*dt,
		m.AngularVelocity.X*dt,
	))
	return m
}
