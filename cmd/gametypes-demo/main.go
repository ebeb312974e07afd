// Command gametypes-demo exercises the value-type packages end to
// end: a transform hierarchy, bounding volumes under that hierarchy,
// color space round trips and a session registry, all reported
// through the structured logger.
package main

import (
	"github.com/stormforge/gametypes/internal/observability/log"
	"github.com/stormforge/gametypes/pkg/color"
	"github.com/stormforge/gametypes/pkg/geom"
	"github.com/stormforge/gametypes/pkg/gmath"
	"github.com/stormforge/gametypes/pkg/netinfo"
)

func main() {
	logger := log.New(log.LevelDebug)

	// Parent/child transform chain: a turret on a rotating platform.
	platform := gmath.TransformFromLocationRotator(
		gmath.NewVector(100, 50, 0),
		gmath.RotatorFromYaw(90),
	)
	turret := gmath.TransformFromLocation(gmath.NewVector(0, 0, 2))
	world := gmath.Combine(platform, turret)

	muzzle := world.TransformPoint(gmath.NewVector(1.5, 0, 0.25))
	logger.Info("turret placed",
		log.Any("world_location", world.Location),
		log.Any("muzzle", muzzle),
		log.Any("facing", world.Rotator()),
	)

	// Bounds of the turret, transformed into world space.
	local := geom.BoxFromCenterExtent(gmath.ZeroVector, gmath.NewVector(1, 1, 0.5))
	bounds := local.Transform(world)
	culling := geom.SphereFromBox(bounds)
	logger.Info("turret bounds",
		log.Float64("volume", bounds.Volume()),
		log.Float64("culling_radius", culling.Radius),
	)

	inverse, err := world.Inverse()
	if err != nil {
		logger.Error("world transform not invertible", log.Err(err))
		return
	}
	logger.Debug("round trip",
		log.Any("back_to_local", inverse.TransformPoint(muzzle)),
	)

	// Team colors blended in linear space, stored as bytes.
	teamA := color.FromHex(0xFF8040).Linear()
	teamB := color.LinearRGB(0.1, 0.3, 0.9)
	blend := teamA.Lerp(teamB, 0.5).Color()
	logger.Info("team color blend", log.String("srgb", blend.String()))

	// Session bookkeeping.
	registry := netinfo.NewSessionRegistry(logger)
	session := registry.Create("proving-grounds", "ctf", "highlands", 16)
	if err := registry.AddPlayer(session.SessionID); err != nil {
		logger.Error("join failed", log.Err(err))
	}
	logger.Info("demo complete", log.Int("sessions", registry.Num()))
}
