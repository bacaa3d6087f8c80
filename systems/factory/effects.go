package factory

import (
	"github.com/petragon/stonefall/archetypes"
	"github.com/petragon/stonefall/components"
	"github.com/petragon/stonefall/config"
	"github.com/petragon/stonefall/sim"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// SpawnBurn starts a fire effect at the impact point. The damaging radius
// grows from a fraction of the full radius to all of it across the effect's
// duration, so the blaze blossoms outward.
func SpawnBurn(s *sim.Sim, origin dmath.Vec2, owner donburi.Entity, profile config.AmmoProfile) *donburi.Entry {
	burn := archetypes.Burn.Spawn(s.World)

	startRadius := profile.EffectRadius * config.Effects.BurnStartRadiusFrac
	components.Burn.SetValue(burn, components.BurnData{
		Origin:    origin,
		Owner:     owner,
		Radius:    startRadius,
		DPS:       profile.EffectDamagePerSecond,
		Remaining: profile.EffectDuration,

		RadiusTween: gween.New(
			float32(startRadius),
			float32(profile.EffectRadius),
			float32(profile.EffectDuration),
			ease.Linear,
		),
	})
	return burn
}

// SpawnSpreadBurn starts a secondary fire on a node ignited by an existing
// burn. It inherits the parent's remaining lifetime and a fixed radius.
func SpawnSpreadBurn(s *sim.Sim, origin dmath.Vec2, owner donburi.Entity, dps, radius, remaining float64) *donburi.Entry {
	burn := archetypes.Burn.Spawn(s.World)
	components.Burn.SetValue(burn, components.BurnData{
		Origin:    origin,
		Owner:     owner,
		Radius:    radius,
		DPS:       dps,
		Remaining: remaining,
	})
	return burn
}

// SpawnWeaken starts a plague cloud at the impact point
func SpawnWeaken(s *sim.Sim, origin dmath.Vec2, owner donburi.Entity, profile config.AmmoProfile) *donburi.Entry {
	weaken := archetypes.Weaken.Spawn(s.World)
	components.Weaken.SetValue(weaken, components.WeakenData{
		Origin:    origin,
		Owner:     owner,
		Radius:    profile.EffectRadius,
		DPS:       profile.EffectDamagePerSecond,
		Remaining: profile.EffectDuration,
	})
	return weaken
}
