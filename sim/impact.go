package sim

import (
	"github.com/petragon/stonefall/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ProjectileImpact is the notification the rigid-body physics collaborator
// delivers when a projectile hits a node's collider. Transient, produced once
// per collision.
type ProjectileImpact struct {
	Ammo       config.AmmoType
	Mass       float64
	BaseDamage float64
	Velocity   dmath.Vec2 // velocity at the moment of contact
	Type       config.DamageType

	Target       donburi.Entity
	ContactPoint dmath.Vec2
}

// ImpactFromAmmo fills a ProjectileImpact's static fields from the catalog,
// leaving the collision-dependent ones to the caller.
func (s *Sim) ImpactFromAmmo(ammo config.AmmoType, target donburi.Entity, velocity, contact dmath.Vec2) ProjectileImpact {
	profile := s.Catalog.Ammo(ammo)
	return ProjectileImpact{
		Ammo:         profile.Type,
		Mass:         profile.Mass,
		BaseDamage:   profile.BaseDamage,
		Velocity:     velocity,
		Type:         profile.DamageType,
		Target:       target,
		ContactPoint: contact,
	}
}
