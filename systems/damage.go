package systems

import (
	"log"
	"math"

	"github.com/petragon/stonefall/components"
	"github.com/petragon/stonefall/config"
	"github.com/petragon/stonefall/events"
	"github.com/petragon/stonefall/sim"
	"github.com/petragon/stonefall/systems/factory"
	"github.com/yohamta/donburi"
)

// ComputeDamage runs the impact damage pipeline for a single hit:
// base damage, velocity scaling, material resistance, weak-point doubling,
// the ammo-vs-material modifier table, then damage-type resistance.
func ComputeDamage(s *sim.Sim, impact sim.ProjectileImpact, target *donburi.Entry) float64 {
	st := components.Structure.Get(target)
	profile := s.Catalog.Material(st.Material)
	cfg := config.Damage

	damage := impact.BaseDamage

	speed := math.Hypot(impact.Velocity.X, impact.Velocity.Y)
	damage *= speed / cfg.VelocityDivisor

	density := profile.Density
	if density <= 0 {
		log.Printf("Warning: material %q has non-positive density, treating as 1", st.Material)
		density = 1
	}
	damage /= density

	if st.WeakPoint {
		damage *= cfg.WeakPointMult
	}

	damage *= cfg.ModifierFor(impact.Ammo, st.Material)

	switch impact.Type {
	case config.DamageFire:
		if !profile.Flammable {
			damage *= cfg.FireOnUnburnableMult
		}
	case config.DamagePlague:
		damage *= cfg.PlagueMult
	case config.DamageStructural:
		damage *= cfg.StructuralMult
	}

	return damage
}

// ApplyDamage subtracts amount from the node's health and, when it reaches
// zero, destroys it and schedules a collapse evaluation. Destroyed nodes are
// terminal: the call is a silent no-op. Reports whether the node was
// destroyed by this call.
func ApplyDamage(s *sim.Sim, target *donburi.Entry, amount float64, dtype config.DamageType) bool {
	return applyDamage(s, target, amount, dtype, true)
}

// applyDamage is the shared mutation path. scheduleCollapse is false when the
// collapse evaluator itself destroys a node, since the running reaction tree
// carries the depth budget for everything it knocks down.
func applyDamage(s *sim.Sim, target *donburi.Entry, amount float64, dtype config.DamageType, scheduleCollapse bool) bool {
	hp := components.Health.Get(target)
	if hp.Destroyed {
		return false
	}

	hp.Current -= amount

	st := components.Structure.Get(target)
	events.StructureDamagedEvent.Publish(s.World, events.StructureDamaged{
		Node:   target.Entity(),
		Name:   st.Name,
		Amount: amount,
		Type:   dtype,
	})

	if hp.Current <= 0 {
		destroyNode(s, target, scheduleCollapse)
		return true
	}
	return false
}

// Weaken permanently lowers the node's maximum health and clamps current
// health to the new ceiling. Distinct from damage and never reversible; a
// node weakened to nothing is destroyed like any other.
func Weaken(s *sim.Sim, target *donburi.Entry, amount float64) bool {
	hp := components.Health.Get(target)
	if hp.Destroyed {
		return false
	}

	hp.Max -= amount
	if hp.Max < 0 {
		hp.Max = 0
	}
	if hp.Current > hp.Max {
		hp.Current = hp.Max
	}

	st := components.Structure.Get(target)
	events.StructureDamagedEvent.Publish(s.World, events.StructureDamaged{
		Node:   target.Entity(),
		Name:   st.Name,
		Amount: amount,
		Type:   config.DamagePlague,
	})

	if hp.Current <= 0 {
		destroyNode(s, target, true)
		return true
	}
	return false
}

// destroyNode transitions a node to its terminal state: health zeroed, links
// deactivated, collider pulled from the space, destruction published.
func destroyNode(s *sim.Sim, target *donburi.Entry, scheduleCollapse bool) {
	hp := components.Health.Get(target)
	hp.Destroyed = true
	hp.Current = 0

	st := components.Structure.Get(target)
	for _, le := range st.Links {
		if !s.World.Valid(le) {
			continue
		}
		components.Link.Get(s.World.Entry(le)).Active = false
	}

	if target.HasComponent(components.Object) {
		obj := components.Object.Get(target)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}

	events.StructureDestroyedEvent.Publish(s.World, events.StructureDestroyed{
		Node: target.Entity(),
		Name: st.Name,
	})

	if scheduleCollapse {
		factory.SpawnCollapseTask(s, target.Entity())
	}
}

// OnProjectileImpact is the entry point the physics collaborator calls when a
// projectile collides with a node. It applies impact damage and spins up the
// ammunition's secondary effect, if any.
func OnProjectileImpact(s *sim.Sim, impact sim.ProjectileImpact) {
	if !s.World.Valid(impact.Target) {
		log.Printf("Warning: impact reported on unknown node, ignoring")
		return
	}
	target := s.World.Entry(impact.Target)
	if components.Health.Get(target).Destroyed {
		return
	}

	ApplyDamage(s, target, ComputeDamage(s, impact, target), impact.Type)

	profile := s.Catalog.Ammo(impact.Ammo)
	if !profile.HasSecondaryEffect {
		return
	}
	switch profile.EffectKind {
	case config.EffectBurn:
		factory.SpawnBurn(s, impact.ContactPoint, impact.Target, profile)
	case config.EffectWeaken:
		factory.SpawnWeaken(s, impact.ContactPoint, impact.Target, profile)
	case config.EffectChain:
		applyChainShot(s, impact, profile)
	}
}
