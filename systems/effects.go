package systems

import (
	"math"

	"github.com/petragon/stonefall/components"
	"github.com/petragon/stonefall/config"
	"github.com/petragon/stonefall/events"
	"github.com/petragon/stonefall/sim"
	"github.com/petragon/stonefall/systems/factory"
	"github.com/petragon/stonefall/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateEffects ticks every running secondary effect against the graph
func UpdateEffects(s *sim.Sim) {
	updateBurns(s)
	updateWeakens(s)
}

// updateBurns applies fire damage inside each burn's (growing) radius.
// Non-flammable nodes are untouched; a burn whose owning node is gone stops
// cleanly.
func updateBurns(s *sim.Sim) {
	var expired []*donburi.Entry

	components.Burn.Each(s.World, func(e *donburi.Entry) {
		b := components.Burn.Get(e)

		if s.IsDestroyed(b.Owner) {
			expired = append(expired, e)
			return
		}
		b.Remaining -= s.DT
		if b.Remaining <= 0 {
			expired = append(expired, e)
			return
		}

		if b.RadiusTween != nil {
			r, _ := b.RadiusTween.Update(float32(s.DT))
			b.Radius = float64(r)
		}

		eachNodeInRadius(s, b.Origin, b.Radius, func(ne *donburi.Entry) {
			st := components.Structure.Get(ne)
			profile := s.Catalog.Material(st.Material)
			if !profile.Flammable {
				return
			}

			ApplyDamage(s, ne, b.DPS*s.DT, config.DamageFire)

			// Fire can jump to a still-standing flammable neighbor piece
			if profile.SpreadChance > 0 && ne.Entity() != b.Owner &&
				!s.IsDestroyed(ne.Entity()) &&
				s.Rand.Float64() < profile.SpreadChance*s.DT {
				spreadBurn(s, ne, b)
			}
		})
	})

	for _, e := range expired {
		events.EffectExpiredEvent.Publish(s.World, events.EffectExpired{
			Kind:  string(config.EffectBurn),
			Owner: components.Burn.Get(e).Owner,
		})
		e.Remove()
	}
}

// updateWeakens erodes max health of everything inside each plague cloud
func updateWeakens(s *sim.Sim) {
	var expired []*donburi.Entry

	components.Weaken.Each(s.World, func(e *donburi.Entry) {
		w := components.Weaken.Get(e)

		if s.IsDestroyed(w.Owner) {
			expired = append(expired, e)
			return
		}
		w.Remaining -= s.DT
		if w.Remaining <= 0 {
			expired = append(expired, e)
			return
		}

		eachNodeInRadius(s, w.Origin, w.Radius, func(ne *donburi.Entry) {
			Weaken(s, ne, w.DPS*s.DT)
		})
	})

	for _, e := range expired {
		events.EffectExpiredEvent.Publish(s.World, events.EffectExpired{
			Kind:  string(config.EffectWeaken),
			Owner: components.Weaken.Get(e).Owner,
		})
		e.Remove()
	}
}

// applyChainShot is the chain ammunition's single pass at impact time: every
// node graph-linked to the impacted one and inside the effect radius takes a
// flat structural hit, run through the same modifier table (so wood suffers
// most).
func applyChainShot(s *sim.Sim, impact sim.ProjectileImpact, profile config.AmmoProfile) {
	for _, nb := range s.Neighbors(impact.Target) {
		if s.IsDestroyed(nb) {
			continue
		}
		entry := s.World.Entry(nb)
		if !inRadius(entry, impact.ContactPoint, profile.EffectRadius) {
			continue
		}

		st := components.Structure.Get(entry)
		bonus := config.Effects.ChainBonusDamage *
			config.Damage.ModifierFor(profile.Type, st.Material) *
			config.Damage.StructuralMult
		ApplyDamage(s, entry, bonus, config.DamageStructural)
	}
}

// spreadBurn ignites a secondary fire on a node caught in an existing burn,
// at reduced intensity, unless that node is already burning.
func spreadBurn(s *sim.Sim, node *donburi.Entry, parent *components.BurnData) {
	alreadyBurning := false
	components.Burn.Each(s.World, func(e *donburi.Entry) {
		if components.Burn.Get(e).Owner == node.Entity() {
			alreadyBurning = true
		}
	})
	if alreadyBurning {
		return
	}

	obj := components.Object.Get(node)
	factory.SpawnSpreadBurn(s,
		dmath.Vec2{X: obj.CenterX(), Y: obj.CenterY()},
		node.Entity(),
		parent.DPS*config.Effects.SpreadIgniteFrac,
		parent.Radius,
		parent.Remaining,
	)
}

// eachNodeInRadius visits every non-destroyed node whose collider center lies
// within radius of origin. Candidates come from the collision space's cell
// grid, so only colliders near the area are inspected.
func eachNodeInRadius(s *sim.Sim, origin dmath.Vec2, radius float64, fn func(*donburi.Entry)) {
	cx0, cy0 := s.Space.WorldToSpace(origin.X-radius, origin.Y-radius)
	cx1, cy1 := s.Space.WorldToSpace(origin.X+radius, origin.Y+radius)

	// A collider spanning several cells shows up once per cell
	seen := make(map[donburi.Entity]struct{})
	for ix := cx0; ix <= cx1; ix++ {
		for iy := cy0; iy <= cy1; iy++ {
			cell := s.Space.Cell(ix, iy)
			if cell == nil {
				continue
			}
			for _, obj := range cell.Objects {
				if !obj.HasTags(tags.ResolvNode) {
					continue
				}
				entry, ok := obj.Data.(*donburi.Entry)
				if !ok {
					continue
				}
				if _, dup := seen[entry.Entity()]; dup {
					continue
				}
				seen[entry.Entity()] = struct{}{}

				if components.Health.Get(entry).Destroyed {
					continue
				}
				if inRadius(entry, origin, radius) {
					fn(entry)
				}
			}
		}
	}
}

func inRadius(e *donburi.Entry, origin dmath.Vec2, radius float64) bool {
	obj := components.Object.Get(e)
	return math.Hypot(obj.CenterX()-origin.X, obj.CenterY()-origin.Y) <= radius
}
