package systems

import (
	"log"

	"github.com/petragon/stonefall/components"
	"github.com/petragon/stonefall/config"
	"github.com/petragon/stonefall/events"
	"github.com/petragon/stonefall/sim"
	"github.com/yohamta/donburi"
)

// UpdateCollapse drains pending chain reactions. Each task sleeps for the
// configured delay between rounds so destruction feedback can play out
// against the still-connected graph, then evaluates the dependents of
// everything destroyed in the previous round.
func UpdateCollapse(s *sim.Sim) {
	var done []*donburi.Entry

	components.CollapseTask.Each(s.World, func(e *donburi.Entry) {
		task := components.CollapseTask.Get(e)
		if task.DelayTicks > 0 {
			task.DelayTicks--
			return
		}
		if runCollapseRound(s, task) {
			done = append(done, e)
			return
		}
		task.DelayTicks = config.Collapse.DelayTicks
	})

	for _, e := range done {
		e.Remove()
	}
}

// runCollapseRound evaluates one propagation round and reports whether the
// reaction tree is finished.
func runCollapseRound(s *sim.Sim, task *components.CollapseTaskData) bool {
	// Candidates in pending/link order keeps outcomes deterministic under
	// simultaneous destruction.
	seen := make(map[donburi.Entity]struct{})
	var candidates []donburi.Entity
	for _, n := range task.Pending {
		for _, nb := range s.Neighbors(n) {
			if s.IsDestroyed(nb) {
				continue
			}
			if _, ok := seen[nb]; ok {
				continue
			}
			seen[nb] = struct{}{}
			candidates = append(candidates, nb)
		}
	}

	var destroyed []donburi.Entity
	for _, nb := range candidates {
		// A concurrent reaction tree may have taken the node this round
		if s.IsDestroyed(nb) {
			continue
		}
		if !shouldCollapse(s, nb) {
			continue
		}
		collapseNode(s, s.World.Entry(nb))
		destroyed = append(destroyed, nb)
	}

	task.Round++

	if len(destroyed) == 0 {
		return true
	}

	events.ChainReactionEvent.Publish(s.World, events.ChainReaction{
		Origin:    task.Origin,
		Destroyed: destroyed,
		Depth:     task.Round,
	})

	task.Depth--
	if task.Depth <= 0 {
		log.Printf("Warning: chain reaction reached its depth limit after %d rounds, abandoning remaining collapses", task.Round)
		return true
	}

	task.Pending = destroyed
	return false
}

// shouldCollapse is the support predicate for a node directly linked to a
// just-destroyed neighbor. Thresholds are strict: a node at exactly half
// support stands.
func shouldCollapse(s *sim.Sim, ent donburi.Entity) bool {
	cfg := config.Collapse
	entry := s.World.Entry(ent)

	ratio := s.SupportRatio(ent)
	if ratio < cfg.SupportRatioThreshold {
		return true
	}

	hp := components.Health.Get(entry)
	if hp.Current < cfg.HealthRatioThreshold*hp.Max {
		return true
	}

	st := components.Structure.Get(entry)
	if st.Mass > cfg.HeavyMass && ratio < cfg.HeavySupportThreshold {
		return true
	}

	return false
}

// collapseNode deals a guaranteed-lethal structural hit. The amplified
// amount mirrors what the damage pipeline does to structural damage, so the
// blow always exceeds remaining health. The running task owns the depth
// budget, so no new collapse is scheduled.
func collapseNode(s *sim.Sim, entry *donburi.Entry) {
	hp := components.Health.Get(entry)
	applyDamage(s, entry, hp.Max*config.Damage.StructuralMult, config.DamageStructural, false)
}
