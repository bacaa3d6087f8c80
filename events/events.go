// Package events defines the typed notifications the simulation publishes for
// goal tracking, HUD updates and audio/particle triggers. Events are queued on
// the donburi world and delivered when the tick drains them, so subscribers
// always observe a settled graph.
package events

import (
	"github.com/petragon/stonefall/config"
	"github.com/yohamta/donburi"
	devents "github.com/yohamta/donburi/features/events"
)

// StructureDamaged is published for every successful health mutation
type StructureDamaged struct {
	Node   donburi.Entity
	Name   string
	Amount float64
	Type   config.DamageType
}

// StructureDestroyed is published exactly once per node, when it transitions
// to its terminal destroyed state
type StructureDestroyed struct {
	Node donburi.Entity
	Name string
}

// ChainReaction is published once per propagation round of a cascade,
// listing the nodes destroyed in that round
type ChainReaction struct {
	Origin    donburi.Entity
	Destroyed []donburi.Entity
	Depth     int // rounds completed when the event fired
}

// EffectExpired is published when a timed secondary effect ends, either by
// running out its duration or by losing its owning node
type EffectExpired struct {
	Kind  string // "burn" or "weaken"
	Owner donburi.Entity
}

var (
	StructureDamagedEvent   = devents.NewEventType[StructureDamaged]()
	StructureDestroyedEvent = devents.NewEventType[StructureDestroyed]()
	ChainReactionEvent      = devents.NewEventType[ChainReaction]()
	EffectExpiredEvent      = devents.NewEventType[EffectExpired]()
)

// ProcessAll delivers every queued event to its subscribers
func ProcessAll(w donburi.World) {
	devents.ProcessAllEvents(w)
}
