// Package sim owns the simulation context: the donburi world that serves as
// the node arena, the resolv space used for contact and area queries, the
// catalogs and the environment. Every system operates on an explicit *Sim
// rather than ambient globals.
package sim

import (
	"math/rand"

	"github.com/petragon/stonefall/config"
	"github.com/petragon/stonefall/events"
	"github.com/petragon/stonefall/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// System is one simulation step, run once per tick in registration order
type System func(*Sim)

type Sim struct {
	World   donburi.World
	Space   *resolv.Space
	Catalog *config.Catalog
	Env     gamemath.EnvironmentParams

	// NodesByName resolves blueprint names to arena entities
	NodesByName map[string]donburi.Entity

	Tick uint64
	DT   float64 // seconds per tick
	Rand *rand.Rand

	systems []System
}

// NewSim creates an empty simulation context. The seed drives only cosmetic
// randomness (fire spread rolls); a fixed seed gives reproducible runs.
func NewSim(catalog *config.Catalog, seed int64) *Sim {
	cfg := config.Sim
	return &Sim{
		World:       donburi.NewWorld(),
		Space:       resolv.NewSpace(cfg.SpaceWidth, cfg.SpaceHeight, cfg.CellSize, cfg.CellSize),
		Catalog:     catalog,
		Env:         gamemath.DefaultEnvironment(),
		NodesByName: make(map[string]donburi.Entity),
		DT:          1.0 / float64(cfg.TickRate),
		Rand:        rand.New(rand.NewSource(seed)),
	}
}

// AddSystem registers a per-tick step. Registration order is execution order.
func (s *Sim) AddSystem(sys System) {
	s.systems = append(s.systems, sys)
}

// Update advances the simulation one tick: each system runs once, then all
// queued events are delivered against the settled graph.
func (s *Sim) Update() {
	for _, sys := range s.systems {
		sys(s)
	}
	events.ProcessAll(s.World)
	s.Tick++
}
