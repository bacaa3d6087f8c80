package systems

import (
	"testing"

	"github.com/petragon/stonefall/components"
	"github.com/petragon/stonefall/config"
	"github.com/petragon/stonefall/events"
	"github.com/petragon/stonefall/leveldata"
	"github.com/petragon/stonefall/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func activeBurns(s *sim.Sim) int {
	n := 0
	components.Burn.Each(s.World, func(e *donburi.Entry) { n++ })
	return n
}

func burnOwnedBy(s *sim.Sim, owner donburi.Entity) *components.BurnData {
	var found *components.BurnData
	components.Burn.Each(s.World, func(e *donburi.Entry) {
		if b := components.Burn.Get(e); b.Owner == owner {
			found = b
		}
	})
	return found
}

func TestBurnDamagesOnlyFlammable(t *testing.T) {
	// Wooden target with a stone block right next to it, both inside the
	// blaze. The stone never burns.
	s := newTestSim(t)
	BuildStructure(s, &leveldata.Blueprint{
		Nodes: []leveldata.NodeSpec{
			{Name: "a", X: 10, Y: 0, W: 1, H: 1, Material: "wood"},
			{Name: "b", X: 11, Y: 0, W: 1, H: 1, Material: "stone"},
		},
	})

	hitAt(t, s, "a", config.AmmoFirebomb, 10)
	a := node(t, s, "a")
	b := node(t, s, "b")
	require.InDelta(t, 80.0, components.Health.Get(a).Current, 1e-9,
		"firebomb impact damage before the burn ticks")

	for i := 0; i < config.Sim.TickRate; i++ {
		s.Update()
	}

	hp := components.Health.Get(a).Current
	assert.InDelta(t, 70.0, hp, 0.5, "one second of fire on wood")
	assert.Equal(t, 300.0, components.Health.Get(b).Current, "stone ignores fire")
}

func TestBurnRadiusGrowsOverDuration(t *testing.T) {
	s := newTestSim(t)
	BuildStructure(s, &leveldata.Blueprint{
		Nodes: []leveldata.NodeSpec{{Name: "a", X: 10, Y: 0, W: 1, H: 1, Material: "wood"}},
	})

	hitAt(t, s, "a", config.AmmoFirebomb, 10)
	a := node(t, s, "a")
	burn := burnOwnedBy(s, a.Entity())
	require.NotNil(t, burn)

	full := s.Catalog.Ammo(config.AmmoFirebomb).EffectRadius
	start := full * config.Effects.BurnStartRadiusFrac
	assert.InDelta(t, start, burn.Radius, 1e-9)

	for i := 0; i < config.Sim.TickRate; i++ {
		s.Update()
	}
	assert.Greater(t, burn.Radius, start)
	assert.Less(t, burn.Radius, full)
}

func TestBurnAreaIsLocal(t *testing.T) {
	// The wide floor spans several grid cells around the fire and must still
	// take single damage per tick; the distant shed is out of reach entirely.
	s := newTestSim(t)
	BuildStructure(s, &leveldata.Blueprint{
		Nodes: []leveldata.NodeSpec{
			{Name: "floor", X: 9, Y: 0, W: 3, H: 1, Material: "wood"},
			{Name: "shed", X: 40, Y: 0, W: 1, H: 1, Material: "wood"},
		},
	})

	hitAt(t, s, "floor", config.AmmoFirebomb, 10)
	for i := 0; i < config.Sim.TickRate; i++ {
		s.Update()
	}

	floor := components.Health.Get(node(t, s, "floor"))
	assert.InDelta(t, 70.0, floor.Current, 0.5, "impact plus one second of fire, once per tick")
	assert.Equal(t, 100.0, components.Health.Get(node(t, s, "shed")).Current)
}

func TestBurnStopsWhenOwnerDestroyed(t *testing.T) {
	s := newTestSim(t)
	BuildStructure(s, &leveldata.Blueprint{
		Nodes: []leveldata.NodeSpec{{Name: "a", X: 10, Y: 0, W: 1, H: 1, Material: "wood"}},
	})

	hitAt(t, s, "a", config.AmmoFirebomb, 10)
	require.Equal(t, 1, activeBurns(s))

	var expiredKind string
	events.EffectExpiredEvent.Subscribe(s.World, func(w donburi.World, ev events.EffectExpired) {
		expiredKind = ev.Kind
	})

	destroy(t, s, "a")
	settle(t, s)

	assert.Equal(t, 0, activeBurns(s))
	assert.Equal(t, string(config.EffectBurn), expiredKind)
}

func TestBurnExpiresAfterDuration(t *testing.T) {
	s := newTestSim(t)
	BuildStructure(s, &leveldata.Blueprint{
		Nodes: []leveldata.NodeSpec{{Name: "a", X: 10, Y: 0, W: 1, H: 1, Material: "wood"}},
	})

	hitAt(t, s, "a", config.AmmoFirebomb, 10)
	profile := s.Catalog.Ammo(config.AmmoFirebomb)

	ticks := int(profile.EffectDuration*float64(config.Sim.TickRate)) + 2
	for i := 0; i < ticks; i++ {
		s.Update()
	}

	assert.Equal(t, 0, activeBurns(s))
	a := node(t, s, "a")
	hp := components.Health.Get(a)
	assert.False(t, hp.Destroyed)
	// Impact damage plus the full burn: 20 + 10 dps over 5 seconds
	assert.InDelta(t, 30.0, hp.Current, 1.0)
}

func TestSpreadBurnIgnitesNeighborOnce(t *testing.T) {
	s := newTestSim(t)
	BuildStructure(s, &leveldata.Blueprint{
		Nodes: []leveldata.NodeSpec{
			{Name: "a", X: 10, Y: 0, W: 1, H: 1, Material: "wood"},
			{Name: "b", X: 11, Y: 0, W: 1, H: 1, Material: "wood"},
		},
	})

	hitAt(t, s, "a", config.AmmoFirebomb, 10)
	a := node(t, s, "a")
	b := node(t, s, "b")
	parent := burnOwnedBy(s, a.Entity())
	require.NotNil(t, parent)

	spreadBurn(s, b, parent)
	child := burnOwnedBy(s, b.Entity())
	require.NotNil(t, child)
	assert.InDelta(t, parent.DPS*config.Effects.SpreadIgniteFrac, child.DPS, 1e-9)
	assert.Equal(t, parent.Remaining, child.Remaining)
	assert.Nil(t, child.RadiusTween, "a secondary fire keeps a fixed radius")

	// An already-burning node is never ignited twice
	spreadBurn(s, b, parent)
	assert.Equal(t, 2, activeBurns(s))
}

func TestWeakenCloudErodesAndExpires(t *testing.T) {
	s := newTestSim(t)
	BuildStructure(s, &leveldata.Blueprint{
		Nodes: []leveldata.NodeSpec{{Name: "a", X: 10, Y: 0, W: 1, H: 1, Material: "stone"}},
	})

	hitAt(t, s, "a", config.AmmoPlague, 10)
	a := node(t, s, "a")
	hp := components.Health.Get(a)
	// 10 base, velocity 10, density 5, halved for plague
	require.InDelta(t, 299.0, hp.Current, 1e-9)

	var expiredKind string
	events.EffectExpiredEvent.Subscribe(s.World, func(w donburi.World, ev events.EffectExpired) {
		expiredKind = ev.Kind
	})

	profile := s.Catalog.Ammo(config.AmmoPlague)
	ticks := int(profile.EffectDuration*float64(config.Sim.TickRate)) + 2
	for i := 0; i < ticks; i++ {
		s.Update()
	}

	// 8 dps of erosion over 6 seconds comes off the ceiling for good
	assert.InDelta(t, 252.0, hp.Max, 1.0)
	assert.Equal(t, hp.Max, hp.Current, "current health clamps to the eroded ceiling")
	assert.Equal(t, string(config.EffectWeaken), expiredKind)
}

func TestChainShotHitsLinkedNeighborsInRadius(t *testing.T) {
	// near is linked and in range, far is linked but out of range, loose is in
	// range but not part of the structure.
	s := newTestSim(t)
	BuildStructure(s, &leveldata.Blueprint{
		Nodes: []leveldata.NodeSpec{
			{Name: "hub", X: 10, Y: 0, W: 1, H: 1, Material: "stone"},
			{Name: "near", X: 12, Y: 0, W: 1, H: 1, Material: "wood", ConnectedTo: []string{"hub"}},
			{Name: "far", X: 16, Y: 0, W: 1, H: 1, Material: "wood", ConnectedTo: []string{"hub"}},
			{Name: "loose", X: 8, Y: 0, W: 1, H: 1, Material: "wood"},
		},
	})

	hitAt(t, s, "hub", config.AmmoChain, 10)

	// 15 bonus, 1.5 for chain against wood, 1.5 structural
	near := components.Health.Get(node(t, s, "near"))
	assert.InDelta(t, 66.25, near.Current, 1e-9)

	assert.Equal(t, 100.0, components.Health.Get(node(t, s, "far")).Current)
	assert.Equal(t, 100.0, components.Health.Get(node(t, s, "loose")).Current)

	// 35 base, velocity 10, density 5, no chain modifier for stone
	hub := components.Health.Get(node(t, s, "hub"))
	assert.InDelta(t, 293.0, hub.Current, 1e-9)
}
