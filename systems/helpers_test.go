package systems

import (
	"testing"

	"github.com/petragon/stonefall/components"
	"github.com/petragon/stonefall/config"
	"github.com/petragon/stonefall/events"
	"github.com/petragon/stonefall/leveldata"
	"github.com/petragon/stonefall/sim"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func newTestSim(t *testing.T) *sim.Sim {
	t.Helper()
	s := sim.NewSim(config.NewCatalog(), 1)
	s.AddSystem(UpdateCollapse)
	s.AddSystem(UpdateEffects)
	return s
}

// settle ticks until every pending collapse task has drained
func settle(t *testing.T, s *sim.Sim) {
	t.Helper()
	for i := 0; i < 60*config.Sim.TickRate; i++ {
		s.Update()
		if pendingCollapses(s) == 0 {
			return
		}
	}
	t.Fatal("collapse tasks never settled")
}

func pendingCollapses(s *sim.Sim) int {
	n := 0
	components.CollapseTask.Each(s.World, func(e *donburi.Entry) { n++ })
	return n
}

func node(t *testing.T, s *sim.Sim, name string) *donburi.Entry {
	t.Helper()
	e := s.Node(name)
	if e == nil {
		t.Fatalf("node %q not found", name)
	}
	return e
}

// hitAt synthesizes an impact on a named node at the given speed, aimed at
// the node's collider center.
func hitAt(t *testing.T, s *sim.Sim, name string, ammo config.AmmoType, speed float64) {
	t.Helper()
	e := node(t, s, name)
	obj := components.Object.Get(e)
	contact := dmath.Vec2{X: obj.CenterX(), Y: obj.CenterY()}
	impact := s.ImpactFromAmmo(ammo, e.Entity(), dmath.Vec2{X: speed}, contact)
	OnProjectileImpact(s, impact)
}

// lineBlueprint builds a chain n0-n1-...-n(k-1) where each node links only to
// its predecessor, so destroying n0 unsupports the whole chain.
func lineBlueprint(k int, material string) *leveldata.Blueprint {
	bp := &leveldata.Blueprint{}
	for i := 0; i < k; i++ {
		spec := leveldata.NodeSpec{
			Name:     nodeName(i),
			X:        float64(i * 2),
			Y:        0,
			W:        1,
			H:        1,
			Material: material,
		}
		if i > 0 {
			spec.ConnectedTo = []string{nodeName(i - 1)}
		}
		bp.Nodes = append(bp.Nodes, spec)
	}
	return bp
}

func nodeName(i int) string {
	return string(rune('a' + i))
}

// chainTail names every node of a k-node line except the head
func chainTail(k int) []string {
	names := make([]string, 0, k-1)
	for i := 1; i < k; i++ {
		names = append(names, nodeName(i))
	}
	return names
}

func subscribeDestroyCount(s *sim.Sim, counter *int) {
	events.StructureDestroyedEvent.Subscribe(s.World, func(w donburi.World, ev events.StructureDestroyed) {
		*counter++
	})
}
