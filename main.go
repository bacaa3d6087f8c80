// Stonefall headless demo: builds a small castle, solves an aim at its keep,
// fires one stone and lets the destruction pipeline play out.
package main

import (
	"log"
	"time"

	"github.com/petragon/stonefall/components"
	"github.com/petragon/stonefall/config"
	"github.com/petragon/stonefall/events"
	"github.com/petragon/stonefall/gamemath"
	"github.com/petragon/stonefall/leveldata"
	"github.com/petragon/stonefall/sim"
	"github.com/petragon/stonefall/systems"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func main() {
	_ = systems.InitPersistence()

	s := sim.NewSim(config.NewCatalog(), time.Now().UnixNano())
	launcherEntry := systems.BuildStructure(s, demoBlueprint())
	launcher := components.Launcher.Get(launcherEntry)

	if saved, err := systems.LoadLauncher(); err == nil && saved != nil {
		systems.ApplySavedLauncher(launcher, saved)
	}

	s.AddSystem(systems.UpdateCollapse)
	s.AddSystem(systems.UpdateEffects)

	events.StructureDamagedEvent.Subscribe(s.World, func(w donburi.World, ev events.StructureDamaged) {
		log.Printf("%s took %.1f %s damage", ev.Name, ev.Amount, ev.Type)
	})
	events.StructureDestroyedEvent.Subscribe(s.World, func(w donburi.World, ev events.StructureDestroyed) {
		log.Printf("%s destroyed", ev.Name)
	})
	events.ChainReactionEvent.Subscribe(s.World, func(w donburi.World, ev events.ChainReaction) {
		log.Printf("chain reaction round %d took down %d pieces", ev.Depth, len(ev.Destroyed))
	})

	keep := s.Node("keep")
	keepObj := components.Object.Get(keep)
	start := dmath.Vec2{X: 0, Y: 1}
	target := dmath.Vec2{X: keepObj.CenterX(), Y: keepObj.CenterY()}

	launcher.SetPullback(1.0)
	speed := launcher.LaunchVelocity()
	angle := gamemath.OptimalAngle(start, target, speed, &s.Env)
	if angle == gamemath.Unreachable {
		log.Fatalf("keep at (%.1f, %.1f) is out of range at %.1f m/s", target.X, target.Y, speed)
	}
	launcher.SetReleaseAngle(angle)

	summary := s.LauncherSummaryFor(launcher)
	log.Printf("firing at %.1f m/s, angle %.1f°, range %.1fm, flight %.1fs",
		summary.Velocity, launcher.ReleaseAngle, summary.Range, summary.TimeOfFlight)

	arc := gamemath.Predict(start, launcher.LaunchVelocity(), launcher.LaunchDirection(), &s.Env)
	log.Printf("ghost arc: %d points, lands at (%.1f, %.1f)",
		len(arc), arc[len(arc)-1].X, arc[len(arc)-1].Y)

	// The authoritative physics engine would report the real contact; the demo
	// synthesizes one from the predicted arc's last step.
	impactVel := arcVelocity(arc)
	impact := s.ImpactFromAmmo(config.AmmoStandard, keep.Entity(), impactVel, target)
	systems.OnProjectileImpact(s, impact)

	for i := 0; i < 5*config.Sim.TickRate; i++ {
		s.Update()
	}

	log.Printf("targets destroyed: %.0f%%", s.PercentTargetsDestroyed()*100)
	_ = systems.SaveLauncher(launcher)
}

// arcVelocity derives the terminal velocity from the arc's final segment
func arcVelocity(arc []dmath.Vec2) dmath.Vec2 {
	if len(arc) < 2 {
		return dmath.Vec2{}
	}
	dt := config.Trajectory.TimeStep
	a, b := arc[len(arc)-2], arc[len(arc)-1]
	return dmath.Vec2{X: (b.X - a.X) / dt, Y: (b.Y - a.Y) / dt}
}

// demoBlueprint is a small wooden keep flanked by stone towers
func demoBlueprint() *leveldata.Blueprint {
	return &leveldata.Blueprint{
		Env: leveldata.EnvSpec{
			WindX:        -1,
			WindStrength: 0.5,
		},
		Nodes: []leveldata.NodeSpec{
			{Name: "tower-left", X: 18, Y: 0, W: 2, H: 4, Material: "stone"},
			{Name: "tower-right", X: 26, Y: 0, W: 2, H: 4, Material: "stone"},
			{Name: "wall-left", X: 20, Y: 0, W: 3, H: 2, Material: "wood", ConnectedTo: []string{"tower-left"}},
			{Name: "wall-right", X: 23, Y: 0, W: 3, H: 2, Material: "wood", ConnectedTo: []string{"tower-right", "wall-left"}},
			{Name: "keep", X: 21, Y: 2, W: 4, H: 3, Material: "wood", Keep: true,
				ConnectedTo: []string{"wall-left", "wall-right"}},
			{Name: "banner", X: 22.5, Y: 5, W: 1, H: 1, Material: "rope", Banner: true, WeakPoint: true,
				ConnectedTo: []string{"keep"}},
		},
	}
}
