package systems

import (
	"log"

	"github.com/petragon/stonefall/components"
	"github.com/petragon/stonefall/config"
	"github.com/petragon/stonefall/gamemath"
	"github.com/petragon/stonefall/leveldata"
	"github.com/petragon/stonefall/sim"
	"github.com/petragon/stonefall/systems/factory"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// BuildStructure constructs the level's structural graph from its blueprint.
// Two passes: all nodes first, then links, so declaration order between
// connected pieces never matters. A link naming an unknown node is skipped
// with a warning and the graph stays usable.
func BuildStructure(s *sim.Sim, bp *leveldata.Blueprint) *donburi.Entry {
	s.Env = environmentFrom(bp.Env)

	for _, spec := range bp.Nodes {
		factory.CreateNode(s, spec)
	}

	for _, spec := range bp.Nodes {
		a, ok := s.NodesByName[spec.Name]
		if !ok {
			// Unnamed specs got generated names; they can't declare links
			continue
		}
		for _, targetName := range spec.ConnectedTo {
			b, ok := s.NodesByName[targetName]
			if !ok {
				log.Printf("Warning: node %q links to unknown node %q, skipping link", spec.Name, targetName)
				continue
			}
			if factory.LinkExists(s, a, b) {
				continue
			}
			factory.CreateLink(s, a, b, components.LinkKind(spec.Joint))
		}
	}

	for _, ob := range bp.Obstacles {
		factory.CreateObstacle(s, ob)
	}

	launcher := factory.CreateLauncher(s)
	if bp.Launch != nil {
		l := components.Launcher.Get(launcher)
		l.SetPullback(bp.Launch.Pullback)
		l.SetReleaseAngle(bp.Launch.ReleaseAngle)
		l.SetCounterweightMass(bp.Launch.CounterweightMass)
		l.SetSlingLength(bp.Launch.SlingLength)
	}

	return launcher
}

// environmentFrom fills in the ballistic environment, defaulting gravity when
// the blueprint leaves it unset.
func environmentFrom(env leveldata.EnvSpec) gamemath.EnvironmentParams {
	gy := env.GravityY
	if gy == 0 {
		gy = config.Trajectory.DefaultGravityY
	}
	return gamemath.EnvironmentParams{
		Gravity:       dmath.Vec2{X: 0, Y: gy},
		WindDirection: dmath.Vec2{X: env.WindX, Y: env.WindY},
		WindStrength:  env.WindStrength,
	}
}
