package sim

import (
	"github.com/petragon/stonefall/components"
	"github.com/petragon/stonefall/gamemath"
	"github.com/petragon/stonefall/tags"
	"github.com/yohamta/donburi"
)

// PercentTargetsDestroyed reports the destroyed fraction of goal nodes
// (keeps and banners), 0..1. A level without goal nodes reports 0.
func (s *Sim) PercentTargetsDestroyed() float64 {
	total, destroyed := 0, 0
	tags.Node.Each(s.World, func(e *donburi.Entry) {
		st := components.Structure.Get(e)
		if !st.Keep && !st.Banner {
			return
		}
		total++
		if components.Health.Get(e).Destroyed {
			destroyed++
		}
	})
	if total == 0 {
		return 0
	}
	return float64(destroyed) / float64(total)
}

// LauncherSummary is the HUD read-out of the current launch solution
type LauncherSummary struct {
	Velocity     float64
	Range        float64
	Height       float64
	TimeOfFlight float64
}

// LauncherSummaryFor derives the HUD quantities from a launcher's current
// parameters using the same closed forms as the aim solvers.
func (s *Sim) LauncherSummaryFor(l *components.LauncherData) LauncherSummary {
	v := l.LaunchVelocity()
	angle := l.ReleaseAngle
	return LauncherSummary{
		Velocity:     v,
		Range:        gamemath.MaxRange(v, angle, &s.Env),
		Height:       gamemath.MaxHeight(v, angle, &s.Env),
		TimeOfFlight: gamemath.TimeOfFlight(v, angle, &s.Env),
	}
}
