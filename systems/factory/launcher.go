package factory

import (
	"github.com/petragon/stonefall/archetypes"
	"github.com/petragon/stonefall/components"
	"github.com/petragon/stonefall/sim"
	"github.com/yohamta/donburi"
)

// CreateLauncher spawns the trebuchet at its configured baseline
func CreateLauncher(s *sim.Sim) *donburi.Entry {
	launcher := archetypes.Launcher.Spawn(s.World)
	components.Launcher.SetValue(launcher, components.NewLauncherData())
	return launcher
}
