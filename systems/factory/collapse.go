package factory

import (
	"github.com/petragon/stonefall/archetypes"
	"github.com/petragon/stonefall/components"
	"github.com/petragon/stonefall/config"
	"github.com/petragon/stonefall/sim"
	"github.com/yohamta/donburi"
)

// SpawnCollapseTask schedules support evaluation for the dependents of a
// just-destroyed node. The task carries the full depth budget for its
// reaction tree; concurrent tasks never share state.
func SpawnCollapseTask(s *sim.Sim, origin donburi.Entity) *donburi.Entry {
	task := archetypes.CollapseTask.Spawn(s.World)
	components.CollapseTask.SetValue(task, components.CollapseTaskData{
		Origin:     origin,
		Pending:    []donburi.Entity{origin},
		Depth:      config.Collapse.MaxDepth,
		DelayTicks: config.Collapse.DelayTicks,
	})
	return task
}
