package archetypes

import (
	"github.com/petragon/stonefall/components"
	"github.com/petragon/stonefall/tags"
	"github.com/yohamta/donburi"
)

var (
	Node = newArchetype(
		tags.Node,
		components.Structure,
		components.Health,
		components.Object,
	)
	Link = newArchetype(
		tags.Link,
		components.Link,
	)
	Launcher = newArchetype(
		tags.Launcher,
		components.Launcher,
	)
	Burn = newArchetype(
		tags.Burn,
		components.Burn,
	)
	Weaken = newArchetype(
		tags.Weaken,
		components.Weaken,
	)
	CollapseTask = newArchetype(
		tags.Collapse,
		components.CollapseTask,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
