package factory

import (
	"fmt"

	"github.com/petragon/stonefall/archetypes"
	"github.com/petragon/stonefall/components"
	"github.com/petragon/stonefall/config"
	"github.com/petragon/stonefall/leveldata"
	"github.com/petragon/stonefall/sim"
	"github.com/petragon/stonefall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateNode instantiates one structural component from its blueprint spec:
// collider in the space, health from the material's base, simulated mass from
// density and footprint.
func CreateNode(s *sim.Sim, spec leveldata.NodeSpec) *donburi.Entry {
	node := archetypes.Node.Spawn(s.World)

	profile := s.Catalog.Material(config.MaterialType(spec.Material))

	w, h := spec.W, spec.H
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}

	obj := resolv.NewObject(spec.X, spec.Y, w, h, tags.ResolvNode)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = node
	s.Space.Add(obj)
	components.Object.SetValue(node, components.ObjectData{Object: obj})

	name := spec.Name
	if name == "" {
		name = fmt.Sprintf("node-%d", len(s.NodesByName))
	}

	components.Structure.SetValue(node, components.StructureData{
		Name:     name,
		Material: config.MaterialType(spec.Material),
		Mass:     profile.Density * w * h,

		WeakPoint: spec.WeakPoint,
		Keep:      spec.Keep,
		Banner:    spec.Banner,
	})
	components.Health.SetValue(node, components.HealthData{
		Current: profile.BaseHealth,
		Max:     profile.BaseHealth,
	})

	s.NodesByName[name] = node.Entity()
	return node
}

// CreateObstacle adds a terrain blocker to the collision space only; it is
// not part of the structural graph.
func CreateObstacle(s *sim.Sim, spec leveldata.ObstacleSpec) *resolv.Object {
	obj := resolv.NewObject(spec.X, spec.Y, spec.W, spec.H, tags.ResolvObstacle)
	obj.SetShape(resolv.NewRectangle(0, 0, spec.W, spec.H))
	s.Space.Add(obj)
	return obj
}
