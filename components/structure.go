package components

import (
	"github.com/petragon/stonefall/config"
	"github.com/yohamta/donburi"
)

// StructureData identifies a destructible castle component.
// Mass drives the heavy-node collapse rule; Links holds link entities,
// never direct node references, so traversal stays cycle-safe.
type StructureData struct {
	Name     string
	Material config.MaterialType
	Mass     float64

	WeakPoint bool
	Keep      bool
	Banner    bool

	Links []donburi.Entity
}

var Structure = donburi.NewComponentType[StructureData]()
