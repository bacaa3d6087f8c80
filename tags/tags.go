package tags

import "github.com/yohamta/donburi"

var (
	Node     = donburi.NewTag().SetName("Node")
	Link     = donburi.NewTag().SetName("Link")
	Launcher = donburi.NewTag().SetName("Launcher")
	Burn     = donburi.NewTag().SetName("Burn")
	Weaken   = donburi.NewTag().SetName("Weaken")
	Collapse = donburi.NewTag().SetName("Collapse")
)

// Resolv tags for the collision space
const (
	ResolvNode     = "node"
	ResolvObstacle = "obstacle"
)
