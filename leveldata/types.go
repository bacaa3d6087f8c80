// Package leveldata holds the castle blueprint format handed to the
// simulation core by the level pipeline. It has no dependencies on donburi or
// resolv — pure data only — so both the TMX loader and test fixtures can
// produce it.
package leveldata

// NodeSpec describes one structural component in world coordinates
// (meters, y-up, y=0 is the ground).
type NodeSpec struct {
	Name     string
	X, Y     float64 // bottom-left corner
	W, H     float64
	Rotation float64 // degrees, presentation only

	Material  string
	Keep      bool
	Banner    bool
	WeakPoint bool

	ConnectedTo []string // names of linked nodes
	Joint       string   // weld (default), hinge or slider
}

// ObstacleSpec is terrain that blocks shots but is not part of the
// structural graph
type ObstacleSpec struct {
	Name string
	X, Y float64
	W, H float64
}

// EnvSpec is the per-level ballistic environment
type EnvSpec struct {
	GravityY     float64
	WindX, WindY float64
	WindStrength float64
}

// LaunchDefaults overrides the trebuchet baseline for a level
type LaunchDefaults struct {
	Pullback          float64
	ReleaseAngle      float64
	CounterweightMass float64
	SlingLength       float64
}

// Blueprint is the complete level description consumed by the core
type Blueprint struct {
	Nodes     []NodeSpec
	Obstacles []ObstacleSpec
	Env       EnvSpec
	Launch    *LaunchDefaults // nil means use config defaults
}
