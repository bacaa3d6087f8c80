package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// BurnData is a timed fire effect ticking against the structure graph.
// The affected radius grows over the effect's lifetime via RadiusTween,
// so a firebomb blossoms outward instead of scorching its full area at once.
type BurnData struct {
	Origin    dmath.Vec2
	Owner     donburi.Entity // impacted node; effect stops if it is destroyed
	Radius    float64        // current radius, updated from RadiusTween
	DPS       float64
	Remaining float64 // seconds

	RadiusTween *gween.Tween
}

var Burn = donburi.NewComponentType[BurnData]()
