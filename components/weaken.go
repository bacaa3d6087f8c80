package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// WeakenData is a timed plague effect that permanently erodes max health
// of nodes within its radius while it runs.
type WeakenData struct {
	Origin    dmath.Vec2
	Owner     donburi.Entity
	Radius    float64
	DPS       float64 // max-health points removed per second
	Remaining float64
}

var Weaken = donburi.NewComponentType[WeakenData]()
