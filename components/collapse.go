package components

import "github.com/yohamta/donburi"

// CollapseTaskData is one in-flight chain reaction. Depth is the budget for
// the whole reaction tree and travels with the task, so several simultaneous
// reactions can never corrupt each other's bound.
type CollapseTaskData struct {
	Origin  donburi.Entity   // node whose destruction started the reaction
	Pending []donburi.Entity // just-destroyed nodes awaiting neighbor evaluation
	Depth   int              // remaining propagation rounds
	Round   int              // rounds completed, reported on chain events

	DelayTicks int // countdown before the next evaluation round
}

var CollapseTask = donburi.NewComponentType[CollapseTaskData]()
