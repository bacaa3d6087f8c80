package components

import "github.com/yohamta/donburi"

// LinkKind mirrors the joint kinds of the authoritative physics engine
type LinkKind string

const (
	LinkWeld   LinkKind = "weld"
	LinkHinge  LinkKind = "hinge"
	LinkSlider LinkKind = "slider"
)

// LinkData is a symmetric joint between two nodes. It counts toward both
// endpoints' connection totals and deactivates when either endpoint is
// destroyed.
type LinkData struct {
	NodeA  donburi.Entity
	NodeB  donburi.Entity
	Kind   LinkKind
	Active bool
}

// Other returns the opposite endpoint of n
func (l *LinkData) Other(n donburi.Entity) donburi.Entity {
	if l.NodeA == n {
		return l.NodeB
	}
	return l.NodeA
}

var Link = donburi.NewComponentType[LinkData]()
