package factory

import (
	"github.com/petragon/stonefall/archetypes"
	"github.com/petragon/stonefall/components"
	"github.com/petragon/stonefall/sim"
	"github.com/yohamta/donburi"
)

// CreateLink joins two nodes with a symmetric joint. The link entity is
// appended to both endpoints' link lists so it counts toward both connection
// totals.
func CreateLink(s *sim.Sim, a, b donburi.Entity, kind components.LinkKind) *donburi.Entry {
	if kind == "" {
		kind = components.LinkWeld
	}

	link := archetypes.Link.Spawn(s.World)
	components.Link.SetValue(link, components.LinkData{
		NodeA:  a,
		NodeB:  b,
		Kind:   kind,
		Active: true,
	})

	for _, ent := range []donburi.Entity{a, b} {
		st := components.Structure.Get(s.World.Entry(ent))
		st.Links = append(st.Links, link.Entity())
	}

	return link
}

// LinkExists reports whether a joint already connects the two nodes, in
// either declaration order.
func LinkExists(s *sim.Sim, a, b donburi.Entity) bool {
	st := components.Structure.Get(s.World.Entry(a))
	for _, le := range st.Links {
		if !s.World.Valid(le) {
			continue
		}
		l := components.Link.Get(s.World.Entry(le))
		if (l.NodeA == a && l.NodeB == b) || (l.NodeA == b && l.NodeB == a) {
			return true
		}
	}
	return false
}
