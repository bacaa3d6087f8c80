package sim

import (
	"github.com/petragon/stonefall/components"
	"github.com/yohamta/donburi"
)

// Node resolves a blueprint name to its arena entry, or nil if unknown
func (s *Sim) Node(name string) *donburi.Entry {
	ent, ok := s.NodesByName[name]
	if !ok || !s.World.Valid(ent) {
		return nil
	}
	return s.World.Entry(ent)
}

// IsDestroyed reports whether a node entity has reached its terminal state.
// Stale or unknown entities count as destroyed.
func (s *Sim) IsDestroyed(ent donburi.Entity) bool {
	if !s.World.Valid(ent) {
		return true
	}
	return components.Health.Get(s.World.Entry(ent)).Destroyed
}

// Neighbors returns the nodes linked to ent, destroyed or not
func (s *Sim) Neighbors(ent donburi.Entity) []donburi.Entity {
	entry := s.World.Entry(ent)
	st := components.Structure.Get(entry)
	out := make([]donburi.Entity, 0, len(st.Links))
	for _, le := range st.Links {
		if !s.World.Valid(le) {
			continue
		}
		link := components.Link.Get(s.World.Entry(le))
		out = append(out, link.Other(ent))
	}
	return out
}

// TotalLinkCount returns how many joints the node was built with
func (s *Sim) TotalLinkCount(ent donburi.Entity) int {
	return len(components.Structure.Get(s.World.Entry(ent)).Links)
}

// ActiveLinkCount returns how many of the node's joints still connect to a
// non-destroyed endpoint.
func (s *Sim) ActiveLinkCount(ent donburi.Entity) int {
	st := components.Structure.Get(s.World.Entry(ent))
	n := 0
	for _, le := range st.Links {
		if !s.World.Valid(le) {
			continue
		}
		if components.Link.Get(s.World.Entry(le)).Active {
			n++
		}
	}
	return n
}

// SupportRatio returns the fraction of the node's joints still active.
// A node with no joints at all counts as fully supported (free-standing).
func (s *Sim) SupportRatio(ent donburi.Entity) float64 {
	total := s.TotalLinkCount(ent)
	if total == 0 {
		return 1.0
	}
	return float64(s.ActiveLinkCount(ent)) / float64(total)
}
