package state

import (
	"github.com/aretw0/mermaidkit/pkg/diagram"
	"github.com/aretw0/mermaidkit/pkg/domain"
)

// State is a state of the diagram. Pseudo states and composite states are
// states too and can be used as transition endpoints.
type State struct {
	domain.Element
	text   string
	pseudo *PseudoKind
}

// Key is the identifier the state has in the rendered text.
func (s *State) Key() string { return diagram.Key("s", s.ID) }

// Text returns the state description. Pseudo states have none.
func (s *State) Text() string { return s.text }

// Line implements domain.Leaf.
func (s *State) Line() (string, bool) {
	if s.pseudo != nil {
		return "state " + s.Key() + " " + pseudoKinds.MustLookup(*s.pseudo), true
	}
	return "state " + diagram.Quote(s.text) + " as " + s.Key(), true
}

type transition struct {
	domain.Element
	from, to *State
	label    string
}

func (t *transition) Line() (string, bool) {
	from, to := terminal, terminal
	if t.from != nil {
		from = t.from.Key()
	}
	if t.to != nil {
		to = t.to.Key()
	}
	line := from + " --> " + to
	if t.label != "" {
		line += " : " + t.label
	}
	return line, true
}

type note struct {
	domain.Element
	on   *State
	side Side
	text string
}

func (n *note) Line() (string, bool) {
	return "note " + sides.MustLookup(n.side) + " " + n.on.Key() + " : " + n.text, true
}

type direction struct {
	domain.Element
	dir Direction
}

func (d *direction) Line() (string, bool) {
	return "direction " + directions.MustLookup(d.dir), true
}
