package sequence

import (
	"strings"

	"github.com/aretw0/mermaidkit/pkg/diagram"
	"github.com/aretw0/mermaidkit/pkg/domain"
)

// Participant is a lifeline of the diagram.
type Participant struct {
	domain.Element
	name  string
	actor bool
}

// Key is the identifier the participant has in the rendered text.
func (p *Participant) Key() string { return diagram.Key("p", p.ID) }

// Name returns the displayed name.
func (p *Participant) Name() string { return p.name }

// IsActor reports whether the participant is drawn as a stick figure.
func (p *Participant) IsActor() bool { return p.actor }

// Line implements domain.Leaf.
func (p *Participant) Line() (string, bool) {
	kw := "participant"
	if p.actor {
		kw = "actor"
	}
	return kw + " " + p.Key() + " as " + p.name, true
}

type message struct {
	domain.Element
	from, to   *Participant
	text       string
	arrow      Arrow
	activation Activation
}

func (m *message) Line() (string, bool) {
	line := m.from.Key() + arrows.MustLookup(m.arrow) + activations.MustLookup(m.activation) + m.to.Key() + ":"
	if m.text != "" {
		line += " " + m.text
	}
	return line, true
}

type note struct {
	domain.Element
	position NotePosition
	text     string
	over     []*Participant
}

func (n *note) Line() (string, bool) {
	keys := make([]string, len(n.over))
	for i, p := range n.over {
		keys[i] = p.Key()
	}
	return "Note " + positions.MustLookup(n.position) + " " + strings.Join(keys, ",") + ": " + n.text, true
}

type activation struct {
	domain.Element
	on *Participant
	up bool
}

func (a *activation) Line() (string, bool) {
	if a.up {
		return "activate " + a.on.Key(), true
	}
	return "deactivate " + a.on.Key(), true
}
