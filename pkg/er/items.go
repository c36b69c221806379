package er

import (
	"strings"

	"github.com/aretw0/mermaidkit/pkg/diagram"
	"github.com/aretw0/mermaidkit/pkg/domain"
)

// Entity is an entity of the diagram. Its name is also its identifier.
type Entity struct {
	domain.Element
	name string
}

// Name returns the entity name.
func (e *Entity) Name() string { return e.name }

// Line implements domain.Leaf. It is used for entities without attributes.
func (e *Entity) Line() (string, bool) { return e.name, true }

// Attribute is one row of an entity.
type Attribute struct {
	Type    string
	Name    string
	Keys    []Key
	Comment string
}

type attribute struct {
	domain.Element
	a Attribute
}

func (a *attribute) Line() (string, bool) {
	parts := []string{a.a.Type, a.a.Name}
	if len(a.a.Keys) > 0 {
		ks := make([]string, len(a.a.Keys))
		for i, k := range a.a.Keys {
			ks[i] = keys.MustLookup(k)
		}
		parts = append(parts, strings.Join(ks, ", "))
	}
	if a.a.Comment != "" {
		parts = append(parts, diagram.Quote(a.a.Comment))
	}
	return strings.Join(parts, " "), true
}

type relationship struct {
	domain.Element
	from, to    *Entity
	left, right Cardinality
	identifying bool
	label       string
}

func (r *relationship) Line() (string, bool) {
	line := "--"
	if !r.identifying {
		line = ".."
	}
	return r.from.name + " " + leftEnds.MustLookup(r.left) + line + rightEnds.MustLookup(r.right) + " " +
		r.to.name + " : " + diagram.Quote(r.label), true
}
