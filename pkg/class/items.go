package class

import (
	"strings"

	"github.com/aretw0/mermaidkit/pkg/diagram"
	"github.com/aretw0/mermaidkit/pkg/domain"
)

// ClassOptions decorates a class declaration.
type ClassOptions struct {
	Label      string
	Generic    string
	Annotation Annotation
}

func (o ClassOptions) isZero() bool {
	return o.Label == "" && o.Generic == "" && o.Annotation == NoAnnotation
}

// Class is a class of the diagram. Its name is also its identifier.
type Class struct {
	domain.Element
	name       string
	opts       ClassOptions
	namespaced bool
}

// Name returns the class name.
func (c *Class) Name() string { return c.name }

// Line implements domain.Leaf.
func (c *Class) Line() (string, bool) {
	line := "class " + c.name
	if c.opts.Generic != "" {
		line += "~" + c.opts.Generic + "~"
	}
	if c.opts.Label != "" {
		line += "[" + diagram.Quote(c.opts.Label) + "]"
	}
	return line, true
}

// hidden stands in for a class whose declaration adds nothing to the
// relationships that already mention it.
type hidden struct{ domain.Element }

func (hidden) Line() (string, bool) { return "", false }

type annotation struct {
	domain.Element
	on *Class
}

func (a *annotation) Line() (string, bool) {
	return annotations.MustLookup(a.on.opts.Annotation) + " " + a.on.name, true
}

// Member describes a property or a method. For methods Type is the return
// type.
type Member struct {
	Name       string
	Type       string
	Visibility Visibility
	Classifier Classifier
}

type member struct {
	domain.Element
	owner  *Class
	m      Member
	method bool
	params []string
}

func (m *member) Line() (string, bool) {
	var b strings.Builder
	b.WriteString(m.owner.name)
	b.WriteString(" : ")
	b.WriteString(visibilities.MustLookup(m.m.Visibility))
	if m.method {
		b.WriteString(m.m.Name)
		b.WriteString("(" + strings.Join(m.params, ", ") + ")")
		b.WriteString(classifiers.MustLookup(m.m.Classifier))
		if m.m.Type != "" {
			b.WriteString(" " + m.m.Type)
		}
		return b.String(), true
	}
	if m.m.Type != "" {
		b.WriteString(m.m.Type + " ")
	}
	b.WriteString(m.m.Name)
	b.WriteString(classifiers.MustLookup(m.m.Classifier))
	return b.String(), true
}

// RelationOptions annotates a relationship.
type RelationOptions struct {
	Label           string
	FromCardinality Cardinality
	ToCardinality   Cardinality
}

type relationship struct {
	domain.Element
	from, to *Class
	kind     Relation
	opts     RelationOptions
}

func (r *relationship) Line() (string, bool) {
	parts := []string{r.from.name}
	if c := cardinalities.MustLookup(r.opts.FromCardinality); c != "" {
		parts = append(parts, diagram.Quote(c))
	}
	parts = append(parts, relations.MustLookup(r.kind))
	if c := cardinalities.MustLookup(r.opts.ToCardinality); c != "" {
		parts = append(parts, diagram.Quote(c))
	}
	parts = append(parts, r.to.name)
	line := strings.Join(parts, " ")
	if r.opts.Label != "" {
		line += " : " + r.opts.Label
	}
	return line, true
}

type note struct {
	domain.Element
	on   *Class
	text string
}

func (n *note) Line() (string, bool) {
	if n.on == nil {
		return "note " + diagram.Quote(n.text), true
	}
	return "note for " + n.on.name + " " + diagram.Quote(n.text), true
}

type direction struct {
	domain.Element
	dir Direction
}

func (d *direction) Line() (string, bool) {
	return "direction " + directions.MustLookup(d.dir), true
}
