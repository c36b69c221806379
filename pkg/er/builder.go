package er

import (
	"github.com/aretw0/mermaidkit/pkg/diagram"
	"github.com/aretw0/mermaidkit/pkg/domain"
	"github.com/aretw0/mermaidkit/pkg/validate"
)

// Builder accumulates the statements of an entity relationship diagram.
type Builder struct {
	base  *diagram.Base
	names map[string]bool
}

// New creates an empty entity relationship diagram.
func New(opts ...diagram.Option) *Builder {
	return &Builder{base: diagram.NewBase("er", opts...), names: map[string]bool{}}
}

// AddEntity declares an entity with its attributes. Entities without
// attributes render as a bare name.
func (b *Builder) AddEntity(name string, attrs ...Attribute) (*Entity, error) {
	c := b.base.Check()
	errs := []error{c.NotBlank("name", name), c.Unique("name", name, b.names[name])}
	seen := map[string]bool{}
	for _, a := range attrs {
		errs = append(errs,
			c.NotBlank("attribute type", a.Type),
			c.NotBlank("attribute name", a.Name),
			c.Unique("attribute name", a.Name, seen[a.Name]),
		)
		for _, k := range a.Keys {
			errs = append(errs, validate.Supported(c, keys, "key", k))
		}
		seen[a.Name] = true
	}
	if err := b.base.Reject("add entity", validate.First(errs...)); err != nil {
		return nil, err
	}

	e := &Entity{Element: domain.Element{ID: b.base.NextID()}, name: name}
	b.base.Own(e)
	b.names[name] = true
	if len(attrs) == 0 {
		b.base.Append(e)
		return e, nil
	}
	b.base.Append(domain.Open{Block: entityBlock, Text: name})
	for _, a := range attrs {
		a.Keys = append([]Key(nil), a.Keys...)
		b.base.Append(&attribute{Element: domain.Element{ID: b.base.NextID()}, a: a})
	}
	b.base.Append(domain.Close{})
	return e, nil
}

// AddRelationship links two entities. left is the multiplicity on the from
// side and right the one on the to side. Identifying relationships draw a
// solid line.
func (b *Builder) AddRelationship(from, to *Entity, left, right Cardinality, identifying bool, label string) error {
	c := b.base.Check()
	err := validate.First(
		b.base.Owned("from", from),
		b.base.Owned("to", to),
		validate.Supported(c, leftEnds, "left", left),
		validate.Supported(c, rightEnds, "right", right),
	)
	if err := b.base.Reject("add relationship", err); err != nil {
		return err
	}
	b.base.Append(&relationship{
		Element:     domain.Element{ID: b.base.NextID()},
		from:        from,
		to:          to,
		left:        left,
		right:       right,
		identifying: identifying,
		label:       label,
	})
	return nil
}

// Comment appends a "%%" comment line.
func (b *Builder) Comment(text string) error {
	return b.base.Comment(text)
}

// Build renders the diagram.
func (b *Builder) Build() (string, error) {
	return b.base.Build("erDiagram")
}
