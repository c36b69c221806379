// Package requirement builds Mermaid requirement diagrams: requirements,
// the elements that implement or test them, and the relations between both.
package requirement

import (
	"github.com/aretw0/mermaidkit/pkg/diagram"
	"github.com/aretw0/mermaidkit/pkg/domain"
	"github.com/aretw0/mermaidkit/pkg/validate"
)

// Node is a requirement or an element.
type Node interface {
	domain.Ref
	Name() string
}

// Options fills in the body of a requirement.
type Options struct {
	ID     string
	Text   string
	Risk   Risk
	Verify VerifyMethod
}

// Req is a requirement of the diagram.
type Req struct {
	domain.Element
	name string
}

// Name returns the requirement name.
func (r *Req) Name() string { return r.name }

// Element is a design or test artifact of the diagram.
type Element struct {
	domain.Element
	name string
}

// Name returns the element name.
func (e *Element) Name() string { return e.name }

type relation struct {
	domain.Element
	from, to Node
	kind     Relation
}

func (r *relation) Line() (string, bool) {
	return r.from.Name() + " - " + relations.MustLookup(r.kind) + " -> " + r.to.Name(), true
}

// Builder accumulates the statements of a requirement diagram.
type Builder struct {
	base  *diagram.Base
	names map[string]bool
}

// New creates an empty requirement diagram.
func New(opts ...diagram.Option) *Builder {
	return &Builder{base: diagram.NewBase("requirement", opts...), names: map[string]bool{}}
}

// AddRequirement declares a requirement. Names are shared with elements and
// must be unique.
func (b *Builder) AddRequirement(kind Kind, name string, opts Options) (*Req, error) {
	c := b.base.Check()
	err := validate.First(
		validate.Supported(c, kinds, "kind", kind),
		c.NotBlank("name", name),
		c.Unique("name", name, b.names[name]),
		validate.Supported(c, risks, "risk", opts.Risk),
		validate.Supported(c, methods, "verify", opts.Verify),
	)
	if err := b.base.Reject("add requirement", err); err != nil {
		return nil, err
	}

	r := &Req{Element: domain.Element{ID: b.base.NextID()}, name: name}
	b.names[name] = true
	b.base.Own(r)

	block := &domain.Block{Name: "requirement", Open: kinds.MustLookup(kind), Suffix: "{", Close: "}"}
	b.base.Append(domain.Open{Block: block, Text: name})
	b.field("id", opts.ID)
	b.field("text", opts.Text)
	b.field("risk", risks.MustLookup(opts.Risk))
	b.field("verifymethod", methods.MustLookup(opts.Verify))
	b.base.Append(domain.Close{})
	return r, nil
}

// AddElement declares an element. typ and docref may be empty.
func (b *Builder) AddElement(name, typ, docref string) (*Element, error) {
	c := b.base.Check()
	err := validate.First(c.NotBlank("name", name), c.Unique("name", name, b.names[name]))
	if err := b.base.Reject("add element", err); err != nil {
		return nil, err
	}

	e := &Element{Element: domain.Element{ID: b.base.NextID()}, name: name}
	b.names[name] = true
	b.base.Own(e)
	b.base.Append(domain.Open{Block: elementBlock, Text: name})
	b.field("type", typ)
	b.field("docref", docref)
	b.base.Append(domain.Close{})
	return e, nil
}

func (b *Builder) field(key, value string) {
	if value == "" {
		return
	}
	b.base.Append(&domain.Text{Element: domain.Element{ID: b.base.NextID()}, Value: key + ": " + value})
}

// AddRelation links two nodes.
func (b *Builder) AddRelation(from, to Node, kind Relation) error {
	err := validate.First(
		b.base.Owned("from", from),
		b.base.Owned("to", to),
		validate.Supported(b.base.Check(), relations, "kind", kind),
	)
	if err := b.base.Reject("add relation", err); err != nil {
		return err
	}
	b.base.Append(&relation{Element: domain.Element{ID: b.base.NextID()}, from: from, to: to, kind: kind})
	return nil
}

// Comment appends a "%%" comment line.
func (b *Builder) Comment(text string) error {
	return b.base.Comment(text)
}

// Build renders the diagram.
func (b *Builder) Build() (string, error) {
	return b.base.Build("requirementDiagram")
}
