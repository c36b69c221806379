package class

import (
	"github.com/aretw0/mermaidkit/pkg/diagram"
	"github.com/aretw0/mermaidkit/pkg/domain"
	"github.com/aretw0/mermaidkit/pkg/validate"
)

// Builder accumulates the statements of a class diagram.
type Builder struct {
	base        *diagram.Base
	inNamespace bool
}

// New creates an empty class diagram.
func New(opts ...diagram.Option) *Builder {
	return &Builder{base: diagram.NewBase("class", opts...)}
}

// SetDirection appends a direction statement.
func (b *Builder) SetDirection(dir Direction) error {
	err := validate.First(
		b.outsideNamespace(),
		validate.Supported(b.base.Check(), directions, "direction", dir),
	)
	if err := b.base.Reject("set direction", err); err != nil {
		return err
	}
	b.base.Append(&direction{Element: domain.Element{ID: b.base.NextID()}, dir: dir})
	return nil
}

// AddClass declares a class. Class names are unique within a diagram.
func (b *Builder) AddClass(name string, opts ClassOptions) (*Class, error) {
	c := b.base.Check()
	err := validate.First(
		c.NotBlank("name", name),
		c.Unique("name", name, b.lookup(name) != nil),
		validate.Supported(c, annotations, "annotation", opts.Annotation),
	)
	if err := b.base.Reject("add class", err); err != nil {
		return nil, err
	}

	cl := &Class{Element: domain.Element{ID: b.base.NextID()}, name: name, opts: opts, namespaced: b.inNamespace}
	b.base.Own(cl)
	b.base.Append(cl)
	if opts.Annotation != NoAnnotation {
		b.base.Append(&annotation{Element: domain.Element{ID: b.base.NextID()}, on: cl})
	}
	return cl, nil
}

// AddProperty adds an attribute to c.
func (b *Builder) AddProperty(c *Class, m Member) error {
	return b.addMember("add property", c, m, false, nil)
}

// AddMethod adds an operation to c. Parameters are rendered verbatim.
func (b *Builder) AddMethod(c *Class, m Member, params ...string) error {
	return b.addMember("add method", c, m, true, params)
}

func (b *Builder) addMember(op string, c *Class, m Member, method bool, params []string) error {
	check := b.base.Check()
	err := validate.First(
		b.outsideNamespace(),
		b.base.Owned("class", c),
		check.NotBlank("name", m.Name),
		validate.Supported(check, visibilities, "visibility", m.Visibility),
		validate.Supported(check, classifiers, "classifier", m.Classifier),
	)
	if err == nil {
		err = check.Unique("name", m.Name, b.hasMember(c, m.Name))
	}
	if err := b.base.Reject(op, err); err != nil {
		return err
	}
	b.base.Append(&member{
		Element: domain.Element{ID: b.base.NextID()},
		owner:   c,
		m:       m,
		method:  method,
		params:  append([]string(nil), params...),
	})
	return nil
}

// AddRelationship links two classes.
func (b *Builder) AddRelationship(from, to *Class, kind Relation, opts RelationOptions) error {
	c := b.base.Check()
	err := validate.First(
		b.outsideNamespace(),
		b.base.Owned("from", from),
		b.base.Owned("to", to),
		validate.Supported(c, relations, "kind", kind),
		validate.Supported(c, cardinalities, "from cardinality", opts.FromCardinality),
		validate.Supported(c, cardinalities, "to cardinality", opts.ToCardinality),
	)
	if err := b.base.Reject("add relationship", err); err != nil {
		return err
	}
	b.base.Append(&relationship{Element: domain.Element{ID: b.base.NextID()}, from: from, to: to, kind: kind, opts: opts})
	return nil
}

// AddNamespace groups the classes declared by body. Only classes can be
// declared inside a namespace, and namespaces do not nest.
func (b *Builder) AddNamespace(name string, body func(*Builder) error) error {
	err := validate.First(b.outsideNamespace(), b.base.Check().NotBlank("name", name))
	if err := b.base.Reject("add namespace", err); err != nil {
		return err
	}
	return b.base.Scope(namespaceBlock, name, func() error {
		if body == nil {
			return nil
		}
		b.inNamespace = true
		defer func() { b.inNamespace = false }()
		return body(b)
	})
}

// AddNote appends a note, attached to on when it is not nil.
func (b *Builder) AddNote(text string, on *Class) error {
	errs := []error{b.outsideNamespace(), b.base.Check().NotBlank("text", text)}
	if on != nil {
		errs = append(errs, b.base.Owned("class", on))
	}
	if err := b.base.Reject("add note", validate.First(errs...)); err != nil {
		return err
	}
	b.base.Append(&note{Element: domain.Element{ID: b.base.NextID()}, on: on, text: text})
	return nil
}

// Comment appends a "%%" comment line.
func (b *Builder) Comment(text string) error {
	return b.base.Comment(text)
}

// Build renders the diagram. A top-level class declaration is left out
// when it carries no decoration and no members and the class already
// appears in a relationship.
func (b *Builder) Build() (string, error) {
	return b.base.BuildItems("classDiagram", b.view())
}

func (b *Builder) view() []domain.Item {
	items := b.base.Items()
	related := map[*Class]bool{}
	described := map[*Class]bool{}
	for _, it := range items {
		switch v := it.(type) {
		case *relationship:
			related[v.from] = true
			related[v.to] = true
		case *member:
			described[v.owner] = true
		}
	}

	out := make([]domain.Item, len(items))
	for i, it := range items {
		out[i] = it
		if c, ok := it.(*Class); ok && !c.namespaced && c.opts.isZero() && related[c] && !described[c] {
			out[i] = hidden{Element: c.Element}
		}
	}
	return out
}

func (b *Builder) lookup(name string) *Class {
	for _, it := range b.base.Items() {
		if c, ok := it.(*Class); ok && c.name == name {
			return c
		}
	}
	return nil
}

func (b *Builder) hasMember(c *Class, name string) bool {
	for _, it := range b.base.Items() {
		if m, ok := it.(*member); ok && m.owner == c && m.m.Name == name {
			return true
		}
	}
	return false
}

func (b *Builder) outsideNamespace() error {
	return b.base.Check().Allowed(!b.inNamespace, "namespace", "only classes can be declared inside a namespace")
}
