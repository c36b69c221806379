package flowchart

import (
	"github.com/aretw0/mermaidkit/pkg/diagram"
	"github.com/aretw0/mermaidkit/pkg/domain"
	"github.com/aretw0/mermaidkit/pkg/validate"
)

// Builder accumulates the statements of a flowchart.
// Subgraph bodies run against the same builder, so nodes created inside a
// subgraph can be linked with nodes outside it.
type Builder struct {
	base  *diagram.Base
	dir   Direction
	depth int
}

// New creates an empty flowchart laid out in dir.
func New(dir Direction, opts ...diagram.Option) *Builder {
	return &Builder{
		base: diagram.NewBase("flowchart", opts...),
		dir:  dir,
	}
}

// AddNode appends a node and returns its reference.
func (b *Builder) AddNode(text string, shape Shape) (*Node, error) {
	c := b.base.Check()
	err := validate.First(
		c.NotBlank("text", text),
		validate.Supported(c, shapes, "shape", shape),
	)
	if err := b.base.Reject("add node", err); err != nil {
		return nil, err
	}

	n := &Node{Element: domain.Element{ID: b.base.NextID()}, text: text, shape: shape}
	b.base.Own(n)
	b.base.Append(n)
	return n, nil
}

// AddEdge links two nodes (or subgraphs) of this flowchart.
func (b *Builder) AddEdge(from, to *Node, opts EdgeOptions) error {
	c := b.base.Check()
	err := validate.First(
		b.base.Owned("from", from),
		b.base.Owned("to", to),
		validate.Supported(c, strokes, "style", opts.Style),
		validate.Supported(c, heads, "head", opts.Head),
		c.NotNegative("length", float64(opts.Length)),
		c.Compatible(!(opts.Bidirectional && opts.Head == NoHead), "bidirectional", "a bidirectional link needs an arrow head"),
		c.Compatible(!(opts.Style == Invisible && opts.Label != ""), "label", "invisible links cannot carry a label"),
		c.Compatible(!(opts.Style == Invisible && opts.Bidirectional), "bidirectional", "invisible links have no direction"),
	)
	if err := b.base.Reject("add edge", err); err != nil {
		return err
	}

	b.base.Append(&edge{Element: domain.Element{ID: b.base.NextID()}, from: from, to: to, opts: opts})
	return nil
}

// AddSubgraph appends a subgraph whose content is produced by body.
// The subgraph itself is returned so it can be used as an edge endpoint.
// If body fails the subgraph and everything it added are discarded.
func (b *Builder) AddSubgraph(title string, body func(*Builder) error) (*Node, error) {
	if err := b.base.Reject("add subgraph", b.base.Check().NotBlank("title", title)); err != nil {
		return nil, err
	}

	sg := &Node{Element: domain.Element{ID: b.base.NextID()}, text: title, subgraph: true}
	mark := b.base.Mark()
	b.base.Own(sg)
	err := b.base.Scope(subgraphBlock, sg.Key()+" ["+diagram.Quote(title)+"]", func() error {
		if body == nil {
			return nil
		}
		b.depth++
		defer func() { b.depth-- }()
		return body(b)
	})
	if err != nil {
		b.base.Rollback(mark)
		return nil, err
	}
	return sg, nil
}

// SetDirection overrides the layout direction inside the current subgraph.
func (b *Builder) SetDirection(dir Direction) error {
	c := b.base.Check()
	err := validate.First(
		c.Allowed(b.depth > 0, "direction", "direction statements are only valid inside a subgraph"),
		validate.Supported(c, directions, "direction", dir),
	)
	if err := b.base.Reject("set direction", err); err != nil {
		return err
	}
	b.base.Append(&direction{Element: domain.Element{ID: b.base.NextID()}, dir: dir})
	return nil
}

// Comment appends a "%%" comment line.
func (b *Builder) Comment(text string) error {
	return b.base.Comment(text)
}

// Build renders the flowchart.
func (b *Builder) Build() (string, error) {
	return b.base.Build("flowchart " + directions.MustLookup(b.dir))
}
