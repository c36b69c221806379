// Package mindmap builds Mermaid mind maps. The tree structure is expressed
// purely by indentation: every node is an indent-only block whose body adds
// its children.
package mindmap

import (
	"github.com/aretw0/mermaidkit/pkg/diagram"
	"github.com/aretw0/mermaidkit/pkg/domain"
	"github.com/aretw0/mermaidkit/pkg/validate"
)

// Shape is the outline of a node.
type Shape int

const (
	Default Shape = iota
	Square
	Rounded
	Circle
	Bang
	Cloud
	Hexagon
)

var shapes = domain.Symbols[Shape]{
	Default: "",
	Square:  "[]",
	Rounded: "()",
	Circle:  "(())",
	Bang:    "))((",
	Cloud:   ")(",
	Hexagon: "{{}}",
}

var nodeBlock = &domain.Block{Name: "node"}

// Node is a node of the tree.
type Node struct {
	domain.Element
	text  string
	shape Shape
}

// Key is the identifier the node has in the rendered text.
func (n *Node) Key() string { return diagram.Key("n", n.ID) }

// Text returns the node label.
func (n *Node) Text() string { return n.text }

func (n *Node) header() string {
	tok := shapes.MustLookup(n.shape)
	if tok == "" {
		return n.text
	}
	half := len(tok) / 2
	return n.Key() + tok[:half] + n.text + tok[half:]
}

// Builder accumulates the nodes of a mind map.
type Builder struct {
	base    *diagram.Base
	depth   int
	hasRoot bool
}

// New creates an empty mind map.
func New(opts ...diagram.Option) *Builder {
	return &Builder{base: diagram.NewBase("mindmap", opts...)}
}

// Root adds the root node. A mind map has exactly one root and every other
// node is added from within its body.
func (b *Builder) Root(text string, shape Shape, body func(*Builder) error) (*Node, error) {
	err := b.base.Check().Allowed(!b.hasRoot && b.depth == 0, "root", "a mind map has a single root")
	if err := b.base.Reject("root", err); err != nil {
		return nil, err
	}
	n, err := b.node("root", text, shape, body)
	if err != nil {
		return nil, err
	}
	b.hasRoot = true
	return n, nil
}

// AddNode adds a child to the node whose body is running.
func (b *Builder) AddNode(text string, shape Shape, body func(*Builder) error) (*Node, error) {
	err := b.base.Check().Allowed(b.depth > 0, "node", "nodes are added inside the root")
	if err := b.base.Reject("add node", err); err != nil {
		return nil, err
	}
	return b.node("add node", text, shape, body)
}

func (b *Builder) node(op, text string, shape Shape, body func(*Builder) error) (*Node, error) {
	c := b.base.Check()
	err := validate.First(c.NotBlank("text", text), validate.Supported(c, shapes, "shape", shape))
	if err := b.base.Reject(op, err); err != nil {
		return nil, err
	}

	n := &Node{Element: domain.Element{ID: b.base.NextID()}, text: text, shape: shape}
	mark := b.base.Mark()
	b.base.Own(n)
	err = b.base.Scope(nodeBlock, n.header(), func() error {
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
	return n, nil
}

// Icon decorates the node whose body is running, e.g. "fa fa-book".
func (b *Builder) Icon(icon string) error {
	c := b.base.Check()
	err := validate.First(
		c.Allowed(b.depth > 0, "icon", "icons decorate a node and must be added in its body"),
		c.NotBlank("icon", icon),
	)
	if err := b.base.Reject("icon", err); err != nil {
		return err
	}
	b.base.Append(&domain.Text{Element: domain.Element{ID: b.base.NextID()}, Value: "::icon(" + icon + ")"})
	return nil
}

// Comment appends a "%%" comment line.
func (b *Builder) Comment(text string) error {
	return b.base.Comment(text)
}

// Build renders the mind map.
func (b *Builder) Build() (string, error) {
	return b.base.Build("mindmap")
}
