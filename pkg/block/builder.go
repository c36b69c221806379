// Package block builds Mermaid block diagrams (block-beta).
//
// Composite blocks are built in an isolated scope: blocks of the enclosing
// diagram cannot be referenced from inside, and the blocks created inside
// become usable outside once the composite is complete.
package block

import (
	"fmt"

	"github.com/aretw0/mermaidkit/pkg/diagram"
	"github.com/aretw0/mermaidkit/pkg/domain"
	"github.com/aretw0/mermaidkit/pkg/validate"
)

// Builder accumulates the statements of a block diagram.
type Builder struct {
	base *diagram.Base
}

// New creates an empty block diagram.
func New(opts ...diagram.Option) *Builder {
	return &Builder{base: diagram.NewBase("block", opts...)}
}

// Columns sets the number of grid columns of the current scope. Zero lets
// Mermaid choose.
func (b *Builder) Columns(n int) error {
	if err := b.base.Reject("columns", b.base.Check().NotNegative("columns", float64(n))); err != nil {
		return err
	}
	b.base.Append(&columns{Element: domain.Element{ID: b.base.NextID()}, n: n})
	return nil
}

// AddBlock appends a block spanning width columns. Zero and one both mean a
// single column.
func (b *Builder) AddBlock(text string, shape Shape, width int) (*Block, error) {
	c := b.base.Check()
	err := validate.First(
		c.NotBlank("text", text),
		validate.Supported(c, shapes, "shape", shape),
		c.NotNegative("width", float64(width)),
	)
	if err := b.base.Reject("add block", err); err != nil {
		return nil, err
	}
	blk := &Block{Element: domain.Element{ID: b.base.NextID()}, text: text, shape: shape, width: width}
	b.base.Own(blk)
	b.base.Append(blk)
	return blk, nil
}

// AddSpace leaves width empty columns.
func (b *Builder) AddSpace(width int) error {
	if err := b.base.Reject("add space", b.base.Check().NotNegative("width", float64(width))); err != nil {
		return err
	}
	b.base.Append(&space{Element: domain.Element{ID: b.base.NextID()}, width: width})
	return nil
}

// AddComposite appends a block containing the blocks produced by body.
func (b *Builder) AddComposite(width int, body func(*Builder) error) (*Block, error) {
	if err := b.base.Reject("add composite", b.base.Check().NotNegative("width", float64(width))); err != nil {
		return nil, err
	}

	blk := &Block{Element: domain.Element{ID: b.base.NextID()}, width: width, composite: true}
	text := "block:" + blk.Key() + span(width)
	child := &Builder{base: b.base.Child()}
	if body != nil {
		if err := body(child); err != nil {
			return nil, fmt.Errorf("%s %q: %w", compositeBlock.Name, text, err)
		}
	}
	b.base.Own(blk)
	b.base.Splice(compositeBlock, text, child.base)
	return blk, nil
}

// AddEdge links two blocks of this scope.
func (b *Builder) AddEdge(from, to *Block, label string) error {
	err := validate.First(b.base.Owned("from", from), b.base.Owned("to", to))
	if err := b.base.Reject("add edge", err); err != nil {
		return err
	}
	b.base.Append(&edge{Element: domain.Element{ID: b.base.NextID()}, from: from, to: to, label: label})
	return nil
}

// Comment appends a "%%" comment line.
func (b *Builder) Comment(text string) error {
	return b.base.Comment(text)
}

// Build renders the diagram.
func (b *Builder) Build() (string, error) {
	return b.base.Build("block-beta")
}
