package block

import (
	"strconv"

	"github.com/aretw0/mermaidkit/pkg/diagram"
	"github.com/aretw0/mermaidkit/pkg/domain"
)

// Block is a cell of the grid, either a plain block or a composite one.
type Block struct {
	domain.Element
	text      string
	shape     Shape
	width     int
	composite bool
}

// Key is the identifier the block has in the rendered text.
func (b *Block) Key() string { return diagram.Key("b", b.ID) }

// Line implements domain.Leaf.
func (b *Block) Line() (string, bool) {
	d := split(shapes.MustLookup(b.shape))
	return b.Key() + d.open + diagram.Quote(b.text) + d.close + span(b.width), true
}

func span(width int) string {
	if width <= 1 {
		return ""
	}
	return ":" + strconv.Itoa(width)
}

type space struct {
	domain.Element
	width int
}

func (s *space) Line() (string, bool) { return "space" + span(s.width), true }

type columns struct {
	domain.Element
	n int
}

func (c *columns) Line() (string, bool) {
	if c.n == 0 {
		return "columns auto", true
	}
	return "columns " + strconv.Itoa(c.n), true
}

type edge struct {
	domain.Element
	from, to *Block
	label    string
}

func (e *edge) Line() (string, bool) {
	if e.label == "" {
		return e.from.Key() + " --> " + e.to.Key(), true
	}
	return e.from.Key() + " -- " + diagram.Quote(e.label) + " --> " + e.to.Key(), true
}
