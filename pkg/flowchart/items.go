package flowchart

import (
	"strings"

	"github.com/aretw0/mermaidkit/pkg/diagram"
	"github.com/aretw0/mermaidkit/pkg/domain"
)

var subgraphBlock = &domain.Block{Name: "subgraph", Open: "subgraph", Close: "end"}

// Node is a flowchart node or subgraph. Both can be edge endpoints.
type Node struct {
	domain.Element
	text     string
	shape    Shape
	subgraph bool
}

// Key is the identifier the node has in the rendered text.
func (n *Node) Key() string { return diagram.Key("n", n.ID) }

// Text returns the node label.
func (n *Node) Text() string { return n.text }

// IsSubgraph reports whether the node is a subgraph.
func (n *Node) IsSubgraph() bool { return n.subgraph }

// Line implements domain.Leaf.
func (n *Node) Line() (string, bool) {
	d := split(shapes.MustLookup(n.shape))
	return n.Key() + d.open + diagram.Quote(n.text) + d.close, true
}

// EdgeOptions configures an edge. The zero value is a solid arrow "-->".
type EdgeOptions struct {
	Label         string
	Style         LinkStyle
	Head          ArrowHead
	Bidirectional bool
	// Length adds extra stroke characters; zero and one mean the shortest link.
	Length int
}

type edge struct {
	domain.Element
	from, to *Node
	opts     EdgeOptions
}

func (e *edge) Line() (string, bool) {
	link := linkToken(e.opts)
	if e.opts.Label != "" {
		link += "|" + diagram.Quote(e.opts.Label) + "|"
	}
	return e.from.Key() + " " + link + " " + e.to.Key(), true
}

// linkToken composes the arrow glyph: "-->", "-.-", "<==>", "~~~", "--o" ...
func linkToken(o EdgeOptions) string {
	n := max(o.Length, 1)
	stroke := strokes.MustLookup(o.Style)
	if o.Style == Invisible {
		return strings.Repeat(stroke, n+2)
	}

	var b strings.Builder
	if o.Bidirectional {
		b.WriteString(tails.MustLookup(o.Head))
	}
	head := heads.MustLookup(o.Head)
	switch o.Style {
	case Dotted:
		b.WriteString("-")
		b.WriteString(strings.Repeat(stroke, n))
		b.WriteString("-")
	default:
		b.WriteString(strings.Repeat(stroke, n+1))
		if head == "" {
			b.WriteString(stroke)
		}
	}
	b.WriteString(head)
	return b.String()
}

type direction struct {
	domain.Element
	dir Direction
}

func (d *direction) Line() (string, bool) {
	return "direction " + directions.MustLookup(d.dir), true
}
