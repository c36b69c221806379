package flowchart

import "github.com/aretw0/mermaidkit/pkg/domain"

// Direction is the layout direction of a flowchart or subgraph.
type Direction int

const (
	TopDown Direction = iota
	TopToBottom
	BottomToTop
	LeftToRight
	RightToLeft
)

var directions = domain.Symbols[Direction]{
	TopDown:     "TD",
	TopToBottom: "TB",
	BottomToTop: "BT",
	LeftToRight: "LR",
	RightToLeft: "RL",
}

// Shape is the outline of a node.
type Shape int

const (
	Rectangle Shape = iota
	Rounded
	Stadium
	Subroutine
	Cylinder
	Circle
	DoubleCircle
	Asymmetric
	Rhombus
	Hexagon
	Parallelogram
	ParallelogramAlt
	Trapezoid
	TrapezoidAlt
)

type delimiters struct{ open, close string }

var shapes = domain.Symbols[Shape]{
	Rectangle:        "[]",
	Rounded:          "()",
	Stadium:          "([])",
	Subroutine:       "[[]]",
	Cylinder:         "[()]",
	Circle:           "(())",
	DoubleCircle:     "((()))",
	Asymmetric:       ">]",
	Rhombus:          "{}",
	Hexagon:          "{{}}",
	Parallelogram:    "[//]",
	ParallelogramAlt: `[\\]`,
	Trapezoid:        `[/\]`,
	TrapezoidAlt:     `[\/]`,
}

// split cuts a shape token in the middle: "(())" becomes "((" and "))".
// Asymmetric is the only shape whose halves differ in length.
func split(tok string) delimiters {
	if tok == ">]" {
		return delimiters{">", "]"}
	}
	half := len(tok) / 2
	return delimiters{tok[:half], tok[half:]}
}

// LinkStyle is the stroke of an edge.
type LinkStyle int

const (
	Solid LinkStyle = iota
	Dotted
	Thick
	Invisible
)

var strokes = domain.Symbols[LinkStyle]{
	Solid:     "-",
	Dotted:    ".",
	Thick:     "=",
	Invisible: "~",
}

// ArrowHead is the marker at the end of an edge.
type ArrowHead int

const (
	Arrow ArrowHead = iota
	NoHead
	CircleHead
	CrossHead
)

var heads = domain.Symbols[ArrowHead]{
	Arrow:      ">",
	NoHead:     "",
	CircleHead: "o",
	CrossHead:  "x",
}

var tails = domain.Symbols[ArrowHead]{
	Arrow:      "<",
	NoHead:     "",
	CircleHead: "o",
	CrossHead:  "x",
}
