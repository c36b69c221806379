package block

import "github.com/aretw0/mermaidkit/pkg/domain"

// Shape is the outline of a block.
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

// split halves a shape token into its opening and closing delimiters.
func split(tok string) delimiters {
	if tok == ">]" {
		return delimiters{">", "]"}
	}
	half := len(tok) / 2
	return delimiters{tok[:half], tok[half:]}
}

var compositeBlock = &domain.Block{Name: "block", Close: "end"}
