// Package quadrant builds Mermaid quadrant charts.
package quadrant

import (
	"fmt"

	"github.com/aretw0/mermaidkit/pkg/diagram"
	"github.com/aretw0/mermaidkit/pkg/domain"
	"github.com/aretw0/mermaidkit/pkg/validate"
)

// Builder accumulates the statements of a quadrant chart.
type Builder struct {
	base *diagram.Base
}

// New creates an empty quadrant chart.
func New(opts ...diagram.Option) *Builder {
	return &Builder{base: diagram.NewBase("quadrant", opts...)}
}

// XAxis labels the low and high ends of the horizontal axis. high may be
// empty.
func (b *Builder) XAxis(low, high string) error {
	return b.axis("x-axis", low, high)
}

// YAxis labels the low and high ends of the vertical axis. high may be
// empty.
func (b *Builder) YAxis(low, high string) error {
	return b.axis("y-axis", low, high)
}

func (b *Builder) axis(kw, low, high string) error {
	if err := b.base.Reject(kw, b.base.Check().NotBlank("low", low)); err != nil {
		return err
	}
	line := kw + " " + low
	if high != "" {
		line += " --> " + high
	}
	b.text(line)
	return nil
}

// Quadrant labels quadrant n, numbered 1 to 4 counter-clockwise from the
// top right.
func (b *Builder) Quadrant(n int, label string) error {
	c := b.base.Check()
	err := validate.First(c.InRange("quadrant", float64(n), 1, 4), c.NotBlank("label", label))
	if err := b.base.Reject("quadrant", err); err != nil {
		return err
	}
	b.text(fmt.Sprintf("quadrant-%d %s", n, label))
	return nil
}

// AddPoint plots a named point. Both coordinates are in [0, 1].
func (b *Builder) AddPoint(name string, x, y float64) error {
	c := b.base.Check()
	err := validate.First(
		c.NotBlank("name", name),
		c.InRange("x", x, 0, 1),
		c.InRange("y", y, 0, 1),
	)
	if err := b.base.Reject("add point", err); err != nil {
		return err
	}
	b.text(name + ": [" + diagram.Number(x) + ", " + diagram.Number(y) + "]")
	return nil
}

func (b *Builder) text(line string) {
	b.base.Append(&domain.Text{Element: domain.Element{ID: b.base.NextID()}, Value: line})
}

// Comment appends a "%%" comment line.
func (b *Builder) Comment(text string) error {
	return b.base.Comment(text)
}

// Build renders the chart.
func (b *Builder) Build() (string, error) {
	return b.base.Build("quadrantChart")
}
