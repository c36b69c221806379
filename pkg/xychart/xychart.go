// Package xychart builds Mermaid XY charts (xychart-beta) with bar and line
// series.
package xychart

import (
	"strings"

	"github.com/aretw0/mermaidkit/pkg/diagram"
	"github.com/aretw0/mermaidkit/pkg/domain"
	"github.com/aretw0/mermaidkit/pkg/validate"
)

// Orientation of the chart.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// Builder accumulates the statements of an XY chart.
type Builder struct {
	base        *diagram.Base
	orientation Orientation
}

// New creates an empty chart.
func New(orientation Orientation, opts ...diagram.Option) *Builder {
	return &Builder{base: diagram.NewBase("xychart", opts...), orientation: orientation}
}

// XAxisCategories labels the x axis with one category per data point.
func (b *Builder) XAxisCategories(title string, categories ...string) error {
	c := b.base.Check()
	errs := []error{c.NotEmpty("categories", len(categories))}
	for _, cat := range categories {
		errs = append(errs, c.NotBlank("categories", cat))
	}
	if err := b.base.Reject("x axis", validate.First(errs...)); err != nil {
		return err
	}
	quoted := make([]string, len(categories))
	for i, cat := range categories {
		quoted[i] = diagram.Quote(cat)
	}
	b.text(axisPrefix("x-axis", title) + "[" + strings.Join(quoted, ", ") + "]")
	return nil
}

// XAxisRange makes the x axis numeric.
func (b *Builder) XAxisRange(title string, lo, hi float64) error {
	return b.axisRange("x-axis", title, lo, hi)
}

// YAxisRange fixes the range of the y axis.
func (b *Builder) YAxisRange(title string, lo, hi float64) error {
	return b.axisRange("y-axis", title, lo, hi)
}

func (b *Builder) axisRange(kw, title string, lo, hi float64) error {
	err := b.base.Check().Compatible(lo <= hi, "range", "minimum %v is above maximum %v", lo, hi)
	if err := b.base.Reject(kw, err); err != nil {
		return err
	}
	b.text(axisPrefix(kw, title) + diagram.Number(lo) + " --> " + diagram.Number(hi))
	return nil
}

func axisPrefix(kw, title string) string {
	if title == "" {
		return kw + " "
	}
	return kw + " " + diagram.Quote(title) + " "
}

// AddBar appends a bar series.
func (b *Builder) AddBar(values ...float64) error {
	return b.series("bar", values)
}

// AddLine appends a line series.
func (b *Builder) AddLine(values ...float64) error {
	return b.series("line", values)
}

func (b *Builder) series(kw string, values []float64) error {
	if err := b.base.Reject("add "+kw, b.base.Check().NotEmpty("values", len(values))); err != nil {
		return err
	}
	nums := make([]string, len(values))
	for i, v := range values {
		nums[i] = diagram.Number(v)
	}
	b.text(kw + " [" + strings.Join(nums, ", ") + "]")
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
	header := "xychart-beta"
	if b.orientation == Horizontal {
		header += " horizontal"
	}
	return b.base.Build(header)
}
