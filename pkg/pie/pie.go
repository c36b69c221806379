// Package pie builds Mermaid pie charts.
package pie

import (
	"github.com/aretw0/mermaidkit/pkg/diagram"
	"github.com/aretw0/mermaidkit/pkg/domain"
	"github.com/aretw0/mermaidkit/pkg/validate"
)

type slice struct {
	domain.Element
	label string
	value float64
}

func (s *slice) Line() (string, bool) {
	return diagram.Quote(s.label) + " : " + diagram.Number(s.value), true
}

// Builder accumulates the slices of a pie chart.
type Builder struct {
	base     *diagram.Base
	showData bool
}

// New creates an empty pie chart.
func New(opts ...diagram.Option) *Builder {
	return &Builder{base: diagram.NewBase("pie", opts...)}
}

// ShowData renders the raw values next to the legend.
func (b *Builder) ShowData() {
	b.showData = true
}

// AddSlice appends a slice. Values are relative to the sum of all slices.
func (b *Builder) AddSlice(label string, value float64) error {
	c := b.base.Check()
	err := validate.First(c.NotBlank("label", label), c.NotNegative("value", value))
	if err := b.base.Reject("add slice", err); err != nil {
		return err
	}
	b.base.Append(&slice{Element: domain.Element{ID: b.base.NextID()}, label: label, value: value})
	return nil
}

// Comment appends a "%%" comment line.
func (b *Builder) Comment(text string) error {
	return b.base.Comment(text)
}

// Build renders the chart.
func (b *Builder) Build() (string, error) {
	header := "pie"
	if b.showData {
		header += " showData"
	}
	return b.base.Build(header)
}
