// Package timeline builds Mermaid timelines.
package timeline

import (
	"strings"

	"github.com/aretw0/mermaidkit/pkg/diagram"
	"github.com/aretw0/mermaidkit/pkg/domain"
	"github.com/aretw0/mermaidkit/pkg/validate"
)

var sectionBlock = &domain.Block{Name: "section", Open: "section"}

// Builder accumulates the periods of a timeline.
type Builder struct {
	base      *diagram.Base
	inSection bool
}

// New creates an empty timeline.
func New(opts ...diagram.Option) *Builder {
	return &Builder{base: diagram.NewBase("timeline", opts...)}
}

// Section groups the periods added by body.
func (b *Builder) Section(name string, body func(*Builder) error) error {
	c := b.base.Check()
	err := validate.First(
		c.Allowed(!b.inSection, "section", "sections do not nest"),
		c.NotBlank("name", name),
	)
	if err := b.base.Reject("section", err); err != nil {
		return err
	}
	return b.base.Scope(sectionBlock, name, func() error {
		if body == nil {
			return nil
		}
		b.inSection = true
		defer func() { b.inSection = false }()
		return body(b)
	})
}

// AddPeriod appends a time period with its events.
func (b *Builder) AddPeriod(period string, events ...string) error {
	c := b.base.Check()
	errs := []error{c.NotBlank("period", period)}
	for _, e := range events {
		errs = append(errs, c.NotBlank("events", e))
	}
	if err := b.base.Reject("add period", validate.First(errs...)); err != nil {
		return err
	}
	line := strings.Join(append([]string{period}, events...), " : ")
	b.base.Append(&domain.Text{Element: domain.Element{ID: b.base.NextID()}, Value: line})
	return nil
}

// Comment appends a "%%" comment line.
func (b *Builder) Comment(text string) error {
	return b.base.Comment(text)
}

// Build renders the timeline.
func (b *Builder) Build() (string, error) {
	return b.base.Build("timeline")
}
