// Package journey builds Mermaid user journey diagrams.
package journey

import (
	"strconv"
	"strings"

	"github.com/aretw0/mermaidkit/pkg/diagram"
	"github.com/aretw0/mermaidkit/pkg/domain"
	"github.com/aretw0/mermaidkit/pkg/validate"
)

// Scores range from MinScore (painful) to MaxScore (delightful).
const (
	MinScore = 1
	MaxScore = 5
)

var sectionBlock = &domain.Block{Name: "section", Open: "section"}

// Builder accumulates the tasks of a user journey.
type Builder struct {
	base      *diagram.Base
	inSection bool
}

// New creates an empty journey.
func New(opts ...diagram.Option) *Builder {
	return &Builder{base: diagram.NewBase("journey", opts...)}
}

// Section groups the tasks added by body.
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

// AddTask appends a task scored by the actors taking part in it.
func (b *Builder) AddTask(text string, score int, actors ...string) error {
	c := b.base.Check()
	errs := []error{
		c.NotBlank("text", text),
		c.InRange("score", float64(score), MinScore, MaxScore),
		c.NotEmpty("actors", len(actors)),
	}
	for _, a := range actors {
		errs = append(errs, c.NotBlank("actors", a))
	}
	if err := b.base.Reject("add task", validate.First(errs...)); err != nil {
		return err
	}
	line := text + ": " + strconv.Itoa(score) + ": " + strings.Join(actors, ", ")
	b.base.Append(&domain.Text{Element: domain.Element{ID: b.base.NextID()}, Value: line})
	return nil
}

// Comment appends a "%%" comment line.
func (b *Builder) Comment(text string) error {
	return b.base.Comment(text)
}

// Build renders the journey.
func (b *Builder) Build() (string, error) {
	return b.base.Build("journey")
}
