// Package gantt builds Mermaid Gantt charts.
package gantt

import (
	"strings"

	"github.com/aretw0/mermaidkit/pkg/diagram"
	"github.com/aretw0/mermaidkit/pkg/domain"
	"github.com/aretw0/mermaidkit/pkg/validate"
)

// Builder accumulates the statements of a Gantt chart.
type Builder struct {
	base      *diagram.Base
	format    string
	inSection bool
}

// New creates an empty chart using DefaultDateFormat.
func New(opts ...diagram.Option) *Builder {
	return &Builder{base: diagram.NewBase("gantt", opts...), format: DefaultDateFormat}
}

// DateFormat sets the format of the dates that follow, using Mermaid's
// tokens (YYYY, MM, DD, HH, mm, ss).
func (b *Builder) DateFormat(format string) error {
	err := validate.First(b.topLevel("date format"), b.base.Check().NotBlank("format", format))
	if err := b.base.Reject("date format", err); err != nil {
		return err
	}
	b.format = format
	b.base.Append(&domain.Text{Element: domain.Element{ID: b.base.NextID()}, Value: "dateFormat " + format})
	return nil
}

// Exclude skips days, such as "weekends" or specific dates, when scheduling.
func (b *Builder) Exclude(days ...string) error {
	c := b.base.Check()
	errs := []error{b.topLevel("excludes"), c.NotEmpty("days", len(days))}
	for _, d := range days {
		errs = append(errs, c.NotBlank("days", d))
	}
	if err := b.base.Reject("exclude", validate.First(errs...)); err != nil {
		return err
	}
	b.base.Append(&domain.Text{Element: domain.Element{ID: b.base.NextID()}, Value: "excludes " + strings.Join(days, ",")})
	return nil
}

// Section groups the tasks added by body. Sections do not nest.
func (b *Builder) Section(name string, body func(*Builder) error) error {
	c := b.base.Check()
	err := validate.First(
		b.topLevel("section"),
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

// AddTask appends a task.
func (b *Builder) AddTask(text string, opts TaskOptions) (*Task, error) {
	c := b.base.Check()
	refs := make([]domain.Ref, len(opts.After))
	for i, a := range opts.After {
		refs[i] = a
	}
	errs := []error{
		c.NotBlank("text", text),
		c.Compatible(opts.Start.IsZero() || len(opts.After) == 0, "start", "a task starts at a date or after other tasks, not both"),
		c.Compatible(opts.End.IsZero() || opts.Duration == 0, "end", "a task ends at a date or after a duration, not both"),
		c.Compatible(opts.End.IsZero() || opts.Start.IsZero() || !opts.End.Before(opts.Start), "end", "a task cannot end before it starts"),
		c.NotNegative("duration", opts.Duration.Seconds()),
		b.base.Owned("after", refs...),
	}
	for _, tag := range opts.Tags {
		errs = append(errs, validate.Supported(c, tags, "tags", tag))
	}
	if err := b.base.Reject("add task", validate.First(errs...)); err != nil {
		return nil, err
	}

	opts.Tags = append([]Tag(nil), opts.Tags...)
	opts.After = append([]*Task(nil), opts.After...)
	t := &Task{Element: domain.Element{ID: b.base.NextID()}, text: text, opts: opts, layout: layout(b.format)}
	b.base.Own(t)
	b.base.Append(t)
	return t, nil
}

func (b *Builder) topLevel(field string) error {
	return b.base.Check().Allowed(!b.inSection, field, "not allowed inside a section")
}

// Comment appends a "%%" comment line.
func (b *Builder) Comment(text string) error {
	return b.base.Comment(text)
}

// Build renders the chart.
func (b *Builder) Build() (string, error) {
	return b.base.Build("gantt")
}
