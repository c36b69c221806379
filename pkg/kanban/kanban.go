// Package kanban builds Mermaid kanban boards.
package kanban

import (
	"strings"

	"github.com/aretw0/mermaidkit/pkg/diagram"
	"github.com/aretw0/mermaidkit/pkg/domain"
	"github.com/aretw0/mermaidkit/pkg/validate"
)

// Priority of a card.
type Priority int

const (
	NoPriority Priority = iota
	VeryHigh
	High
	Low
	VeryLow
)

var priorities = domain.Symbols[Priority]{
	NoPriority: "",
	VeryHigh:   "Very High",
	High:       "High",
	Low:        "Low",
	VeryLow:    "Very Low",
}

var columnBlock = &domain.Block{Name: "column"}

// Column is a lane of the board.
type Column struct {
	domain.Element
	title string
}

// Key is the identifier the column has in the rendered text.
func (c *Column) Key() string { return diagram.Key("c", c.ID) }

// CardOptions holds the optional metadata of a card.
type CardOptions struct {
	Assigned string
	Ticket   string
	Priority Priority
}

// Card is a task on the board.
type Card struct {
	domain.Element
	text string
	opts CardOptions
}

// Key is the identifier the card has in the rendered text.
func (c *Card) Key() string { return diagram.Key("t", c.ID) }

// Line implements domain.Leaf.
func (c *Card) Line() (string, bool) {
	line := c.Key() + "[" + c.text + "]"
	var meta []string
	if c.opts.Assigned != "" {
		meta = append(meta, "assigned: "+quote(c.opts.Assigned))
	}
	if c.opts.Ticket != "" {
		meta = append(meta, "ticket: "+quote(c.opts.Ticket))
	}
	if p := priorities.MustLookup(c.opts.Priority); p != "" {
		meta = append(meta, "priority: "+quote(p))
	}
	if len(meta) > 0 {
		line += "@{ " + strings.Join(meta, ", ") + " }"
	}
	return line, true
}

var singleQuote = strings.NewReplacer(`'`, `\'`)

func quote(s string) string { return "'" + singleQuote.Replace(s) + "'" }

// Builder accumulates the columns of a board.
type Builder struct {
	base     *diagram.Base
	inColumn bool
}

// New creates an empty board.
func New(opts ...diagram.Option) *Builder {
	return &Builder{base: diagram.NewBase("kanban", opts...)}
}

// AddColumn appends a column whose cards are added by body.
func (b *Builder) AddColumn(title string, body func(*Builder) error) (*Column, error) {
	c := b.base.Check()
	err := validate.First(
		c.Allowed(!b.inColumn, "column", "columns do not nest"),
		c.NotBlank("title", title),
	)
	if err := b.base.Reject("add column", err); err != nil {
		return nil, err
	}

	col := &Column{Element: domain.Element{ID: b.base.NextID()}, title: title}
	mark := b.base.Mark()
	b.base.Own(col)
	err = b.base.Scope(columnBlock, col.Key()+"["+title+"]", func() error {
		if body == nil {
			return nil
		}
		b.inColumn = true
		defer func() { b.inColumn = false }()
		return body(b)
	})
	if err != nil {
		b.base.Rollback(mark)
		return nil, err
	}
	return col, nil
}

// AddCard appends a card to the column whose body is running.
func (b *Builder) AddCard(text string, opts CardOptions) (*Card, error) {
	c := b.base.Check()
	err := validate.First(
		c.Allowed(b.inColumn, "card", "cards are added inside a column"),
		c.NotBlank("text", text),
		validate.Supported(c, priorities, "priority", opts.Priority),
	)
	if err := b.base.Reject("add card", err); err != nil {
		return nil, err
	}
	card := &Card{Element: domain.Element{ID: b.base.NextID()}, text: text, opts: opts}
	b.base.Own(card)
	b.base.Append(card)
	return card, nil
}

// Comment appends a "%%" comment line.
func (b *Builder) Comment(text string) error {
	return b.base.Comment(text)
}

// Build renders the board.
func (b *Builder) Build() (string, error) {
	return b.base.Build("kanban")
}
