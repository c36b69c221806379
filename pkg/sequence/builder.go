package sequence

import (
	"github.com/aretw0/mermaidkit/pkg/diagram"
	"github.com/aretw0/mermaidkit/pkg/domain"
	"github.com/aretw0/mermaidkit/pkg/validate"
)

// Builder accumulates the statements of a sequence diagram.
type Builder struct {
	base  *diagram.Base
	inBox bool
}

// Branch is one arm of an alt, par or critical block.
type Branch struct {
	Text string
	Body func(*Builder) error
}

// New creates an empty sequence diagram.
func New(opts ...diagram.Option) *Builder {
	return &Builder{base: diagram.NewBase("sequence", opts...)}
}

// AddParticipant declares a participant drawn as a box.
func (b *Builder) AddParticipant(name string) (*Participant, error) {
	return b.declare("add participant", name, false)
}

// AddActor declares a participant drawn as a stick figure.
func (b *Builder) AddActor(name string) (*Participant, error) {
	return b.declare("add actor", name, true)
}

func (b *Builder) declare(op, name string, actor bool) (*Participant, error) {
	if err := b.base.Reject(op, b.base.Check().NotBlank("name", name)); err != nil {
		return nil, err
	}
	p := &Participant{Element: domain.Element{ID: b.base.NextID()}, name: name, actor: actor}
	b.base.Own(p)
	b.base.Append(p)
	return p, nil
}

// Box groups the participants declared by body under a label.
// Only participants and actors may be declared inside a box.
func (b *Builder) Box(label string, body func(*Builder) error) error {
	if err := b.base.Reject("box", b.outsideBox()); err != nil {
		return err
	}
	return b.base.Scope(boxBlock, label, func() error {
		b.inBox = true
		defer func() { b.inBox = false }()
		return call(b, body)
	})
}

// AddMessage sends a message between two participants.
func (b *Builder) AddMessage(from, to *Participant, text string, arrow Arrow, act Activation) error {
	c := b.base.Check()
	err := validate.First(
		b.outsideBox(),
		b.base.Owned("from", from),
		b.base.Owned("to", to),
		validate.Supported(c, arrows, "arrow", arrow),
		validate.Supported(c, activations, "activation", act),
	)
	if err := b.base.Reject("add message", err); err != nil {
		return err
	}
	b.base.Append(&message{
		Element:    domain.Element{ID: b.base.NextID()},
		from:       from,
		to:         to,
		text:       text,
		arrow:      arrow,
		activation: act,
	})
	return nil
}

// AddNote attaches a note to one participant, or spans up to two with Over.
func (b *Builder) AddNote(pos NotePosition, text string, over ...*Participant) error {
	c := b.base.Check()
	limit := 1
	if pos == Over {
		limit = 2
	}
	refs := make([]domain.Ref, len(over))
	for i, p := range over {
		refs[i] = p
	}
	err := validate.First(
		b.outsideBox(),
		validate.Supported(c, positions, "position", pos),
		c.NotBlank("text", text),
		c.NotEmpty("participants", len(over)),
		c.InRange("participants", float64(len(over)), 1, float64(limit)),
		b.base.Owned("participants", refs...),
	)
	if err := b.base.Reject("add note", err); err != nil {
		return err
	}
	b.base.Append(&note{
		Element:  domain.Element{ID: b.base.NextID()},
		position: pos,
		text:     text,
		over:     append([]*Participant(nil), over...),
	})
	return nil
}

// Activate starts an activation bar on p.
func (b *Builder) Activate(p *Participant) error {
	return b.activation("activate", p, true)
}

// Deactivate ends the innermost activation bar on p.
func (b *Builder) Deactivate(p *Participant) error {
	return b.activation("deactivate", p, false)
}

func (b *Builder) activation(op string, p *Participant, up bool) error {
	err := validate.First(b.outsideBox(), b.base.Owned("participant", p))
	if err := b.base.Reject(op, err); err != nil {
		return err
	}
	b.base.Append(&activation{Element: domain.Element{ID: b.base.NextID()}, on: p, up: up})
	return nil
}

// Autonumber numbers every following message.
func (b *Builder) Autonumber() error {
	if err := b.base.Reject("autonumber", b.outsideBox()); err != nil {
		return err
	}
	b.base.Append(&domain.Text{Element: domain.Element{ID: b.base.NextID()}, Value: "autonumber"})
	return nil
}

// Loop repeats body while label holds.
func (b *Builder) Loop(label string, body func(*Builder) error) error {
	return b.scope("loop", loopBlock, label, body)
}

// Optional runs body only if label holds.
func (b *Builder) Optional(label string, body func(*Builder) error) error {
	return b.scope("opt", optBlock, label, body)
}

// Break ends the enclosing flow after body.
func (b *Builder) Break(label string, body func(*Builder) error) error {
	return b.scope("break", breakBlock, label, body)
}

// Rect highlights body with a background color such as "rgb(191, 223, 255)".
func (b *Builder) Rect(color string, body func(*Builder) error) error {
	if err := b.base.Reject("rect", b.base.Check().NotBlank("color", color)); err != nil {
		return err
	}
	return b.scope("rect", rectBlock, color, body)
}

// Alternatives appends an alt block with one else arm per extra branch.
// No branches append nothing.
func (b *Builder) Alternatives(branches ...Branch) error {
	return b.branches("alt", altBlock, "else", branches)
}

// Parallel appends a par block with one and arm per extra branch.
func (b *Builder) Parallel(branches ...Branch) error {
	return b.branches("par", parBlock, "and", branches)
}

// Critical appends a critical region with optional fallback options.
func (b *Builder) Critical(description string, body func(*Builder) error, options ...Branch) error {
	all := append([]Branch{{Text: description, Body: body}}, options...)
	return b.branches("critical", criticalBlock, "option", all)
}

// Comment appends a "%%" comment line.
func (b *Builder) Comment(text string) error {
	return b.base.Comment(text)
}

// Build renders the diagram.
func (b *Builder) Build() (string, error) {
	return b.base.Build("sequenceDiagram")
}

func (b *Builder) scope(op string, block *domain.Block, text string, body func(*Builder) error) error {
	if err := b.base.Reject(op, b.outsideBox()); err != nil {
		return err
	}
	return b.base.Scope(block, text, func() error { return call(b, body) })
}

func (b *Builder) branches(op string, block *domain.Block, keyword string, branches []Branch) error {
	if err := b.base.Reject(op, b.outsideBox()); err != nil {
		return err
	}
	arms := make([]diagram.Branch, len(branches))
	for i, br := range branches {
		arms[i] = diagram.Branch{Text: br.Text, Body: func() error { return call(b, br.Body) }}
	}
	return b.base.Branches(block, keyword, arms)
}

func (b *Builder) outsideBox() error {
	return b.base.Check().Allowed(!b.inBox, "box", "only participants can be declared inside a box")
}

func call(b *Builder, body func(*Builder) error) error {
	if body == nil {
		return nil
	}
	return body(b)
}
