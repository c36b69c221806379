package state

import (
	"github.com/aretw0/mermaidkit/pkg/diagram"
	"github.com/aretw0/mermaidkit/pkg/domain"
	"github.com/aretw0/mermaidkit/pkg/validate"
)

// Builder accumulates the statements of a state diagram. Composite state
// bodies run against the same builder.
type Builder struct {
	base *diagram.Base
}

// New creates an empty state diagram.
func New(opts ...diagram.Option) *Builder {
	return &Builder{base: diagram.NewBase("state", opts...)}
}

// SetDirection appends a direction statement for the current scope.
func (b *Builder) SetDirection(dir Direction) error {
	err := validate.Supported(b.base.Check(), directions, "direction", dir)
	if err := b.base.Reject("set direction", err); err != nil {
		return err
	}
	b.base.Append(&direction{Element: domain.Element{ID: b.base.NextID()}, dir: dir})
	return nil
}

// AddState declares a simple state.
func (b *Builder) AddState(text string) (*State, error) {
	if err := b.base.Reject("add state", b.base.Check().NotBlank("text", text)); err != nil {
		return nil, err
	}
	return b.declare(text, nil), nil
}

// AddPseudoState declares a fork, join or choice state.
func (b *Builder) AddPseudoState(kind PseudoKind) (*State, error) {
	err := validate.Supported(b.base.Check(), pseudoKinds, "kind", kind)
	if err := b.base.Reject("add pseudo state", err); err != nil {
		return nil, err
	}
	return b.declare("", &kind), nil
}

// AddCompositeState declares a state whose inner states are added by body.
func (b *Builder) AddCompositeState(text string, body func(*Builder) error) (*State, error) {
	var regions []func(*Builder) error
	if body != nil {
		regions = append(regions, body)
	}
	return b.composite("add composite state", text, regions)
}

// AddConcurrentState declares a composite state with one concurrent region
// per body. Regions are separated by "--".
func (b *Builder) AddConcurrentState(text string, regions ...func(*Builder) error) (*State, error) {
	return b.composite("add concurrent state", text, regions)
}

func (b *Builder) composite(op, text string, regions []func(*Builder) error) (*State, error) {
	if err := b.base.Reject(op, b.base.Check().NotBlank("text", text)); err != nil {
		return nil, err
	}

	mark := b.base.Mark()
	s := b.declare(text, nil)
	arms := make([]diagram.Branch, len(regions))
	for i, region := range regions {
		arms[i] = diagram.Branch{Body: func() error {
			if region == nil {
				return nil
			}
			return region(b)
		}}
	}
	if len(arms) > 0 {
		arms[0].Text = s.Key()
	}
	if err := b.base.Branches(compositeBlock, "--", arms); err != nil {
		b.base.Rollback(mark)
		return nil, err
	}
	return s, nil
}

func (b *Builder) declare(text string, pseudo *PseudoKind) *State {
	s := &State{Element: domain.Element{ID: b.base.NextID()}, text: text, pseudo: pseudo}
	b.base.Own(s)
	b.base.Append(s)
	return s
}

// AddTransition links two states with an optional label.
func (b *Builder) AddTransition(from, to *State, label string) error {
	err := validate.First(b.base.Owned("from", from), b.base.Owned("to", to))
	return b.transition("add transition", err, from, to, label)
}

// AddStartTransition links the start pseudo state of the current scope to s.
func (b *Builder) AddStartTransition(to *State) error {
	return b.transition("add start transition", b.base.Owned("to", to), nil, to, "")
}

// AddEndTransition links s to the end pseudo state of the current scope.
func (b *Builder) AddEndTransition(from *State) error {
	return b.transition("add end transition", b.base.Owned("from", from), from, nil, "")
}

func (b *Builder) transition(op string, err error, from, to *State, label string) error {
	if err := b.base.Reject(op, err); err != nil {
		return err
	}
	b.base.Append(&transition{Element: domain.Element{ID: b.base.NextID()}, from: from, to: to, label: label})
	return nil
}

// AddNote attaches a note to s. A single line renders inline; several
// lines use a note block.
func (b *Builder) AddNote(s *State, side Side, lines ...string) error {
	c := b.base.Check()
	errs := []error{
		b.base.Owned("state", s),
		validate.Supported(c, sides, "side", side),
		c.NotEmpty("lines", len(lines)),
	}
	for _, line := range lines {
		errs = append(errs, c.NotBlank("lines", line))
	}
	if err := b.base.Reject("add note", validate.First(errs...)); err != nil {
		return err
	}

	if len(lines) == 1 {
		b.base.Append(&note{Element: domain.Element{ID: b.base.NextID()}, on: s, side: side, text: lines[0]})
		return nil
	}
	return b.base.Scope(noteBlock, sides.MustLookup(side)+" "+s.Key(), func() error {
		for _, line := range lines {
			b.base.Append(&domain.Text{Element: domain.Element{ID: b.base.NextID()}, Value: line})
		}
		return nil
	})
}

// Comment appends a "%%" comment line.
func (b *Builder) Comment(text string) error {
	return b.base.Comment(text)
}

// Build renders the diagram.
func (b *Builder) Build() (string, error) {
	return b.base.Build("stateDiagram-v2")
}
