package document

import (
	"fmt"

	"github.com/aretw0/mermaidkit/internal/dto"
	"github.com/aretw0/mermaidkit/pkg/diagram"
	"github.com/aretw0/mermaidkit/pkg/domain"
	"github.com/aretw0/mermaidkit/pkg/state"
)

// terminal is the document spelling of the start and end pseudo state.
const terminal = "[*]"

type stateDoc struct {
	refs map[string]*state.State
	errs collector
}

func buildState(body map[string]any, opts []diagram.Option) (string, error) {
	var def dto.State
	if err := decode(body, &def); err != nil {
		return "", err
	}

	b := state.New(opts...)
	d := &stateDoc{refs: map[string]*state.State{}}
	if def.Direction != "" {
		dir, err := lookup("direction", stateDirections, def.Direction, state.TopToBottom)
		if err == nil {
			err = b.SetDirection(dir)
		}
		d.errs.add("direction", err)
	}
	d.states(b, "states", def.States)
	for i, t := range def.Transitions {
		d.errs.add(fmt.Sprintf("transitions[%d]", i), d.transition(b, t))
	}

	out, err := b.Build()
	if err != nil {
		return "", err
	}
	return out, d.errs.err
}

func (d *stateDoc) states(b *state.Builder, path string, decls []dto.StateDecl) {
	for i, s := range decls {
		p := fmt.Sprintf("%s[%d]", path, i)
		d.errs.add(p, d.state(b, p, s))
	}
}

func (d *stateDoc) state(b *state.Builder, path string, s dto.StateDecl) error {
	if s.ID == "" || s.ID == terminal {
		return domain.NewError(domain.CodeWhiteSpace, "id", "states need an id")
	}
	if _, taken := d.refs[s.ID]; taken {
		return domain.NewError(domain.CodeDuplicateValue, "id", "%q is already defined", s.ID)
	}

	var (
		ref *state.State
		err error
	)
	switch {
	case s.Pseudo != "":
		kind, lerr := lookup("pseudo", statePseudo, s.Pseudo, state.Choice)
		if lerr != nil {
			return lerr
		}
		ref, err = b.AddPseudoState(kind)
	case len(s.States) > 0:
		ref, err = b.AddCompositeState(stateText(s), func(inner *state.Builder) error {
			d.states(inner, path+".states", s.States)
			return nil
		})
	default:
		ref, err = b.AddState(stateText(s))
	}
	if err != nil {
		return err
	}
	d.refs[s.ID] = ref

	if s.Note != "" {
		d.errs.add(path+".note", b.AddNote(ref, state.RightOf, s.Note))
	}
	return nil
}

func (d *stateDoc) transition(b *state.Builder, t dto.Transition) error {
	switch {
	case t.From == terminal && t.To == terminal:
		return domain.NewError(domain.CodeInvalidConfiguration, "to", "a transition cannot both start and end at %s", terminal)
	case t.From == terminal:
		to, err := d.ref(t.To)
		if err != nil {
			return err
		}
		return b.AddStartTransition(to)
	case t.To == terminal:
		from, err := d.ref(t.From)
		if err != nil {
			return err
		}
		return b.AddEndTransition(from)
	}
	from, err := d.ref(t.From)
	if err != nil {
		return err
	}
	to, err := d.ref(t.To)
	if err != nil {
		return err
	}
	return b.AddTransition(from, to, t.Label)
}

func (d *stateDoc) ref(id string) (*state.State, error) {
	s, ok := d.refs[id]
	if !ok {
		return nil, unknown(id)
	}
	return s, nil
}

// stateText defaults the description of a state to its id.
func stateText(s dto.StateDecl) string {
	if s.Text == "" {
		return s.ID
	}
	return s.Text
}
