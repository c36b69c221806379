package document

import (
	"fmt"

	"github.com/aretw0/mermaidkit/internal/dto"
	"github.com/aretw0/mermaidkit/pkg/diagram"
	"github.com/aretw0/mermaidkit/pkg/domain"
	"github.com/aretw0/mermaidkit/pkg/sequence"
)

type sequenceDoc struct {
	refs map[string]*sequence.Participant
	errs collector
}

func buildSequence(body map[string]any, opts []diagram.Option) (string, error) {
	var def dto.Sequence
	if err := decode(body, &def); err != nil {
		return "", err
	}

	b := sequence.New(opts...)
	d := &sequenceDoc{refs: map[string]*sequence.Participant{}}
	for i, p := range def.Participants {
		d.errs.add(fmt.Sprintf("participants[%d]", i), d.participant(b, p))
	}
	if def.Autonumber {
		d.errs.add("autonumber", b.Autonumber())
	}
	d.steps(b, "steps", def.Steps)

	out, err := b.Build()
	if err != nil {
		return "", err
	}
	return out, d.errs.err
}

func (d *sequenceDoc) participant(b *sequence.Builder, p dto.Participant) error {
	if p.ID == "" {
		p.ID = p.Name
	}
	if _, taken := d.refs[p.ID]; taken {
		return domain.NewError(domain.CodeDuplicateValue, "id", "%q is already defined", p.ID)
	}
	add := b.AddParticipant
	if p.Actor {
		add = b.AddActor
	}
	ref, err := add(p.Name)
	if err != nil {
		return err
	}
	d.refs[p.ID] = ref
	return nil
}

func (d *sequenceDoc) steps(b *sequence.Builder, path string, steps []dto.SequenceStep) {
	for i, s := range steps {
		p := fmt.Sprintf("%s[%d]", path, i)
		d.errs.add(p, d.step(b, p, s))
	}
}

func (d *sequenceDoc) step(b *sequence.Builder, path string, s dto.SequenceStep) error {
	switch {
	case s.Message != nil:
		return d.message(b, *s.Message)
	case s.Note != nil:
		return d.note(b, *s.Note)
	case s.Activate != "":
		p, err := d.ref(s.Activate)
		if err != nil {
			return err
		}
		return b.Activate(p)
	case s.Deactivate != "":
		p, err := d.ref(s.Deactivate)
		if err != nil {
			return err
		}
		return b.Deactivate(p)
	case s.Loop != nil:
		return b.Loop(s.Loop.Label, d.body(path+".loop", s.Loop.Steps))
	case s.Opt != nil:
		return b.Optional(s.Opt.Label, d.body(path+".opt", s.Opt.Steps))
	case s.Break != nil:
		return b.Break(s.Break.Label, d.body(path+".break", s.Break.Steps))
	case s.Alt != nil:
		return b.Alternatives(d.branches(path+".alt", s.Alt)...)
	case s.Par != nil:
		return b.Parallel(d.branches(path+".par", s.Par)...)
	default:
		return fmt.Errorf("%w: empty step", ErrDecode)
	}
}

// body runs nested steps, recording their failures without failing the
// enclosing block.
func (d *sequenceDoc) body(path string, steps []dto.SequenceStep) func(*sequence.Builder) error {
	return func(b *sequence.Builder) error {
		d.steps(b, path, steps)
		return nil
	}
}

func (d *sequenceDoc) branches(path string, blocks []dto.SequenceBlock) []sequence.Branch {
	branches := make([]sequence.Branch, len(blocks))
	for i, blk := range blocks {
		branches[i] = sequence.Branch{Text: blk.Label, Body: d.body(fmt.Sprintf("%s[%d]", path, i), blk.Steps)}
	}
	return branches
}

func (d *sequenceDoc) message(b *sequence.Builder, m dto.Message) error {
	from, err := d.ref(m.From)
	if err != nil {
		return err
	}
	to, err := d.ref(m.To)
	if err != nil {
		return err
	}
	arrow, err := lookup("arrow", seqArrows, m.Arrow, sequence.SolidArrow)
	if err != nil {
		return err
	}
	act, err := lookup("activation", seqActivations, m.Activation, sequence.NoActivation)
	if err != nil {
		return err
	}
	return b.AddMessage(from, to, m.Text, arrow, act)
}

func (d *sequenceDoc) note(b *sequence.Builder, n dto.Note) error {
	pos, err := lookup("position", seqPositions, n.Position, sequence.RightOf)
	if err != nil {
		return err
	}
	over := make([]*sequence.Participant, 0, len(n.Over))
	for _, id := range n.Over {
		p, err := d.ref(id)
		if err != nil {
			return err
		}
		over = append(over, p)
	}
	return b.AddNote(pos, n.Text, over...)
}

func (d *sequenceDoc) ref(id string) (*sequence.Participant, error) {
	p, ok := d.refs[id]
	if !ok {
		return nil, unknown(id)
	}
	return p, nil
}
