package sequence

import (
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/mermaidkit/pkg/diagram"
	"github.com/aretw0/mermaidkit/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(s ...string) string { return strings.Join(s, "\n") }

func must[T any](t *testing.T) func(T, error) T {
	return func(v T, err error) T {
		t.Helper()
		require.NoError(t, err)
		return v
	}
}

func TestBuilder_Empty(t *testing.T) {
	out, err := New().Build()
	require.NoError(t, err)
	assert.Equal(t, "sequenceDiagram", out)
}

func TestBuilder_Messages(t *testing.T) {
	b := New()
	p := must[*Participant](t)
	alice := p(b.AddActor("Alice"))
	bob := p(b.AddParticipant("Bob"))

	require.NoError(t, b.Autonumber())
	require.NoError(t, b.AddMessage(alice, bob, "Hello", SolidArrow, ActivateReceiver))
	require.NoError(t, b.AddMessage(bob, alice, "Hi", DottedArrow, DeactivateSender))
	require.NoError(t, b.AddMessage(alice, bob, "", SolidOpen, NoActivation))
	require.NoError(t, b.AddNote(Over, "handshake", alice, bob))
	require.NoError(t, b.Activate(bob))
	require.NoError(t, b.Deactivate(bob))

	out, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, lines(
		"sequenceDiagram",
		"    actor p0 as Alice",
		"    participant p1 as Bob",
		"    autonumber",
		"    p0->>+p1: Hello",
		"    p1-->>-p0: Hi",
		"    p0-)p1:",
		"    Note over p0,p1: handshake",
		"    activate p1",
		"    deactivate p1",
	), out)
}

func TestBuilder_NestedBlocks(t *testing.T) {
	b := New()
	p := must[*Participant](t)
	a := p(b.AddParticipant("A"))
	c := p(b.AddParticipant("C"))

	err := b.Loop("every minute", func(b *Builder) error {
		return b.Alternatives(
			Branch{Text: "ok", Body: func(b *Builder) error {
				return b.AddMessage(a, c, "ping", SolidArrow, NoActivation)
			}},
			Branch{Text: "timeout", Body: func(b *Builder) error {
				return b.Break("give up", nil)
			}},
		)
	})
	require.NoError(t, err)

	out, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, lines(
		"sequenceDiagram",
		"    participant p0 as A",
		"    participant p1 as C",
		"    loop every minute",
		"        alt ok",
		"            p0->>p1: ping",
		"        else timeout",
		"            break give up",
		"            end",
		"        end",
		"    end",
	), out)
}

func TestBuilder_BranchElision(t *testing.T) {
	b := New()
	require.NoError(t, b.Alternatives())
	require.NoError(t, b.Parallel(Branch{Text: "alone"}))

	out, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "sequenceDiagram\n    par alone\n    end", out)
}

func TestBuilder_CriticalAndRect(t *testing.T) {
	b := New()
	db := must[*Participant](t)(b.AddParticipant("DB"))

	err := b.Rect("rgb(200, 255, 200)", func(b *Builder) error {
		return b.Critical("connect", func(b *Builder) error {
			return b.AddNote(RightOf, "open pool", db)
		}, Branch{Text: "network down", Body: func(b *Builder) error {
			return b.Optional("retry", nil)
		}})
	})
	require.NoError(t, err)

	out, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, lines(
		"sequenceDiagram",
		"    participant p0 as DB",
		"    rect rgb(200, 255, 200)",
		"        critical connect",
		"            Note right of p0: open pool",
		"        option network down",
		"            opt retry",
		"            end",
		"        end",
		"    end",
	), out)
}

func TestBuilder_Box(t *testing.T) {
	b := New()
	var inner *Participant
	err := b.Box("Backend", func(b *Builder) error {
		var err error
		inner, err = b.AddParticipant("API")
		return err
	})
	require.NoError(t, err)

	err = b.Box("Bad", func(b *Builder) error {
		p, err := b.AddParticipant("X")
		if err != nil {
			return err
		}
		return b.AddMessage(p, inner, "nope", SolidArrow, NoActivation)
	})
	require.ErrorIs(t, err, domain.ErrInvalidOperation)
	assert.Equal(t, `box "Bad": INVALID_OPERATION: box: only participants can be declared inside a box`, err.Error())

	out, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, lines(
		"sequenceDiagram",
		"    box Backend",
		"        participant p0 as API",
		"    end",
	), out)

	require.NoError(t, b.AddMessage(inner, inner, "self", SolidLine, NoActivation), "box state resets after the body")
}

func TestBuilder_Rollback(t *testing.T) {
	b := New()
	a := must[*Participant](t)(b.AddParticipant("A"))
	boom := errors.New("boom")

	var lost *Participant
	err := b.Parallel(
		Branch{Text: "one", Body: func(b *Builder) error {
			var err error
			lost, err = b.AddParticipant("Lost")
			return err
		}},
		Branch{Text: "two", Body: func(*Builder) error { return boom }},
	)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, `par "two": boom`, err.Error())
	assert.ErrorIs(t, b.AddMessage(a, lost, "x", SolidArrow, NoActivation), domain.ErrForeignItem)

	out, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "sequenceDiagram\n    participant p0 as A", out)
}

func TestBuilder_NoteValidation(t *testing.T) {
	b := New()
	p := must[*Participant](t)
	a := p(b.AddParticipant("A"))
	c := p(b.AddParticipant("C"))
	d := p(b.AddParticipant("D"))

	tests := []struct {
		name string
		err  error
		code domain.Code
	}{
		{"no participants", b.AddNote(Over, "x"), domain.CodeEmptyCollection},
		{"three over", b.AddNote(Over, "x", a, c, d), domain.CodeOutOfRange},
		{"two right of", b.AddNote(RightOf, "x", a, c), domain.CodeOutOfRange},
		{"blank", b.AddNote(LeftOf, " ", a), domain.CodeWhiteSpace},
		{"foreign", b.AddNote(LeftOf, "x", &Participant{}), domain.CodeForeignItem},
		{"bad position", b.AddNote(NotePosition(9), "x", a), domain.CodeInvalidOperation},
		{"bad arrow", b.AddMessage(a, c, "x", Arrow(42), NoActivation), domain.CodeInvalidOperation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, domain.CodeOf(tt.err))
		})
	}
}

func TestBuilder_PermissiveSkipsChecks(t *testing.T) {
	b := New(diagram.Permissive())
	a := must[*Participant](t)(b.AddParticipant("A"))
	require.NoError(t, b.AddNote(Over, "wide", a, a, a))
	require.NoError(t, b.Box("B", func(b *Builder) error { return b.Autonumber() }))

	out, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, lines(
		"sequenceDiagram",
		"    participant p0 as A",
		"    Note over p0,p0,p0: wide",
		"    box B",
		"        autonumber",
		"    end",
	), out)
}

func TestBuilder_PermissiveRejectsNilParticipants(t *testing.T) {
	b := New(diagram.Permissive())
	a := must[*Participant](t)(b.AddParticipant("A"))
	assert.ErrorIs(t, b.AddMessage(a, nil, "x", SolidArrow, NoActivation), domain.ErrInvalidOperation)
	assert.ErrorIs(t, b.AddNote(Over, "x", a, nil), domain.ErrInvalidOperation)
	assert.ErrorIs(t, b.Activate(nil), domain.ErrInvalidOperation)

	out, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, lines("sequenceDiagram", "    participant p0 as A"), out)
}
