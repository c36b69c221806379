package render

import (
	"fmt"
	"strings"

	"github.com/aretw0/mermaidkit/pkg/domain"
)

// Indent is one level of nesting.
const Indent = "    "

// Body renders the diagram header followed by its items.
// The header sits at column zero and the items start one level in.
//
// Body panics if the items are not balanced: a Continue or Close without an
// open block, or a block left open at the end. Builders never produce such
// sequences.
func Body(header string, items []domain.Item) string {
	m := machine{}
	m.emit(0, header)
	for _, it := range items {
		m.step(it)
	}
	if len(m.stack) > 0 {
		panic(fmt.Sprintf("render: %d block(s) left open, innermost %q", len(m.stack), m.top().Name))
	}
	return strings.TrimSuffix(m.buf.String(), "\n")
}

// Document renders the optional front matter followed by the body.
func Document(front FrontMatter, header string, items []domain.Item) (string, error) {
	prologue, err := front.Render()
	if err != nil {
		return "", err
	}
	return prologue + Body(header, items), nil
}

type machine struct {
	buf   strings.Builder
	stack []*domain.Block
}

func (m *machine) step(it domain.Item) {
	switch v := it.(type) {
	case domain.Leaf:
		if line, ok := v.Line(); ok {
			m.emit(m.depth(), line)
		}
	case domain.Open:
		m.emit(m.depth(), v.Line())
		m.push(v.Block)
	case domain.Continue:
		b := m.pop("continue")
		m.emit(m.depth(), v.Line())
		m.push(b)
	case domain.Close:
		b := m.pop("close")
		if b.Close != "" {
			m.emit(m.depth(), b.Close)
		}
	default:
		panic(fmt.Sprintf("render: unknown item %T", it))
	}
}

// depth is the indentation level of the next line: the body baseline plus
// one level per open block.
func (m *machine) depth() int {
	return len(m.stack) + 1
}

func (m *machine) emit(depth int, line string) {
	for range depth {
		m.buf.WriteString(Indent)
	}
	m.buf.WriteString(line)
	m.buf.WriteByte('\n')
}

func (m *machine) push(b *domain.Block) {
	m.stack = append(m.stack, b)
}

func (m *machine) pop(op string) *domain.Block {
	if len(m.stack) == 0 {
		panic("render: " + op + " without an open block")
	}
	b := m.top()
	m.stack = m.stack[:len(m.stack)-1]
	return b
}

func (m *machine) top() *domain.Block {
	return m.stack[len(m.stack)-1]
}
