package render

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/aretw0/mermaidkit/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	loop     = &domain.Block{Name: "loop", Open: "loop", Close: "end"}
	alt      = &domain.Block{Name: "alt", Open: "alt", Close: "end"}
	state    = &domain.Block{Name: "state", Open: "state", Suffix: "{", Close: "}"}
	indented = &domain.Block{Name: "node"}
)

func leaf(s string) domain.Item {
	return &domain.Text{Value: s}
}

type hidden struct{ domain.Element }

func (hidden) Line() (string, bool) { return "never", false }

func TestBody_EmptyDiagramIsHeaderOnly(t *testing.T) {
	assert.Equal(t, "stateDiagram-v2", Body("stateDiagram-v2", nil))
}

func TestBody_LeavesKeepInsertionOrder(t *testing.T) {
	out := Body("flowchart TD", []domain.Item{leaf("A --> B"), leaf("B --> C")})
	assert.Equal(t, "flowchart TD\n    A --> B\n    B --> C", out)
}

func TestBody_NestedBlocksCloseInReverseOrder(t *testing.T) {
	items := []domain.Item{
		domain.Open{Block: state, Text: "outer"},
		domain.Open{Block: loop, Text: "inner"},
		leaf("x"),
		domain.Close{},
		domain.Close{},
	}
	want := strings.Join([]string{
		"sequenceDiagram",
		"    state outer {",
		"        loop inner",
		"            x",
		"        end",
		"    }",
	}, "\n")
	assert.Equal(t, want, Body("sequenceDiagram", items))
}

func TestBody_ContinuationsShareOpenDepth(t *testing.T) {
	items := []domain.Item{
		domain.Open{Block: alt, Text: "one"},
		leaf("a"),
		domain.Continue{Keyword: "else", Text: "two"},
		leaf("b"),
		domain.Continue{Keyword: "else", Text: "three"},
		leaf("c"),
		domain.Close{},
	}
	want := strings.Join([]string{
		"sequenceDiagram",
		"    alt one",
		"        a",
		"    else two",
		"        b",
		"    else three",
		"        c",
		"    end",
	}, "\n")
	assert.Equal(t, want, Body("sequenceDiagram", items))
}

func TestBody_BareSeparatorAndIndentOnlyBlocks(t *testing.T) {
	items := []domain.Item{
		domain.Open{Block: state, Text: "s0"},
		leaf("a"),
		domain.Continue{Keyword: "--"},
		leaf("b"),
		domain.Close{},
		domain.Open{Block: indented, Text: "root((r))"},
		leaf("child"),
		domain.Close{},
		leaf("after"),
	}
	want := strings.Join([]string{
		"h",
		"    state s0 {",
		"        a",
		"    --",
		"        b",
		"    }",
		"    root((r))",
		"        child",
		"    after",
	}, "\n")
	assert.Equal(t, want, Body("h", items))
}

func TestBody_ElidedLeaf(t *testing.T) {
	out := Body("classDiagram", []domain.Item{hidden{}, leaf("A <|-- B")})
	assert.Equal(t, "classDiagram\n    A <|-- B", out)
}

func TestBody_PanicsOnUnbalancedItems(t *testing.T) {
	assert.Panics(t, func() { Body("h", []domain.Item{domain.Close{}}) })
	assert.Panics(t, func() { Body("h", []domain.Item{domain.Continue{Keyword: "else"}}) })
	assert.Panics(t, func() { Body("h", []domain.Item{domain.Open{Block: loop}}) })
}

// randomItems produces a balanced random sequence of blocks and leaves.
func randomItems(r *rand.Rand, n int) []domain.Item {
	var items []domain.Item
	depth := 0
	for range n {
		switch op := r.Intn(4); {
		case op == 0:
			items = append(items, domain.Open{Block: alt, Text: "c"})
			depth++
		case op == 1 && depth > 0:
			items = append(items, domain.Continue{Keyword: "else"})
		case op == 2 && depth > 0:
			items = append(items, domain.Close{})
			depth--
		default:
			items = append(items, leaf("x"))
		}
	}
	for ; depth > 0; depth-- {
		items = append(items, domain.Close{})
	}
	return items
}

func TestBody_BalanceAndIndentationInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for range 200 {
		out := Body("h", randomItems(r, 60))
		lines := strings.Split(out, "\n")
		require.Equal(t, "h", lines[0])

		open := 0
		for _, line := range lines[1:] {
			body := strings.TrimLeft(line, " ")
			indent := (len(line) - len(body)) / len(Indent)
			switch body {
			case "alt c":
				assert.Equal(t, open+1, indent, "open line depth")
				open++
			case "else":
				assert.Equal(t, open, indent, "continuation depth")
			case "end":
				open--
				assert.Equal(t, open+1, indent, "close line depth")
			default:
				assert.Equal(t, open+1, indent, "leaf depth")
			}
			require.GreaterOrEqual(t, open, 0)
		}
		assert.Zero(t, open)
	}
}

func TestDocument_PrependsFrontMatter(t *testing.T) {
	out, err := Document(FrontMatter{Title: "Flow"}, "pie", nil)
	require.NoError(t, err)
	assert.Equal(t, "---\ntitle: Flow\n---\npie", out)

	out, err = Document(FrontMatter{}, "pie", nil)
	require.NoError(t, err)
	assert.Equal(t, "pie", out)
}
