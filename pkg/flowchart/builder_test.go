package flowchart

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

func TestBuilder_Empty(t *testing.T) {
	out, err := New(LeftToRight).Build()
	require.NoError(t, err)
	assert.Equal(t, "flowchart LR", out)
}

func TestBuilder_Chain(t *testing.T) {
	b := New(TopDown)
	a, err := b.AddNode("Start", Circle)
	require.NoError(t, err)
	mid, err := b.AddNode("Check", Rhombus)
	require.NoError(t, err)
	end, err := b.AddNode("Done", Stadium)
	require.NoError(t, err)

	require.NoError(t, b.AddEdge(a, mid, EdgeOptions{}))
	require.NoError(t, b.AddEdge(mid, end, EdgeOptions{Label: "ok", Style: Thick}))

	out, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, lines(
		"flowchart TD",
		`    n0(("Start"))`,
		`    n1{"Check"}`,
		`    n2(["Done"])`,
		"    n0 --> n1",
		`    n1 ==>|"ok"| n2`,
	), out)
}

func TestBuilder_Subgraph(t *testing.T) {
	b := New(TopDown, diagram.WithTitle("Pipeline"))
	outside, err := b.AddNode("Client", Rectangle)
	require.NoError(t, err)

	var inner *Node
	sg, err := b.AddSubgraph("Backend", func(b *Builder) error {
		if err := b.SetDirection(LeftToRight); err != nil {
			return err
		}
		var err error
		inner, err = b.AddNode("API", Rounded)
		if err != nil {
			return err
		}
		// Subgraph bodies share the outer registry.
		return b.AddEdge(outside, inner, EdgeOptions{Style: Dotted})
	})
	require.NoError(t, err)
	require.NoError(t, b.AddEdge(outside, sg, EdgeOptions{Head: CrossHead, Length: 2}))

	out, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, lines(
		"---",
		"title: Pipeline",
		"---",
		"flowchart TD",
		`    n0["Client"]`,
		`    subgraph n1 ["Backend"]`,
		"        direction LR",
		`        n3("API")`,
		"        n0 -.-> n3",
		"    end",
		"    n0 ---x n1",
	), out)
	assert.True(t, sg.IsSubgraph())
	assert.Equal(t, "API", inner.Text())
}

func TestBuilder_SubgraphRollback(t *testing.T) {
	b := New(TopDown)
	var inner *Node
	_, err := b.AddSubgraph("Broken", func(b *Builder) error {
		inner, _ = b.AddNode("kept?", Rectangle)
		_, err := b.AddNode(" ", Rectangle)
		return err
	})
	require.ErrorIs(t, err, domain.ErrWhiteSpace)

	other, _ := b.AddNode("x", Rectangle)
	assert.ErrorIs(t, b.AddEdge(inner, other, EdgeOptions{}), domain.ErrForeignItem)

	out, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "flowchart TD\n    n2[\"x\"]", out)
}

func TestLinkToken(t *testing.T) {
	tests := []struct {
		opts EdgeOptions
		want string
	}{
		{EdgeOptions{}, "-->"},
		{EdgeOptions{Head: NoHead}, "---"},
		{EdgeOptions{Head: CircleHead}, "--o"},
		{EdgeOptions{Length: 3}, "---->"},
		{EdgeOptions{Style: Dotted}, "-.->"},
		{EdgeOptions{Style: Dotted, Head: NoHead}, "-.-"},
		{EdgeOptions{Style: Dotted, Length: 2}, "-..->"},
		{EdgeOptions{Style: Thick}, "==>"},
		{EdgeOptions{Style: Thick, Head: NoHead}, "==="},
		{EdgeOptions{Style: Invisible}, "~~~"},
		{EdgeOptions{Bidirectional: true}, "<-->"},
		{EdgeOptions{Bidirectional: true, Head: CircleHead}, "o--o"},
		{EdgeOptions{Bidirectional: true, Style: Dotted, Head: CrossHead}, "x-.-x"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, linkToken(tt.opts), "%+v", tt.opts)
	}
}

func TestBuilder_Validation(t *testing.T) {
	b := New(TopDown)
	a, _ := b.AddNode("a", Rectangle)
	c, _ := b.AddNode("c", Rectangle)
	foreign, _ := New(TopDown).AddNode("f", Rectangle)

	tests := []struct {
		name string
		err  error
		code domain.Code
	}{
		{"blank text", second(b.AddNode("", Rectangle)), domain.CodeWhiteSpace},
		{"unknown shape", second(b.AddNode("x", Shape(99))), domain.CodeInvalidOperation},
		{"foreign", b.AddEdge(a, foreign, EdgeOptions{}), domain.CodeForeignItem},
		{"negative length", b.AddEdge(a, c, EdgeOptions{Length: -1}), domain.CodeStrictlyNegative},
		{"headless bidirectional", b.AddEdge(a, c, EdgeOptions{Head: NoHead, Bidirectional: true}), domain.CodeInvalidConfiguration},
		{"labelled invisible", b.AddEdge(a, c, EdgeOptions{Style: Invisible, Label: "x"}), domain.CodeInvalidConfiguration},
		{"direction at top level", b.SetDirection(LeftToRight), domain.CodeInvalidOperation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, domain.CodeOf(tt.err))
		})
	}

	out, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "flowchart TD\n    n0[\"a\"]\n    n1[\"c\"]", out, "rejected calls leave no trace")
}

func TestBuilder_PermissiveAcceptsForeignReferences(t *testing.T) {
	b := New(TopDown, diagram.Permissive())
	a, _ := b.AddNode("", Rectangle)
	foreign, _ := New(TopDown).AddNode("f", Rectangle)

	require.NoError(t, b.AddEdge(a, foreign, EdgeOptions{}))
	out, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "flowchart TD\n    n0[\"\"]\n    n0 --> n0", out)
}

func TestBuilder_BodyErrorIsReturned(t *testing.T) {
	boom := errors.New("boom")
	_, err := New(TopDown).AddSubgraph("s", func(*Builder) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func second(_ *Node, err error) error { return err }
