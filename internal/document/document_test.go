package document

import (
	"strings"
	"testing"

	"github.com/aretw0/mermaidkit/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(s ...string) string { return strings.Join(s, "\n") }

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", YAML},
		{".yml", YAML},
		{"YAML", YAML},
		{"toml", TOML},
		{".json", JSON},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrDecode)
}

func TestFormatFromContentType(t *testing.T) {
	assert.Equal(t, JSON, FormatFromContentType("application/json; charset=utf-8"))
	assert.Equal(t, TOML, FormatFromContentType("application/toml"))
	assert.Equal(t, YAML, FormatFromContentType("application/yaml"))
	assert.Equal(t, YAML, FormatFromContentType(""))
}

func TestRender_FlowchartYAML(t *testing.T) {
	src := `
kind: flowchart
title: Deploy
direction: LR
nodes:
  - {id: build, text: Build}
  - {id: ship, text: Ship, shape: stadium}
subgraphs:
  - id: prod
    title: Production
    direction: TB
    nodes:
      - {id: api, text: API, shape: rounded}
edges:
  - {from: build, to: ship, label: ok}
  - {from: ship, to: prod, style: dotted}
`
	out, err := Render([]byte(src), YAML)
	require.NoError(t, err)
	assert.Equal(t, lines(
		"---",
		"title: Deploy",
		"---",
		"flowchart LR",
		`    n0["Build"]`,
		`    n1(["Ship"])`,
		`    subgraph n2 ["Production"]`,
		"        direction TB",
		`        n4("API")`,
		"    end",
		`    n0 -->|"ok"| n1`,
		"    n1 -.-> n2",
	), out)
}

func TestRender_SequenceJSON(t *testing.T) {
	src := `{
  "kind": "sequence",
  "participants": [
    {"id": "a", "name": "Alice"},
    {"id": "b", "name": "Bob", "actor": true}
  ],
  "steps": [
    {"message": {"from": "a", "to": "b", "text": "hi", "activation": "activate"}},
    {"loop": {"label": "retry", "steps": [
      {"message": {"from": "b", "to": "a", "text": "ack", "arrow": "dotted-arrow"}}
    ]}},
    {"note": {"position": "over", "text": "done", "over": ["a", "b"]}}
  ]
}`
	out, err := Render([]byte(src), JSON)
	require.NoError(t, err)
	assert.Equal(t, lines(
		"sequenceDiagram",
		"    participant p0 as Alice",
		"    actor p1 as Bob",
		"    p0->>+p1: hi",
		"    loop retry",
		"        p1-->>p0: ack",
		"    end",
		"    Note over p0,p1: done",
	), out)
}

func TestRender_StateTOML(t *testing.T) {
	src := `
kind = "state"

[[states]]
id = "idle"
text = "Idle"

[[states]]
id = "run"
text = "Running"

  [[states.states]]
  id = "fast"

[[transitions]]
from = "[*]"
to = "idle"

[[transitions]]
from = "idle"
to = "fast"
label = "go"

[[transitions]]
from = "run"
to = "[*]"
`
	out, err := Render([]byte(src), TOML)
	require.NoError(t, err)
	assert.Equal(t, lines(
		"stateDiagram-v2",
		`    state "Idle" as s0`,
		`    state "Running" as s1`,
		"    state s1 {",
		`        state "fast" as s2`,
		"    }",
		"    [*] --> s0",
		"    s0 --> s2 : go",
		"    s1 --> [*]",
	), out)
}

func TestRender_PieAndMindmap(t *testing.T) {
	out, err := Render([]byte("kind: pie\nshow_data: true\nslices:\n  - {label: Dogs, value: 3}\n  - {label: Cats, value: 1.5}\n"), YAML)
	require.NoError(t, err)
	assert.Equal(t, "pie showData\n    \"Dogs\" : 3\n    \"Cats\" : 1.5", out)

	src := `
kind: mindmap
root:
  text: Tools
  shape: circle
  icon: fa fa-wrench
  children:
    - text: Editors
      children:
        - {text: Vim, shape: square}
`
	out, err = Render([]byte(src), YAML)
	require.NoError(t, err)
	assert.Equal(t, lines(
		"mindmap",
		"    n0((Tools))",
		"        ::icon(fa fa-wrench)",
		"        Editors",
		"            n3[Vim]",
	), out)
}

func TestRender_PartialFailures(t *testing.T) {
	src := `
kind: flowchart
nodes:
  - {id: a, text: A}
  - {id: a, text: again}
  - {id: b, text: "  "}
  - {id: c, text: C, shape: blob}
edges:
  - {from: a, to: ghost}
`
	out, err := Render([]byte(src), YAML)
	require.Error(t, err)
	assert.Equal(t, "flowchart TD\n    n0[\"A\"]", out)

	errs := Errors(err)
	require.Len(t, errs, 4)
	assert.True(t, domain.IsCode(errs[0], domain.CodeDuplicateValue))
	assert.Contains(t, errs[0].Error(), "nodes[1]")
	assert.ErrorIs(t, errs[1], domain.ErrWhiteSpace)
	assert.ErrorIs(t, errs[2], ErrUnknownName)
	assert.ErrorIs(t, errs[3], ErrUnknownReference)
	assert.Contains(t, errs[3].Error(), "edges[0]")
}

func TestRender_NestedFailuresKeepTheBlock(t *testing.T) {
	src := `{
  "kind": "sequence",
  "participants": [{"id": "a", "name": "A"}],
  "steps": [
    {"opt": {"label": "maybe", "steps": [
      {"message": {"from": "a", "to": "nobody", "text": "x"}},
      {"message": {"from": "a", "to": "a", "text": "self"}}
    ]}}
  ]
}`
	out, err := Render([]byte(src), JSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "steps[0].opt[0]")
	assert.Equal(t, lines(
		"sequenceDiagram",
		"    participant p0 as A",
		"    opt maybe",
		"        p0->>p0: self",
		"    end",
	), out)
}

func TestRender_Permissive(t *testing.T) {
	out, err := Render([]byte("kind: pie\npermissive: true\nslices:\n  - {label: Debt, value: -2}\n"), YAML)
	require.NoError(t, err)
	assert.Equal(t, "pie\n    \"Debt\" : -2", out)
}

func TestRender_FrontMatterConfig(t *testing.T) {
	out, err := Render([]byte("kind: pie\nconfig:\n  theme: forest\n"), YAML)
	require.NoError(t, err)
	assert.Equal(t, "---\nconfig:\n  theme: forest\n---\npie", out)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load([]byte("kind: [unterminated"), YAML)
	assert.ErrorIs(t, err, ErrDecode)

	_, err = Load([]byte("title: no kind\n"), YAML)
	assert.ErrorIs(t, err, ErrDecode)

	_, err = Render([]byte("kind: flowchart\nnodez: []\n"), YAML)
	assert.ErrorIs(t, err, ErrDecode)

	_, err = Render([]byte("kind: gantt\n"), YAML)
	assert.ErrorIs(t, err, ErrUnsupportedKind)
}

func TestDigest(t *testing.T) {
	doc := []byte("kind: pie\n")
	assert.Equal(t, Digest(YAML, doc), Digest(YAML, doc))
	assert.NotEqual(t, Digest(YAML, doc), Digest(JSON, doc))
	assert.Len(t, Digest(YAML, doc), 64)
}

func TestKinds(t *testing.T) {
	for _, k := range Kinds() {
		_, err := Render([]byte("kind: "+string(k)+"\n"), YAML)
		if k == "mindmap" {
			// A mind map document needs its root.
			assert.Error(t, err)
			continue
		}
		assert.NoError(t, err, k)
	}
}
