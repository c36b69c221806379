package tui

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdown(t *testing.T) {
	assert.Equal(t, "```mermaid\npie\n```\n", Markdown("", "pie"))
	assert.Equal(t, "# Pets\n\n```mermaid\npie\n```\n", Markdown("Pets", "pie"))
}

func TestRenderer_Preview(t *testing.T) {
	r, err := NewRenderer(DefaultWidth)
	require.NoError(t, err)

	out, err := r.Preview("Pets", "pie\n    \"Dogs\" : 3")
	require.NoError(t, err)
	assert.Contains(t, out, "Pets")
	assert.Contains(t, out, `"Dogs" : 3`)
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "1.2.3")
	assert.Contains(t, buf.String(), "v1.2.3")
	assert.Contains(t, buf.String(), `|_| |_| |_|`)
}

func TestWidth_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f))
	assert.Equal(t, DefaultWidth, Width(f))
}
