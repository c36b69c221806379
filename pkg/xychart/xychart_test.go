package xychart

import (
	"strings"
	"testing"

	"github.com/aretw0/mermaidkit/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	b := New(Vertical)
	require.NoError(t, b.XAxisCategories("", "jan", "feb", "mar"))
	require.NoError(t, b.YAxisRange("Revenue", 0, 10000))
	require.NoError(t, b.AddBar(5000, 6000, 7500))
	require.NoError(t, b.AddLine(5000, 6000, 7500.5))

	out, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"xychart-beta",
		`    x-axis ["jan", "feb", "mar"]`,
		`    y-axis "Revenue" 0 --> 10000`,
		"    bar [5000, 6000, 7500]",
		"    line [5000, 6000, 7500.5]",
	}, "\n"), out)
}

func TestBuilder_Horizontal(t *testing.T) {
	b := New(Horizontal)
	require.NoError(t, b.XAxisRange("t", -1, 1))
	out, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "xychart-beta horizontal\n    x-axis \"t\" -1 --> 1", out)
}

func TestBuilder_Validation(t *testing.T) {
	b := New(Vertical)
	assert.ErrorIs(t, b.YAxisRange("", 5, 1), domain.ErrInvalidConfiguration)
	assert.ErrorIs(t, b.AddBar(), domain.ErrEmptyCollection)
	assert.ErrorIs(t, b.AddLine(), domain.ErrEmptyCollection)
	assert.ErrorIs(t, b.XAxisCategories("x"), domain.ErrEmptyCollection)
	assert.ErrorIs(t, b.XAxisCategories("x", "a", " "), domain.ErrWhiteSpace)
}
