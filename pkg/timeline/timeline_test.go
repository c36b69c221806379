package timeline

import (
	"strings"
	"testing"

	"github.com/aretw0/mermaidkit/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	b := New()
	require.NoError(t, b.AddPeriod("2002", "LinkedIn"))
	err := b.Section("Web 2.0", func(b *Builder) error {
		if err := b.AddPeriod("2004", "Facebook", "Google"); err != nil {
			return err
		}
		return b.AddPeriod("2005")
	})
	require.NoError(t, err)

	out, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"timeline",
		"    2002 : LinkedIn",
		"    section Web 2.0",
		"        2004 : Facebook : Google",
		"        2005",
	}, "\n"), out)
}

func TestBuilder_Validation(t *testing.T) {
	b := New()
	assert.ErrorIs(t, b.AddPeriod(""), domain.ErrWhiteSpace)
	assert.ErrorIs(t, b.AddPeriod("2000", ""), domain.ErrWhiteSpace)
	err := b.Section("a", func(b *Builder) error { return b.Section("b", nil) })
	assert.ErrorIs(t, err, domain.ErrInvalidOperation)

	out, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "timeline", out)
}
