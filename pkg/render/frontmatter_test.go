package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontMatter_Render(t *testing.T) {
	tests := []struct {
		name  string
		front FrontMatter
		want  string
	}{
		{"empty", FrontMatter{}, ""},
		{"title only", FrontMatter{Title: "Orders"}, "---\ntitle: Orders\n---\n"},
		{
			"config only",
			FrontMatter{Config: map[string]any{"theme": "forest", "look": "handDrawn"}},
			"---\nconfig:\n  look: handDrawn\n  theme: forest\n---\n",
		},
		{
			"nested config",
			FrontMatter{Title: "T", Config: map[string]any{"flowchart": map[string]any{"curve": "basis"}}},
			"---\ntitle: T\nconfig:\n  flowchart:\n    curve: basis\n---\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.front.Render()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
