package render

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// FrontMatter is the YAML prologue placed before the diagram header.
type FrontMatter struct {
	Title  string         `yaml:"title,omitempty"`
	Config map[string]any `yaml:"config,omitempty"`
}

// IsZero reports whether there is nothing to emit.
func (f FrontMatter) IsZero() bool {
	return f.Title == "" && len(f.Config) == 0
}

// Render returns the "---" delimited YAML block, or "" when f is empty.
func (f FrontMatter) Render() (string, error) {
	if f.IsZero() {
		return "", nil
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return "", fmt.Errorf("encode front matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode front matter: %w", err)
	}
	buf.WriteString("---\n")
	return buf.String(), nil
}
