// Package tui renders diagrams and banners for terminals.
package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

// Renderer previews Mermaid text as highlighted markdown.
type Renderer struct {
	r *glamour.TermRenderer
}

// NewRenderer creates a renderer wrapping at width columns.
func NewRenderer(width int) (*Renderer, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{r: r}, nil
}

// Preview renders diagram inside a fenced mermaid block, under title when
// one is given.
func (r *Renderer) Preview(title, diagram string) (string, error) {
	return r.r.Render(Markdown(title, diagram))
}

// Markdown wraps diagram in a fenced mermaid block.
func Markdown(title, diagram string) string {
	var b strings.Builder
	if title != "" {
		b.WriteString("# " + title + "\n\n")
	}
	b.WriteString("```mermaid\n")
	b.WriteString(diagram)
	b.WriteString("\n```\n")
	return b.String()
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Width returns the column count of the terminal behind f.
func Width(f *os.File) int {
	if !IsTerminal(f) {
		return DefaultWidth
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}
