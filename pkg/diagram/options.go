package diagram

import (
	"log/slog"
	"maps"

	"github.com/aretw0/mermaidkit/pkg/validate"
)

// Settings holds the options shared by every diagram kind.
type Settings struct {
	Title  string
	Config map[string]any
	Mode   validate.Mode
	Logger *slog.Logger
}

// Option defines a functional option for configuring a diagram builder.
type Option func(*Settings)

// WithTitle sets the title emitted in the front matter.
func WithTitle(title string) Option {
	return func(s *Settings) {
		s.Title = title
	}
}

// WithConfig sets the config map emitted in the front matter.
// The map is copied and passed through without interpretation.
func WithConfig(cfg map[string]any) Option {
	return func(s *Settings) {
		s.Config = maps.Clone(cfg)
	}
}

// WithMode selects strict or permissive argument checking.
func WithMode(mode validate.Mode) Option {
	return func(s *Settings) {
		s.Mode = mode
	}
}

// Permissive disables argument checking. Every call with non-nil references
// succeeds and its input is written to the output as given.
func Permissive() Option {
	return WithMode(validate.Permissive)
}

// WithLogger sets the structured logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Settings) {
		s.Logger = logger
	}
}
