package diagram

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/mermaidkit/internal/logging"
	"github.com/aretw0/mermaidkit/pkg/domain"
	"github.com/aretw0/mermaidkit/pkg/registry"
	"github.com/aretw0/mermaidkit/pkg/render"
	"github.com/aretw0/mermaidkit/pkg/validate"
)

// Base is the accumulator behind every diagram builder: the ordered item
// list, the ownership registry and the argument checker.
// It is not safe for concurrent use.
type Base struct {
	kind     string
	settings Settings
	check    validate.Checker
	reg      *registry.Registry
	items    []domain.Item
	logger   *slog.Logger
}

// NewBase creates an empty accumulator for the named diagram kind.
func NewBase(kind string, opts ...Option) *Base {
	var s Settings
	for _, opt := range opts {
		opt(&s)
	}
	logger := s.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Base{
		kind:     kind,
		settings: s,
		check:    validate.New(s.Mode),
		reg:      registry.New(),
		logger:   logger.With("diagram", kind),
	}
}

// Check returns the argument checker for the configured mode.
func (b *Base) Check() validate.Checker { return b.check }

// Registry returns the ownership registry of this scope.
func (b *Base) Registry() *registry.Registry { return b.reg }

// Settings returns the options the builder was created with.
func (b *Base) Settings() Settings { return b.settings }

// Items returns the accumulated items. The slice must not be modified.
func (b *Base) Items() []domain.Item { return b.items }

// NextID allocates an identifier from the shared counter.
func (b *Base) NextID() domain.ID { return b.reg.NextID() }

// Append adds items to the end of the list.
func (b *Base) Append(items ...domain.Item) {
	b.items = append(b.items, items...)
}

// Own registers references as belonging to this scope.
func (b *Base) Own(refs ...domain.Ref) {
	for _, ref := range refs {
		b.reg.Register(ref)
	}
}

// Owned checks that every ref belongs to this scope.
func (b *Base) Owned(field string, refs ...domain.Ref) error {
	return b.check.Owned(b.reg, field, refs...)
}

// Reject logs a rejected call and returns err unchanged. It returns nil when
// err is nil.
func (b *Base) Reject(op string, err error) error {
	if err != nil {
		b.logger.Debug("call rejected", "op", op, "code", domain.CodeOf(err), "error", err)
	}
	return err
}

// Comment appends a "%%" comment line.
func (b *Base) Comment(text string) error {
	if err := b.Reject("comment", b.check.NotBlank("text", text)); err != nil {
		return err
	}
	b.Append(&domain.Text{Element: domain.Element{ID: b.NextID()}, Value: "%% " + text})
	return nil
}

// Mark records the current length of the item list and the registry.
type Mark struct {
	items int
	refs  int
}

// Mark returns a position Rollback can return to.
func (b *Base) Mark() Mark {
	return Mark{items: len(b.items), refs: b.reg.Len()}
}

// Rollback discards every item and registration made after m.
// Identifiers handed out in between stay consumed.
func (b *Base) Rollback(m Mark) {
	if m.items < len(b.items) {
		clear(b.items[m.items:])
		b.items = b.items[:m.items]
	}
	b.reg.Truncate(m.refs)
}

// Scope appends an Open for block, runs body, and appends the matching
// Close. When body fails, everything appended since the Open is discarded
// and the error is returned wrapped.
func (b *Base) Scope(block *domain.Block, text string, body func() error) error {
	return b.Branches(block, "", []Branch{{Text: text, Body: body}})
}

// Branch is one arm of a multi-branch block.
type Branch struct {
	Text string
	Body func() error
}

// Branches appends a block whose first branch opens it and whose later
// branches are introduced by keyword. No branches append nothing; a single
// branch still produces the open and close pair.
func (b *Base) Branches(block *domain.Block, keyword string, branches []Branch) error {
	if len(branches) == 0 {
		return nil
	}
	mark := b.Mark()
	for i, br := range branches {
		if i == 0 {
			b.Append(domain.Open{Block: block, Text: br.Text})
		} else {
			b.Append(domain.Continue{Keyword: keyword, Text: br.Text})
		}
		if br.Body == nil {
			continue
		}
		if err := br.Body(); err != nil {
			b.Rollback(mark)
			return fmt.Errorf("%s %q: %w", block.Name, br.Text, err)
		}
	}
	b.Append(domain.Close{})
	return nil
}

// Child returns an empty accumulator with the same settings whose registry
// is isolated from b but shares its identifier counter.
func (b *Base) Child() *Base {
	return &Base{
		kind:     b.kind,
		settings: b.settings,
		check:    b.check,
		reg:      b.reg.Isolated(),
		logger:   b.logger,
	}
}

// Splice appends child's items inside a block and takes ownership of the
// references child created.
func (b *Base) Splice(block *domain.Block, text string, child *Base) {
	b.Append(domain.Open{Block: block, Text: text})
	b.Append(child.items...)
	b.Append(domain.Close{})
	b.reg.Absorb(child.reg)
}

// Build renders the front matter, the header and the items.
// It does not modify the builder and may be called any number of times.
func (b *Base) Build(header string) (string, error) {
	return b.BuildItems(header, b.items)
}

// BuildItems is Build over a caller supplied view of the items, for
// builders that substitute or hide items at render time.
func (b *Base) BuildItems(header string, items []domain.Item) (string, error) {
	front := render.FrontMatter{Title: b.settings.Title, Config: b.settings.Config}
	out, err := render.Document(front, header, items)
	if err != nil {
		return "", fmt.Errorf("build %s: %w", b.kind, err)
	}
	b.logger.Debug("diagram built", "items", len(items), "mode", b.check.Mode())
	return out, nil
}
