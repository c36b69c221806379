// Package gitgraph builds Mermaid git graphs.
//
// The builder tracks the checked-out branch the way git does: Branch
// creates a branch from the current one and checks it out, Commit adds to
// the checked-out branch and Merge merges another branch into it.
package gitgraph

import (
	"strings"

	"github.com/aretw0/mermaidkit/pkg/diagram"
	"github.com/aretw0/mermaidkit/pkg/domain"
	"github.com/aretw0/mermaidkit/pkg/validate"
)

// MainBranch is the name of the branch every graph starts on.
const MainBranch = "main"

// CommitType changes how a commit is drawn.
type CommitType int

const (
	Normal CommitType = iota
	Reverse
	Highlight
)

var commitTypes = domain.Symbols[CommitType]{
	Normal:    "NORMAL",
	Reverse:   "REVERSE",
	Highlight: "HIGHLIGHT",
}

// Branch is a line of development.
type Branch struct {
	domain.Element
	name string
}

// Name returns the branch name.
func (b *Branch) Name() string { return b.name }

// Line implements domain.Leaf.
func (b *Branch) Line() (string, bool) { return "branch " + b.name, true }

// CommitOptions decorates a commit. Without a Label the commit is named
// after its position in the graph, skipping names a label already uses.
type CommitOptions struct {
	Label string
	Tag   string
	Type  CommitType
}

// Commit is a commit on a branch.
type Commit struct {
	domain.Element
	id     string
	branch *Branch
	opts   CommitOptions
}

// Label returns the identifier shown for the commit.
func (c *Commit) Label() string { return c.id }

// Line implements domain.Leaf.
func (c *Commit) Line() (string, bool) {
	parts := []string{"commit", "id: " + diagram.Quote(c.id)}
	if c.opts.Type != Normal {
		parts = append(parts, "type: "+commitTypes.MustLookup(c.opts.Type))
	}
	if c.opts.Tag != "" {
		parts = append(parts, "tag: "+diagram.Quote(c.opts.Tag))
	}
	return strings.Join(parts, " "), true
}

// Builder accumulates the statements of a git graph.
type Builder struct {
	base     *diagram.Base
	main     *Branch
	current  *Branch
	branches map[string]bool
	commits  map[string]bool
}

// New creates a graph with main checked out.
func New(opts ...diagram.Option) *Builder {
	b := &Builder{
		base:     diagram.NewBase("gitgraph", opts...),
		branches: map[string]bool{MainBranch: true},
		commits:  map[string]bool{},
	}
	b.main = &Branch{Element: domain.Element{ID: b.base.NextID()}, name: MainBranch}
	b.base.Own(b.main)
	b.current = b.main
	return b
}

// Main returns the main branch.
func (b *Builder) Main() *Branch { return b.main }

// Current returns the checked-out branch.
func (b *Builder) Current() *Branch { return b.current }

// Branch creates a branch from the checked-out one and checks it out.
func (b *Builder) Branch(name string) (*Branch, error) {
	c := b.base.Check()
	err := validate.First(
		c.NotBlank("name", name),
		c.Unique("name", name, b.branches[name]),
	)
	if err := b.base.Reject("branch", err); err != nil {
		return nil, err
	}
	br := &Branch{Element: domain.Element{ID: b.base.NextID()}, name: name}
	b.branches[name] = true
	b.base.Own(br)
	b.base.Append(br)
	b.current = br
	return br, nil
}

// Checkout switches to br.
func (b *Builder) Checkout(br *Branch) error {
	if err := b.base.Reject("checkout", b.base.Owned("branch", br)); err != nil {
		return err
	}
	b.base.Append(&domain.Text{Element: domain.Element{ID: b.base.NextID()}, Value: "checkout " + br.name})
	b.current = br
	return nil
}

// Commit adds a commit to the checked-out branch.
func (b *Builder) Commit(opts CommitOptions) (*Commit, error) {
	cm := &Commit{branch: b.current, opts: opts}
	c := b.base.Check()
	err := validate.Supported(c, commitTypes, "type", opts.Type)
	if err == nil && opts.Label != "" {
		err = c.Unique("label", opts.Label, b.commits[opts.Label])
	}
	if err := b.base.Reject("commit", err); err != nil {
		return nil, err
	}

	cm.ID = b.base.NextID()
	cm.id = opts.Label
	if cm.id == "" {
		cm.id = diagram.Key("c", cm.ID)
		// Skip identifiers whose key a label already took.
		for b.commits[cm.id] {
			cm.ID = b.base.NextID()
			cm.id = diagram.Key("c", cm.ID)
		}
	}
	b.commits[cm.id] = true
	b.base.Own(cm)
	b.base.Append(cm)
	return cm, nil
}

// Merge merges br into the checked-out branch.
func (b *Builder) Merge(br *Branch) error {
	err := validate.First(
		b.base.Owned("branch", br),
		b.base.Check().Allowed(br != b.current, "branch", "cannot merge %s into itself", b.current.name),
	)
	if err := b.base.Reject("merge", err); err != nil {
		return err
	}
	b.base.Append(&domain.Text{Element: domain.Element{ID: b.base.NextID()}, Value: "merge " + br.name})
	return nil
}

// CherryPick copies a commit from another branch onto the checked-out one.
func (b *Builder) CherryPick(cm *Commit) error {
	err := validate.First(
		b.base.Owned("commit", cm),
		b.base.Check().Allowed(cm == nil || cm.branch != b.current, "commit", "commit is already on %s", b.current.name),
	)
	if err := b.base.Reject("cherry-pick", err); err != nil {
		return err
	}
	b.base.Append(&domain.Text{Element: domain.Element{ID: b.base.NextID()}, Value: "cherry-pick id: " + diagram.Quote(cm.id)})
	return nil
}

// Comment appends a "%%" comment line.
func (b *Builder) Comment(text string) error {
	return b.base.Comment(text)
}

// Build renders the graph.
func (b *Builder) Build() (string, error) {
	return b.base.Build("gitGraph")
}
