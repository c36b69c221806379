package domain

import "strings"

// ID identifies an item within one diagram. IDs come from a counter shared by
// a builder and every scope nested inside it, so they are never reused.
type ID uint32

// Ref is a handle to an item created by a builder, returned to the caller so
// it can be used later as an endpoint of edges, messages or transitions.
// Reference types are pointers; ownership is tracked by identity.
type Ref interface {
	RefID() ID
}

// Item is one entry of a diagram's ordered item list.
// The set of variants is closed: Leaf implementations (through Element),
// Open, Continue and Close.
type Item interface {
	item()
}

// Leaf is a single-line diagram statement.
// Line reports false when the statement should be left out of the output.
type Leaf interface {
	Item
	Line() (string, bool)
}

// Element is embedded by every concrete leaf type. It carries the stable
// identifier assigned at creation time.
type Element struct {
	ID ID
}

func (Element) item() {}

// RefID returns the identifier of the element.
func (e Element) RefID() ID { return e.ID }

// Text is a leaf holding an already rendered statement.
type Text struct {
	Element
	Value string
}

// Line implements Leaf.
func (t *Text) Line() (string, bool) { return t.Value, true }

// Block describes one kind of nested region: the keyword that opens it, an
// optional token closing the header line (such as "{"), and the token that
// ends it. An empty Close denotes an indent-only block.
type Block struct {
	Name   string
	Open   string
	Suffix string
	Close  string
}

// Open starts a block. Its line reads "{Block.Open} {Text} {Block.Suffix}".
type Open struct {
	Block *Block
	Text  string
}

func (Open) item() {}

// Line renders the header line of the block.
func (o Open) Line() string {
	return join(o.Block.Open, o.Text, o.Block.Suffix)
}

// Continue splits the innermost open block into another branch
// (else, and, option, or the bare "--" region separator).
type Continue struct {
	Keyword string
	Text    string
}

func (Continue) item() {}

// Line renders the continuation line.
func (c Continue) Line() string {
	return join(c.Keyword, c.Text)
}

// Close ends the innermost open block.
type Close struct{}

func (Close) item() {}

func join(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
