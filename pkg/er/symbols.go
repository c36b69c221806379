package er

import "github.com/aretw0/mermaidkit/pkg/domain"

// Cardinality is the multiplicity at one end of a relationship.
type Cardinality int

const (
	ZeroOrOne Cardinality = iota
	ExactlyOne
	ZeroOrMore
	OneOrMore
)

// The crow's foot glyph is mirrored depending on the side it is drawn on.
var (
	leftEnds = domain.Symbols[Cardinality]{
		ZeroOrOne:  "|o",
		ExactlyOne: "||",
		ZeroOrMore: "}o",
		OneOrMore:  "}|",
	}
	rightEnds = domain.Symbols[Cardinality]{
		ZeroOrOne:  "o|",
		ExactlyOne: "||",
		ZeroOrMore: "o{",
		OneOrMore:  "|{",
	}
)

// Key marks an attribute as part of a key.
type Key int

const (
	PrimaryKey Key = iota
	ForeignKey
	UniqueKey
)

var keys = domain.Symbols[Key]{
	PrimaryKey: "PK",
	ForeignKey: "FK",
	UniqueKey:  "UK",
}

var entityBlock = &domain.Block{Name: "entity", Suffix: "{", Close: "}"}
