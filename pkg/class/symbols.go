// Package class builds Mermaid class diagrams.
package class

import "github.com/aretw0/mermaidkit/pkg/domain"

// Direction is the layout direction of the diagram.
type Direction int

const (
	TopToBottom Direction = iota
	BottomToTop
	LeftToRight
	RightToLeft
)

var directions = domain.Symbols[Direction]{
	TopToBottom: "TB",
	BottomToTop: "BT",
	LeftToRight: "LR",
	RightToLeft: "RL",
}

// Annotation marks a class with a stereotype.
type Annotation int

const (
	NoAnnotation Annotation = iota
	Interface
	Abstract
	Service
	Enumeration
)

var annotations = domain.Symbols[Annotation]{
	NoAnnotation: "",
	Interface:    "<<interface>>",
	Abstract:     "<<abstract>>",
	Service:      "<<service>>",
	Enumeration:  "<<enumeration>>",
}

// Visibility of a member.
type Visibility int

const (
	Unspecified Visibility = iota
	Public
	Private
	Protected
	Internal
)

var visibilities = domain.Symbols[Visibility]{
	Unspecified: "",
	Public:      "+",
	Private:     "-",
	Protected:   "#",
	Internal:    "~",
}

// Classifier marks a member as abstract or static.
type Classifier int

const (
	NoClassifier Classifier = iota
	AbstractMember
	StaticMember
)

var classifiers = domain.Symbols[Classifier]{
	NoClassifier:   "",
	AbstractMember: "*",
	StaticMember:   "$",
}

// Relation is the kind of a relationship. The arrow is drawn as written,
// pointing from the left class towards the right one.
type Relation int

const (
	Inheritance Relation = iota
	Composition
	Aggregation
	Association
	Link
	Dependency
	Realization
	DashedLink
)

var relations = domain.Symbols[Relation]{
	Inheritance: "<|--",
	Composition: "*--",
	Aggregation: "o--",
	Association: "-->",
	Link:        "--",
	Dependency:  "..>",
	Realization: "..|>",
	DashedLink:  "..",
}

// Cardinality annotates one end of a relationship.
type Cardinality int

const (
	NoCardinality Cardinality = iota
	One
	ZeroOrOne
	OneOrMore
	Many
	N
	ZeroToN
	OneToN
)

var cardinalities = domain.Symbols[Cardinality]{
	NoCardinality: "",
	One:           "1",
	ZeroOrOne:     "0..1",
	OneOrMore:     "1..*",
	Many:          "*",
	N:             "n",
	ZeroToN:       "0..n",
	OneToN:        "1..n",
}

var namespaceBlock = &domain.Block{Name: "namespace", Open: "namespace", Suffix: "{", Close: "}"}
