package state

import "github.com/aretw0/mermaidkit/pkg/domain"

// Direction is the layout direction of the diagram or of a composite state.
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

// PseudoKind selects the stereotype of a pseudo state.
type PseudoKind int

const (
	Fork PseudoKind = iota
	Join
	Choice
)

var pseudoKinds = domain.Symbols[PseudoKind]{
	Fork:   "<<fork>>",
	Join:   "<<join>>",
	Choice: "<<choice>>",
}

// Side places a note next to a state.
type Side int

const (
	RightOf Side = iota
	LeftOf
)

var sides = domain.Symbols[Side]{
	RightOf: "right of",
	LeftOf:  "left of",
}

var (
	compositeBlock = &domain.Block{Name: "state", Open: "state", Suffix: "{", Close: "}"}
	noteBlock      = &domain.Block{Name: "note", Open: "note", Close: "end note"}
)

// terminal is the start or end pseudo state depending on which side of a
// transition it appears.
const terminal = "[*]"
