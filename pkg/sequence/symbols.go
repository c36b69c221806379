package sequence

import "github.com/aretw0/mermaidkit/pkg/domain"

// Arrow is the line and head of a message.
type Arrow int

const (
	SolidArrow Arrow = iota
	DottedArrow
	SolidLine
	DottedLine
	SolidCross
	DottedCross
	SolidOpen
	DottedOpen
)

var arrows = domain.Symbols[Arrow]{
	SolidArrow:  "->>",
	DottedArrow: "-->>",
	SolidLine:   "->",
	DottedLine:  "-->",
	SolidCross:  "-x",
	DottedCross: "--x",
	SolidOpen:   "-)",
	DottedOpen:  "--)",
}

// Activation changes the activation of the receiver as part of a message.
type Activation int

const (
	NoActivation Activation = iota
	ActivateReceiver
	DeactivateSender
)

var activations = domain.Symbols[Activation]{
	NoActivation:     "",
	ActivateReceiver: "+",
	DeactivateSender: "-",
}

// NotePosition places a note relative to its participants.
type NotePosition int

const (
	RightOf NotePosition = iota
	LeftOf
	Over
)

var positions = domain.Symbols[NotePosition]{
	RightOf: "right of",
	LeftOf:  "left of",
	Over:    "over",
}

var (
	boxBlock      = &domain.Block{Name: "box", Open: "box", Close: "end"}
	loopBlock     = &domain.Block{Name: "loop", Open: "loop", Close: "end"}
	optBlock      = &domain.Block{Name: "opt", Open: "opt", Close: "end"}
	breakBlock    = &domain.Block{Name: "break", Open: "break", Close: "end"}
	rectBlock     = &domain.Block{Name: "rect", Open: "rect", Close: "end"}
	altBlock      = &domain.Block{Name: "alt", Open: "alt", Close: "end"}
	parBlock      = &domain.Block{Name: "par", Open: "par", Close: "end"}
	criticalBlock = &domain.Block{Name: "critical", Open: "critical", Close: "end"}
)
