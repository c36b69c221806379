package document

import (
	"github.com/aretw0/mermaidkit/pkg/flowchart"
	"github.com/aretw0/mermaidkit/pkg/mindmap"
	"github.com/aretw0/mermaidkit/pkg/sequence"
	"github.com/aretw0/mermaidkit/pkg/state"
)

var flowDirections = map[string]flowchart.Direction{
	"td": flowchart.TopDown,
	"tb": flowchart.TopToBottom,
	"bt": flowchart.BottomToTop,
	"lr": flowchart.LeftToRight,
	"rl": flowchart.RightToLeft,
}

var flowShapes = map[string]flowchart.Shape{
	"rectangle":         flowchart.Rectangle,
	"rounded":           flowchart.Rounded,
	"stadium":           flowchart.Stadium,
	"subroutine":        flowchart.Subroutine,
	"cylinder":          flowchart.Cylinder,
	"circle":            flowchart.Circle,
	"double-circle":     flowchart.DoubleCircle,
	"asymmetric":        flowchart.Asymmetric,
	"rhombus":           flowchart.Rhombus,
	"hexagon":           flowchart.Hexagon,
	"parallelogram":     flowchart.Parallelogram,
	"parallelogram-alt": flowchart.ParallelogramAlt,
	"trapezoid":         flowchart.Trapezoid,
	"trapezoid-alt":     flowchart.TrapezoidAlt,
}

var flowStyles = map[string]flowchart.LinkStyle{
	"solid":     flowchart.Solid,
	"dotted":    flowchart.Dotted,
	"thick":     flowchart.Thick,
	"invisible": flowchart.Invisible,
}

var flowHeads = map[string]flowchart.ArrowHead{
	"arrow":  flowchart.Arrow,
	"none":   flowchart.NoHead,
	"circle": flowchart.CircleHead,
	"cross":  flowchart.CrossHead,
}

var seqArrows = map[string]sequence.Arrow{
	"solid-arrow":  sequence.SolidArrow,
	"dotted-arrow": sequence.DottedArrow,
	"solid":        sequence.SolidLine,
	"dotted":       sequence.DottedLine,
	"solid-cross":  sequence.SolidCross,
	"dotted-cross": sequence.DottedCross,
	"solid-open":   sequence.SolidOpen,
	"dotted-open":  sequence.DottedOpen,
}

var seqActivations = map[string]sequence.Activation{
	"none":       sequence.NoActivation,
	"activate":   sequence.ActivateReceiver,
	"deactivate": sequence.DeactivateSender,
}

var seqPositions = map[string]sequence.NotePosition{
	"right-of": sequence.RightOf,
	"left-of":  sequence.LeftOf,
	"over":     sequence.Over,
}

var stateDirections = map[string]state.Direction{
	"tb": state.TopToBottom,
	"bt": state.BottomToTop,
	"lr": state.LeftToRight,
	"rl": state.RightToLeft,
}

var statePseudo = map[string]state.PseudoKind{
	"fork":   state.Fork,
	"join":   state.Join,
	"choice": state.Choice,
}

var mindShapes = map[string]mindmap.Shape{
	"default": mindmap.Default,
	"square":  mindmap.Square,
	"rounded": mindmap.Rounded,
	"circle":  mindmap.Circle,
	"bang":    mindmap.Bang,
	"cloud":   mindmap.Cloud,
	"hexagon": mindmap.Hexagon,
}
