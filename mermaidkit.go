package mermaidkit

import (
	_ "embed"
	"log/slog"

	"github.com/aretw0/mermaidkit/pkg/block"
	"github.com/aretw0/mermaidkit/pkg/class"
	"github.com/aretw0/mermaidkit/pkg/diagram"
	"github.com/aretw0/mermaidkit/pkg/er"
	"github.com/aretw0/mermaidkit/pkg/flowchart"
	"github.com/aretw0/mermaidkit/pkg/gantt"
	"github.com/aretw0/mermaidkit/pkg/gitgraph"
	"github.com/aretw0/mermaidkit/pkg/journey"
	"github.com/aretw0/mermaidkit/pkg/kanban"
	"github.com/aretw0/mermaidkit/pkg/mindmap"
	"github.com/aretw0/mermaidkit/pkg/pie"
	"github.com/aretw0/mermaidkit/pkg/quadrant"
	"github.com/aretw0/mermaidkit/pkg/requirement"
	"github.com/aretw0/mermaidkit/pkg/sequence"
	"github.com/aretw0/mermaidkit/pkg/state"
	"github.com/aretw0/mermaidkit/pkg/timeline"
	"github.com/aretw0/mermaidkit/pkg/xychart"
)

// Version is the library version.
//
//go:embed VERSION
var Version string

// Option configures a diagram builder.
type Option = diagram.Option

// WithTitle renders a title in the front matter.
func WithTitle(title string) Option { return diagram.WithTitle(title) }

// WithConfig renders a Mermaid config block in the front matter.
func WithConfig(config map[string]any) Option { return diagram.WithConfig(config) }

// Permissive disables argument checks. Nil references are still rejected.
func Permissive() Option { return diagram.Permissive() }

// WithLogger sets the logger builders report rejected calls to.
func WithLogger(logger *slog.Logger) Option { return diagram.WithLogger(logger) }

// Kind names a diagram type.
type Kind string

const (
	KindFlowchart   Kind = "flowchart"
	KindSequence    Kind = "sequence"
	KindState       Kind = "state"
	KindClass       Kind = "class"
	KindER          Kind = "er"
	KindBlock       Kind = "block"
	KindMindmap     Kind = "mindmap"
	KindGantt       Kind = "gantt"
	KindGitGraph    Kind = "gitgraph"
	KindPie         Kind = "pie"
	KindQuadrant    Kind = "quadrant"
	KindRequirement Kind = "requirement"
	KindKanban      Kind = "kanban"
	KindXYChart     Kind = "xychart"
	KindTimeline    Kind = "timeline"
	KindJourney     Kind = "journey"
)

var headers = map[Kind]string{
	KindFlowchart:   "flowchart",
	KindSequence:    "sequenceDiagram",
	KindState:       "stateDiagram-v2",
	KindClass:       "classDiagram",
	KindER:          "erDiagram",
	KindBlock:       "block-beta",
	KindMindmap:     "mindmap",
	KindGantt:       "gantt",
	KindGitGraph:    "gitGraph",
	KindPie:         "pie",
	KindQuadrant:    "quadrantChart",
	KindRequirement: "requirementDiagram",
	KindKanban:      "kanban",
	KindXYChart:     "xychart-beta",
	KindTimeline:    "timeline",
	KindJourney:     "journey",
}

// Kinds lists every diagram kind in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindFlowchart, KindSequence, KindState, KindClass, KindER, KindBlock,
		KindMindmap, KindGantt, KindGitGraph, KindPie, KindQuadrant,
		KindRequirement, KindKanban, KindXYChart, KindTimeline, KindJourney,
	}
}

// Keyword returns the Mermaid keyword that starts a diagram of kind k, and
// false for unknown kinds.
func (k Kind) Keyword() (string, bool) {
	h, ok := headers[k]
	return h, ok
}

// NewFlowchart starts a flowchart laid out in direction dir.
func NewFlowchart(dir flowchart.Direction, opts ...Option) *flowchart.Builder {
	return flowchart.New(dir, opts...)
}

// NewSequence starts a sequence diagram.
func NewSequence(opts ...Option) *sequence.Builder { return sequence.New(opts...) }

// NewState starts a state diagram.
func NewState(opts ...Option) *state.Builder { return state.New(opts...) }

// NewClass starts a class diagram.
func NewClass(opts ...Option) *class.Builder { return class.New(opts...) }

// NewER starts an entity relationship diagram.
func NewER(opts ...Option) *er.Builder { return er.New(opts...) }

// NewBlock starts a block diagram.
func NewBlock(opts ...Option) *block.Builder { return block.New(opts...) }

// NewMindmap starts a mindmap. It holds a single root node.
func NewMindmap(opts ...Option) *mindmap.Builder { return mindmap.New(opts...) }

// NewGantt starts a gantt chart.
func NewGantt(opts ...Option) *gantt.Builder { return gantt.New(opts...) }

// NewGitGraph starts a git graph with main checked out.
func NewGitGraph(opts ...Option) *gitgraph.Builder { return gitgraph.New(opts...) }

// NewPie starts a pie chart.
func NewPie(opts ...Option) *pie.Builder { return pie.New(opts...) }

// NewQuadrant starts a quadrant chart.
func NewQuadrant(opts ...Option) *quadrant.Builder { return quadrant.New(opts...) }

// NewRequirement starts a requirement diagram.
func NewRequirement(opts ...Option) *requirement.Builder { return requirement.New(opts...) }

// NewKanban starts a kanban board.
func NewKanban(opts ...Option) *kanban.Builder { return kanban.New(opts...) }

// NewXYChart starts an xy chart with the given orientation.
func NewXYChart(orientation xychart.Orientation, opts ...Option) *xychart.Builder {
	return xychart.New(orientation, opts...)
}

// NewTimeline starts a timeline.
func NewTimeline(opts ...Option) *timeline.Builder { return timeline.New(opts...) }

// NewJourney starts a user journey.
func NewJourney(opts ...Option) *journey.Builder { return journey.New(opts...) }
