package dto

// Header holds the keys shared by every diagram document. Remaining keys
// are kept in Body and decoded according to Kind.
type Header struct {
	Kind       string         `json:"kind" mapstructure:"kind"`
	Title      string         `json:"title" mapstructure:"title"`
	Config     map[string]any `json:"config" mapstructure:"config"`
	Permissive bool           `json:"permissive" mapstructure:"permissive"`
	Body       map[string]any `json:"-" mapstructure:",remain"`
}

// Flowchart is the body of a flowchart document. Edges may refer to nodes
// and subgraphs at any depth.
type Flowchart struct {
	Direction string     `json:"direction" mapstructure:"direction"`
	Nodes     []FlowNode `json:"nodes" mapstructure:"nodes"`
	Subgraphs []Subgraph `json:"subgraphs" mapstructure:"subgraphs"`
	Edges     []FlowEdge `json:"edges" mapstructure:"edges"`
}

type FlowNode struct {
	ID    string `json:"id" mapstructure:"id"`
	Text  string `json:"text" mapstructure:"text"`
	Shape string `json:"shape" mapstructure:"shape"`
}

type Subgraph struct {
	ID        string     `json:"id" mapstructure:"id"`
	Title     string     `json:"title" mapstructure:"title"`
	Direction string     `json:"direction" mapstructure:"direction"`
	Nodes     []FlowNode `json:"nodes" mapstructure:"nodes"`
	Subgraphs []Subgraph `json:"subgraphs" mapstructure:"subgraphs"`
}

type FlowEdge struct {
	From          string `json:"from" mapstructure:"from"`
	To            string `json:"to" mapstructure:"to"`
	Label         string `json:"label" mapstructure:"label"`
	Style         string `json:"style" mapstructure:"style"`
	Head          string `json:"head" mapstructure:"head"`
	Bidirectional bool   `json:"bidirectional" mapstructure:"bidirectional"`
	Length        int    `json:"length" mapstructure:"length"`
}

// Sequence is the body of a sequence diagram document.
type Sequence struct {
	Autonumber   bool           `json:"autonumber" mapstructure:"autonumber"`
	Participants []Participant  `json:"participants" mapstructure:"participants"`
	Steps        []SequenceStep `json:"steps" mapstructure:"steps"`
}

type Participant struct {
	ID    string `json:"id" mapstructure:"id"`
	Name  string `json:"name" mapstructure:"name"`
	Actor bool   `json:"actor" mapstructure:"actor"`
}

// SequenceStep sets exactly one of its fields.
type SequenceStep struct {
	Message    *Message        `json:"message" mapstructure:"message"`
	Note       *Note           `json:"note" mapstructure:"note"`
	Activate   string          `json:"activate" mapstructure:"activate"`
	Deactivate string          `json:"deactivate" mapstructure:"deactivate"`
	Loop       *SequenceBlock  `json:"loop" mapstructure:"loop"`
	Opt        *SequenceBlock  `json:"opt" mapstructure:"opt"`
	Break      *SequenceBlock  `json:"break" mapstructure:"break"`
	Alt        []SequenceBlock `json:"alt" mapstructure:"alt"`
	Par        []SequenceBlock `json:"par" mapstructure:"par"`
}

type Message struct {
	From       string `json:"from" mapstructure:"from"`
	To         string `json:"to" mapstructure:"to"`
	Text       string `json:"text" mapstructure:"text"`
	Arrow      string `json:"arrow" mapstructure:"arrow"`
	Activation string `json:"activation" mapstructure:"activation"`
}

type Note struct {
	Position string   `json:"position" mapstructure:"position"`
	Text     string   `json:"text" mapstructure:"text"`
	Over     []string `json:"over" mapstructure:"over"`
}

// SequenceBlock is a loop, opt or break region, or one arm of alt and par.
type SequenceBlock struct {
	Label string         `json:"label" mapstructure:"label"`
	Steps []SequenceStep `json:"steps" mapstructure:"steps"`
}

// State is the body of a state diagram document. The pseudo state "[*]"
// starts or ends a transition.
type State struct {
	Direction   string       `json:"direction" mapstructure:"direction"`
	States      []StateDecl  `json:"states" mapstructure:"states"`
	Transitions []Transition `json:"transitions" mapstructure:"transitions"`
}

type StateDecl struct {
	ID     string      `json:"id" mapstructure:"id"`
	Text   string      `json:"text" mapstructure:"text"`
	Pseudo string      `json:"pseudo" mapstructure:"pseudo"`
	States []StateDecl `json:"states" mapstructure:"states"`
	Note   string      `json:"note" mapstructure:"note"`
}

type Transition struct {
	From  string `json:"from" mapstructure:"from"`
	To    string `json:"to" mapstructure:"to"`
	Label string `json:"label" mapstructure:"label"`
}

// Pie is the body of a pie chart document.
type Pie struct {
	ShowData bool    `json:"show_data" mapstructure:"show_data"`
	Slices   []Slice `json:"slices" mapstructure:"slices"`
}

type Slice struct {
	Label string  `json:"label" mapstructure:"label"`
	Value float64 `json:"value" mapstructure:"value"`
}

// Mindmap is the body of a mind map document.
type Mindmap struct {
	Root MindNode `json:"root" mapstructure:"root"`
}

type MindNode struct {
	Text     string     `json:"text" mapstructure:"text"`
	Shape    string     `json:"shape" mapstructure:"shape"`
	Icon     string     `json:"icon" mapstructure:"icon"`
	Children []MindNode `json:"children" mapstructure:"children"`
}
