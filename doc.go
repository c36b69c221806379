/*
Package mermaidkit builds Mermaid diagram source text from Go code.

Each diagram kind has its own builder package (flowchart, sequence, state,
class, and so on); this package re-exports their constructors and the
options they share. Builders append statements in call order and render them
with Build, which can be called any number of times.

# Concept

Every builder accumulates an ordered list of items: single-line statements
and the open, continue and close markers of nested regions such as
subgraphs, loops, alt/else branches or composite states. Rendering walks the
list with a stack of open regions and indents four spaces per level, so the
nesting of the output always mirrors the nesting of the calls that produced
it.

Calls that create something referable (a node, a participant, a state)
return a reference. References are only valid in the diagram that created
them; passing a reference from another diagram is rejected.

# Validation

Builders run in strict mode by default: invalid arguments are rejected with
a *domain.Error carrying a Code, and the builder is left unchanged. Errors
match the per-code sentinels with errors.Is:

	if errors.Is(err, domain.ErrForeignItem) { ... }

Permissive mode skips every check and renders whatever it is given.

# Usage

	fc := mermaidkit.NewFlowchart(flowchart.LeftToRight, mermaidkit.WithTitle("Login"))
	form, _ := fc.AddNode("Form", flowchart.Rounded)
	check, _ := fc.AddNode("Valid?", flowchart.Rhombus)
	_ = fc.AddEdge(form, check, flowchart.EdgeOptions{})
	text, err := fc.Build()

Scoped constructs take a body callback. If the body returns an error,
everything it added is discarded and the error is returned wrapped with the
name of the scope:

	err := seq.Loop("retry", func(b *sequence.Builder) error {
		return b.AddMessage(client, server, "ping", sequence.SolidArrow, sequence.NoActivation)
	})
*/
package mermaidkit
