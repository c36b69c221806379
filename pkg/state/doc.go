// Package state builds Mermaid state diagrams (stateDiagram-v2).
//
// Composite states take a body that runs against the same builder, so
// transitions may cross composite boundaries. Concurrent states take one
// body per region; regions render separated by "--". Start and end
// transitions refer to the [*] pseudo state of the scope they are added in.
package state
