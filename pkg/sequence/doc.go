// Package sequence builds Mermaid sequence diagrams.
//
// Participants are declared first and then referenced by messages, notes
// and activations. Control-flow regions (loop, opt, break, rect) take a body
// callback; alt, par and critical take one Branch per arm:
//
//	err := b.Alternatives(
//		sequence.Branch{Text: "cache hit", Body: hit},
//		sequence.Branch{Text: "cache miss", Body: miss},
//	)
//
// A body that returns an error removes everything it added.
package sequence
