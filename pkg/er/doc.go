// Package er builds Mermaid entity relationship diagrams.
package er
