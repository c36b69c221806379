// Package flowchart builds Mermaid flowcharts: nodes, links between them and
// nested subgraphs.
package flowchart
