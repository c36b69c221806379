/*
Package render serializes a diagram's ordered item list into Mermaid text.

The serializer walks the items once while keeping a stack of open blocks:

  - a leaf is written at the current depth;
  - an Open is written at the current depth and pushes its block;
  - a Continue pops, is written at the depth of its Open, and pushes again,
    so the branch body is indented like the first one;
  - a Close pops and writes the close token of the block it popped
    ("end", "}", "end note"), or nothing for indent-only blocks.

Each line is terminated during the pass and the final terminator is
stripped, so an empty diagram renders as its header alone.

	out := render.Body("sequenceDiagram", items)

Front matter (title and an opaque config map) is encoded as YAML and
prepended by Document.
*/
package render
