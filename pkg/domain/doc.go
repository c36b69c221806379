/*
Package domain contains the item model shared by every diagram builder.

A diagram is an ordered list of items. Leaves are single statements (a node,
an edge, a message). Blocks are delimited by an Open item, optionally split
by Continue items (else, and, option, --), and terminated by a Close item.
The package also defines the error codes returned by builders that reject
a call, and the generic symbol table type used for enum-to-token lookups.

It has no dependencies beyond the standard library.

# Key Entities

  - Item: the closed union of Leaf, Open, Continue and Close.
  - Block: one kind of nested region with its open, suffix and close tokens.
  - Ref: a handle to an item, used to reference it in later calls.
  - Error: a coded validation failure.
*/
package domain
