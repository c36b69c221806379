// Package diagram provides the pieces shared by the diagram builders: the
// functional options every builder accepts and Base, the accumulator that
// holds the ordered item list, the ownership registry and the argument
// checker.
//
// Scoped constructs run the caller's body between an Open and a Close. A
// body that returns an error leaves no trace: items and registrations made
// since the scope opened are discarded.
package diagram
