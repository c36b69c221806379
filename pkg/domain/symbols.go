package domain

import "fmt"

// Symbols maps the values of one option enum to their grammar tokens.
type Symbols[T comparable] map[T]string

// Lookup returns the token for v.
func (s Symbols[T]) Lookup(v T) (string, bool) {
	tok, ok := s[v]
	return tok, ok
}

// MustLookup returns the token for v and panics when the table has no entry,
// which means the table is missing a value of its enum.
func (s Symbols[T]) MustLookup(v T) string {
	tok, ok := s[v]
	if !ok {
		panic(fmt.Sprintf("unsupported option %v (%T)", v, v))
	}
	return tok
}
