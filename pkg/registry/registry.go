// Package registry tracks which references belong to a diagram builder.
package registry

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/aretw0/mermaidkit/pkg/domain"
)

// Counter hands out identifiers. A single counter is shared by a builder
// and every scope nested inside it.
type Counter struct {
	next uint64
}

// Next returns a fresh identifier. Exhausting the identifier space panics.
func (c *Counter) Next() domain.ID {
	id, err := safecast.Conv[uint32](c.next)
	if err != nil {
		panic(fmt.Sprintf("registry: identifier space exhausted: %v", err))
	}
	c.next++
	return domain.ID(id)
}

// Registry is the set of references created within one builder scope.
// It is not safe for concurrent use.
type Registry struct {
	counter *Counter
	refs    []domain.Ref
	index   map[domain.Ref]struct{}
}

// New creates an empty registry with its own counter.
func New() *Registry {
	return &Registry{
		counter: &Counter{},
		index:   make(map[domain.Ref]struct{}),
	}
}

// Isolated creates an empty registry that shares r's counter, so identifiers
// stay unique across both while ownership does not.
func (r *Registry) Isolated() *Registry {
	return &Registry{
		counter: r.counter,
		index:   make(map[domain.Ref]struct{}),
	}
}

// NextID allocates an identifier from the shared counter.
func (r *Registry) NextID() domain.ID {
	return r.counter.Next()
}

// Register adds ref to the set.
// Registering the same reference twice has no effect.
func (r *Registry) Register(ref domain.Ref) {
	if _, ok := r.index[ref]; ok {
		return
	}
	r.index[ref] = struct{}{}
	r.refs = append(r.refs, ref)
}

// Owns reports whether ref was registered here.
func (r *Registry) Owns(ref domain.Ref) bool {
	if ref == nil {
		return false
	}
	_, ok := r.index[ref]
	return ok
}

// Len returns the number of registered references.
func (r *Registry) Len() int {
	return len(r.refs)
}

// Truncate forgets every reference registered after the first n.
// Identifiers already handed out are not reclaimed.
func (r *Registry) Truncate(n int) {
	if n < 0 || n >= len(r.refs) {
		return
	}
	for _, ref := range r.refs[n:] {
		delete(r.index, ref)
	}
	clear(r.refs[n:])
	r.refs = r.refs[:n]
}

// Absorb registers every reference of child in r.
func (r *Registry) Absorb(child *Registry) {
	for _, ref := range child.refs {
		r.Register(ref)
	}
}
