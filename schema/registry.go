package schema

import (
	"sync"
)

// Registry guarantees at-most-once composition per record type name.
//
// The zero Registry is ready to use. Compose follows the double-checked
// locking discipline: a read-locked fast path for already-built definitions,
// then the write lock, a re-check, and the build. Two concurrent first-time
// compositions for the same type observe exactly one complete Definition;
// once built, lookups never see a partial schema.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]*Definition
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*Definition)}
}

// Compose builds the Definition for the builder's type name, unless one was
// already composed, in which case the existing Definition is returned
// unchanged. A failed build leaves no trace, so composition can be retried
// after fixing the declaration.
func (r *Registry) Compose(b *Builder) (*Definition, error) {
	r.mu.RLock()
	d := r.defs[b.name]
	r.mu.RUnlock()
	if d != nil {
		return d, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if d := r.defs[b.name]; d != nil {
		return d, nil
	}
	d, err := b.Build()
	if err != nil {
		return nil, err
	}
	if r.defs == nil {
		r.defs = make(map[string]*Definition)
	}
	r.defs[b.name] = d
	return d, nil
}

// Lookup returns the composed Definition for a type name, or nil if the
// type was never composed.
func (r *Registry) Lookup(name string) *Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defs[name]
}

// Clear drops every composed definition. This is primarily useful for
// testing.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defs = make(map[string]*Definition)
}

// defaultRegistry backs the package-level composition functions.
var defaultRegistry = NewRegistry()

// Compose composes the builder's type in the package-level registry.
func Compose(b *Builder) (*Definition, error) {
	return defaultRegistry.Compose(b)
}

// Lookup returns a Definition from the package-level registry, or nil.
func Lookup(name string) *Definition {
	return defaultRegistry.Lookup(name)
}

// Clear resets the package-level registry. This is primarily useful for
// testing.
func Clear() {
	defaultRegistry.Clear()
}
