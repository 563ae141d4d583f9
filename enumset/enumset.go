package enumset

import (
	"strings"
	"sync"
)

// Set is a named, immutable set of canonical enum member strings with
// case-insensitive resolution from input strings.
type Set struct {
	name    string
	members []string
	index   map[string]string
}

// New creates a Set with the given canonical members. Member order is
// preserved; duplicate members (case-insensitively) keep the first spelling.
func New(name string, members ...string) *Set {
	s := &Set{
		name:  name,
		index: make(map[string]string, len(members)),
	}
	for _, m := range members {
		key := strings.ToLower(m)
		if _, ok := s.index[key]; ok {
			continue
		}
		s.index[key] = m
		s.members = append(s.members, m)
	}
	return s
}

// Name returns the set's name.
func (s *Set) Name() string { return s.name }

// Values returns the canonical members in declaration order.
func (s *Set) Values() []string {
	out := make([]string, len(s.members))
	copy(out, s.members)
	return out
}

// Resolve maps an input string to its canonical member spelling.
// Matching is case-insensitive. It reports false if the input is not a
// member.
func (s *Set) Resolve(value string) (string, bool) {
	canonical, ok := s.index[strings.ToLower(value)]
	return canonical, ok
}

// Contains reports whether value resolves to a member of the set.
func (s *Set) Contains(value string) bool {
	_, ok := s.Resolve(value)
	return ok
}

// registry is the global named-set registry.
var (
	mu       sync.RWMutex
	registry = make(map[string]*Set)
)

// Register adds a set to the global registry under its name, replacing any
// previous registration.
func Register(s *Set) {
	mu.Lock()
	defer mu.Unlock()
	registry[s.name] = s
}

// Lookup returns the registered set with the given name, or nil.
func Lookup(name string) *Set {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// Clear resets the global registry. This is primarily useful for testing.
func Clear() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]*Set)
}
