// Package memory provides a map-backed value source, useful for tests and
// for layering values read from files.
package memory

import (
	"sort"
	"sync"
)

// Source implements ports.ValueSource using an in-memory map.
// Safe for concurrent use.
type Source struct {
	mu     sync.RWMutex
	values map[string]any
}

// New creates a Source holding a copy of values.
func New(values map[string]any) *Source {
	copied := make(map[string]any, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &Source{values: copied}
}

// FromStrings creates a Source from string values, the shape of an
// environment snapshot.
func FromStrings(values map[string]string) *Source {
	copied := make(map[string]any, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &Source{values: copied}
}

// Lookup returns the value stored under name.
func (s *Source) Lookup(name, _ string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[name]
	return v, ok
}

// Set stores value under name.
func (s *Source) Set(name string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[name] = value
}

// Keys returns all variable names, sorted.
func (s *Source) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys) // Deterministic order
	return keys
}

// Len returns the number of variables held.
func (s *Source) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
