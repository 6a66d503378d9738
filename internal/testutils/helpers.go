package testutils

import (
	"sync"

	"github.com/aretw0/envschema/pkg/adapters/memory"
)

// RecordingSource wraps a memory source and records every lookup.
type RecordingSource struct {
	*memory.Source

	mu      sync.Mutex
	queries []Query
}

// Query is one recorded lookup.
type Query struct {
	Name string
	Key  string
}

// NewRecordingSource creates a recording source over values.
func NewRecordingSource(values map[string]string) *RecordingSource {
	return &RecordingSource{Source: memory.FromStrings(values)}
}

// Lookup records the call and delegates to the wrapped source.
func (r *RecordingSource) Lookup(name, key string) (any, bool) {
	r.mu.Lock()
	r.queries = append(r.queries, Query{Name: name, Key: key})
	r.mu.Unlock()
	return r.Source.Lookup(name, key)
}

// Queries returns the recorded lookups in call order.
func (r *RecordingSource) Queries() []Query {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Query(nil), r.queries...)
}

// Names returns the queried variable names in call order.
func (r *RecordingSource) Names() []string {
	var names []string
	for _, q := range r.Queries() {
		names = append(names, q.Name)
	}
	return names
}
