// Package registry holds named validators for schema definition files.
package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/aretw0/envschema/pkg/schema"
)

// Registry manages the available type names.
// It implements schema.TypeResolver and is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	types map[string]schema.Validator
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		types: make(map[string]schema.Validator),
	}
}

// Default creates a registry preloaded with the built-in type names.
func Default() *Registry {
	r := NewRegistry()
	for _, name := range schema.TypeNames() {
		v, _ := schema.ParseType(name)
		r.Register(name, v)
	}
	return r
}

// Register adds a validator under name. Names are case-insensitive.
// If a validator with the same name exists, it is overwritten.
func (r *Registry) Register(name string, v schema.Validator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[normalize(name)] = v
}

// Lookup returns the validator registered under name.
// List names such as "[port]" resolve to schema.List of the element type.
func (r *Registry) Lookup(name string) (schema.Validator, bool) {
	if elem, ok := schema.ListElem(strings.TrimSpace(name)); ok {
		v, found := r.Lookup(elem)
		if !found {
			return nil, false
		}
		return schema.List(v), true
	}

	r.mu.RLock()
	v, ok := r.types[normalize(name)]
	r.mu.RUnlock()
	return v, ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
