// Package chain layers several value sources into one.
package chain

import "github.com/aretw0/envschema/pkg/ports"

// Source consults its sources in order; the first one holding the variable wins.
type Source struct {
	sources []ports.ValueSource
}

// New creates a layered source. Nil sources are skipped.
func New(sources ...ports.ValueSource) *Source {
	kept := make([]ports.ValueSource, 0, len(sources))
	for _, s := range sources {
		if s != nil {
			kept = append(kept, s)
		}
	}
	return &Source{sources: kept}
}

// Lookup returns the value from the first source reporting it present.
func (c *Source) Lookup(name, key string) (any, bool) {
	for _, s := range c.sources {
		if v, ok := s.Lookup(name, key); ok {
			return v, true
		}
	}
	return nil, false
}

// Len returns the number of layered sources.
func (c *Source) Len() int { return len(c.sources) }
