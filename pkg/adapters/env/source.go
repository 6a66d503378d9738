// Package env reads variables from the process environment.
package env

import "os"

// Source implements ports.ValueSource over os.LookupEnv.
// This is the default source when no other is configured.
type Source struct{}

// New creates a process environment source.
func New() Source {
	return Source{}
}

// Lookup retrieves the environment variable name.
// A variable set to the empty string is present.
func (Source) Lookup(name, _ string) (any, bool) {
	v, ok := os.LookupEnv(name)
	if !ok {
		return nil, false
	}
	return v, true
}
