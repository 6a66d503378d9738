package ports

// ValueSource supplies raw variable values to the resolver.
type ValueSource interface {
	// Lookup returns the raw value of the variable name. key is the schema
	// key the name was derived from, for sources that want it.
	// ok is false when the variable is absent.
	Lookup(name, key string) (value any, ok bool)
}

// ValueSourceFunc adapts a plain function to a ValueSource.
type ValueSourceFunc func(name, key string) (any, bool)

// Lookup calls f(name, key).
func (f ValueSourceFunc) Lookup(name, key string) (any, bool) {
	return f(name, key)
}
