package envschema

import (
	"log/slog"

	"github.com/aretw0/envschema/internal/resolver"
	"github.com/aretw0/envschema/pkg/adapters/env"
	"github.com/aretw0/envschema/pkg/domain"
	"github.com/aretw0/envschema/pkg/naming"
	"github.com/aretw0/envschema/pkg/ports"
	"github.com/aretw0/envschema/pkg/schema"
)

// Result is the resolved configuration, shaped like its schema: leaves hold
// coerced values and nested schemas hold nested Results.
type Result map[string]any

// Lookup walks path through nested results.
func (r Result) Lookup(path ...string) (any, bool) {
	var cur any = map[string]any(r)
	for _, key := range path {
		m, ok := asMap(cur)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Result:
		return m, true
	}
	return nil, false
}

// Binding describes the variable a schema leaf reads.
type Binding = domain.Binding

// ErrorHandler receives the name of a missing or invalid variable.
// Returning an error aborts resolution with that error; returning nil keeps
// going and stores the validator's partial value.
type ErrorHandler = resolver.ErrorHandler

type config struct {
	source    ports.ValueSource
	formatter naming.Formatter
	prefix    string
	onError   ErrorHandler
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
}

// Option defines a functional option for configuring resolution.
type Option func(*config)

// WithValueSource sets where values are read from. Default: the process environment.
func WithValueSource(src ports.ValueSource) Option {
	return func(c *config) {
		c.source = src
	}
}

// WithValueSourceFunc is WithValueSource for a plain function.
func WithValueSourceFunc(fn func(name, key string) (any, bool)) Option {
	return func(c *config) {
		c.source = ports.ValueSourceFunc(fn)
	}
}

// WithNameFormatter sets how keys become variable names. Default: naming.UpperSnake.
func WithNameFormatter(f naming.Formatter) Option {
	return func(c *config) {
		c.formatter = f
	}
}

// WithPrefix prepends prefix (e.g. "MYAPP_") to every derived variable
// name. Nested names get it once; overrides never do.
func WithPrefix(prefix string) Option {
	return func(c *config) {
		c.prefix = prefix
	}
}

// WithErrorHandler sets the policy for missing or invalid values.
// Default: fail with a *schema.ValueError.
func WithErrorHandler(h ErrorHandler) Option {
	return func(c *config) {
		c.onError = h
	}
}

// WithLogger sets a structured logger for resolution steps.
// Variable names are logged; values never are.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *config) {
		c.hooks = hooks
	}
}

func newEngine(opts []Option) *resolver.Engine {
	c := &config{source: env.New()}
	for _, opt := range opts {
		opt(c)
	}
	return resolver.New(resolver.Options{
		Source:    c.source,
		Formatter: c.formatter,
		Prefix:    c.prefix,
		OnError:   c.onError,
		Hooks:     c.hooks,
		Logger:    c.logger,
	})
}

// Resolve reads every variable named by s and returns the coerced values.
// A malformed schema yields a *schema.SchemaError before any value is read.
func Resolve(s schema.Schema, opts ...Option) (Result, error) {
	out, err := newEngine(opts).Resolve(s)
	if err != nil {
		return nil, err
	}
	return toResult(s, out), nil
}

// MustResolve is like Resolve but panics on error.
// It is meant for package-level configuration initialized at startup.
func MustResolve(s schema.Schema, opts ...Option) Result {
	r, err := Resolve(s, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Variables lists the variable each leaf of s reads, in key order.
// No value is read.
func Variables(s schema.Schema, opts ...Option) ([]Binding, error) {
	return newEngine(opts).Plan(s)
}

// toResult wraps the maps produced for nested schemas. Map values coming
// from leaves, such as decoded JSON objects, keep their type.
func toResult(s schema.Schema, m map[string]any) Result {
	r := make(Result, len(m))
	for k, v := range m {
		if nested, ok := s[k].(schema.Schema); ok {
			if child, ok := v.(map[string]any); ok {
				r[k] = toResult(nested, child)
				continue
			}
		}
		r[k] = v
	}
	return r
}
