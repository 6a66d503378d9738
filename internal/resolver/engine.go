// Package resolver walks a schema, reads each variable from a value source
// and assembles the coerced result tree.
package resolver

import (
	"log/slog"

	"github.com/aretw0/envschema/internal/logging"
	"github.com/aretw0/envschema/pkg/domain"
	"github.com/aretw0/envschema/pkg/naming"
	"github.com/aretw0/envschema/pkg/ports"
	"github.com/aretw0/envschema/pkg/schema"
)

// ErrorHandler is called with the variable name when a value is missing or
// invalid. A non-nil return aborts resolution and is returned as is; nil
// stores the validator's partial value and continues.
type ErrorHandler func(variable string) error

// Options parameterize an Engine. Zero fields take defaults.
//
// Source is the only place values are read from; nil reports every variable
// absent. Prefix is prepended to derived names once, at the top level, and
// is ignored by overrides.
type Options struct {
	Source    ports.ValueSource
	Formatter naming.Formatter
	Prefix    string
	OnError   ErrorHandler
	Hooks     domain.LifecycleHooks
	Logger    *slog.Logger
}

// Engine resolves schemas. It holds no state between calls.
type Engine struct {
	source    ports.ValueSource
	formatter naming.Formatter
	prefix    string
	onError   ErrorHandler
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
}

// New creates an engine, filling unset options with defaults.
func New(opts Options) *Engine {
	e := &Engine{
		source:    opts.Source,
		formatter: opts.Formatter,
		prefix:    opts.Prefix,
		onError:   opts.OnError,
		hooks:     opts.Hooks,
		logger:    opts.Logger,
	}
	if e.source == nil {
		e.source = ports.ValueSourceFunc(func(string, string) (any, bool) { return nil, false })
	}
	if e.formatter == nil {
		e.formatter = naming.UpperSnake
	}
	if e.onError == nil {
		e.onError = Fail
	}
	if e.logger == nil {
		e.logger = logging.NewNop()
	}
	return e
}

// Fail is the default ErrorHandler: it always returns a *schema.ValueError.
func Fail(variable string) error {
	return &schema.ValueError{Variable: variable}
}

// Resolve checks the shape of s, then resolves every leaf in key order.
// Shape errors are returned before the source is queried.
func (e *Engine) Resolve(s schema.Schema) (map[string]any, error) {
	if err := schema.Check(s); err != nil {
		return nil, err
	}
	return e.resolve(s, e.prefix, "")
}

func (e *Engine) resolve(s schema.Schema, prefix, path string) (map[string]any, error) {
	out := make(map[string]any, len(s))
	for _, key := range s.Keys() {
		at := schema.JoinPath(path, key)

		switch leaf := s[key].(type) {
		case schema.Validator:
			b := domain.Binding{Path: at, Key: key, Variable: prefix + e.formatter(key)}
			v, err := e.resolveLeaf(b, leaf)
			if err != nil {
				return nil, err
			}
			out[key] = v
		case schema.Override:
			b := domain.Binding{Path: at, Key: key, Variable: leaf.Name, Override: true}
			v, err := e.resolveLeaf(b, leaf.Validator)
			if err != nil {
				return nil, err
			}
			out[key] = v
		case schema.Schema:
			child, err := e.resolve(leaf, prefix+e.formatter(key)+"_", at)
			if err != nil {
				return nil, err
			}
			out[key] = child
		}
	}
	return out, nil
}

func (e *Engine) resolveLeaf(b domain.Binding, v schema.Validator) (any, error) {
	raw, ok := e.source.Lookup(b.Variable, b.Key)
	if !ok {
		raw = nil
	}

	res := v(raw)
	e.hooks.Emit(domain.NewVariableEvent(b, res.OK))
	if res.OK {
		e.logger.Debug("variable resolved", "variable", b.Variable, "path", b.Path)
		return res.Value, nil
	}

	e.logger.Debug("variable missing or invalid", "variable", b.Variable, "path", b.Path, "present", ok)
	if err := e.onError(b.Variable); err != nil {
		return nil, err
	}
	return res.Value, nil
}

// Plan lists the variable each leaf of s reads, in key order, without
// querying the source.
func (e *Engine) Plan(s schema.Schema) ([]domain.Binding, error) {
	if err := schema.Check(s); err != nil {
		return nil, err
	}
	var out []domain.Binding
	e.plan(s, e.prefix, "", &out)
	return out, nil
}

func (e *Engine) plan(s schema.Schema, prefix, path string, out *[]domain.Binding) {
	for _, key := range s.Keys() {
		at := schema.JoinPath(path, key)
		switch leaf := s[key].(type) {
		case schema.Validator:
			*out = append(*out, domain.Binding{Path: at, Key: key, Variable: prefix + e.formatter(key)})
		case schema.Override:
			*out = append(*out, domain.Binding{Path: at, Key: key, Variable: leaf.Name, Override: true})
		case schema.Schema:
			e.plan(leaf, prefix+e.formatter(key)+"_", at, out)
		}
	}
}
