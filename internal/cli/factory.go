package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/envschema"
	"github.com/aretw0/envschema/internal/logging"
	"github.com/aretw0/envschema/pkg/adapters/chain"
	"github.com/aretw0/envschema/pkg/adapters/env"
	"github.com/aretw0/envschema/pkg/adapters/file"
	"github.com/aretw0/envschema/pkg/domain"
	"github.com/aretw0/envschema/pkg/observability"
	"github.com/aretw0/envschema/pkg/ports"
	"github.com/aretw0/envschema/pkg/registry"
	"github.com/aretw0/envschema/pkg/schema"
)

// LoadSchema reads a YAML or JSON schema definition using the default type registry.
func LoadSchema(path string) (schema.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}
	s, err := schema.Parse(data, registry.Default())
	if err != nil {
		return nil, fmt.Errorf("invalid schema %s: %w", path, err)
	}
	return s, nil
}

// BuildSource layers the process environment over the env files, in flag order.
// The process environment wins, matching how dotenv loaders treat variables already set.
func BuildSource(opts Options) (ports.ValueSource, error) {
	var sources []ports.ValueSource
	if !opts.NoProcessEnv {
		sources = append(sources, env.New())
	}
	for _, path := range opts.EnvFiles {
		src, err := file.Open(path)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return chain.New(sources...), nil
}

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from Stdout output).
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(logging.Level(debug))
	}
	return logging.NewNop()
}

// setup loads the schema and builds the resolution options for a command.
func setup(opts Options, hooks ...domain.LifecycleHooks) (schema.Schema, []envschema.Option, error) {
	path := opts.SchemaPath
	if path == "" {
		path = DefaultSchemaPath
	}
	s, err := LoadSchema(path)
	if err != nil {
		return nil, nil, err
	}

	src, err := BuildSource(opts)
	if err != nil {
		return nil, nil, err
	}

	logger := createLogger(opts.Debug)
	if opts.Debug {
		hooks = append(hooks, observability.LogHooks(logger))
	}

	return s, []envschema.Option{
		envschema.WithValueSource(src),
		envschema.WithPrefix(opts.Prefix),
		envschema.WithLogger(logger),
		envschema.WithLifecycleHooks(observability.Combine(hooks...)),
	}, nil
}
