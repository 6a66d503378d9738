package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/envschema"
)

// Output formats for Resolve.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatDump = "dump"
)

// ResolveOptions configures the resolve command.
type ResolveOptions struct {
	Options
	Format string
	// Reveal prints values of secret-looking keys instead of masking them.
	Reveal bool
}

// Resolve resolves the schema, failing on the first bad variable, and
// writes the result in the requested format.
func Resolve(opts ResolveOptions, w io.Writer) error {
	s, envOpts, err := setup(opts.Options)
	if err != nil {
		return err
	}

	cfg, err := envschema.Resolve(s, envOpts...)
	if err != nil {
		return err
	}

	out := printable(cfg).(map[string]any)
	if !opts.Reveal {
		bindings, err := envschema.Variables(s, envOpts...)
		if err != nil {
			return err
		}
		out = newMasker(DefaultSecretPatterns, bindings...).mask(out)
	}

	switch opts.Format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	case FormatDump:
		cs := spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true}
		if opts.Reveal {
			cs.Fdump(w, cfg)
		} else {
			cs.Fdump(w, out)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", opts.Format, FormatJSON, FormatYAML, FormatDump)
	}
}

// printable converts coerced values into their text forms for encoding.
func printable(v any) any {
	switch t := v.(type) {
	case envschema.Result:
		return printable(map[string]any(t))
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, child := range t {
			out[k] = printable(child)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, child := range t {
			out[i] = printable(child)
		}
		return out
	case *url.URL:
		return t.String()
	case time.Duration:
		return t.String()
	case time.Time:
		return t.Format(time.RFC3339Nano)
	}
	return v
}
