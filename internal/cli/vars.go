package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/envschema"
	"github.com/aretw0/envschema/internal/presentation/graph"
	"github.com/aretw0/envschema/internal/presentation/report"
)

// Vars lists the variables read by the schema. With dotenv it writes a
// .env template instead. No value is read.
func Vars(opts Options, dotenv bool, w io.Writer) error {
	s, envOpts, err := setup(opts)
	if err != nil {
		return err
	}
	bindings, err := envschema.Variables(s, envOpts...)
	if err != nil {
		return err
	}

	if dotenv {
		_, err = io.WriteString(w, report.Dotenv(bindings))
		return err
	}
	for _, b := range bindings {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", b.Variable, b.Path); err != nil {
			return err
		}
	}
	return nil
}

// Docs writes a markdown table of the schema's variables, rendered for the
// terminal when render is true.
func Docs(opts Options, title string, render bool, w io.Writer) error {
	s, envOpts, err := setup(opts)
	if err != nil {
		return err
	}
	bindings, err := envschema.Variables(s, envOpts...)
	if err != nil {
		return err
	}

	md := report.Markdown(title, bindings)
	if render {
		if md, err = report.NewRenderer()(md); err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, md)
	return err
}

// Graph writes a Mermaid diagram of the schema. With overlay, variables
// that are currently missing or invalid are highlighted.
func Graph(opts Options, overlay bool, w io.Writer) error {
	s, envOpts, err := setup(opts)
	if err != nil {
		return err
	}
	bindings, err := envschema.Variables(s, envOpts...)
	if err != nil {
		return err
	}

	var ov *graph.Overlay
	if overlay {
		collector := envschema.NewErrorCollector()
		if _, err := envschema.Resolve(s, append(envOpts, envschema.WithErrorHandler(collector.Handle))...); err != nil {
			return err
		}
		ov = &graph.Overlay{Failed: collector.Variables()}
	}

	_, err = io.WriteString(w, graph.GenerateMermaid(bindings, ov))
	return err
}

// RenderDocs reports whether docs written to w should be rendered.
func RenderDocs(w io.Writer) bool {
	return IsTerminal(w)
}
