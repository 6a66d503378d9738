package cli

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/envschema"
	"github.com/aretw0/envschema/internal/presentation/report"
	"github.com/aretw0/envschema/pkg/observability"
)

// CheckOptions configures the check command.
type CheckOptions struct {
	Options
	// MetricsFile, when set, receives the resolution metrics in the
	// node_exporter textfile format.
	MetricsFile string
}

// Check resolves every variable, reporting all failures instead of stopping
// at the first. It returns an error listing the failed variables, if any.
func Check(opts CheckOptions, w io.Writer) error {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	s, envOpts, err := setup(opts.Options, metrics.Hooks())
	if err != nil {
		return err
	}

	bindings, err := envschema.Variables(s, envOpts...)
	if err != nil {
		return err
	}

	collector := envschema.NewErrorCollector()
	envOpts = append(envOpts, envschema.WithErrorHandler(collector.Handle))
	if _, err := envschema.Resolve(s, envOpts...); err != nil {
		return err
	}

	report.NewPrinter(w, useColor(w)).Print(report.Entries(bindings, collector.Variables()))

	if opts.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(opts.MetricsFile, reg); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	return collector.Err()
}
