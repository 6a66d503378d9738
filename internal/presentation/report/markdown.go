package report

import (
	"fmt"
	"strings"

	"github.com/aretw0/envschema/pkg/domain"
)

// Markdown documents the variables read by a schema as a markdown table.
func Markdown(title string, bindings []domain.Binding) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", title)
	if len(bindings) == 0 {
		sb.WriteString("_No variables._\n")
		return sb.String()
	}

	sb.WriteString("| Variable | Key | Name |\n")
	sb.WriteString("|---|---|---|\n")
	for _, b := range bindings {
		naming := "derived"
		if b.Override {
			naming = "override"
		}
		fmt.Fprintf(&sb, "| `%s` | %s | %s |\n", b.Variable, escape(b.Path), naming)
	}
	return sb.String()
}

// Dotenv writes a .env template with every variable left empty.
func Dotenv(bindings []domain.Binding) string {
	var sb strings.Builder
	for _, b := range bindings {
		fmt.Fprintf(&sb, "# %s\n%s=\n", b.Path, b.Variable)
	}
	return sb.String()
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
