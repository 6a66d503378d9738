package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/envschema/pkg/domain"
)

// Overlay marks resolution outcomes on the graph.
type Overlay struct {
	Failed []string
}

// GenerateMermaid produces a Mermaid flowchart of a schema from its bindings.
// It applies semantic styling:
// - Root: ((Circle))
// - Nested schema: [Rectangle]
// - Derived variable: ([Stadium])
// - Override: [[Subroutine]]
// Failed variables from the overlay are highlighted.
func GenerateMermaid(bindings []domain.Binding, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")
	sb.WriteString("    root((\"schema\"))\n")

	groups := make(map[string]bool)
	for _, b := range bindings {
		parent := "root"
		parts := strings.Split(b.Path, ".")
		for i := 0; i < len(parts)-1; i++ {
			groupPath := strings.Join(parts[:i+1], ".")
			groupID := sanitizeMermaidID("g_" + groupPath)
			if !groups[groupPath] {
				groups[groupPath] = true
				sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", groupID, parts[i]))
				sb.WriteString(fmt.Sprintf("    %s --> %s\n", parent, groupID))
			}
			parent = groupID
		}

		leafID := sanitizeMermaidID("v_" + b.Path)
		opener, closer := "([", "])"
		arrow := "-->"
		if b.Override {
			opener, closer = "[[", "]]"
			arrow = "-.->"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s <br/> %s\"%s\n", leafID, opener, b.Key, b.Variable, closer))
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", parent, arrow, leafID))
	}

	if overlay != nil && len(overlay.Failed) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef failed fill:#fee2e2,stroke:#b91c1c,stroke-width:2px,color:#000;\n")

		failed := make(map[string]bool, len(overlay.Failed))
		for _, v := range overlay.Failed {
			failed[v] = true
		}
		for _, b := range bindings {
			if failed[b.Variable] {
				sb.WriteString(fmt.Sprintf("    class %s failed;\n", sanitizeMermaidID("v_"+b.Path)))
			}
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
