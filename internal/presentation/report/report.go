// Package report formats resolution outcomes for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/envschema/pkg/domain"
)

// Entry is one line of a check report.
type Entry struct {
	domain.Binding
	Valid bool
}

// Entries pairs bindings with the set of failed variable names.
func Entries(bindings []domain.Binding, failed []string) []Entry {
	bad := make(map[string]bool, len(failed))
	for _, v := range failed {
		bad[v] = true
	}
	out := make([]Entry, len(bindings))
	for i, b := range bindings {
		out[i] = Entry{Binding: b, Valid: !bad[b.Variable]}
	}
	return out
}

// Printer writes check reports, colored when its output supports it.
type Printer struct {
	out *termenv.Output
}

// NewPrinter creates a printer on w. With color false output is plain text.
func NewPrinter(w io.Writer, color bool) *Printer {
	profile := termenv.Ascii
	if color {
		profile = termenv.ANSI256
	}
	return &Printer{out: termenv.NewOutput(w, termenv.WithProfile(profile))}
}

// Print writes one line per entry followed by a summary.
// It returns the number of failed entries.
func (p *Printer) Print(entries []Entry) int {
	width := 0
	for _, e := range entries {
		width = max(width, len(e.Variable))
	}

	failed := 0
	for _, e := range entries {
		mark := p.out.String("✔").Foreground(p.out.Color("#22c55e"))
		if !e.Valid {
			failed++
			mark = p.out.String("✘").Foreground(p.out.Color("#ef4444"))
		}
		name := e.Variable + strings.Repeat(" ", width-len(e.Variable))
		path := p.out.String(e.Path).Faint()
		if e.Override {
			path = p.out.String(e.Path + " (override)").Faint()
		}
		fmt.Fprintf(p.out, "%s %s  %s\n", mark, name, path)
	}

	summary := fmt.Sprintf("%d variables, %d missing or invalid", len(entries), failed)
	if failed == 0 {
		fmt.Fprintln(p.out, p.out.String(summary).Bold().Foreground(p.out.Color("#22c55e")))
	} else {
		fmt.Fprintln(p.out, p.out.String(summary).Bold().Foreground(p.out.Color("#ef4444")))
	}
	return failed
}
