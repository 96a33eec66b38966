// Package tui renders the conversion banner and summary on the
// terminal. Colors degrade automatically when stdout is not a TTY.
package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/giraffe-cad/giraffe/pkg/model"
)

// Reporter writes human-facing conversion feedback.
type Reporter struct {
	out     io.Writer
	profile termenv.Profile
	quiet   bool
}

// NewReporter creates a reporter for w. Quiet reporters only surface
// warnings.
func NewReporter(w io.Writer, quiet bool) *Reporter {
	return &Reporter{
		out:     w,
		profile: termenv.NewOutput(w).ColorProfile(),
		quiet:   quiet,
	}
}

// Banner prints the tool banner.
func (r *Reporter) Banner() {
	if r.quiet {
		return
	}
	s := termenv.String(" Giraffe — structural model exporter ").
		Foreground(r.profile.Color("#f59e0b")).
		Bold()
	fmt.Fprintf(r.out, "\n%s\n\n", s)
}

// Summary prints entity counts for a populated model.
func (r *Reporter) Summary(m *model.StructuralModel) {
	if r.quiet {
		return
	}

	fmt.Fprintf(r.out, "  %s %d\n", r.label("nodes"), m.Nodes().Len())
	for _, reg := range m.LineRegistries() {
		fmt.Fprintf(r.out, "  %s %d\n", r.label(reg.Kind().Plural()), reg.Len())
	}
}

// Warnings prints each diagnostic on its own highlighted line. Warnings
// print even in quiet mode; they are the one thing a caller must see.
func (r *Reporter) Warnings(warnings []string) {
	for _, w := range warnings {
		line := termenv.String("  warning: " + w).
			Foreground(r.profile.Color("#eab308"))
		fmt.Fprintln(r.out, line)
	}
}

// Done prints the output location.
func (r *Reporter) Done(path string) {
	if r.quiet {
		return
	}
	s := termenv.String(path).Foreground(r.profile.Color("#22c55e"))
	fmt.Fprintf(r.out, "\n  wrote %s\n", s)
}

func (r *Reporter) label(s string) string {
	return termenv.String(fmt.Sprintf("%-8s", s)).Faint().String()
}
