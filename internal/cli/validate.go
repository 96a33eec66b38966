package cli

import (
	"errors"
	"io"
	"os"

	"github.com/giraffe-cad/giraffe/internal/presentation/tui"
)

// ErrWarnings is returned by Validate in strict mode when the document
// produced diagnostics.
var ErrWarnings = errors.New("document produced warnings")

// ValidateOptions configures the validate command.
type ValidateOptions struct {
	InputPath string
	ModelName string
	Units     string
	Strict    bool
	Quiet     bool

	Stdout io.Writer
}

// Validate assembles the model without writing any output, surfacing
// every diagnostic the conversion would embed in the export. Numbering
// conflicts are not fatal, so the command fails only on malformed input
// or, in strict mode, on any warning at all.
func Validate(opts ValidateOptions) error {
	out := opts.Stdout
	if out == nil {
		out = os.Stdout
	}
	report := tui.NewReporter(out, opts.Quiet)

	m, err := buildModel(opts.InputPath, opts.ModelName, opts.Units)
	if err != nil {
		return err
	}

	report.Summary(m)
	report.Warnings(m.Warnings())

	if opts.Strict && len(m.Warnings()) > 0 {
		return ErrWarnings
	}
	return nil
}
