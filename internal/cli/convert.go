// Package cli implements the command logic behind the giraffe binary,
// kept separate from the cobra wiring so it can be tested directly.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/giraffe-cad/giraffe/internal/logging"
	"github.com/giraffe-cad/giraffe/internal/presentation/sofistik"
	"github.com/giraffe-cad/giraffe/internal/presentation/tui"
	"github.com/giraffe-cad/giraffe/internal/source"
	"github.com/giraffe-cad/giraffe/pkg/model"
)

// ConvertOptions configures the convert command.
type ConvertOptions struct {
	InputPath  string
	OutputPath string // derived from InputPath when empty
	ModelName  string // overrides the document's model name
	Units      string // overrides the document's units
	Quiet      bool
	Debug      bool

	// Stdout receives the human-facing report; defaults to os.Stdout.
	Stdout io.Writer
}

// Convert reads a site document, assembles the structural model and
// writes the SOFiSTiK export next to the input (or to OutputPath).
func Convert(opts ConvertOptions) error {
	log := logging.New(opts.Debug)
	out := opts.Stdout
	if out == nil {
		out = os.Stdout
	}
	report := tui.NewReporter(out, opts.Quiet)
	report.Banner()

	m, err := buildModel(opts.InputPath, opts.ModelName, opts.Units)
	if err != nil {
		return err
	}
	log.Debug("model assembled", "entities", m.EntityCount(), "warnings", len(m.Warnings()))

	outPath := opts.OutputPath
	if outPath == "" {
		outPath = DeriveOutputPath(opts.InputPath)
	}

	if err := os.WriteFile(outPath, []byte(sofistik.Render(m)), 0o644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	report.Summary(m)
	report.Warnings(m.Warnings())
	report.Done(outPath)

	return nil
}

// DeriveOutputPath replaces the input's extension with .dat.
func DeriveOutputPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".dat"
}

func buildModel(inputPath, name, units string) (*model.StructuralModel, error) {
	doc, err := source.Load(inputPath)
	if err != nil {
		return nil, err
	}
	return doc.Build(name, model.Unit(units))
}
