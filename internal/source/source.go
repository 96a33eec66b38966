// Package source reads site documents: YAML files describing a CAD
// layer tree with the points and curves sitting on each layer. It is
// the concrete geometry/metadata provider behind the model assembler.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/giraffe-cad/giraffe/pkg/domain"
	"github.com/giraffe-cad/giraffe/pkg/model"
)

// DefaultModelName is used when a document does not name its model.
const DefaultModelName = "structure"

var (
	// ErrNoGeometry marks an object record carrying neither a point
	// nor a line.
	ErrNoGeometry = errors.New("object has no geometry")
	// ErrBadCoordinate marks a coordinate triple of the wrong arity.
	ErrBadCoordinate = errors.New("coordinate must have exactly three components")
	// ErrHalfLine marks a line record missing one of its endpoints.
	ErrHalfLine = errors.New("line needs both start and end")
)

// LayerGeometry is one provenance unit with its geometry records, in
// document order.
type LayerGeometry struct {
	Layer   *domain.Layer
	Objects []model.Object
}

// Document is a fully parsed site document. Layer order is the
// ingestion order and is significant.
type Document struct {
	Name   string
	Unit   model.Unit
	Layers []LayerGeometry
}

type rawDocument struct {
	Model  string     `yaml:"model"`
	Units  string     `yaml:"units"`
	Layers []rawLayer `yaml:"layers"`
}

type rawLayer struct {
	Path string `yaml:"path"`
	// Objects are free-form maps; the known keys are decoded with
	// mapstructure and unknown ones are tolerated.
	Objects []map[string]any `yaml:"objects"`
}

type rawObject struct {
	Label string    `mapstructure:"label"`
	Point []float64 `mapstructure:"point"`
	Line  *rawLine  `mapstructure:"line"`
}

type rawLine struct {
	Start []float64 `mapstructure:"start"`
	End   []float64 `mapstructure:"end"`
}

// Load reads and parses the site document at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open site document: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses a site document from r.
func Read(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read site document: %w", err)
	}

	var raw rawDocument
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse site document: %w", err)
	}

	doc := &Document{
		Name: raw.Model,
		Unit: model.Unit(raw.Units),
	}
	if doc.Name == "" {
		doc.Name = DefaultModelName
	}
	if doc.Unit == "" {
		doc.Unit = model.UnitMeter
	}

	for _, rl := range raw.Layers {
		lg := LayerGeometry{Layer: domain.NewLayer(rl.Path)}

		for i, fields := range rl.Objects {
			obj, err := decodeObject(fields)
			if err != nil {
				return nil, fmt.Errorf("layer %q, object %d: %w", rl.Path, i, err)
			}
			lg.Objects = append(lg.Objects, obj)
		}
		doc.Layers = append(doc.Layers, lg)
	}

	return doc, nil
}

// decodeObject turns one free-form record into a geometry object,
// failing fast on malformed geometry.
func decodeObject(fields map[string]any) (model.Object, error) {
	var raw rawObject
	if err := mapstructure.Decode(fields, &raw); err != nil {
		return model.Object{}, fmt.Errorf("malformed object record: %w", err)
	}

	obj := model.Object{Label: raw.Label}

	switch {
	case raw.Point != nil:
		p, err := toVec(raw.Point)
		if err != nil {
			return model.Object{}, err
		}
		obj.Point = p
	case raw.Line != nil:
		if raw.Line.Start == nil || raw.Line.End == nil {
			return model.Object{}, ErrHalfLine
		}
		start, err := toVec(raw.Line.Start)
		if err != nil {
			return model.Object{}, err
		}
		end, err := toVec(raw.Line.End)
		if err != nil {
			return model.Object{}, err
		}
		obj.Start, obj.End = start, end
	default:
		return model.Object{}, ErrNoGeometry
	}

	return obj, nil
}

func toVec(coords []float64) (*v3.Vec, error) {
	if len(coords) != 3 {
		return nil, fmt.Errorf("%w, got %d", ErrBadCoordinate, len(coords))
	}
	return &v3.Vec{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}
