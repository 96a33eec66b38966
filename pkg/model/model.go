// Package model assembles structural entities from abstract geometry
// records into per-kind registries, one model per conversion run.
package model

import (
	"errors"
	"fmt"

	"github.com/giraffe-cad/giraffe/pkg/domain"
	"github.com/giraffe-cad/giraffe/pkg/label"
	"github.com/giraffe-cad/giraffe/pkg/registry"
)

// ErrMissingEndpoint is returned when a curve record exposes only one
// endpoint. A well-formed provider never produces this; it is a
// precondition violation, not a recoverable diagnostic.
var ErrMissingEndpoint = errors.New("curve record is missing an endpoint")

// DefaultGridDivisor is the SOFiSTiK numbering-grid divisor.
const DefaultGridDivisor = 1000

// StructuralModel owns the node registry, one registry per line-element
// kind, and the global export framing data. It is populated layer by
// layer and read-only during export. Ingestion order is significant:
// dedup matches and number assignment both depend on it, so callers
// must feed layers in a deterministic sequence.
type StructuralModel struct {
	name   string
	factor float64
	gdiv   int

	nodes   *registry.List
	beams   *registry.List
	trusses *registry.List
	cables  *registry.List
}

// New creates an empty model named after the document, converting from
// the given length unit.
func New(name string, unit Unit) (*StructuralModel, error) {
	factor, ok := unit.ConversionFactor()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}

	return &StructuralModel{
		name:    name,
		factor:  factor,
		gdiv:    DefaultGridDivisor,
		nodes:   registry.New(domain.KindNode),
		beams:   registry.New(domain.KindBeam),
		trusses: registry.New(domain.KindTruss),
		cables:  registry.New(domain.KindCable),
	}, nil
}

// Name returns the model name emitted in the export header.
func (m *StructuralModel) Name() string { return m.name }

// ConversionFactor returns the document-unit-to-meter scalar.
func (m *StructuralModel) ConversionFactor() float64 { return m.factor }

// GridDivisor returns the numbering-grid divisor.
func (m *StructuralModel) GridDivisor() int { return m.gdiv }

// Nodes returns the node registry.
func (m *StructuralModel) Nodes() *registry.List { return m.nodes }

// LineRegistries returns the line-element registries in their fixed
// export order.
func (m *StructuralModel) LineRegistries() []*registry.List {
	return []*registry.List{m.beams, m.trusses, m.cables}
}

// AddLayer ingests one provenance unit. Layers outside the input tree
// and layers of unrecognized or non-ingested kinds are skipped without
// error. Node layers register labelled nodes; line-element layers
// register anonymous endpoint nodes first, then the element referencing
// whatever the node registry returned for them.
func (m *StructuralModel) AddLayer(layer *domain.Layer, objects []Object) error {
	if !layer.IsInput() {
		return nil
	}
	kind, ok := layer.Kind()
	if !ok {
		return nil
	}

	switch {
	case kind == domain.KindNode:
		m.addNodes(layer, objects)
		return nil
	case kind.IsLineElement():
		return m.addLineElements(kind, layer, objects)
	default:
		// Springs and quads are named in the layer grammar but are
		// not model input.
		return nil
	}
}

func (m *StructuralModel) addNodes(layer *domain.Layer, objects []Object) {
	for _, obj := range objects {
		if !obj.IsPoint() {
			continue
		}

		n := domain.NewNode(*obj.Point)
		n.ApplyLabel(label.Parse(obj.Label))
		n.Group = layer.Group()
		n.Layer = layer

		m.nodes.Add(n)
	}
}

func (m *StructuralModel) addLineElements(kind domain.Kind, layer *domain.Layer, objects []Object) error {
	reg := m.lineRegistry(kind)

	for _, obj := range objects {
		if !obj.IsCurve() {
			continue
		}
		if obj.Start == nil || obj.End == nil {
			return fmt.Errorf("layer %q: %w", layer.Name, ErrMissingEndpoint)
		}

		// Endpoints are anonymous nodes. If a coincident node is
		// already registered, Add returns that one and both elements
		// end up sharing it.
		start := m.nodes.Add(domain.NewNode(*obj.Start)).(*domain.Node)
		end := m.nodes.Add(domain.NewNode(*obj.End)).(*domain.Node)

		el := domain.NewLineElement(kind, start, end)
		el.ApplyLabel(label.Parse(obj.Label))
		el.Group = layer.Group()
		el.Layer = layer

		reg.Add(el)
	}
	return nil
}

func (m *StructuralModel) lineRegistry(kind domain.Kind) *registry.List {
	switch kind {
	case domain.KindBeam:
		return m.beams
	case domain.KindTruss:
		return m.trusses
	case domain.KindCable:
		return m.cables
	default:
		panic(fmt.Sprintf("model: %v is not a line-element kind", kind))
	}
}

// Warnings returns the diagnostics from all registries in export order.
func (m *StructuralModel) Warnings() []string {
	var out []string
	out = append(out, m.nodes.Warnings()...)
	for _, reg := range m.LineRegistries() {
		out = append(out, reg.Warnings()...)
	}
	return out
}

// EntityCount returns the total number of registered entities.
func (m *StructuralModel) EntityCount() int {
	n := m.nodes.Len()
	for _, reg := range m.LineRegistries() {
		n += reg.Len()
	}
	return n
}
