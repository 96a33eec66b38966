// Package sofistik renders a structural model into SOFiSTiK text input
// (sofimsha dialect). Rendering never mutates the model; the same model
// renders to byte-identical output every time.
package sofistik

import (
	"strconv"
	"strings"

	"github.com/giraffe-cad/giraffe/pkg/domain"
	"github.com/giraffe-cad/giraffe/pkg/model"
	"github.com/giraffe-cad/giraffe/pkg/registry"
)

// Render produces the full export document: header, node registry,
// line-element registries in their fixed order, footer.
func Render(m *model.StructuralModel) string {
	var sb strings.Builder

	writeHeader(&sb, m)
	writeRegistry(&sb, m.Nodes())
	for _, reg := range m.LineRegistries() {
		writeRegistry(&sb, reg)
	}
	sb.WriteString("\nend")

	return sb.String()
}

func writeHeader(sb *strings.Builder, m *model.StructuralModel) {
	sb.WriteString("$ generated by Giraffe\n")
	sb.WriteString("+prog sofimsha\n")
	sb.WriteString("head " + m.Name() + "\n")
	sb.WriteString("\nsyst init gdiv " + strconv.Itoa(m.GridDivisor()) + "\n")
	sb.WriteString("\nlet#conversion_factor " +
		strconv.FormatFloat(m.ConversionFactor(), 'f', -1, 64))
}

// writeRegistry emits one registry block: diagnostics first, then each
// entity in insertion order, preceded by its layer marker whenever the
// layer differs from the immediately preceding entity's.
//
// The comparison is by layer pointer, not value, and it streams: a
// marker already emitted earlier in the block is emitted again if an
// entity from a different layer appeared in between. Entities without
// provenance emit no marker but still advance the comparison state.
func writeRegistry(sb *strings.Builder, reg *registry.List) {
	for _, w := range reg.Warnings() {
		sb.WriteString("$ " + w + "\n")
	}

	var current *domain.Layer
	for _, item := range reg.Elements() {
		previous := current
		current = item.Base().Layer

		if current != nil && current != previous {
			sb.WriteString(current.Marker())
		}

		sb.WriteString(item.ExportLine())
		sb.WriteByte('\n')
	}

	sb.WriteByte('\n')
}
