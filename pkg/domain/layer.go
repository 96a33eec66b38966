package domain

import (
	"strconv"
	"strings"

	"github.com/giraffe-cad/giraffe/pkg/label"
)

// Layer is the provenance unit a batch of geometry was ingested from,
// identified by a "::"-separated path mirroring a CAD layer tree:
//
//	input::beams::2 girders [ncs 1]
//
// The first segment marks model input, the second names the entity kind
// and the third (when present) carries the numbering group. Name and
// property come from the last segment. Export code compares layers by
// pointer, so two layers with equal paths are still distinct provenance.
type Layer struct {
	Name string
	Path []string
}

// NewLayer parses a layer path.
func NewLayer(name string) *Layer {
	return &Layer{
		Name: name,
		Path: strings.Split(name, "::"),
	}
}

// Depth returns the number of path segments.
func (l *Layer) Depth() int {
	return len(l.Path)
}

func (l *Layer) last() string {
	return l.Path[len(l.Path)-1]
}

// IsInput reports whether the layer belongs to the model input tree.
func (l *Layer) IsInput() bool {
	return l.Depth() > 1 && l.Path[0] == "input"
}

// Kind resolves the entity kind from the second path segment.
func (l *Layer) Kind() (Kind, bool) {
	if l.Depth() < 2 {
		return 0, false
	}
	return KindFromPlural(l.Path[1])
}

// Group returns the numbering group decoded from the third path
// segment, or Ungrouped for shallower layers.
func (l *Layer) Group() int {
	if l.Depth() <= 2 {
		return Ungrouped
	}
	return label.Parse(l.Path[2]).No
}

// DisplayName returns the human-readable name from the last segment.
func (l *Layer) DisplayName() string {
	return label.Parse(l.last()).Name
}

// Prop returns the structural property specification from the last
// segment. Kind-level layers (depth 2) carry none.
func (l *Layer) Prop() string {
	if l.Depth() == 2 {
		return ""
	}
	return label.Parse(l.last()).Prop
}

// Marker renders the export block announcing a change of provenance:
// a label comment plus, when present, the group selector and the default
// property record for the layer's kind.
func (l *Layer) Marker() string {
	grp := ""
	if g := l.Group(); g != Ungrouped {
		grp = "grp " + strconv.Itoa(g)
	}

	out := "\n\n!*!Label " + l.Path[1] + " .. " + grp + " .. " + l.DisplayName() + "\n"

	if grp != "" {
		out += grp + "\n"
	}
	if prop := l.Prop(); prop != "" {
		if kind, ok := l.Kind(); ok {
			out += kind.Token() + " prop " + prop + "\n"
		}
	}
	return out
}
