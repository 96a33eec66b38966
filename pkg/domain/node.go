package domain

import (
	"math"
	"strconv"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Tolerance is the maximum distance (exclusive) at which two nodes are
// considered the same structural node, in document units.
const Tolerance = 0.1

// coordPrecision is the number of decimals coordinates are rounded to
// at construction. Downstream equality and export strings depend on it.
const coordPrecision = 1e5

// Node is a structural node at a fixed 3D position. Coordinates are
// rounded once at construction and never change afterwards; only the
// number and the provenance layer are set later, by the owning registry
// and the assembler respectively.
type Node struct {
	Entity
	Pos v3.Vec
}

// NewNode creates an anonymous node at the given position. Anonymous
// nodes carry no number, name or property until a label is applied.
func NewNode(pos v3.Vec) *Node {
	return &Node{
		Entity: Entity{
			Kind:  KindNode,
			No:    Unassigned,
			Group: Ungrouped,
		},
		Pos: v3.Vec{
			X: roundCoord(pos.X),
			Y: roundCoord(pos.Y),
			Z: roundCoord(pos.Z),
		},
	}
}

// Base implements Element.
func (n *Node) Base() *Entity { return &n.Entity }

// DistanceTo returns the Euclidean distance to another node.
func (n *Node) DistanceTo(o *Node) float64 {
	return n.Pos.Sub(o.Pos).Length()
}

// IdenticalTo reports whether the other element is a node within
// Tolerance of this one. The comparison is strict: nodes exactly at
// Tolerance apart stay distinct.
func (n *Node) IdenticalTo(other Element) bool {
	o, ok := other.(*Node)
	if !ok {
		return false
	}
	return n.DistanceTo(o) < Tolerance
}

// ExportLine renders the node record. Coordinates are emitted in
// document units scaled by the export-time conversion factor variable.
func (n *Node) ExportLine() string {
	out := n.exportBase() +
		" x " + formatCoord(n.Pos.X) + "*#conversion_factor" +
		" y " + formatCoord(n.Pos.Y) + "*#conversion_factor" +
		" z " + formatCoord(n.Pos.Z) + "*#conversion_factor" +
		" " + n.Prop
	if n.Name != "" {
		out += "$ " + n.Name
	}
	return out
}

func roundCoord(v float64) float64 {
	return math.Round(v*coordPrecision) / coordPrecision
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
