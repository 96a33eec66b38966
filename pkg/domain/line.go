package domain

import "strconv"

// LineElement is a structural element spanning two nodes: a beam, truss
// or cable. It holds non-owning references to nodes that live in the
// node registry; both are set at construction and never nil.
type LineElement struct {
	Entity
	Start *Node
	End   *Node
}

// NewLineElement creates a line element of the given kind between two
// registered nodes.
func NewLineElement(kind Kind, start, end *Node) *LineElement {
	return &LineElement{
		Entity: Entity{
			Kind:  kind,
			No:    Unassigned,
			Group: Ungrouped,
		},
		Start: start,
		End:   end,
	}
}

// Base implements Element.
func (l *LineElement) Base() *Entity { return &l.Entity }

// IdenticalTo reports whether the other element references the same two
// node objects in the same roles. Identity is by node pointer, not by
// coordinates: two elements are the same only if the node registry
// resolved their endpoints to the same entries. Start and end are not
// interchangeable.
func (l *LineElement) IdenticalTo(other Element) bool {
	o, ok := other.(*LineElement)
	if !ok {
		return false
	}
	return l.Start == o.Start && l.End == o.End
}

// ExportLine renders the element record referencing its endpoint numbers.
func (l *LineElement) ExportLine() string {
	out := l.exportBase() +
		" na " + strconv.Itoa(l.Start.No) +
		" ne " + strconv.Itoa(l.End.No) +
		" " + l.Prop
	if l.Name != "" {
		out += "$ " + l.Name
	}
	return out
}
