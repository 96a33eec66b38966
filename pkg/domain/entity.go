package domain

import (
	"strconv"

	"github.com/giraffe-cad/giraffe/pkg/label"
)

const (
	// Unassigned marks an entity whose number has not been resolved yet.
	Unassigned = -1
	// Ungrouped is the numbering group of entities outside any group.
	Ungrouped = -1
)

// Entity carries the identity and numbering metadata shared by all
// structural elements.
type Entity struct {
	Kind  Kind
	No    int
	Group int

	// StrictNaming is true when the number was authored on the label
	// rather than auto-assigned. It decides who yields in a numbering
	// conflict.
	StrictNaming bool

	Prop string
	Name string

	// Layer is the provenance unit the entity was ingested from.
	// Anonymous line endpoints have none.
	Layer *Layer
}

// Element is the capability interface registries operate on.
type Element interface {
	// Base exposes the shared identity metadata for mutation by the
	// owning registry.
	Base() *Entity

	// IdenticalTo reports whether the other element represents the same
	// structural entity. Elements of different kinds are never identical.
	IdenticalTo(other Element) bool

	// ExportLine renders the entity's SOFiSTiK record.
	ExportLine() string
}

// ApplyLabel copies a decoded label onto the entity. An explicit number
// switches the entity to strict naming.
func (e *Entity) ApplyLabel(in label.Input) {
	e.No = in.No
	e.StrictNaming = in.HasNumber()
	e.Name = in.Name
	e.Prop = in.Prop
}

// exportBase renders the record prefix common to all entities.
func (e *Entity) exportBase() string {
	return e.Kind.Token() + " no " + strconv.Itoa(e.No)
}
