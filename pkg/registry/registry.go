// Package registry implements the deduplicating, numbering-aware
// collection that owns all structural entities of one kind.
package registry

import (
	"fmt"

	"github.com/giraffe-cad/giraffe/pkg/domain"
)

// List holds the accepted entities of one kind in insertion order,
// together with the diagnostics produced while numbering them.
//
// Two invariants hold after every Add: no two stored entities are
// identical under the kind's equality predicate, and no two share a
// (number, group) pair.
type List struct {
	kind     domain.Kind
	elements []domain.Element
	warnings []string
}

// New creates an empty registry for the given entity kind.
func New(kind domain.Kind) *List {
	return &List{kind: kind}
}

// Kind returns the entity kind this registry owns.
func (l *List) Kind() domain.Kind { return l.kind }

// Len returns the number of accepted entities.
func (l *List) Len() int { return len(l.elements) }

// Elements returns the accepted entities in insertion order. The slice
// is owned by the registry and must not be mutated.
func (l *List) Elements() []domain.Element { return l.elements }

// Warnings returns the diagnostics accumulated so far, in order.
func (l *List) Warnings() []string { return l.warnings }

// Add registers an entity and returns the authoritative one to use
// downstream.
//
// If an identical entity is already registered, that one is returned
// and the argument is discarded without numbering. Otherwise the entity
// is accepted: an unassigned number resolves to the lowest free number
// in its group, and an explicit number that collides with an existing
// entity is resolved by strict-naming precedence — the non-strict party
// is renumbered silently, and when both insist a warning records that
// the newcomer had to move.
func (l *List) Add(e domain.Element) domain.Element {
	if existing := l.identicalTo(e); existing != nil {
		return existing
	}

	base := e.Base()

	if base.No == domain.Unassigned {
		l.assignNumber(e)
	} else if conflict := l.conflicting(e); conflict != nil {
		l.resolveConflict(conflict, e)
	}

	l.elements = append(l.elements, e)
	return e
}

// identicalTo returns the first registered entity identical to e, in
// insertion order. Node coincidence is a proximity test and therefore
// non-transitive; scanning accepted entities in order and taking the
// first match keeps the result well-defined, at the cost of making it
// depend on ingestion order.
func (l *List) identicalTo(e domain.Element) domain.Element {
	for _, item := range l.elements {
		if e.IdenticalTo(item) {
			return item
		}
	}
	return nil
}

// isTaken reports whether a (number, group) pair is already used.
func (l *List) isTaken(no, group int) bool {
	for _, item := range l.elements {
		b := item.Base()
		if b.No == no && b.Group == group {
			return true
		}
	}
	return false
}

// availableNumber returns the lowest positive number free in the group.
func (l *List) availableNumber(group int) int {
	no := 1
	for l.isTaken(no, group) {
		no++
	}
	return no
}

// conflicting returns the registered entity occupying e's (number, group),
// or nil.
func (l *List) conflicting(e domain.Element) domain.Element {
	base := e.Base()
	for _, item := range l.elements {
		b := item.Base()
		if b.No == base.No && b.Group == base.Group {
			return item
		}
	}
	return nil
}

// assignNumber gives the entity the lowest free number in its group.
func (l *List) assignNumber(e domain.Element) {
	base := e.Base()
	base.No = l.availableNumber(base.Group)
}

// resolveConflict settles a numbering collision between a registered
// entity and an incoming one that requested the same (number, group).
// An explicitly authored number always wins: if the registered entity
// was auto-numbered it moves aside silently; if both numbers were
// authored, the incoming entity is renumbered and a warning surfaces
// the change.
func (l *List) resolveConflict(existing, incoming domain.Element) {
	if !existing.Base().StrictNaming {
		l.assignNumber(existing)
		return
	}

	requested := incoming.Base().No
	l.assignNumber(incoming)
	l.warnings = append(l.warnings, fmt.Sprintf(
		"Numbering conflict, %s number %d changed to %d.",
		l.kind.Token(), requested, incoming.Base().No))
}
