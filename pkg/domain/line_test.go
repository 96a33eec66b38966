package domain

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/assert"
)

func TestLineElementIdentityIsByNodePointer(t *testing.T) {
	a := NewNode(v3.Vec{})
	b := NewNode(v3.Vec{X: 5})

	// Same coordinates, distinct node objects.
	a2 := NewNode(v3.Vec{})
	b2 := NewNode(v3.Vec{X: 5})

	el := NewLineElement(KindBeam, a, b)

	assert.True(t, el.IdenticalTo(NewLineElement(KindBeam, a, b)))
	assert.False(t, el.IdenticalTo(NewLineElement(KindBeam, a2, b2)),
		"coordinate-equal but distinct nodes must not be identical")
	assert.False(t, el.IdenticalTo(NewLineElement(KindBeam, b, a)),
		"start and end are not interchangeable")
	assert.False(t, el.IdenticalTo(a))
}

func TestLineElementExportLine(t *testing.T) {
	a := NewNode(v3.Vec{})
	a.No = 1
	b := NewNode(v3.Vec{X: 5})
	b.No = 2

	el := NewLineElement(KindTruss, a, b)
	el.No = 3
	el.Prop = "ncs 2"

	assert.Equal(t, "trus no 3 na 1 ne 2 ncs 2", el.ExportLine())

	el.Name = "diagonal"
	assert.Equal(t, "trus no 3 na 1 ne 2 ncs 2$ diagonal", el.ExportLine())
}
