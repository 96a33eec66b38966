package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayerParsing(t *testing.T) {
	l := NewLayer("input::beams::2 girders [ncs 1]")

	assert.Equal(t, 3, l.Depth())
	assert.True(t, l.IsInput())

	kind, ok := l.Kind()
	assert.True(t, ok)
	assert.Equal(t, KindBeam, kind)

	assert.Equal(t, 2, l.Group())
	assert.Equal(t, "girders", l.DisplayName())
	assert.Equal(t, "ncs 1", l.Prop())
}

func TestLayerKindLevel(t *testing.T) {
	l := NewLayer("input::nodes")

	assert.True(t, l.IsInput())
	assert.Equal(t, Ungrouped, l.Group())
	assert.Equal(t, "", l.Prop(), "kind-level layers carry no property")
	assert.Equal(t, "nodes", l.DisplayName())
}

func TestLayerOutsideInputTree(t *testing.T) {
	assert.False(t, NewLayer("output::nodes").IsInput())
	assert.False(t, NewLayer("input").IsInput())
}

func TestLayerUnknownKind(t *testing.T) {
	_, ok := NewLayer("input::walls::1 shear").Kind()
	assert.False(t, ok)
}

func TestLayerMarker(t *testing.T) {
	l := NewLayer("input::beams::2 girders [ncs 1]")

	want := "\n\n!*!Label beams .. grp 2 .. girders\n" +
		"grp 2\n" +
		"beam prop ncs 1\n"
	assert.Equal(t, want, l.Marker())
}

func TestLayerMarkerUngrouped(t *testing.T) {
	l := NewLayer("input::nodes")

	assert.Equal(t, "\n\n!*!Label nodes ..  .. nodes\n", l.Marker())
}

func TestLayerMarkerGroupWithoutProp(t *testing.T) {
	l := NewLayer("input::trusses::4 bracing")

	want := "\n\n!*!Label trusses .. grp 4 .. bracing\n" +
		"grp 4\n"
	assert.Equal(t, want, l.Marker())
}
