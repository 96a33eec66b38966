package sofistik_test

import (
	"strings"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giraffe-cad/giraffe/internal/presentation/sofistik"
	"github.com/giraffe-cad/giraffe/pkg/domain"
	"github.com/giraffe-cad/giraffe/pkg/model"
)

func vec(x, y, z float64) *v3.Vec {
	return &v3.Vec{X: x, Y: y, Z: z}
}

func buildSample(t *testing.T) *model.StructuralModel {
	t.Helper()

	m, err := model.New("structure", model.UnitMillimeter)
	require.NoError(t, err)

	err = m.AddLayer(domain.NewLayer("input::nodes"), []model.Object{
		{Label: "1 base [fix pp]", Point: vec(0, 0, 0)},
	})
	require.NoError(t, err)

	err = m.AddLayer(domain.NewLayer("input::beams::2 girders [ncs 1]"), []model.Object{
		{Label: "girder [ncs 3]", Start: vec(0, 0, 0), End: vec(5000, 0, 0)},
	})
	require.NoError(t, err)

	return m
}

func TestRenderDocument(t *testing.T) {
	m := buildSample(t)

	want := "$ generated by Giraffe\n" +
		"+prog sofimsha\n" +
		"head structure\n" +
		"\n" +
		"syst init gdiv 1000\n" +
		"\n" +
		"let#conversion_factor 0.001" +
		"\n\n!*!Label nodes ..  .. nodes\n" +
		"node no 1 x 0*#conversion_factor y 0*#conversion_factor z 0*#conversion_factor fix pp$ base\n" +
		"node no 2 x 5000*#conversion_factor y 0*#conversion_factor z 0*#conversion_factor \n" +
		"\n" +
		"\n\n!*!Label beams .. grp 2 .. girders\n" +
		"grp 2\n" +
		"beam prop ncs 1\n" +
		"beam no 1 na 1 ne 2 ncs 3$ girder\n" +
		"\n" +
		"\n" + // empty trusses block
		"\n" + // empty cables block
		"\nend"

	assert.Equal(t, want, sofistik.Render(m))
}

func TestRenderDeterminism(t *testing.T) {
	m := buildSample(t)

	first := sofistik.Render(m)
	second := sofistik.Render(m)

	assert.Equal(t, first, second, "rendering must not mutate the model")
}

func TestRenderWarningsComeFirst(t *testing.T) {
	m, err := model.New("structure", model.UnitMeter)
	require.NoError(t, err)

	err = m.AddLayer(domain.NewLayer("input::nodes"), []model.Object{
		{Label: "5 a", Point: vec(0, 0, 0)},
		{Label: "5 b", Point: vec(10, 0, 0)},
	})
	require.NoError(t, err)

	out := sofistik.Render(m)
	assert.Contains(t, out, "$ Numbering conflict, node number 5 changed to 1.\n")

	warningAt := strings.Index(out, "$ Numbering conflict")
	markerAt := strings.Index(out, "!*!Label nodes")
	assert.Less(t, warningAt, markerAt, "registry warnings precede its entities")
}

// Two layers with identical paths are distinct provenance: the marker
// comparison is by pointer, never by value.
func TestRenderMarkerIdentityNotValue(t *testing.T) {
	m, err := model.New("structure", model.UnitMeter)
	require.NoError(t, err)

	first := domain.NewLayer("input::nodes")
	second := domain.NewLayer("input::nodes")

	require.NoError(t, m.AddLayer(first, []model.Object{{Point: vec(0, 0, 0)}}))
	require.NoError(t, m.AddLayer(second, []model.Object{{Point: vec(10, 0, 0)}}))

	out := sofistik.Render(m)
	assert.Equal(t, 2, strings.Count(out, "!*!Label nodes"),
		"value-identical but distinct layers must both announce themselves")
}

// A marker is re-emitted when its layer returns after entities from
// other provenance (or none), not deduplicated globally.
func TestRenderMarkerStreams(t *testing.T) {
	m, err := model.New("structure", model.UnitMeter)
	require.NoError(t, err)

	nodes := domain.NewLayer("input::nodes")

	require.NoError(t, m.AddLayer(nodes, []model.Object{{Point: vec(0, 0, 0)}}))
	// Anonymous endpoints interleave into the node registry without
	// provenance.
	require.NoError(t, m.AddLayer(domain.NewLayer("input::beams"), []model.Object{
		{Start: vec(100, 0, 0), End: vec(200, 0, 0)},
	}))
	require.NoError(t, m.AddLayer(nodes, []model.Object{{Point: vec(300, 0, 0)}}))

	out := sofistik.Render(m)
	assert.Equal(t, 2, strings.Count(out, "!*!Label nodes"),
		"the same layer announces itself again after an interruption")
}

func TestRenderEmptyModel(t *testing.T) {
	m, err := model.New("empty", model.UnitFoot)
	require.NoError(t, err)

	out := sofistik.Render(m)

	assert.True(t, strings.HasPrefix(out, "$ generated by Giraffe\n"))
	assert.Contains(t, out, "head empty\n")
	assert.Contains(t, out, "let#conversion_factor 0.3048")
	assert.True(t, strings.HasSuffix(out, "\nend"))
	assert.NotContains(t, out, "!*!Label")
}
