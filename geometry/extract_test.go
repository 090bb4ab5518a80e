package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type meshResult struct {
	m *Mesh
}

func (r meshResult) Mesh() *Mesh { return r.m }

type segmentsResult struct {
	s *Segments
}

func (r segmentsResult) BuildingSegments() *Segments { return r.s }

type bagResult struct {
	attrs map[string]any
}

func (r bagResult) Attributes() map[string]any { return r.attrs }

type combinedResult struct {
	meshResult
	segmentsResult
}

func unitSquare(z float64) Polygon {
	return Polygon{{0, 0, z}, {1, 0, z}, {1, 1, z}, {0, 1, z}}
}

func TestExtractNil(t *testing.T) {
	t.Parallel()

	d := Extract(nil)
	assert.Equal(t, KindNone, d.Kind)
	assert.Nil(t, d.Mesh)
	assert.Nil(t, d.Segments)
}

func TestExtractMesh(t *testing.T) {
	t.Parallel()

	m := &Mesh{
		Vertices: []Point{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		Faces:    [][]int{{0, 1, 2, 3}},
	}
	d := Extract(meshResult{m: m})
	require.Equal(t, KindMesh, d.Kind)
	assert.Same(t, m, d.Mesh)
}

func TestExtractSegments(t *testing.T) {
	t.Parallel()

	s := &Segments{Contours: []Polygon{unitSquare(0)}}
	d := Extract(segmentsResult{s: s})
	require.Equal(t, KindSegments, d.Kind)
	assert.Same(t, s, d.Segments)
}

func TestExtractMeshWinsOverSegments(t *testing.T) {
	t.Parallel()

	r := combinedResult{
		meshResult:     meshResult{m: &Mesh{Vertices: []Point{{0, 0, 0}}, Faces: [][]int{{0}}}},
		segmentsResult: segmentsResult{s: &Segments{Contours: []Polygon{unitSquare(0)}}},
	}
	d := Extract(r)
	assert.Equal(t, KindMesh, d.Kind)
}

func TestExtractAttributeBag(t *testing.T) {
	t.Parallel()

	d := Extract(bagResult{attrs: map[string]any{
		"contours": []Polygon{unitSquare(0), unitSquare(3)},
	}})
	require.Equal(t, KindSegments, d.Kind)
	require.NotNil(t, d.Segments)
	assert.Len(t, d.Segments.Contours, 2)
	assert.Empty(t, d.Segments.Openings, "bag extraction never carries openings")
}

func TestExtractPlainMap(t *testing.T) {
	t.Parallel()

	d := Extract(map[string]any{"contours": []Polygon{unitSquare(0)}})
	assert.Equal(t, KindSegments, d.Kind)
}

func TestExtractNoGeometry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result any
	}{
		{name: "unrelated_value", result: 42},
		{name: "nil_mesh_carrier", result: meshResult{}},
		{name: "nil_segments_carrier", result: segmentsResult{}},
		{name: "empty_mesh", result: meshResult{m: &Mesh{}}},
		{name: "segments_without_contours", result: segmentsResult{s: &Segments{}}},
		{name: "bag_without_contours", result: bagResult{attrs: map[string]any{"other": 1}}},
		{name: "bag_with_malformed_contours", result: bagResult{attrs: map[string]any{"contours": "nope"}}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := Extract(tt.result)
			assert.Equal(t, KindNone, d.Kind)
		})
	}
}
