package citygml

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoforge/citymodel-go/geometry"
)

func square(z float64) geometry.Polygon {
	return geometry.Polygon{{0, 0, z}, {4, 0, z}, {4, 4, z}, {0, 4, z}}
}

func surfaceIDs(surfaces []NamedPolygon) []string {
	ids := make([]string, len(surfaces))
	for i, s := range surfaces {
		ids[i] = s.ID
	}
	return ids
}

func TestBuildSolidFallbackSurfaceCounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lod      int
		exterior int
		room     bool
	}{
		{lod: 1, exterior: 6},
		{lod: 2, exterior: 7},
		{lod: 3, exterior: 9},
		{lod: 4, exterior: 9, room: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("lod%d", tt.lod), func(t *testing.T) {
			t.Parallel()
			sg, err := BuildSolid(geometry.None(), tt.lod)
			require.NoError(t, err)
			assert.Len(t, sg.Exterior, tt.exterior)
			if tt.room {
				require.NotNil(t, sg.Interior)
				assert.Len(t, sg.Interior.Surfaces, 6, "room is its own closed solid, not merged into the exterior")
			} else {
				assert.Nil(t, sg.Interior)
			}
		})
	}
}

func TestBuildSolidLOD1FallbackNaming(t *testing.T) {
	t.Parallel()

	sg, err := BuildSolid(geometry.None(), 1)
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"Box_Polygon_1", "Box_Polygon_2", "Box_Polygon_3", "Box_Polygon_4", "Box_Polygon_5", "Box_Polygon_6"},
		surfaceIDs(sg.Exterior))
	for _, s := range sg.Exterior {
		assert.Len(t, s.Ring, 4, "fallback box surfaces are quadrilaterals")
	}
}

func TestBuildSolidLOD2FallbackNaming(t *testing.T) {
	t.Parallel()

	sg, err := BuildSolid(geometry.None(), 2)
	require.NoError(t, err)
	require.Len(t, sg.Exterior, 7)
	for i, s := range sg.Exterior {
		assert.Equal(t, fmt.Sprintf("Building_Polygon_%d", i+1), s.ID)
	}

	// Gable walls reach the 6m ridge, eaves stay at 3m.
	var ridge, eave float64
	for _, s := range sg.Exterior {
		for _, p := range s.Ring {
			if p[2] > ridge {
				ridge = p[2]
			}
		}
	}
	eave = sg.Exterior[4].Ring[2][2]
	assert.Equal(t, 6.0, ridge)
	assert.Equal(t, 3.0, eave)
}

func TestBuildSolidSegmentsPerContour(t *testing.T) {
	t.Parallel()

	desc := geometry.Descriptor{
		Kind:     geometry.KindSegments,
		Segments: &geometry.Segments{Contours: []geometry.Polygon{square(0), square(3), square(6)}},
	}

	for _, lod := range []int{1, 2} {
		sg, err := BuildSolid(desc, lod)
		require.NoError(t, err)
		assert.Equal(t,
			[]string{"Building_Polygon_1", "Building_Polygon_2", "Building_Polygon_3"},
			surfaceIDs(sg.Exterior), "lod %d", lod)
	}
}

func TestBuildSolidLOD3SuppliedOpenings(t *testing.T) {
	t.Parallel()

	desc := geometry.Descriptor{
		Kind: geometry.KindSegments,
		Segments: &geometry.Segments{
			Contours: []geometry.Polygon{square(0), square(3)},
			Openings: []geometry.Opening{
				{Kind: geometry.OpeningWindow, Ring: square(1)},
				{Kind: geometry.OpeningDoor, Ring: square(0)},
				{Kind: geometry.OpeningWindow, Ring: square(2)},
			},
		},
	}

	sg, err := BuildSolid(desc, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Building_Polygon_1", "Building_Polygon_2",
		"Window_Polygon_1", "Door_Polygon_2", "Window_Polygon_3",
	}, surfaceIDs(sg.Exterior), "openings are named by list position")
}

func TestBuildSolidLOD1IgnoresOpenings(t *testing.T) {
	t.Parallel()

	desc := geometry.Descriptor{
		Kind: geometry.KindSegments,
		Segments: &geometry.Segments{
			Contours: []geometry.Polygon{square(0)},
			Openings: []geometry.Opening{{Kind: geometry.OpeningDoor, Ring: square(0)}},
		},
	}

	sg, err := BuildSolid(desc, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Building_Polygon_1"}, surfaceIDs(sg.Exterior))
}

func TestBuildSolidLOD3SyntheticOpenings(t *testing.T) {
	t.Parallel()

	// Segments without openings still get the synthetic pair at LOD3.
	desc := geometry.Descriptor{
		Kind:     geometry.KindSegments,
		Segments: &geometry.Segments{Contours: []geometry.Polygon{square(0)}},
	}

	sg, err := BuildSolid(desc, 3)
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"Building_Polygon_1", "Window_Polygon_1", "Door_Polygon_1"},
		surfaceIDs(sg.Exterior))
}

func TestBuildSolidMeshPerFace(t *testing.T) {
	t.Parallel()

	desc := geometry.Descriptor{
		Kind: geometry.KindMesh,
		Mesh: &geometry.Mesh{
			Vertices: []geometry.Point{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}, {0, 0, 1}},
			Faces:    [][]int{{0, 1, 2, 3}, {0, 1, 4}},
		},
	}

	sg, err := BuildSolid(desc, 2)
	require.NoError(t, err)
	require.Len(t, sg.Exterior, 2)
	assert.Equal(t, "Building_Polygon_1", sg.Exterior[0].ID)
	assert.Equal(t, "Building_Polygon_2", sg.Exterior[1].ID)
	assert.Equal(t, geometry.Polygon{{0, 0, 0}, {1, 0, 0}, {0, 0, 1}}, sg.Exterior[1].Ring)
}

func TestBuildSolidMeshBadFaceIndex(t *testing.T) {
	t.Parallel()

	desc := geometry.Descriptor{
		Kind: geometry.KindMesh,
		Mesh: &geometry.Mesh{
			Vertices: []geometry.Point{{0, 0, 0}},
			Faces:    [][]int{{0, 7}},
		},
	}

	_, err := BuildSolid(desc, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "references vertex")
}

func TestBuildSolidOutOfRangeLODUsesLOD2(t *testing.T) {
	t.Parallel()

	want, err := BuildSolid(geometry.None(), 2)
	require.NoError(t, err)
	got, err := BuildSolid(geometry.None(), 9)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBuildSolidLOD4RoomNaming(t *testing.T) {
	t.Parallel()

	sg, err := BuildSolid(geometry.None(), 4)
	require.NoError(t, err)
	require.NotNil(t, sg.Interior)
	for i, s := range sg.Interior.Surfaces {
		assert.Equal(t, fmt.Sprintf("Room_Polygon_%d", i+1), s.ID)
		assert.Len(t, s.Ring, 4)
	}
}
