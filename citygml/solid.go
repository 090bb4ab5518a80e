// Package citygml converts model results into CityGML 2.0 building
// documents at a caller-selected level of detail (LOD 1-4).
//
// The conversion is a stateless chain: geometry extraction, per-LOD solid
// construction, attribute mapping, document assembly, and serialization.
// Every entity is created fresh per export call; nothing is retained.
package citygml

import (
	"fmt"

	"github.com/geoforge/citymodel-go/geometry"
)

// NamedPolygon is one exterior-shell surface with its document identifier.
type NamedPolygon struct {
	ID   string
	Ring geometry.Polygon
}

// RoomGeometry is the closed solid of an interior room, emitted only at
// LOD4 as a feature nested under the building.
type RoomGeometry struct {
	Surfaces []NamedPolygon
}

// SolidGeometry is the ordered closed-surface set of a building solid,
// plus the optional interior room.
type SolidGeometry struct {
	Exterior []NamedPolygon
	Interior *RoomGeometry
}

// Canonical fallback dimensions used when no geometry is supplied: a 10x10
// footprint with 3m eaves and, for the gabled fallback, a 6m ridge.
const (
	fallbackSize   = 10.0
	fallbackEave   = 3.0
	fallbackRidge  = 6.0
	roomInset      = 2.0
	roomFloorLift  = 0.1
	openingSetback = 0.01
)

// BuildSolid produces the surface set for the descriptor at the given LOD.
//
// The strategy is an exhaustive dispatch over (LOD, descriptor kind):
// missing geometry falls back to hand-authored closed shapes, LOD3 adds
// opening surfaces (supplied or synthetic), and LOD4 nests an interior
// room solid. LOD values outside 1-4 take the LOD2 strategy; coercion
// diagnostics are the exporter's job, not the builder's.
func BuildSolid(desc geometry.Descriptor, lod int) (SolidGeometry, error) {
	var (
		exterior []NamedPolygon
		err      error
	)

	switch lod {
	case 1:
		exterior, err = lod1Surfaces(desc)
	case 3, 4:
		exterior, err = lod3Surfaces(desc)
	default:
		exterior, err = lod2Surfaces(desc)
	}
	if err != nil {
		return SolidGeometry{}, err
	}

	solid := SolidGeometry{Exterior: exterior}
	if lod == 4 {
		solid.Interior = &RoomGeometry{Surfaces: roomSurfaces()}
	}
	return solid, nil
}

// lod1Surfaces renders a flat block model: supplied geometry becomes one
// surface per contour or mesh face, otherwise the canonical box.
func lod1Surfaces(desc geometry.Descriptor) ([]NamedPolygon, error) {
	switch desc.Kind {
	case geometry.KindMesh:
		return meshSurfaces(desc.Mesh)
	case geometry.KindSegments:
		return contourSurfaces(desc.Segments), nil
	default:
		return boxSurfaces(), nil
	}
}

// lod2Surfaces matches lod1Surfaces for supplied geometry; only the
// synthetic fallback is refined with a gabled roof.
func lod2Surfaces(desc geometry.Descriptor) ([]NamedPolygon, error) {
	switch desc.Kind {
	case geometry.KindMesh:
		return meshSurfaces(desc.Mesh)
	case geometry.KindSegments:
		return contourSurfaces(desc.Segments), nil
	default:
		return gabledSurfaces(), nil
	}
}

// lod3Surfaces extends the LOD2 base with opening surfaces: the supplied
// openings list when present, otherwise one synthetic window and door at
// fixed placeholder positions on the base footprint.
func lod3Surfaces(desc geometry.Descriptor) ([]NamedPolygon, error) {
	base, err := lod2Surfaces(desc)
	if err != nil {
		return nil, err
	}

	if desc.Kind == geometry.KindSegments && len(desc.Segments.Openings) > 0 {
		return append(base, openingSurfaces(desc.Segments.Openings)...), nil
	}
	return append(base, syntheticOpenings()...), nil
}

// meshSurfaces renders one surface per face. Face indices outside the
// vertex table are the one malformed-geometry case construction reports.
func meshSurfaces(m *geometry.Mesh) ([]NamedPolygon, error) {
	surfaces := make([]NamedPolygon, 0, len(m.Faces))
	for i, face := range m.Faces {
		ring := make(geometry.Polygon, 0, len(face))
		for _, idx := range face {
			if idx < 0 || idx >= len(m.Vertices) {
				return nil, fmt.Errorf("face %d references vertex %d of %d", i+1, idx, len(m.Vertices))
			}
			ring = append(ring, m.Vertices[idx])
		}
		surfaces = append(surfaces, NamedPolygon{
			ID:   fmt.Sprintf("Building_Polygon_%d", i+1),
			Ring: ring,
		})
	}
	return surfaces, nil
}

// contourSurfaces renders one flat surface per segmentation contour.
func contourSurfaces(s *geometry.Segments) []NamedPolygon {
	surfaces := make([]NamedPolygon, 0, len(s.Contours))
	for i, contour := range s.Contours {
		surfaces = append(surfaces, NamedPolygon{
			ID:   fmt.Sprintf("Building_Polygon_%d", i+1),
			Ring: contour,
		})
	}
	return surfaces
}

// openingSurfaces names each opening by its position in the supplied list.
// Openings of unknown kind are skipped without disturbing the numbering.
func openingSurfaces(openings []geometry.Opening) []NamedPolygon {
	surfaces := make([]NamedPolygon, 0, len(openings))
	for i, opening := range openings {
		switch opening.Kind {
		case geometry.OpeningWindow:
			surfaces = append(surfaces, NamedPolygon{
				ID:   fmt.Sprintf("Window_Polygon_%d", i+1),
				Ring: opening.Ring,
			})
		case geometry.OpeningDoor:
			surfaces = append(surfaces, NamedPolygon{
				ID:   fmt.Sprintf("Door_Polygon_%d", i+1),
				Ring: opening.Ring,
			})
		}
	}
	return surfaces
}

// boxSurfaces is the canonical LOD1 fallback: a closed 6-quad box
// (floor, roof, 4 walls).
func boxSurfaces() []NamedPolygon {
	s, h := fallbackSize, fallbackEave
	rings := []geometry.Polygon{
		{{0, 0, 0}, {s, 0, 0}, {s, s, 0}, {0, s, 0}}, // floor
		{{0, 0, h}, {s, 0, h}, {s, s, h}, {0, s, h}}, // roof
		{{0, 0, 0}, {s, 0, 0}, {s, 0, h}, {0, 0, h}}, // front
		{{0, s, 0}, {s, s, 0}, {s, s, h}, {0, s, h}}, // back
		{{0, 0, 0}, {0, s, 0}, {0, s, h}, {0, 0, h}}, // left
		{{s, 0, 0}, {s, s, 0}, {s, s, h}, {s, 0, h}}, // right
	}
	surfaces := make([]NamedPolygon, len(rings))
	for i, ring := range rings {
		surfaces[i] = NamedPolygon{ID: fmt.Sprintf("Box_Polygon_%d", i+1), Ring: ring}
	}
	return surfaces
}

// gabledSurfaces is the canonical LOD2 fallback: the box extended with a
// gabled roof (floor, 2 gable walls, 2 side walls, 2 roof slopes).
func gabledSurfaces() []NamedPolygon {
	s, e, r := fallbackSize, fallbackEave, fallbackRidge
	mid := s / 2
	rings := []geometry.Polygon{
		{{0, 0, 0}, {s, 0, 0}, {s, s, 0}, {0, s, 0}},              // floor
		{{0, 0, 0}, {s, 0, 0}, {s, 0, e}, {mid, 0, r}, {0, 0, e}}, // front gable
		{{0, s, 0}, {s, s, 0}, {s, s, e}, {mid, s, r}, {0, s, e}}, // back gable
		{{0, 0, 0}, {0, s, 0}, {0, s, e}, {0, 0, e}},              // left wall
		{{s, 0, 0}, {s, s, 0}, {s, s, e}, {s, 0, e}},              // right wall
		{{0, 0, e}, {mid, 0, r}, {mid, s, r}, {0, s, e}},          // roof left
		{{mid, 0, r}, {s, 0, e}, {s, s, e}, {mid, s, r}},          // roof right
	}
	surfaces := make([]NamedPolygon, len(rings))
	for i, ring := range rings {
		surfaces[i] = NamedPolygon{ID: fmt.Sprintf("Building_Polygon_%d", i+1), Ring: ring}
	}
	return surfaces
}

// syntheticOpenings places one window and one door on the front wall of
// the base footprint when the descriptor carries no openings list.
func syntheticOpenings() []NamedPolygon {
	y := openingSetback
	return []NamedPolygon{
		{
			ID:   "Window_Polygon_1",
			Ring: geometry.Polygon{{2, y, 1}, {4, y, 1}, {4, y, 2}, {2, y, 2}},
		},
		{
			ID:   "Door_Polygon_1",
			Ring: geometry.Polygon{{7, y, 0}, {9, y, 0}, {9, y, 2}, {7, y, 2}},
		},
	}
}

// roomSurfaces is the interior cavity emitted at LOD4: a closed 6-quad box
// inset from the fallback footprint.
func roomSurfaces() []NamedPolygon {
	lo, hi := roomInset, fallbackSize-roomInset
	zlo, zhi := roomFloorLift, fallbackEave-roomFloorLift
	rings := []geometry.Polygon{
		{{lo, lo, zlo}, {hi, lo, zlo}, {hi, hi, zlo}, {lo, hi, zlo}}, // floor
		{{lo, lo, zhi}, {hi, lo, zhi}, {hi, hi, zhi}, {lo, hi, zhi}}, // ceiling
		{{lo, lo, zlo}, {hi, lo, zlo}, {hi, lo, zhi}, {lo, lo, zhi}}, // front
		{{lo, hi, zlo}, {hi, hi, zlo}, {hi, hi, zhi}, {lo, hi, zhi}}, // back
		{{lo, lo, zlo}, {lo, hi, zlo}, {lo, hi, zhi}, {lo, lo, zhi}}, // left
		{{hi, lo, zlo}, {hi, hi, zlo}, {hi, hi, zhi}, {hi, lo, zhi}}, // right
	}
	surfaces := make([]NamedPolygon, len(rings))
	for i, ring := range rings {
		surfaces[i] = NamedPolygon{ID: fmt.Sprintf("Room_Polygon_%d", i+1), Ring: ring}
	}
	return surfaces
}
