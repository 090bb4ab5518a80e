package geometry

// MeshCarrier is implemented by model results that expose an indexed mesh.
type MeshCarrier interface {
	Mesh() *Mesh
}

// SegmentsCarrier is implemented by model results that expose building
// segmentation output.
type SegmentsCarrier interface {
	BuildingSegments() *Segments
}

// AttributeBag is implemented by model results that expose a generic
// attribute map instead of typed accessors.
type AttributeBag interface {
	Attributes() map[string]any
}

// Extract normalizes an arbitrary model result into a Descriptor.
//
// Probe order: a mesh carrier wins over a segments carrier, which wins over
// a generic attribute bag containing contour data; anything else yields
// KindNone. Extraction is pure and performs presence checks only; malformed
// substructures are passed through and surface later at construction time.
func Extract(result any) Descriptor {
	if result == nil {
		return None()
	}

	if c, ok := result.(MeshCarrier); ok {
		if m := c.Mesh(); m != nil && (len(m.Vertices) > 0 || len(m.Faces) > 0) {
			return Descriptor{Kind: KindMesh, Mesh: m}
		}
	}

	if c, ok := result.(SegmentsCarrier); ok {
		if s := c.BuildingSegments(); s != nil && len(s.Contours) > 0 {
			return Descriptor{Kind: KindSegments, Segments: s}
		}
	}

	if bag, ok := result.(AttributeBag); ok {
		if s := segmentsFromBag(bag.Attributes()); s != nil {
			return Descriptor{Kind: KindSegments, Segments: s}
		}
	}
	if m, ok := result.(map[string]any); ok {
		if s := segmentsFromBag(m); s != nil {
			return Descriptor{Kind: KindSegments, Segments: s}
		}
	}

	return None()
}

// segmentsFromBag pulls contour data out of a generic attribute map.
// Openings are never taken from a bag; only typed segmentation output
// carries them.
func segmentsFromBag(attrs map[string]any) *Segments {
	if attrs == nil {
		return nil
	}
	raw, ok := attrs["contours"]
	if !ok {
		return nil
	}

	var contours []Polygon
	switch v := raw.(type) {
	case []Polygon:
		contours = v
	case [][]Point:
		contours = make([]Polygon, len(v))
		for i, ring := range v {
			contours[i] = Polygon(ring)
		}
	default:
		return nil
	}
	if len(contours) == 0 {
		return nil
	}
	return &Segments{Contours: contours}
}
