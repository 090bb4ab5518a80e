// Package geometry defines the geometry descriptor consumed by exporters
// and the extraction of that descriptor from upstream model results.
//
// A model result may come from a processing stage or from a remote
// generation model; extraction depends only on the shape of the value,
// never on how it was produced.
package geometry

// Point is a position in 3D space.
type Point [3]float64

// Polygon is one planar ring of a surface, given as an ordered point
// sequence. Planarity and non-self-intersection are assumed, not verified.
type Polygon []Point

// Mesh is an indexed triangle/polygon mesh.
type Mesh struct {
	// Vertices is the ordered vertex table.
	Vertices []Point

	// Faces holds index tuples referencing Vertices.
	Faces [][]int
}

// OpeningKind distinguishes window and door openings.
type OpeningKind string

const (
	// OpeningWindow marks a window opening.
	OpeningWindow OpeningKind = "window"

	// OpeningDoor marks a door opening.
	OpeningDoor OpeningKind = "door"
)

// Opening is a window or door surface attached to a wall.
type Opening struct {
	Kind OpeningKind
	Ring Polygon
}

// Segments holds building segmentation output: footprint contours and,
// optionally, wall openings.
type Segments struct {
	Contours []Polygon
	Openings []Opening
}

// Kind tags the variant held by a Descriptor.
type Kind int

const (
	// KindNone means no usable geometry was supplied.
	KindNone Kind = iota

	// KindMesh means the descriptor carries an indexed mesh.
	KindMesh

	// KindSegments means the descriptor carries segmentation contours.
	KindSegments
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindMesh:
		return "mesh"
	case KindSegments:
		return "segments"
	default:
		return "none"
	}
}

// Descriptor is the tagged geometry variant extracted from a model result.
// Exactly one of Mesh and Segments is set, matching Kind; both are nil for
// KindNone.
type Descriptor struct {
	Kind     Kind
	Mesh     *Mesh
	Segments *Segments
}

// None is the descriptor for a result with no usable geometry.
func None() Descriptor {
	return Descriptor{Kind: KindNone}
}
