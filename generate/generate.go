// Package generate defines the interface for remote 3D generation models.
//
// A generator turns input data (typically imagery) into a model result
// carrying a mesh or a reference to a generated model file. Exporters
// depend only on that result shape, never on how it was obtained.
package generate

import (
	"context"

	"github.com/geoforge/citymodel-go/geometry"
)

// Request contains the parameters for one generation call.
type Request struct {
	// ImagePath points at the input image on local disk.
	ImagePath string

	// Prompt is an optional text conditioning input.
	Prompt string

	// Seed fixes the generation seed; zero lets the backend choose.
	Seed int
}

// Result is the generation output: an indexed mesh, a reference to a model
// file produced by the backend, or both.
type Result struct {
	MeshData *geometry.Mesh
	FilePath string
}

// Mesh returns the generated mesh, or nil when the backend returned only a
// file reference. This makes a Result usable directly as a model result
// for the exporters.
func (r *Result) Mesh() *geometry.Mesh { return r.MeshData }

// Generator is the interface all generation-model backends implement.
type Generator interface {
	// Generate runs one generation call.
	Generate(ctx context.Context, req Request) (*Result, error)

	// Name returns the generator name (e.g. "trellis").
	Name() string
}
