// Package process turns loaded datasets into model results that carry
// mesh or building segmentation geometry for the exporters.
package process

import (
	"fmt"
	"sync"

	"github.com/geoforge/citymodel-go/geometry"
	"github.com/geoforge/citymodel-go/loader"
)

// Result is the processed model result. It exposes the carrier methods the
// geometry extractor probes for, so it can be handed to any exporter.
type Result struct {
	MeshData *geometry.Mesh
	Segments *geometry.Segments
	Source   *loader.Dataset
}

// Mesh returns the indexed mesh, or nil when processing produced none.
func (r *Result) Mesh() *geometry.Mesh { return r.MeshData }

// BuildingSegments returns the segmentation output, or nil.
func (r *Result) BuildingSegments() *geometry.Segments { return r.Segments }

// Processor enriches a dataset with geometry.
type Processor interface {
	// Process derives a model result from the dataset.
	Process(ds *loader.Dataset) (*Result, error)

	// Name returns the registry name of the processor.
	Name() string
}

var (
	mu         sync.RWMutex
	processors = map[string]Processor{}
)

// Register adds a processor to the registry, replacing any previous
// processor with the same name.
func Register(p Processor) {
	mu.Lock()
	defer mu.Unlock()
	processors[p.Name()] = p
}

// Get returns the processor registered under name.
func Get(name string) (Processor, error) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := processors[name]
	if !ok {
		return nil, fmt.Errorf("unknown processor: %q", name)
	}
	return p, nil
}

// InferName picks the default processor for a dataset kind.
func InferName(kind loader.Kind) (string, error) {
	switch kind {
	case loader.KindVector:
		return "footprint", nil
	default:
		return "", fmt.Errorf("no default processor for data kind %q", kind)
	}
}
