// Package export defines the exporter interface shared by all output
// formats and a name-keyed registry for looking them up.
package export

import (
	"fmt"
	"sort"
	"sync"
)

// Options carries the per-call export configuration.
type Options struct {
	// LOD is the requested level of detail (1-4). Out-of-range values are
	// coerced to 2 by the exporter, never rejected. Zero means unset and
	// takes the default.
	LOD int

	// EPSG is the coordinate reference system code. Zero means unset.
	EPSG int

	// BuildingType is the feature role label for the exported building.
	BuildingType string

	// BuildingAttributes maps attribute keys to values. Unrecognized keys
	// are ignored by the exporter.
	BuildingAttributes map[string]any
}

// Exporter writes a model result to a file in one output format.
type Exporter interface {
	// Export converts the model result and writes it under outputPath,
	// returning the final path (the extension may be normalized).
	Export(result any, outputPath string, opts Options) (string, error)

	// Name returns the registry name of the exporter (e.g. "citygml").
	Name() string

	// Extension returns the canonical file extension, without dot.
	Extension() string
}

var (
	mu        sync.RWMutex
	exporters = map[string]Exporter{}
)

// Register adds an exporter to the registry, replacing any previous
// exporter with the same name.
func Register(e Exporter) {
	mu.Lock()
	defer mu.Unlock()
	exporters[e.Name()] = e
}

// Get returns the exporter registered under name.
func Get(name string) (Exporter, error) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := exporters[name]
	if !ok {
		return nil, fmt.Errorf("unknown export format: %q", name)
	}
	return e, nil
}

// Names returns the registered exporter names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(exporters))
	for name := range exporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
