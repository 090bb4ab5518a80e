// Package loader defines the tagged dataset produced by ingesting raw
// geospatial input, the loader interface, and a name-keyed registry with
// data-kind inference from file extensions.
package loader

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/geoforge/citymodel-go/geometry"
)

// Kind tags the dataset variant produced by a loader.
type Kind string

const (
	// KindPointCloud marks 3D point samples.
	KindPointCloud Kind = "point-cloud"

	// KindRaster marks gridded imagery.
	KindRaster Kind = "raster"

	// KindVector marks polygon/line features.
	KindVector Kind = "vector"

	// KindTabular marks row/column records.
	KindTabular Kind = "tabular"
)

// Dataset is the tagged data object handed to the processing stage. Only
// the fields matching Kind are populated.
type Dataset struct {
	Kind Kind
	Path string

	// Points holds point-cloud samples.
	Points []geometry.Point

	// Features holds vector features.
	Features []Feature

	// Header and Records hold tabular data.
	Header  []string
	Records [][]string

	// Metadata carries format-specific details.
	Metadata map[string]any
}

// Feature is one vector feature: a polygon ring plus its properties.
type Feature struct {
	Ring       geometry.Polygon
	Properties map[string]any
}

// Loader ingests one input format into a Dataset.
type Loader interface {
	// Load reads the file at path into a tagged dataset.
	Load(path string) (*Dataset, error)

	// Name returns the registry name of the loader.
	Name() string
}

var (
	mu      sync.RWMutex
	loaders = map[Kind]Loader{}
)

// Register adds a loader for a data kind, replacing any previous one.
func Register(kind Kind, l Loader) {
	mu.Lock()
	defer mu.Unlock()
	loaders[kind] = l
}

// Get returns the loader registered for kind.
func Get(kind Kind) (Loader, error) {
	mu.RLock()
	defer mu.RUnlock()
	l, ok := loaders[kind]
	if !ok {
		return nil, fmt.Errorf("no loader registered for data kind %q", kind)
	}
	return l, nil
}

// InferKind guesses the data kind from the file extension.
func InferKind(path string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xyz", ".pts":
		return KindPointCloud, nil
	case ".tif", ".tiff", ".png", ".jpg", ".jpeg":
		return KindRaster, nil
	case ".geojson", ".json":
		return KindVector, nil
	case ".csv":
		return KindTabular, nil
	default:
		return "", fmt.Errorf("cannot infer data kind from %q", path)
	}
}
