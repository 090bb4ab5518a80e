package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/geoforge/citymodel-go/geometry"
)

// VectorLoader reads GeoJSON polygon features. Only the exterior ring of
// each Polygon geometry is kept; other geometry types are skipped.
type VectorLoader struct{}

// Name returns the registry name of the loader.
func (VectorLoader) Name() string { return "vector" }

type geoJSON struct {
	Type     string         `json:"type"`
	Features []geoFeature   `json:"features"`
	Geometry *geoGeometry   `json:"geometry"`
	Props    map[string]any `json:"properties"`
}

type geoFeature struct {
	Geometry *geoGeometry   `json:"geometry"`
	Props    map[string]any `json:"properties"`
}

type geoGeometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// Load reads a GeoJSON file into a vector dataset.
func (l VectorLoader) Load(path string) (*Dataset, error) {
	log.Info("loading vector data", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vector file: %w", err)
	}

	var doc geoJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse GeoJSON: %w", err)
	}

	var features []Feature
	switch doc.Type {
	case "FeatureCollection":
		for _, f := range doc.Features {
			if feat, ok := vectorFeature(f.Geometry, f.Props); ok {
				features = append(features, feat)
			}
		}
	case "Feature":
		if feat, ok := vectorFeature(doc.Geometry, doc.Props); ok {
			features = append(features, feat)
		}
	default:
		return nil, fmt.Errorf("unsupported GeoJSON type %q", doc.Type)
	}

	log.Info("vector data loaded", "features", len(features))
	return &Dataset{
		Kind:     KindVector,
		Path:     path,
		Features: features,
		Metadata: map[string]any{"format": "geojson"},
	}, nil
}

func vectorFeature(g *geoGeometry, props map[string]any) (Feature, bool) {
	if g == nil || g.Type != "Polygon" {
		return Feature{}, false
	}
	var rings [][][]float64
	if err := json.Unmarshal(g.Coordinates, &rings); err != nil || len(rings) == 0 {
		return Feature{}, false
	}

	ring := make(geometry.Polygon, 0, len(rings[0]))
	for _, pos := range rings[0] {
		if len(pos) < 2 {
			return Feature{}, false
		}
		p := geometry.Point{pos[0], pos[1], 0}
		if len(pos) > 2 {
			p[2] = pos[2]
		}
		ring = append(ring, p)
	}
	return Feature{Ring: ring, Properties: props}, true
}
