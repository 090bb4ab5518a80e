package process

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/geoforge/citymodel-go/geometry"
	"github.com/geoforge/citymodel-go/loader"
)

// FootprintProcessor turns vector polygon features into building
// segmentation contours. Each feature contributes one contour; a numeric
// "height" property lifts a duplicate contour to the roof level so flat
// footprints gain an upper surface.
type FootprintProcessor struct{}

// Name returns the registry name of the processor.
func (FootprintProcessor) Name() string { return "footprint" }

// Process derives segmentation contours from a vector dataset.
func (p FootprintProcessor) Process(ds *loader.Dataset) (*Result, error) {
	if ds == nil || ds.Kind != loader.KindVector {
		return nil, fmt.Errorf("footprint processor needs a vector dataset")
	}
	if len(ds.Features) == 0 {
		return nil, fmt.Errorf("vector dataset %q has no polygon features", ds.Path)
	}

	var contours []geometry.Polygon
	for _, f := range ds.Features {
		contours = append(contours, f.Ring)
		if h, ok := featureHeight(f); ok {
			contours = append(contours, liftRing(f.Ring, h))
		}
	}

	log.Info("footprints processed", "features", len(ds.Features), "contours", len(contours))
	return &Result{
		Segments: &geometry.Segments{Contours: contours},
		Source:   ds,
	}, nil
}

func featureHeight(f loader.Feature) (float64, bool) {
	switch v := f.Properties["height"].(type) {
	case float64:
		return v, v > 0
	case int:
		return float64(v), v > 0
	default:
		return 0, false
	}
}

func liftRing(ring geometry.Polygon, dz float64) geometry.Polygon {
	lifted := make(geometry.Polygon, len(ring))
	for i, p := range ring {
		lifted[i] = geometry.Point{p[0], p[1], p[2] + dz}
	}
	return lifted
}
