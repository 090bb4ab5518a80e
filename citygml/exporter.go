package citygml

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/geoforge/citymodel-go/export"
	"github.com/geoforge/citymodel-go/geometry"
)

// Defaults applied when the corresponding option is unset.
const (
	DefaultLOD          = 2
	DefaultEPSG         = 4326
	DefaultBuildingType = "Building"
)

// Exporter writes model results as CityGML 2.0 building documents. It
// holds no state; every export call builds and discards its own document.
type Exporter struct{}

// New returns a CityGML exporter.
func New() Exporter {
	return Exporter{}
}

// Name returns the registry name of the exporter.
func (Exporter) Name() string { return "citygml" }

// Extension returns the canonical file extension, without dot.
func (Exporter) Extension() string { return CanonicalExtension }

// Export converts the model result into a single-building CityGML document
// and writes it under outputPath, returning the final path.
//
// An out-of-range LOD is coerced to 2 with a logged warning. Missing
// geometry falls back to canonical shapes. Construction and filesystem
// failures are logged at error severity and returned as export failures;
// no partial result is returned.
func (Exporter) Export(result any, outputPath string, opts export.Options) (string, error) {
	lod := normalizeLOD(opts.LOD)
	epsg := opts.EPSG
	if epsg == 0 {
		epsg = DefaultEPSG
	}
	buildingType := opts.BuildingType
	if buildingType == "" {
		buildingType = DefaultBuildingType
	}

	log.Info("exporting model to CityGML", "path", outputPath, "lod", lod)

	desc := geometry.Extract(result)
	sg, err := BuildSolid(desc, lod)
	if err != nil {
		log.Error("CityGML export failed", "err", err)
		return "", fmt.Errorf("citygml export: %w", err)
	}

	fields, addr := MapAttributes(opts.BuildingAttributes)

	doc := NewCityModel(epsg)
	doc.AddBuilding(buildingType, lod, sg, fields, addr)

	finalPath, err := WriteDocument(doc, outputPath)
	if err != nil {
		log.Error("CityGML export failed", "err", err)
		return "", fmt.Errorf("citygml export: %w", err)
	}

	log.Info("model exported", "path", finalPath)
	return finalPath, nil
}

// normalizeLOD coerces the requested LOD into the supported domain. Zero
// means unset and takes the default silently; anything else outside 1-4 is
// a configuration anomaly recovered with a warning, never an error.
func normalizeLOD(lod int) int {
	if lod == 0 {
		return DefaultLOD
	}
	if lod < 1 || lod > 4 {
		log.Warn("unsupported LOD, using LOD2 instead", "lod", lod)
		return DefaultLOD
	}
	return lod
}
