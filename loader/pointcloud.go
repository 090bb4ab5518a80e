package loader

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/geoforge/citymodel-go/geometry"
)

// PointCloudLoader reads whitespace-separated XYZ text files. Lines with
// fewer than three columns or a leading comment marker are skipped.
type PointCloudLoader struct{}

// Name returns the registry name of the loader.
func (PointCloudLoader) Name() string { return "point-cloud" }

// Load reads an XYZ file into a point-cloud dataset.
func (l PointCloudLoader) Load(path string) (*Dataset, error) {
	log.Info("loading point cloud", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open point cloud file: %w", err)
	}
	defer f.Close()

	var points []geometry.Point
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		var p geometry.Point
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, fmt.Errorf("parse point cloud line %d: %w", line, err)
			}
			p[i] = v
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read point cloud file: %w", err)
	}

	log.Info("point cloud loaded", "points", len(points))
	return &Dataset{
		Kind:     KindPointCloud,
		Path:     path,
		Points:   points,
		Metadata: map[string]any{"format": "xyz"},
	}, nil
}

// RegisterDefaults registers the built-in loaders.
func RegisterDefaults() {
	Register(KindVector, VectorLoader{})
	Register(KindTabular, TabularLoader{})
	Register(KindPointCloud, PointCloudLoader{})
	Register(KindRaster, RasterLoader{})
}
