package loader

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/charmbracelet/log"
)

// RasterLoader reads image headers (PNG, JPEG). The pixel data itself is
// never needed in this pipeline; rasters flow to the remote generation
// model by path, so only dimensions and format are recorded.
type RasterLoader struct{}

// Name returns the registry name of the loader.
func (RasterLoader) Name() string { return "raster" }

// Load reads an image file into a raster dataset.
func (l RasterLoader) Load(path string) (*Dataset, error) {
	log.Info("loading raster data", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open raster file: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("decode raster header: %w", err)
	}

	return &Dataset{
		Kind: KindRaster,
		Path: path,
		Metadata: map[string]any{
			"format": format,
			"width":  cfg.Width,
			"height": cfg.Height,
		},
	}, nil
}
