// Package pipeline orchestrates the load, process, generate, and export
// stages into one workflow over the stage registries.
package pipeline

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/geoforge/citymodel-go/config"
	"github.com/geoforge/citymodel-go/export"
	"github.com/geoforge/citymodel-go/generate"
	"github.com/geoforge/citymodel-go/loader"
	"github.com/geoforge/citymodel-go/process"
)

// Pipeline runs input data through the conversion stages. Stages must be
// called in order; each checks its precondition explicitly.
type Pipeline struct {
	cfg     *config.Config
	dataset *loader.Dataset
	result  any
}

// New creates a pipeline with the given configuration. A nil configuration
// takes the defaults.
func New(cfg *config.Config) *Pipeline {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Pipeline{cfg: cfg}
}

// Load ingests the input file. An empty kind is inferred from the file
// extension.
func (p *Pipeline) Load(path string, kind loader.Kind) error {
	if kind == "" {
		inferred, err := loader.InferKind(path)
		if err != nil {
			return fmt.Errorf("load: %w", err)
		}
		kind = inferred
		log.Info("inferred data kind", "path", path, "kind", kind)
	}

	l, err := loader.Get(kind)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	ds, err := l.Load(path)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	p.dataset = ds
	return nil
}

// Process derives a model result from the loaded dataset. An empty name
// picks the default processor for the dataset kind.
func (p *Pipeline) Process(name string) error {
	if p.dataset == nil {
		return fmt.Errorf("process: no data loaded")
	}

	if name == "" {
		inferred, err := process.InferName(p.dataset.Kind)
		if err != nil {
			return fmt.Errorf("process: %w", err)
		}
		name = inferred
	}

	proc, err := process.Get(name)
	if err != nil {
		return fmt.Errorf("process: %w", err)
	}
	res, err := proc.Process(p.dataset)
	if err != nil {
		return fmt.Errorf("process: %w", err)
	}
	p.result = res
	return nil
}

// Generate replaces the model result with the output of a remote
// generation model, using the loaded input as the image source.
func (p *Pipeline) Generate(ctx context.Context, gen generate.Generator) error {
	if p.dataset == nil {
		return fmt.Errorf("generate: no data loaded")
	}

	log.Info("generating 3D model", "model", gen.Name())
	res, err := gen.Generate(ctx, generate.Request{ImagePath: p.dataset.Path})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	p.result = res
	return nil
}

// Export writes the model result using the configured format, returning
// the final output path. Option fields left at their zero value take the
// configured defaults.
func (p *Pipeline) Export(outputPath string, opts export.Options) (string, error) {
	if p.result == nil && p.dataset == nil {
		return "", fmt.Errorf("export: nothing to export")
	}

	if opts.LOD == 0 {
		opts.LOD = p.cfg.Export.LOD
	}
	if opts.EPSG == 0 {
		opts.EPSG = p.cfg.Export.EPSG
	}
	if opts.BuildingType == "" {
		opts.BuildingType = p.cfg.Export.BuildingType
	}
	if opts.BuildingAttributes == nil {
		opts.BuildingAttributes = p.cfg.Export.BuildingAttributes
	}

	e, err := export.Get(p.cfg.Export.Format)
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	final, err := e.Export(p.result, outputPath, opts)
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	return final, nil
}

// Result returns the current model result, or nil before processing.
func (p *Pipeline) Result() any { return p.result }
