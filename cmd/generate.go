package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/geoforge/citymodel-go/config"
	"github.com/geoforge/citymodel-go/export"
	"github.com/geoforge/citymodel-go/generate/trellis"
	"github.com/geoforge/citymodel-go/loader"
	"github.com/geoforge/citymodel-go/pipeline"
)

// NewGenerateCommand creates the generate command: send an input image to
// a remote 3D generation model and export the result.
func NewGenerateCommand() *cobra.Command {
	var (
		input    string
		output   string
		endpoint string
		lod      int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a 3D model remotely and export it",
		Long: `Generate sends the input image to a remote 3D generation model and
exports the returned geometry as a city model document.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := config.Load()
			if err != nil {
				return err
			}
			if endpoint != "" {
				cfg.Generate.Endpoint = endpoint
			}

			gen, err := trellis.New(trellis.Config{Endpoint: cfg.Generate.Endpoint})
			if err != nil {
				return err
			}

			p := pipeline.New(cfg)
			if err := p.Load(input, loader.KindRaster); err != nil {
				return err
			}
			if err := p.Generate(cmd.Context(), gen); err != nil {
				return err
			}

			final, err := p.Export(output, export.Options{LOD: lod})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(os.Stdout, final)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Path to input image")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path")
	cmd.Flags().StringVarP(&endpoint, "endpoint", "e", "", "Generation API endpoint")
	cmd.Flags().IntVarP(&lod, "lod", "l", 0, "Level of detail (1-4)")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
