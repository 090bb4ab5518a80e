package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/geoforge/citymodel-go/config"
	"github.com/geoforge/citymodel-go/export"
	"github.com/geoforge/citymodel-go/loader"
	"github.com/geoforge/citymodel-go/pipeline"
)

// NewExportCommand creates the export command: load input data, derive
// geometry, and write the city model document.
func NewExportCommand() *cobra.Command {
	var (
		input        string
		output       string
		kind         string
		processor    string
		format       string
		lod          int
		epsg         int
		buildingType string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export input data as a city model document",
		Long: `Export loads the input file, derives building geometry from it, and
writes a city model document at the requested level of detail.

The data kind is inferred from the input extension unless --kind is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := config.Load()
			if err != nil {
				return err
			}
			if format != "" {
				cfg.Export.Format = format
			}

			p := pipeline.New(cfg)
			if err := p.Load(input, loader.Kind(kind)); err != nil {
				return err
			}
			if err := p.Process(processor); err != nil {
				return err
			}

			final, err := p.Export(output, export.Options{
				LOD:          lod,
				EPSG:         epsg,
				BuildingType: buildingType,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(os.Stdout, final)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Path to input data")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path")
	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Input data kind (point-cloud, raster, vector, tabular)")
	cmd.Flags().StringVarP(&processor, "processor", "p", "", "Processor to derive geometry with")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format")
	cmd.Flags().IntVarP(&lod, "lod", "l", 0, "Level of detail (1-4)")
	cmd.Flags().IntVar(&epsg, "epsg", 0, "EPSG code of the coordinate reference system")
	cmd.Flags().StringVarP(&buildingType, "type", "t", "", "Building feature type label")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
