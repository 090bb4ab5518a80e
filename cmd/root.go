// Package cmd provides the cobra commands for the citymodel CLI.
package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/geoforge/citymodel-go/version"
)

// NewRootCommand creates the root command for the citymodel CLI.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "citymodel",
		Short: "Convert geospatial data into 3D city model documents",
		Long: `citymodel converts geospatial input (vector footprints, imagery,
point clouds) into standards-shaped 3D building documents such as CityGML.`,
		Version:       version.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if !verbose {
				log.SetLevel(log.WarnLevel)
			}
		},
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	return cmd
}
