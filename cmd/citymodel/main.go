// Command citymodel converts geospatial data into 3D city model documents.
package main

import (
	"fmt"
	"os"

	"github.com/geoforge/citymodel-go/citygml"
	"github.com/geoforge/citymodel-go/cmd"
	"github.com/geoforge/citymodel-go/export"
	"github.com/geoforge/citymodel-go/loader"
	"github.com/geoforge/citymodel-go/process"
)

func main() {
	loader.RegisterDefaults()
	process.Register(process.FootprintProcessor{})
	export.Register(citygml.New())

	root := cmd.NewRootCommand()
	root.AddCommand(cmd.NewExportCommand())
	root.AddCommand(cmd.NewGenerateCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
