package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoforge/citymodel-go/citygml"
	"github.com/geoforge/citymodel-go/export"
	"github.com/geoforge/citymodel-go/loader"
	"github.com/geoforge/citymodel-go/process"
)

func init() {
	loader.RegisterDefaults()
	process.Register(process.FootprintProcessor{})
	export.Register(citygml.New())
}

func TestNewRootCommand(t *testing.T) {
	root := NewRootCommand()
	assert.Equal(t, "citymodel", root.Use)
	assert.Contains(t, root.Short, "city model")
}

func TestRootCommandHelp(t *testing.T) {
	root := NewRootCommand()
	root.AddCommand(NewExportCommand())

	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetArgs([]string{"--help"})
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "export")
}

func TestExportCommandRequiresFlags(t *testing.T) {
	root := NewRootCommand()
	root.AddCommand(NewExportCommand())
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"export"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestExportCommandEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "parcels.geojson")
	require.NoError(t, os.WriteFile(input, []byte(`{
		"type": "Feature",
		"geometry": {"type": "Polygon", "coordinates": [[[0,0],[5,0],[5,5],[0,5],[0,0]]]}
	}`), 0o644))
	output := filepath.Join(dir, "model.xml")

	root := NewRootCommand()
	root.AddCommand(NewExportCommand())
	root.SetOut(new(bytes.Buffer))
	root.SetArgs([]string{"export", "-i", input, "-o", output, "-l", "1"})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(dir, "model.gml"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<?xml"))
	assert.Contains(t, string(data), "<bldg:lod1Solid>")
}

func TestGenerateCommandRequiresEndpoint(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "site.png")
	require.NoError(t, os.WriteFile(input, []byte("png"), 0o644))

	root := NewRootCommand()
	root.AddCommand(NewGenerateCommand())
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"generate", "-i", input, "-o", filepath.Join(dir, "model.gml")})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endpoint not configured")
}
