// Package config loads the citymodel pipeline configuration from YAML,
// layering file values over built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFilename is the standard name for citymodel configuration files.
const ConfigFilename = "citymodel.yaml"

// Config holds the pipeline configuration.
type Config struct {
	Verbose  bool           `yaml:"verbose"`
	Export   ExportConfig   `yaml:"export"`
	Generate GenerateConfig `yaml:"generate"`
}

// ExportConfig holds export defaults applied when a call does not override
// them.
type ExportConfig struct {
	Format             string         `yaml:"format"`
	LOD                int            `yaml:"lod"`
	EPSG               int            `yaml:"epsg"`
	BuildingType       string         `yaml:"building_type"`
	BuildingAttributes map[string]any `yaml:"building_attributes"`
}

// GenerateConfig holds remote generation-model settings.
type GenerateConfig struct {
	Model    string `yaml:"model"`
	Endpoint string `yaml:"endpoint"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Export: ExportConfig{
			Format:       "citygml",
			LOD:          2,
			EPSG:         4326,
			BuildingType: "Building",
		},
		Generate: GenerateConfig{
			Model: "trellis",
		},
	}
}

// Load loads from the current directory, walking up to find
// citymodel.yaml. A missing file is not an error; defaults are returned.
func Load() (*Config, string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadFrom(cwd)
}

// LoadFrom loads starting from the specified directory, walking up the
// tree. Returns the loaded config and the path it came from, or defaults
// and an empty path when no file is found.
func LoadFrom(startDir string) (*Config, string, error) {
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	currentDir := absDir
	for {
		configPath := filepath.Join(currentDir, ConfigFilename)
		if _, err := os.Stat(configPath); err == nil {
			cfg, err := LoadFile(configPath)
			if err != nil {
				return nil, "", err
			}
			return cfg, configPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return Default(), "", nil
		}
		currentDir = parentDir
	}
}

// LoadFile loads from a specific path, layered over the defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	return cfg, nil
}
