// Package config holds the JSON config file and CLI flag plumbing shared by
// the command-line tools.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds all configurable paths and export settings.
type Config struct {
	// Paths
	AssemblyDir  string `json:"assembly_dir"`
	OutputDir    string `json:"output_dir"`
	AssemblyName string `json:"assembly_name"`
	TableCSV     string `json:"table_csv"`
	LayoutJSON   string `json:"layout_json"`

	// Export settings
	Views     []string `json:"views"`
	Format    string   `json:"format"`
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	Realistic bool     `json:"realistic"`
	Wireframe bool     `json:"wireframe"`

	// Grid settings
	Spacing [3]float64 `json:"grid_spacing"`
	Units   string     `json:"units"`
}

// Load reads a JSON config file and returns Config. Fields not set in the
// file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	AssemblyDir  string
	OutputDir    string
	AssemblyName string
	TableCSV     string
	LayoutJSON   string
	Format       string
	Width        int
	Height       int
}

// Resolve fills in any empty fields with defaults. CLI flags take priority
// when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.AssemblyDir != "" {
		c.AssemblyDir = flags.AssemblyDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.AssemblyName != "" {
		c.AssemblyName = flags.AssemblyName
	}
	if flags.TableCSV != "" {
		c.TableCSV = flags.TableCSV
	}
	if flags.LayoutJSON != "" {
		c.LayoutJSON = flags.LayoutJSON
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}

	if c.OutputDir == "" {
		c.OutputDir = c.AssemblyDir
	}
	if c.Format == "" {
		c.Format = "png"
	}
	if c.Width <= 0 {
		c.Width = 1920
	}
	if c.Height <= 0 {
		c.Height = 1080
	}
	if c.Spacing == ([3]float64{}) {
		c.Spacing = [3]float64{50, 50, 55}
	}
	if c.Units == "" {
		c.Units = "metric"
	}
	if c.AssemblyName == "" {
		c.AssemblyName = "UC2_Assembly.iam"
	}
}
