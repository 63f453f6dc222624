// Package config provides the run configuration file: which silhouettes to
// read, the solid envelope, and where to write the model.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"shape-generator/internal/contour"
	"shape-generator/internal/solid"

	"gopkg.in/yaml.v3"
)

// Config holds all shapegen settings.
type Config struct {
	// Silhouette image paths, relative to the config file when loaded from one
	Views Views `yaml:"views"`

	// Envelope of the generated solid
	Dimensions solid.Dimensions `yaml:"dimensions"`

	// Directory the model file is written to; created when missing
	OutputDir string `yaml:"output_dir"`

	Detection DetectionConfig `yaml:"detection"`
	Render    RenderConfig    `yaml:"render"`
}

// Views lists the three silhouette images.
type Views struct {
	Front string `yaml:"front"`
	Top   string `yaml:"top"`
	Side  string `yaml:"side"`
}

// DetectionConfig tunes contour classification.
type DetectionConfig struct {
	Threshold       float32 `yaml:"threshold"`
	EpsilonFraction float64 `yaml:"epsilon_fraction"`
	SquareMin       float64 `yaml:"square_min"`
	SquareMax       float64 `yaml:"square_max"`
}

// RenderConfig tunes OpenSCAD output.
type RenderConfig struct {
	Segments int `yaml:"segments"`
}

// Default returns a configuration with the built-in dimensions and
// detection parameters and no view paths.
func Default() Config {
	p := contour.DefaultParams()
	return Config{
		Dimensions: solid.DefaultDimensions(),
		OutputDir:  "output",
		Detection: DetectionConfig{
			Threshold:       p.Threshold,
			EpsilonFraction: p.EpsilonFraction,
			SquareMin:       p.SquareMin,
			SquareMax:       p.SquareMax,
		},
	}
}

// Load reads a YAML config. Fields absent from the file keep their defaults,
// and relative view paths are resolved against the file's directory.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	cfg.Views.Front = resolve(dir, cfg.Views.Front)
	cfg.Views.Top = resolve(dir, cfg.Views.Top)
	cfg.Views.Side = resolve(dir, cfg.Views.Side)
	cfg.OutputDir = resolve(dir, cfg.OutputDir)

	return cfg, nil
}

// Save writes the config as YAML.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Views.Front == "" || c.Views.Top == "" || c.Views.Side == "" {
		return fmt.Errorf("front, top and side image paths are required")
	}
	if err := c.Dimensions.Validate(); err != nil {
		return err
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	d := c.Detection
	if d.Threshold <= 0 || d.Threshold >= 255 {
		return fmt.Errorf("threshold must be between 0 and 255, got %g", d.Threshold)
	}
	if d.EpsilonFraction <= 0 {
		return fmt.Errorf("epsilon fraction must be positive, got %g", d.EpsilonFraction)
	}
	if d.SquareMin > 1 || d.SquareMax < 1 {
		return fmt.Errorf("square band [%g, %g] must contain 1", d.SquareMin, d.SquareMax)
	}
	if c.Render.Segments < 0 {
		return fmt.Errorf("segments must not be negative, got %d", c.Render.Segments)
	}
	return nil
}

// ContourParams returns the classifier parameters for this config.
func (c Config) ContourParams() contour.Params {
	return contour.DefaultParams().
		WithThreshold(c.Detection.Threshold).
		WithEpsilonFraction(c.Detection.EpsilonFraction).
		WithSquareBand(c.Detection.SquareMin, c.Detection.SquareMax)
}

// RenderOptions returns the SCAD writer options for this config.
func (c Config) RenderOptions() solid.RenderOptions {
	return solid.RenderOptions{Segments: c.Render.Segments}
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
