package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shape-generator/internal/config"
	"shape-generator/internal/contour"
	"shape-generator/internal/solid"
)

func validConfig() config.Config {
	cfg := config.Default()
	cfg.Views = config.Views{Front: "f.png", Top: "t.png", Side: "s.png"}
	return cfg
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, solid.Dimensions{Width: 50, Depth: 50, Height: 100}, cfg.Dimensions)
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, contour.DefaultParams(), cfg.ContourParams())
	assert.Error(t, cfg.Validate(), "views are required")
	assert.NoError(t, validConfig().Validate())
}

func TestLoadResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
views:
  front: images/front.png
  top: /abs/top.png
  side: images/side.png
dimensions:
  width: 30
  height: 80
detection:
  threshold: 200
`), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "images", "front.png"), cfg.Views.Front)
	assert.Equal(t, "/abs/top.png", cfg.Views.Top)
	assert.Equal(t, filepath.Join(dir, "output"), cfg.OutputDir)

	// Unset fields keep their defaults.
	assert.Equal(t, solid.Dimensions{Width: 30, Depth: 50, Height: 80}, cfg.Dimensions)
	assert.Equal(t, float32(200), cfg.ContourParams().Threshold)
	assert.Equal(t, 0.01, cfg.ContourParams().EpsilonFraction)
	require.NoError(t, cfg.Validate())
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("views: [1, 2"), 0644))
	_, err = config.Load(bad)
	assert.Error(t, err)
}

func TestSaveThenLoad(t *testing.T) {
	cfg := validConfig()
	cfg.Render.Segments = 96
	path := filepath.Join(t.TempDir(), "nested", "job.yaml")
	require.NoError(t, cfg.Save(path))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 96, loaded.RenderOptions().Segments)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "f.png"), loaded.Views.Front)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"zero height":        func(c *config.Config) { c.Dimensions.Height = 0 },
		"no output dir":      func(c *config.Config) { c.OutputDir = "" },
		"threshold too high": func(c *config.Config) { c.Detection.Threshold = 255 },
		"no epsilon":         func(c *config.Config) { c.Detection.EpsilonFraction = 0 },
		"band excludes one":  func(c *config.Config) { c.Detection.SquareMin = 1.1 },
		"negative segments":  func(c *config.Config) { c.Render.Segments = -1 },
		"missing side":       func(c *config.Config) { c.Views.Side = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
