// Package generator runs the silhouette-to-solid pipeline: load three views,
// classify each, resolve the primitive and write its OpenSCAD model.
package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"shape-generator/internal/config"
	"shape-generator/internal/contour"
	"shape-generator/internal/shape"
	"shape-generator/internal/silhouette"
	"shape-generator/internal/solid"

	"go.uber.org/zap"
)

// Result is the outcome of one run.
type Result struct {
	Front contour.Result
	Top   contour.Result
	Side  contour.Result
	Shape shape.Name

	// Model is nil and OutputPath empty when the shape was not recognized.
	Model      solid.Geometry
	OutputPath string
}

// Triple returns the (front, top, side) categories.
func (r *Result) Triple() shape.Triple {
	return shape.Triple{Front: r.Front.Category, Top: r.Top.Category, Side: r.Side.Category}
}

// Generator turns silhouettes into a model file.
type Generator struct {
	cfg    config.Config
	params contour.Params
	log    *zap.Logger
}

// New creates a Generator. A nil logger discards log output.
func New(cfg config.Config, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{cfg: cfg, params: cfg.ContourParams(), log: log}
}

// Run executes the pipeline. Input errors abort before anything is written.
func (g *Generator) Run() (*Result, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	views, err := silhouette.LoadAll(g.cfg.Views.Front, g.cfg.Views.Top, g.cfg.Views.Side)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	targets := map[silhouette.View]*contour.Result{
		silhouette.ViewFront: &result.Front,
		silhouette.ViewTop:   &result.Top,
		silhouette.ViewSide:  &result.Side,
	}
	err = views.Each(func(s *silhouette.Silhouette) error {
		res, err := g.Classify(s)
		if err != nil {
			return err
		}
		*targets[s.View] = *res
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Shape = shape.ResolveTriple(result.Triple())
	g.log.Info("resolved shape",
		zap.Stringer("views", result.Triple()),
		zap.Stringer("shape", result.Shape))

	if !result.Shape.Recognized() {
		return result, nil
	}

	model, err := g.Model(result.Shape)
	if err != nil {
		return nil, err
	}
	result.Model = model

	path, err := g.write(result.Shape, model)
	if err != nil {
		return nil, err
	}
	result.OutputPath = path

	return result, nil
}

// Classify classifies one loaded silhouette. A silhouette without pixels is
// reported as an input error for its view.
func (g *Generator) Classify(s *silhouette.Silhouette) (*contour.Result, error) {
	res, err := contour.ClassifyImage(s.Image, g.params)
	if err != nil {
		return nil, &silhouette.InputError{View: s.View, Path: s.Path, Err: err}
	}

	g.log.Debug("classified silhouette",
		zap.Stringer("view", s.View),
		zap.String("path", s.Path),
		zap.Int("width", s.Width()),
		zap.Int("height", s.Height()),
		zap.Stringer("category", res.Category),
		zap.Int("vertices", res.Vertices),
		zap.Float64("aspect_ratio", res.AspectRatio),
		zap.Float64("area", res.Area),
		zap.Float64("perimeter", res.Perimeter),
		zap.Bool("convex", res.Convex),
		zap.Int("contours", res.ContourCount))

	return res, nil
}

// Model builds the solid for name. Unrecognized names are rejected here,
// before the builder is consulted.
func (g *Generator) Model(name shape.Name) (solid.Geometry, error) {
	if !name.Recognized() {
		return nil, &solid.UnsupportedShapeError{Shape: name}
	}
	return solid.Build(name, g.cfg.Dimensions)
}

func (g *Generator) write(name shape.Name, model solid.Geometry) (string, error) {
	if err := os.MkdirAll(g.cfg.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(g.cfg.OutputDir, solid.FileName(name))
	if err := solid.RenderToFile(path, model, g.cfg.RenderOptions()); err != nil {
		return "", err
	}

	g.log.Info("wrote model",
		zap.Stringer("shape", name),
		zap.String("path", path),
		zap.Stringer("dimensions", g.cfg.Dimensions))

	return path, nil
}
