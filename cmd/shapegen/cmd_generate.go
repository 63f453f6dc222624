package main

import (
	"fmt"

	"shape-generator/internal/generator"

	"github.com/spf13/cobra"
)

type generateFlags struct {
	front, top, side     string
	width, depth, height float64
	outputDir            string
	segments             int
}

func (c *cli) generateCmd() *cobra.Command {
	var gf generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Detect the shape in three views and write its OpenSCAD model",
		Long: `Loads the front, top and side silhouettes, classifies each outline and
writes <shape>_model.scad into the output directory when the combination is
recognized. Flags override values from --config.

Example:
  shapegen generate --front cone_front.png --top cone_top.png --side cone_side.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, gf)
		},
	}

	f := cmd.Flags()
	f.StringVar(&gf.front, "front", "", "Front view image")
	f.StringVar(&gf.top, "top", "", "Top view image")
	f.StringVar(&gf.side, "side", "", "Side view image")
	f.Float64Var(&gf.width, "width", 0, "Model width (X)")
	f.Float64Var(&gf.depth, "depth", 0, "Model depth (Y)")
	f.Float64Var(&gf.height, "height", 0, "Model height (Z)")
	f.StringVarP(&gf.outputDir, "out", "o", "", "Output directory")
	f.IntVar(&gf.segments, "segments", 0, "OpenSCAD $fn for curved surfaces (0 = OpenSCAD default)")

	return cmd
}

func (c *cli) runGenerate(cmd *cobra.Command, gf generateFlags) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("front") {
		cfg.Views.Front = gf.front
	}
	if flags.Changed("top") {
		cfg.Views.Top = gf.top
	}
	if flags.Changed("side") {
		cfg.Views.Side = gf.side
	}
	if flags.Changed("width") {
		cfg.Dimensions.Width = gf.width
	}
	if flags.Changed("depth") {
		cfg.Dimensions.Depth = gf.depth
	}
	if flags.Changed("height") {
		cfg.Dimensions.Height = gf.height
	}
	if flags.Changed("out") {
		cfg.OutputDir = gf.outputDir
	}
	if flags.Changed("segments") {
		cfg.Render.Segments = gf.segments
	}

	result, err := generator.New(cfg, c.logger).Run()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Detected 3D shape: %s\n", result.Shape)
	if result.OutputPath == "" {
		fmt.Fprintln(out, "Unable to generate 3D model. Shape could not be recognized.")
		return nil
	}
	fmt.Fprintf(out, "3D model for %s saved as '%s'.\n", result.Shape, result.OutputPath)
	return nil
}
