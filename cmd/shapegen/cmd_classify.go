package main

import (
	"fmt"
	"path/filepath"

	"shape-generator/internal/contour"
	"shape-generator/internal/silhouette"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (c *cli) classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify IMAGE...",
		Short: "Print the polygon category of individual silhouettes",
		Long: `Classifies each image on its own and prints the category together with
the vertex count and bounding-box aspect ratio of the examined contour.

Example:
  shapegen classify cone_front.png cone_top.png`,
		Args: cobra.MinimumNArgs(1),
		RunE: c.runClassify,
	}
}

func (c *cli) runClassify(cmd *cobra.Command, args []string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	params := cfg.ContourParams()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-32s %-8s %-10s %8s %8s %10s %10s %6s %8s\n",
		"Image", "View", "Category", "Vertices", "Aspect", "Area", "Perimeter", "Convex", "Contours")

	for _, path := range args {
		if !silhouette.IsSupportedFormat(path) {
			c.logger.Warn("unrecognized image extension", zap.String("path", path))
		}

		sil, err := silhouette.Load(path, silhouette.GuessView(path))
		if err != nil {
			return err
		}

		res, err := contour.ClassifyImage(sil.Image, params)
		if err != nil {
			return &silhouette.InputError{View: sil.View, Path: path, Err: err}
		}

		fmt.Fprintf(out, "%-32s %-8s %-10s %8d %8.3f %10.1f %10.1f %6t %8d\n",
			filepath.Base(path), sil.View, res.Category, res.Vertices, res.AspectRatio,
			res.Area, res.Perimeter, res.Convex, res.ContourCount)
	}
	return nil
}
