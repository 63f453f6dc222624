// Package testutil draws synthetic silhouettes for tests: a black shape
// centred on a white canvas, as the scanned views look.
package testutil

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CanvasSize is the width and height of every generated silhouette.
const CanvasSize = 200

// Outline names a silhouette that can be drawn.
type Outline string

const (
	Blank     Outline = "blank"
	Square    Outline = "square"
	Rectangle Outline = "rectangle"
	Triangle  Outline = "triangle"
	Circle    Outline = "circle"
)

// Draw renders the outline as black on a white CanvasSize canvas.
func Draw(o Outline) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, CanvasSize, CanvasSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	black := image.NewUniform(color.Black)
	switch o {
	case Square:
		draw.Draw(img, image.Rect(50, 50, 150, 150), black, image.Point{}, draw.Src)
	case Rectangle:
		draw.Draw(img, image.Rect(20, 60, 180, 140), black, image.Point{}, draw.Src)
	case Triangle:
		fill(img, func(x, y float64) bool {
			return inTriangle(x, y, [3][2]float64{{100, 20}, {20, 180}, {180, 180}})
		})
	case Circle:
		fill(img, func(x, y float64) bool {
			dx, dy := x-100, y-100
			return dx*dx+dy*dy <= 60*60
		})
	}
	return img
}

// WritePNG draws the outline and saves it as dir/name.
func WritePNG(t testing.TB, dir, name string, o Outline) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, Draw(o)))
	return path
}

// WriteViews writes front, top and side silhouettes into dir and returns
// their paths in that order.
func WriteViews(t testing.TB, dir string, front, top, side Outline) (string, string, string) {
	t.Helper()
	return WritePNG(t, dir, "front.png", front),
		WritePNG(t, dir, "top.png", top),
		WritePNG(t, dir, "side.png", side)
}

func fill(img *image.RGBA, inside func(x, y float64) bool) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if inside(float64(x)+0.5, float64(y)+0.5) {
				img.Set(x, y, color.Black)
			}
		}
	}
}

func inTriangle(x, y float64, v [3][2]float64) bool {
	sign := func(a, b [2]float64) float64 {
		return (x-b[0])*(a[1]-b[1]) - (a[0]-b[0])*(y-b[1])
	}
	d1 := sign(v[0], v[1])
	d2 := sign(v[1], v[2])
	d3 := sign(v[2], v[0])
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}
