package contour

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"shape-generator/pkg/geometry"

	"gocv.io/x/gocv"
)

// ErrEmptyImage is returned when there are no pixels to classify.
var ErrEmptyImage = errors.New("empty image")

// Result holds a classification and the contour evidence behind it.
type Result struct {
	Category     Category
	Vertices     int                 // Vertex count of the approximated polygon
	Polygon      []geometry.PointInt // Approximated polygon vertices
	Bounds       geometry.RectInt    // Bounding box of the approximated polygon
	AspectRatio  float64             // Bounds width / height
	Area         float64 // Enclosed area of the approximated polygon, px²
	Perimeter    float64 // Outline length of the approximated polygon, px
	Convex       bool
	ContourCount int // Contours found in the binarized image
}

// ClassifyImage classifies a Go image.Image.
func ClassifyImage(srcImg image.Image, params Params) (*Result, error) {
	if srcImg == nil || srcImg.Bounds().Empty() {
		return nil, ErrEmptyImage
	}

	mat, err := imageToMat(srcImg)
	if err != nil {
		return nil, fmt.Errorf("failed to convert image: %w", err)
	}
	defer mat.Close()

	return Classify(mat, params)
}

// Classify binarizes a BGR Mat, walks its contour tree and classifies the
// first contour after the skipped frame contour(s). Only that single contour
// is examined; when none exists the category is Unknown.
func Classify(img gocv.Mat, params Params) (*Result, error) {
	if img.Empty() {
		return nil, ErrEmptyImage
	}

	gray := gocv.NewMat()
	defer gray.Close()
	if img.Channels() == 1 {
		img.CopyTo(&gray)
	} else {
		gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)
	}

	binary := gocv.NewMat()
	defer binary.Close()
	gocv.Threshold(gray, &binary, params.Threshold, params.MaxValue, gocv.ThresholdBinary)

	contours := gocv.FindContours(binary, gocv.RetrievalTree, gocv.ChainApproxSimple)
	defer contours.Close()

	result := &Result{ContourCount: contours.Size()}
	if contours.Size() <= params.SkipContours {
		return result, nil
	}

	contour := contours.At(params.SkipContours)
	epsilon := params.EpsilonFraction * gocv.ArcLength(contour, true)
	approx := gocv.ApproxPolyDP(contour, epsilon, true)
	defer approx.Close()

	result.Polygon = geometry.PointsFromImage(approx.ToPoints())
	result.Vertices = approx.Size()
	result.Bounds = geometry.RectFromImage(gocv.BoundingRect(approx))
	result.AspectRatio = result.Bounds.AspectRatio()
	result.Area = geometry.Area(result.Polygon)
	result.Perimeter = geometry.Perimeter(result.Polygon)
	result.Convex = geometry.IsConvex(result.Polygon)
	result.Category = Categorize(result.Vertices, result.Bounds, params)

	return result, nil
}

// Categorize maps an approximated polygon's vertex count to a category.
// Quadrilaterals are split into Square and Rectangle by the aspect ratio of
// their bounding box, inclusive at both band edges.
func Categorize(vertices int, bounds geometry.RectInt, params Params) Category {
	switch vertices {
	case 3:
		return Triangle
	case 4:
		ratio := bounds.AspectRatio()
		if ratio >= params.SquareMin && ratio <= params.SquareMax {
			return Square
		}
		return Rectangle
	case 5:
		return Pentagon
	case 6:
		return Hexagon
	default:
		return Circle
	}
}

// imageToMat converts a Go image.Image to a 3-channel BGR OpenCV Mat.
// Anything but an origin-anchored RGBA is redrawn into one first.
func imageToMat(srcImg image.Image) (gocv.Mat, error) {
	if rgba, ok := srcImg.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return gocv.ImageToMatRGB(rgba)
	}

	bounds := srcImg.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), srcImg, bounds.Min, draw.Src)
	return gocv.ImageToMatRGB(rgba)
}
