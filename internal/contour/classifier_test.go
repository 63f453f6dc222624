package contour_test

import (
	"image"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gocv.io/x/gocv"

	"shape-generator/internal/contour"
	"shape-generator/internal/testutil"
	"shape-generator/pkg/geometry"
)

func TestCategorizeVertexCounts(t *testing.T) {
	params := contour.DefaultParams()
	square := geometry.RectInt{Width: 100, Height: 100}

	cases := []struct {
		vertices int
		want     contour.Category
	}{
		{3, contour.Triangle},
		{4, contour.Square},
		{5, contour.Pentagon},
		{6, contour.Hexagon},
		{7, contour.Circle},
		{16, contour.Circle},
		{2, contour.Circle},
		{0, contour.Circle},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, contour.Categorize(tc.vertices, square, params), "vertices=%d", tc.vertices)
	}
}

func TestCategorizeSquareBandIsInclusive(t *testing.T) {
	params := contour.DefaultParams()

	cases := []struct {
		width, height int
		want          contour.Category
	}{
		{100, 100, contour.Square},    // 1.00
		{95, 100, contour.Square},     // 0.95, lower edge
		{105, 100, contour.Square},    // 1.05, upper edge
		{94, 100, contour.Rectangle},  // 0.94
		{106, 100, contour.Rectangle}, // 1.06
		{200, 100, contour.Rectangle},
		{100, 0, contour.Rectangle}, // degenerate bounds
	}
	for _, tc := range cases {
		bounds := geometry.RectInt{Width: tc.width, Height: tc.height}
		assert.Equal(t, tc.want, contour.Categorize(4, bounds, params), "%dx%d", tc.width, tc.height)
	}
}

func TestCategorizeFromPolygonBounds(t *testing.T) {
	// gocv.BoundingRect is pixel-inclusive: corners 0..52 x 0..49 give 53x50 (ratio 1.06).
	bounds := geometry.RectFromImage(image.Rect(0, 0, 53, 50))
	require.InDelta(t, 1.06, bounds.AspectRatio(), 1e-9)
	assert.Equal(t, contour.Rectangle, contour.Categorize(4, bounds, contour.DefaultParams()))

	widened := contour.DefaultParams().WithSquareBand(0.9, 1.1)
	assert.Equal(t, contour.Square, contour.Categorize(4, bounds, widened))
}

func TestCategoryNames(t *testing.T) {
	assert.Equal(t, "Triangle", contour.Triangle.String())
	assert.Equal(t, "Unknown", contour.Category(42).String())

	c, err := contour.ParseCategory(" rectangle ")
	require.NoError(t, err)
	assert.Equal(t, contour.Rectangle, c)

	_, err = contour.ParseCategory("octagon")
	assert.Error(t, err)
}

// ClassifierSuite runs the OpenCV pipeline on drawn silhouettes.
type ClassifierSuite struct {
	suite.Suite
	params contour.Params
}

func (s *ClassifierSuite) SetupTest() {
	s.params = contour.DefaultParams()
}

func (s *ClassifierSuite) classify(o testutil.Outline) *contour.Result {
	res, err := contour.ClassifyImage(testutil.Draw(o), s.params)
	require.NoError(s.T(), err)
	return res
}

func (s *ClassifierSuite) TestSquare() {
	res := s.classify(testutil.Square)
	s.Equal(contour.Square, res.Category)
	s.Equal(4, res.Vertices)
	s.InDelta(1.0, res.AspectRatio, 0.05)
	s.True(res.Convex)

	// The drawn square is 100x100; its hole contour runs one pixel outside.
	s.InDelta(100*100, res.Area, 500)
	s.InDelta(400, res.Perimeter, 20)
}

func (s *ClassifierSuite) TestRectangle() {
	res := s.classify(testutil.Rectangle)
	s.Equal(contour.Rectangle, res.Category)
	s.Equal(4, res.Vertices)
	s.Greater(res.AspectRatio, 1.5)
}

func (s *ClassifierSuite) TestTriangle() {
	res := s.classify(testutil.Triangle)
	s.Equal(contour.Triangle, res.Category)
	s.Len(res.Polygon, 3)
}

func (s *ClassifierSuite) TestCircle() {
	res := s.classify(testutil.Circle)
	s.Equal(contour.Circle, res.Category)
	s.Greater(res.Vertices, 6)
}

func (s *ClassifierSuite) TestBlankImageIsUnknown() {
	res := s.classify(testutil.Blank)
	s.Equal(contour.Unknown, res.Category)
	s.Equal(1, res.ContourCount, "only the frame contour")
	s.Zero(res.Vertices)
}

// grayMat returns a white single-channel canvas with a square of the given level.
func grayMat(level float64) gocv.Mat {
	mat := gocv.NewMatWithSize(testutil.CanvasSize, testutil.CanvasSize, gocv.MatTypeCV8U)
	mat.SetTo(gocv.NewScalar(255, 0, 0, 0))
	roi := mat.Region(image.Rect(50, 50, 150, 150))
	roi.SetTo(gocv.NewScalar(level, 0, 0, 0))
	roi.Close()
	return mat
}

func (s *ClassifierSuite) TestGrayscaleMat() {
	mat := grayMat(0)
	defer mat.Close()

	res, err := contour.Classify(mat, s.params)
	s.Require().NoError(err)
	s.Equal(contour.Square, res.Category)
}

func (s *ClassifierSuite) TestThresholdIsStrictlyGreater() {
	// A shape at exactly the threshold binarizes as background.
	at := grayMat(220)
	defer at.Close()
	res, err := contour.Classify(at, s.params)
	s.Require().NoError(err)
	s.Equal(contour.Unknown, res.Category)
	s.Equal(1, res.ContourCount)

	below := grayMat(219)
	defer below.Close()
	res, err = contour.Classify(below, s.params)
	s.Require().NoError(err)
	s.Equal(contour.Square, res.Category)
}

func (s *ClassifierSuite) TestNonRGBAImages() {
	src := testutil.Draw(testutil.Square)

	gray := image.NewGray(src.Bounds())
	draw.Draw(gray, gray.Bounds(), src, image.Point{}, draw.Src)
	res, err := contour.ClassifyImage(gray, s.params)
	s.Require().NoError(err)
	s.Equal(contour.Square, res.Category)

	// Sub-image whose bounds do not start at the origin.
	sub := src.SubImage(image.Rect(10, 10, 190, 190))
	res, err = contour.ClassifyImage(sub, s.params)
	s.Require().NoError(err)
	s.Equal(contour.Square, res.Category)
}

func (s *ClassifierSuite) TestEmptyInput() {
	_, err := contour.ClassifyImage(nil, s.params)
	s.ErrorIs(err, contour.ErrEmptyImage)

	empty := gocv.NewMat()
	defer empty.Close()
	_, err = contour.Classify(empty, s.params)
	s.ErrorIs(err, contour.ErrEmptyImage)
}

func TestClassifierSuite(t *testing.T) {
	suite.Run(t, new(ClassifierSuite))
}
