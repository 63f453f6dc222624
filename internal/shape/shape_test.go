package shape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shape-generator/internal/contour"
	"shape-generator/internal/shape"
)

func TestResolveTable(t *testing.T) {
	cases := []struct {
		front, top, side contour.Category
		want             shape.Name
	}{
		{contour.Square, contour.Square, contour.Square, shape.Cube},
		{contour.Rectangle, contour.Circle, contour.Rectangle, shape.Cylinder},
		{contour.Triangle, contour.Circle, contour.Triangle, shape.Cone},
		{contour.Triangle, contour.Square, contour.Triangle, shape.Pyramid},

		{contour.Circle, contour.Circle, contour.Circle, shape.NotRecognized},
		{contour.Square, contour.Circle, contour.Square, shape.NotRecognized},
		{contour.Rectangle, contour.Square, contour.Rectangle, shape.NotRecognized},
		{contour.Triangle, contour.Circle, contour.Rectangle, shape.NotRecognized},
		{contour.Unknown, contour.Unknown, contour.Unknown, shape.NotRecognized},
		{contour.Hexagon, contour.Square, contour.Pentagon, shape.NotRecognized},
	}
	for _, tc := range cases {
		got := shape.Resolve(tc.front, tc.top, tc.side)
		assert.Equal(t, tc.want, got, "%s/%s/%s", tc.front, tc.top, tc.side)
	}
}

func TestRulesIsACopy(t *testing.T) {
	rules := shape.Rules()
	require.Len(t, rules, 4)
	rules[0].Shape = shape.Pyramid

	assert.Equal(t, shape.Cube, shape.Resolve(contour.Square, contour.Square, contour.Square))
	for _, r := range shape.Rules() {
		assert.Equal(t, r.Shape, shape.ResolveTriple(r.Views))
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, "Shape not recognized", shape.NotRecognized.String())
	assert.False(t, shape.NotRecognized.Recognized())
	assert.True(t, shape.Pyramid.Recognized())
	assert.Equal(t, "cylinder", shape.Cylinder.Slug())
	assert.Equal(t, "Triangle/Circle/Triangle",
		shape.Triple{Front: contour.Triangle, Top: contour.Circle, Side: contour.Triangle}.String())

	n, err := shape.ParseName("CONE")
	require.NoError(t, err)
	assert.Equal(t, shape.Cone, n)

	_, err = shape.ParseName("Shape not recognized")
	assert.Error(t, err)
}
