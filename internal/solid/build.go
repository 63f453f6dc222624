package solid

import (
	"errors"
	"fmt"

	"shape-generator/internal/shape"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrUnsupportedShape matches every *UnsupportedShapeError via errors.Is.
var ErrUnsupportedShape = errors.New("unsupported shape")

// UnsupportedShapeError is returned by Build for names outside the four
// buildable primitives.
type UnsupportedShapeError struct {
	Shape shape.Name
}

func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("unsupported shape: %s", e.Shape)
}

// Is reports ErrUnsupportedShape as a match.
func (e *UnsupportedShapeError) Is(target error) bool { return target == ErrUnsupportedShape }

// Build constructs the solid for a recognized primitive.
func Build(name shape.Name, dims Dimensions) (Geometry, error) {
	w, d, h := dims.Width, dims.Depth, dims.Height

	switch name {
	case shape.Cube:
		return Box{Size: r3.Vec{X: w, Y: d, Z: h}}, nil
	case shape.Cylinder:
		return Cylinder{R1: w / 2, R2: w / 2, Height: h}, nil
	case shape.Cone:
		return Cylinder{R1: w / 2, R2: 0, Height: h}, nil
	case shape.Pyramid:
		return pyramid(w, d, h), nil
	default:
		return nil, &UnsupportedShapeError{Shape: name}
	}
}

// pyramid builds a square-based pyramid: base corners counter-clockwise from
// the origin, apex above the base center.
func pyramid(w, d, h float64) Polyhedron {
	base := []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: w, Y: 0, Z: 0},
		{X: w, Y: d, Z: 0},
		{X: 0, Y: d, Z: 0},
	}
	apex := r3.Scale(0.5, r3.Add(base[0], base[2]))
	apex.Z = h

	return Polyhedron{
		Points: append(base, apex),
		Faces: [][]int{
			{0, 1, 4}, {1, 2, 4}, {2, 3, 4}, {3, 0, 4}, // sides
			{0, 1, 2, 3}, // base
		},
	}
}
