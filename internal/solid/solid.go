// Package solid builds parametric solid definitions for the recognized
// primitives and serializes them as OpenSCAD source.
package solid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Dimensions is the (width, depth, height) envelope of the generated solid,
// measured along X, Y and Z.
type Dimensions struct {
	Width  float64 `yaml:"width"`
	Depth  float64 `yaml:"depth"`
	Height float64 `yaml:"height"`
}

// DefaultDimensions returns the envelope used when none is configured.
func DefaultDimensions() Dimensions {
	return Dimensions{Width: 50, Depth: 50, Height: 100}
}

// Validate checks that every extent is positive and finite.
func (d Dimensions) Validate() error {
	if !extent(d.Width) || !extent(d.Depth) || !extent(d.Height) {
		return fmt.Errorf("dimensions must be positive and finite, got %gx%gx%g", d.Width, d.Depth, d.Height)
	}
	return nil
}

// extent rejects NaN along with non-positive and infinite values.
func extent(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%gx%gx%g", d.Width, d.Depth, d.Height)
}

// Geometry is a node of a solid definition tree.
type Geometry interface {
	Kind() string
}

// Box is an axis-aligned box with one corner at the origin.
type Box struct {
	Size r3.Vec
}

func (Box) Kind() string { return "cube" }

// Cylinder is a right circular frustum standing on the XY plane. R1 is the
// bottom radius, R2 the top radius.
type Cylinder struct {
	R1, R2 float64
	Height float64
}

func (Cylinder) Kind() string { return "cylinder" }

// IsCone reports whether the top radius collapses to a point.
func (c Cylinder) IsCone() bool { return c.R2 == 0 && c.R1 > 0 }

// Polyhedron is an explicit point/face solid. Faces index into Points.
type Polyhedron struct {
	Points []r3.Vec
	Faces  [][]int
}

func (Polyhedron) Kind() string { return "polyhedron" }

// Apex returns the highest point, or false for an empty polyhedron.
func (p Polyhedron) Apex() (r3.Vec, bool) {
	if len(p.Points) == 0 {
		return r3.Vec{}, false
	}
	top := p.Points[0]
	for _, v := range p.Points[1:] {
		if v.Z > top.Z {
			top = v
		}
	}
	return top, true
}

// Validate checks that every face has at least three in-range indices.
func (p Polyhedron) Validate() error {
	for i, f := range p.Faces {
		if len(f) < 3 {
			return fmt.Errorf("face %d has %d vertices", i, len(f))
		}
		for _, idx := range f {
			if idx < 0 || idx >= len(p.Points) {
				return fmt.Errorf("face %d references point %d of %d", i, idx, len(p.Points))
			}
		}
	}
	return nil
}
