// Package shape maps the polygon categories of three orthographic views to
// the name of a 3D primitive.
package shape

import (
	"fmt"
	"strings"

	"shape-generator/internal/contour"
)

// Name identifies a recognized 3D primitive.
type Name int

const (
	NotRecognized Name = iota
	Cube
	Cylinder
	Cone
	Pyramid
)

func (n Name) String() string {
	switch n {
	case Cube:
		return "Cube"
	case Cylinder:
		return "Cylinder"
	case Cone:
		return "Cone"
	case Pyramid:
		return "Pyramid"
	default:
		return "Shape not recognized"
	}
}

// Recognized reports whether n is one of the four buildable primitives.
func (n Name) Recognized() bool {
	return n >= Cube && n <= Pyramid
}

// Slug returns the lowercase name used in output file names.
func (n Name) Slug() string {
	return strings.ToLower(n.String())
}

// ParseName parses a primitive name case-insensitively.
func ParseName(s string) (Name, error) {
	for _, n := range []Name{Cube, Cylinder, Cone, Pyramid} {
		if strings.EqualFold(n.String(), strings.TrimSpace(s)) {
			return n, nil
		}
	}
	return NotRecognized, fmt.Errorf("unknown shape %q", s)
}

// Triple is the ordered (front, top, side) category combination.
type Triple struct {
	Front contour.Category
	Top   contour.Category
	Side  contour.Category
}

func (t Triple) String() string {
	return fmt.Sprintf("%s/%s/%s", t.Front, t.Top, t.Side)
}

// Rule maps one exact triple to a primitive.
type Rule struct {
	Views Triple
	Shape Name
}

var rules = []Rule{
	{Triple{contour.Square, contour.Square, contour.Square}, Cube},
	{Triple{contour.Rectangle, contour.Circle, contour.Rectangle}, Cylinder},
	{Triple{contour.Triangle, contour.Circle, contour.Triangle}, Cone},
	{Triple{contour.Triangle, contour.Square, contour.Triangle}, Pyramid},
}

// Rules returns a copy of the lookup table in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Resolve returns the first primitive whose triple matches exactly, or
// NotRecognized.
func Resolve(front, top, side contour.Category) Name {
	return ResolveTriple(Triple{Front: front, Top: top, Side: side})
}

// ResolveTriple is Resolve for a prebuilt Triple.
func ResolveTriple(t Triple) Name {
	for _, r := range rules {
		if r.Views == t {
			return r.Shape
		}
	}
	return NotRecognized
}
