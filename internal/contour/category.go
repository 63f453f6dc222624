// Package contour classifies a silhouette's outline into a polygon category.
package contour

import (
	"fmt"
	"strings"
)

// Category is the polygon class assigned to a silhouette.
type Category int

const (
	Unknown Category = iota
	Triangle
	Square
	Rectangle
	Pentagon
	Hexagon
	Circle
)

var categoryNames = [...]string{
	Unknown:   "Unknown",
	Triangle:  "Triangle",
	Square:    "Square",
	Rectangle: "Rectangle",
	Pentagon:  "Pentagon",
	Hexagon:   "Hexagon",
	Circle:    "Circle",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "Unknown"
	}
	return categoryNames[c]
}

// ParseCategory parses a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	for i, name := range categoryNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return Category(i), nil
		}
	}
	return Unknown, fmt.Errorf("unknown polygon category %q", s)
}
