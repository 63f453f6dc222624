package geometry

import "math"

// IsConvex returns true if the polygon vertices form a convex polygon.
// The polygon is assumed to be simple (non-self-intersecting).
func IsConvex(polygon []PointInt) bool {
	if len(polygon) < 3 {
		return false
	}

	n := len(polygon)
	var sign int

	for i := 0; i < n; i++ {
		cross := crossProduct(
			polygon[i].ToFloat(),
			polygon[(i+1)%n].ToFloat(),
			polygon[(i+2)%n].ToFloat(),
		)

		if cross != 0 {
			currentSign := 1
			if cross < 0 {
				currentSign = -1
			}

			if sign == 0 {
				sign = currentSign
			} else if currentSign != sign {
				return false
			}
		}
	}

	return true
}

// Perimeter returns the length of the closed polygon outline.
func Perimeter(polygon []PointInt) float64 {
	if len(polygon) < 2 {
		return 0
	}
	var total float64
	for i := range polygon {
		total += polygon[i].ToFloat().Distance(polygon[(i+1)%len(polygon)].ToFloat())
	}
	return total
}

// Area returns the unsigned area of a simple polygon (shoelace formula).
func Area(polygon []PointInt) float64 {
	if len(polygon) < 3 {
		return 0
	}
	var sum float64
	n := len(polygon)
	for i := 0; i < n; i++ {
		a, b := polygon[i], polygon[(i+1)%n]
		sum += float64(a.X*b.Y - b.X*a.Y)
	}
	return math.Abs(sum) / 2
}

// crossProduct computes the cross product of vectors OA and OB.
func crossProduct(o, a, b Point2D) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}
