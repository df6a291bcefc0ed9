package aoc

import (
	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// PolygonArea returns the area of the polygon defined by the points, using
// the shoelace formula. The last point must equal the first.
func PolygonArea(pts []Pt) int {
	var area int

	for i := 1; i < len(pts); i++ {
		a := pts[i-1]
		b := pts[i]
		area += a.X*b.Y - a.Y*b.X
	}
	if area < 0 {
		area = -area
	}
	return area >> 1
}

// PolygonPerimeter returns the perimeter of the polygon defined by the points.
func PolygonPerimeter(pts []Pt) int {
	var perimeter int

	for i := 1; i < len(pts); i++ {
		perimeter += pts[i-1].MDist(pts[i])
	}
	return perimeter
}

// PolygonInteriorPoints returns the number of points with integer coordinates
// strictly inside the polygon defined by the points. The last point must
// equal the first.
func PolygonInteriorPoints(pts []Pt) int {
	/*
	  Pick's theorem:
	  A = i + b/2 - 1

	  i = A - b/2 + 1
	*/
	A := PolygonArea(pts)
	b_2 := PolygonPerimeter(pts) >> 1
	return A - b_2 + 1
}
