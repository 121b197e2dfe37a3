package rtree

import "math"

// Rect is an axis-aligned bounding rectangle covering [X1,X2] x [Y1,Y2].
type Rect struct {
	X1, Y1, X2, Y2 float64
}

// Perimeter returns the half-perimeter of the rectangle. The tree only ever
// compares perimeters against each other, so the factor of two is dropped.
func (r Rect) Perimeter() float64 {
	return (r.X2 - r.X1) + (r.Y2 - r.Y1)
}

// Center returns the centroid of the rectangle.
func (r Rect) Center() (x, y float64) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// MinDistToOrigin returns the squared distance from the origin to the
// (X1, Y2) corner of the rectangle. With x minimized and y maximized that
// corner dominates everything inside the rectangle, so the value is a lower
// bound usable for skyline pruning. It is not the distance to the nearest
// point of the rectangle.
func (r Rect) MinDistToOrigin() float64 {
	return r.X1*r.X1 + r.Y2*r.Y2
}

func rectFromPoint(x, y float64) Rect {
	return Rect{X1: x, Y1: y, X2: x, Y2: y}
}

func (r Rect) extendPoint(x, y float64) Rect {
	return Rect{
		X1: math.Min(r.X1, x),
		Y1: math.Min(r.Y1, y),
		X2: math.Max(r.X2, x),
		Y2: math.Max(r.Y2, y),
	}
}

func (r Rect) union(o Rect) Rect {
	return Rect{
		X1: math.Min(r.X1, o.X1),
		Y1: math.Min(r.Y1, o.Y1),
		X2: math.Max(r.X2, o.X2),
		Y2: math.Max(r.Y2, o.Y2),
	}
}

// perimeterIncrease reports how much the half-perimeter of r grows when r is
// extended to cover (x, y). Never negative.
func perimeterIncrease(r Rect, x, y float64) float64 {
	return r.extendPoint(x, y).Perimeter() - r.Perimeter()
}
