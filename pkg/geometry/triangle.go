package geometry

import "math"

// Triangle is a plain triangle given by its three corners
type Triangle struct {
	V1, V2, V3 Point
}

// NewTriangle creates a new triangle
func NewTriangle(v1, v2, v3 Point) Triangle {
	return Triangle{V1: v1, V2: v2, V3: v3}
}

// SignedArea returns the shoelace area of the triangle. The sign depends on
// the winding order of the corners.
func (t Triangle) SignedArea() float64 {
	return t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1)) / 2.0
}

// Area returns the unsigned area of the triangle
func (t Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

// EdgeLengths returns the lengths of all three edges
func (t Triangle) EdgeLengths() [3]float64 {
	return [3]float64{
		t.V1.Distance(t.V2),
		t.V2.Distance(t.V3),
		t.V3.Distance(t.V1),
	}
}

// Perimeter returns the total length of all edges
func (t Triangle) Perimeter() float64 {
	lengths := t.EdgeLengths()
	return lengths[0] + lengths[1] + lengths[2]
}

// Center returns the centroid of the triangle
func (t Triangle) Center() Point {
	return Point{
		X: (t.V1.X + t.V2.X + t.V3.X) / 3.0,
		Y: (t.V1.Y + t.V2.Y + t.V3.Y) / 3.0,
	}
}

// Angles returns the three interior angles in radians
func (t Triangle) Angles() [3]float64 {
	return [3]float64{
		angleAt(t.V1, t.V2, t.V3),
		angleAt(t.V2, t.V3, t.V1),
		angleAt(t.V3, t.V1, t.V2),
	}
}

// Vertices returns the corners in order
func (t Triangle) Vertices() [3]Point {
	return [3]Point{t.V1, t.V2, t.V3}
}

// angleAt returns the angle at vertex between the rays to a and b
func angleAt(vertex, a, b Point) float64 {
	u := a.Sub(vertex)
	v := b.Sub(vertex)
	return math.Abs(math.Atan2(u.Cross(v), u.Dot(v)))
}
