package geometry

import "math"

// Point represents a 2D point or vector in screen coordinates (Y grows downward)
type Point struct {
	X, Y float64
}

// NewPoint creates a new 2D point
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference between two points
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Mul multiplies the point by a scalar
func (p Point) Mul(scalar float64) Point {
	return Point{X: p.X * scalar, Y: p.Y * scalar}
}

// Dot returns the dot product of two vectors
func (p Point) Dot(other Point) float64 {
	return p.X*other.X + p.Y*other.Y
}

// Cross returns the z component of the cross product of two vectors
func (p Point) Cross(other Point) float64 {
	return p.X*other.Y - p.Y*other.X
}

// Length returns the magnitude of the vector
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points
func (p Point) Distance(other Point) float64 {
	return p.Sub(other).Length()
}

// Lerp returns the point at fraction t of the way from p to other
func (p Point) Lerp(other Point, t float64) Point {
	return Point{
		X: p.X + (other.X-p.X)*t,
		Y: p.Y + (other.Y-p.Y)*t,
	}
}

// Midpoint returns the point halfway between p and other
func (p Point) Midpoint(other Point) Point {
	return p.Lerp(other, 0.5)
}

// IsFinite reports whether both coordinates are finite numbers
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// ApproxEqual reports whether two points are within tolerance on both axes
func (p Point) ApproxEqual(other Point, tolerance float64) bool {
	return math.Abs(p.X-other.X) <= tolerance && math.Abs(p.Y-other.Y) <= tolerance
}

// Min returns a point with the minimum components of two points
func (p Point) Min(other Point) Point {
	return Point{X: math.Min(p.X, other.X), Y: math.Min(p.Y, other.Y)}
}

// Max returns a point with the maximum components of two points
func (p Point) Max(other Point) Point {
	return Point{X: math.Max(p.X, other.X), Y: math.Max(p.Y, other.Y)}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
