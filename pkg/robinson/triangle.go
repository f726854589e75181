package robinson

import (
	"fmt"
	"math"

	"github.com/philipparndt/gopenrose/pkg/geometry"
)

// Triangle is an immutable Robinson triangle
type Triangle struct {
	typ       Type
	apex      geometry.Point
	legLength float64
	rotation  float64
}

// New creates a triangle after validating its parameters. Any finite rotation
// is accepted and wrapped into [0, 2π).
func New(typ Type, apex geometry.Point, legLength, rotation float64) (Triangle, error) {
	if !typ.Valid() {
		return Triangle{}, fmt.Errorf("%w: invalid type %s", ErrDegenerate, typ)
	}
	if !apex.IsFinite() {
		return Triangle{}, fmt.Errorf("%w: apex (%g, %g) is not finite", ErrDegenerate, apex.X, apex.Y)
	}
	if math.IsNaN(legLength) || math.IsInf(legLength, 0) || legLength <= 0 {
		return Triangle{}, fmt.Errorf("%w: leg length %g must be positive and finite", ErrDegenerate, legLength)
	}
	if math.IsNaN(rotation) || math.IsInf(rotation, 0) {
		return Triangle{}, fmt.Errorf("%w: rotation %g is not finite", ErrDegenerate, rotation)
	}

	return Triangle{
		typ:       typ,
		apex:      apex,
		legLength: legLength,
		rotation:  geometry.NormalizeAngle(rotation),
	}, nil
}

// MustNew is like New but panics on invalid input. Intended for constants.
func MustNew(typ Type, apex geometry.Point, legLength, rotation float64) Triangle {
	t, err := New(typ, apex, legLength, rotation)
	if err != nil {
		panic(err)
	}
	return t
}

// Type returns the shape and chirality of the triangle
func (t Triangle) Type() Type { return t.typ }

// Apex returns the corner where the two legs meet
func (t Triangle) Apex() geometry.Point { return t.apex }

// LegLength returns the common length of both legs
func (t Triangle) LegLength() float64 { return t.legLength }

// Rotation returns the direction of the altitude from the apex, in [0, 2π)
func (t Triangle) Rotation() float64 { return t.rotation }

// BasePoints returns the two corners opposite the apex. The first lies half
// the apex angle counter-clockwise of the altitude, the second the same
// amount clockwise.
func (t Triangle) BasePoints() (geometry.Point, geometry.Point) {
	half := t.typ.VertexAngle() / 2
	thetaOne := geometry.NormalizeAngle(t.rotation + half)
	thetaTwo := geometry.NormalizeAngle(t.rotation - half)

	return geometry.Polar(t.apex, t.legLength, thetaOne),
		geometry.Polar(t.apex, t.legLength, thetaTwo)
}

// Vertices returns the apex followed by both base points
func (t Triangle) Vertices() [3]geometry.Point {
	b1, b2 := t.BasePoints()
	return [3]geometry.Point{t.apex, b1, b2}
}

// Outline returns the triangle as plain geometry
func (t Triangle) Outline() geometry.Triangle {
	v := t.Vertices()
	return geometry.NewTriangle(v[0], v[1], v[2])
}

// Area returns the area of the triangle
func (t Triangle) Area() float64 {
	return t.Outline().Area()
}

func (t Triangle) String() string {
	return fmt.Sprintf("%s{apex=(%g, %g) leg=%g rotation=%g}",
		t.typ, t.apex.X, t.apex.Y, t.legLength, t.rotation)
}
