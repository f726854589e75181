package robinson

import (
	"fmt"
	"math"

	"github.com/philipparndt/gopenrose/pkg/geometry"
)

// invPhi is 1/φ, the golden section of a unit segment
const invPhi = 1 / math.Phi

// Decompose splits a triangle into two smaller Robinson triangles that
// exactly cover it. The child types follow the substitution table
//
//	ThinLeft   -> ThickRight, ThinLeft
//	ThinRight  -> ThickLeft,  ThinRight
//	ThickLeft  -> ThinRight,  ThickLeft
//	ThickRight -> ThinLeft,   ThickRight
//
// A thin parent is cut from one base corner to the golden section of the
// opposite leg. A thick parent is cut from the apex to the point on the base
// whose distance from one base corner equals the leg length. Left types cut
// on the side of the first base point, Right types on the second.
func Decompose(t Triangle) (Triangle, Triangle, error) {
	a := t.apex
	b1, b2 := t.BasePoints()

	var plan [2]corners
	switch t.typ {
	case ThinLeft:
		split := a.Lerp(b2, invPhi)
		plan = [2]corners{{ThickRight, split, a, b1}, {ThinLeft, b1, b2, split}}
	case ThinRight:
		split := a.Lerp(b1, invPhi)
		plan = [2]corners{{ThickLeft, split, a, b2}, {ThinRight, b2, b1, split}}
	case ThickLeft:
		split := b1.Lerp(b2, invPhi)
		plan = [2]corners{{ThinRight, b1, a, split}, {ThickLeft, split, a, b2}}
	case ThickRight:
		split := b2.Lerp(b1, invPhi)
		plan = [2]corners{{ThinLeft, b2, a, split}, {ThickRight, split, a, b1}}
	default:
		return Triangle{}, Triangle{}, &DecomposeError{
			Parent: t,
			Err:    fmt.Errorf("%w: invalid type %s", ErrDegenerate, t.typ),
		}
	}

	var children [2]Triangle
	for i, c := range plan {
		child, err := c.triangle()
		if err != nil {
			return Triangle{}, Triangle{}, &DecomposeError{Parent: t, Err: err}
		}
		children[i] = child
	}
	return children[0], children[1], nil
}

// corners describes a child by its type, apex and the two base corners
type corners struct {
	typ  Type
	apex geometry.Point
	p, q geometry.Point
}

// triangle builds the child. The leg length is measured rather than assumed
// and the rotation points from the apex to the middle of the base.
func (c corners) triangle() (Triangle, error) {
	leg := (c.apex.Distance(c.p) + c.apex.Distance(c.q)) / 2
	if leg <= 0 || math.IsNaN(leg) || math.IsInf(leg, 0) {
		return Triangle{}, fmt.Errorf("%w: %s child has leg length %g", ErrDegenerate, c.typ, leg)
	}
	rotation := geometry.Direction(c.apex, c.p.Midpoint(c.q))
	return New(c.typ, c.apex, leg, rotation)
}
