package robinson

import (
	"math"
	"testing"

	"github.com/philipparndt/gopenrose/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var substitutionTable = map[Type][2]Type{
	ThinLeft:   {ThickRight, ThinLeft},
	ThinRight:  {ThickLeft, ThinRight},
	ThickLeft:  {ThinRight, ThickLeft},
	ThickRight: {ThinLeft, ThickRight},
}

func representative(typ Type) Triangle {
	return MustNew(typ, geometry.NewPoint(120, -35), 50, 2.2)
}

// sharedCorners counts the corners of a that coincide with a corner of b
func sharedCorners(a, b Triangle) int {
	count := 0
	for _, p := range a.Vertices() {
		for _, q := range b.Vertices() {
			if p.ApproxEqual(q, 1e-7) {
				count++
				break
			}
		}
	}
	return count
}

func TestDecomposeTypeTable(t *testing.T) {
	for _, typ := range Types {
		first, second, err := Decompose(representative(typ))
		require.NoError(t, err)

		want := substitutionTable[typ]
		assert.Equal(t, want[0], first.Type(), "first child of %s", typ)
		assert.Equal(t, want[1], second.Type(), "second child of %s", typ)
	}
}

func TestDecomposeConservesArea(t *testing.T) {
	for _, typ := range Types {
		parent := representative(typ)
		first, second, err := Decompose(parent)
		require.NoError(t, err)

		assert.InDelta(t, parent.Area(), first.Area()+second.Area(), 1e-7, "area of %s", typ)
	}
}

func TestDecomposeChildrenShareAnEdge(t *testing.T) {
	for _, typ := range Types {
		first, second, err := Decompose(representative(typ))
		require.NoError(t, err)

		assert.Equal(t, 2, sharedCorners(first, second), "siblings of %s", typ)
	}
}

func TestDecomposeChildrenStayInsideParent(t *testing.T) {
	for _, typ := range Types {
		parent := representative(typ)
		first, second, err := Decompose(parent)
		require.NoError(t, err)

		outline := parent.Outline()
		for _, child := range []Triangle{first, second} {
			for _, p := range child.Vertices() {
				assert.True(t, contains(outline, p), "%s corner %v outside %s", child, p, parent)
			}
		}
	}
}

func TestDecomposeChildrenAreValid(t *testing.T) {
	for _, typ := range Types {
		first, second, err := Decompose(representative(typ))
		require.NoError(t, err)

		for _, child := range []Triangle{first, second} {
			assert.Greater(t, child.LegLength(), 0.0)
			assert.GreaterOrEqual(t, child.Rotation(), 0.0)
			assert.Less(t, child.Rotation(), 2*math.Pi)

			// The derived leg and rotation must reproduce an isosceles
			// triangle with the expected apex angle.
			angles := child.Outline().Angles()
			assert.InDelta(t, child.Type().VertexAngle(), angles[0], 1e-9)
		}
	}
}

func TestDecomposeLegLengths(t *testing.T) {
	leg := 50.0

	// Thin parents shrink both children by φ.
	first, second, err := Decompose(representative(ThinRight))
	require.NoError(t, err)
	assert.InDelta(t, leg/math.Phi, first.LegLength(), 1e-9)
	assert.InDelta(t, leg/math.Phi, second.LegLength(), 1e-9)

	// Thick parents keep the leg for the thin child.
	first, second, err = Decompose(representative(ThickLeft))
	require.NoError(t, err)
	assert.InDelta(t, leg, first.LegLength(), 1e-9)
	assert.InDelta(t, leg/math.Phi, second.LegLength(), 1e-9)
}

func TestDecomposeReusesParentCorners(t *testing.T) {
	parent := representative(ThickRight)
	b1, b2 := parent.BasePoints()

	first, second, err := Decompose(parent)
	require.NoError(t, err)

	assert.True(t, first.Apex().ApproxEqual(b2, 1e-9), "thin child grows from the second base point")
	assert.InDelta(t, parent.LegLength(), second.Apex().Distance(b2), 1e-9)
	assert.InDelta(t, parent.LegLength()/math.Phi, second.Apex().Distance(b1), 1e-9)
}

func TestDecomposeMirrorSymmetry(t *testing.T) {
	// A mirror pair sharing a leg decomposes into mirror images.
	apex := geometry.NewPoint(0, 0)
	left := MustNew(ThinLeft, apex, 10, math.Pi/10)
	right := MustNew(ThinRight, apex, 10, -math.Pi/10)

	lFirst, lSecond, err := Decompose(left)
	require.NoError(t, err)
	rFirst, rSecond, err := Decompose(right)
	require.NoError(t, err)

	reflect := func(p geometry.Point) geometry.Point { return geometry.NewPoint(p.X, -p.Y) }
	assert.True(t, reflect(lFirst.Apex()).ApproxEqual(rFirst.Apex(), 1e-9))
	assert.True(t, reflect(lSecond.Apex()).ApproxEqual(rSecond.Apex(), 1e-9))
	assert.Equal(t, lFirst.Type().Mirror(), rFirst.Type())
	assert.Equal(t, lSecond.Type().Mirror(), rSecond.Type())
}

func TestDecomposeIsDeterministic(t *testing.T) {
	for _, typ := range Types {
		parent := representative(typ)
		a1, a2, err := Decompose(parent)
		require.NoError(t, err)
		b1, b2, err := Decompose(parent)
		require.NoError(t, err)

		assert.Equal(t, a1, b1)
		assert.Equal(t, a2, b2)
	}
}

func TestDecomposeSeedScenario(t *testing.T) {
	first, second, err := Decompose(seedTriangle())
	require.NoError(t, err)

	assert.Equal(t, ThickRight, first.Type())
	assert.Equal(t, ThinLeft, second.Type())

	for _, child := range []Triangle{first, second} {
		assert.Greater(t, child.LegLength(), 0.0)
		assert.False(t, math.IsInf(child.LegLength(), 0))
	}
	assert.Equal(t, 2, sharedCorners(first, second))
}

func TestDecomposeRepeatedly(t *testing.T) {
	// Ten rounds on one branch keep every invariant intact.
	current := []Triangle{seedTriangle()}
	for round := 0; round < 10; round++ {
		next := make([]Triangle, 0, 2*len(current))
		for _, tri := range current {
			first, second, err := Decompose(tri)
			require.NoError(t, err)
			assert.InDelta(t, tri.Area(), first.Area()+second.Area(), 1e-6)
			next = append(next, first, second)
		}
		current = next
	}
	assert.Len(t, current, 1024)
}

func TestDecomposeDegenerate(t *testing.T) {
	// A leg this short vanishes next to the apex coordinates, so every
	// corner collapses onto the apex.
	tiny := MustNew(ThickLeft, geometry.NewPoint(300, 350), 1e-300, 0)

	_, _, err := Decompose(tiny)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDegenerate)

	var decomposeErr *DecomposeError
	require.ErrorAs(t, err, &decomposeErr)
	assert.Equal(t, tiny, decomposeErr.Parent)
	assert.Contains(t, err.Error(), "ThickLeft")
}

func contains(tri geometry.Triangle, p geometry.Point) bool {
	const slack = 1e-7
	d1 := tri.V2.Sub(tri.V1).Cross(p.Sub(tri.V1))
	d2 := tri.V3.Sub(tri.V2).Cross(p.Sub(tri.V2))
	d3 := tri.V1.Sub(tri.V3).Cross(p.Sub(tri.V3))
	hasNeg := d1 < -slack || d2 < -slack || d3 < -slack
	hasPos := d1 > slack || d2 > slack || d3 > slack
	return !(hasNeg && hasPos)
}
