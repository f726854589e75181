package robinson

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAngleSum(t *testing.T) {
	for _, typ := range Types {
		sum := VertexAngle(typ) + 2*BaseAngle(typ)
		assert.InDelta(t, math.Pi, sum, 1e-9, "angles of %s", typ)
	}
}

func TestAngleClasses(t *testing.T) {
	assert.InDelta(t, 36.0, VertexAngle(ThinLeft)*180/math.Pi, 1e-9)
	assert.InDelta(t, 108.0, VertexAngle(ThickRight)*180/math.Pi, 1e-9)
	assert.Less(t, VertexAngle(ThinRight), VertexAngle(ThickLeft))

	// Only chirality separates the Left and Right variants.
	assert.Equal(t, VertexAngle(ThinLeft), VertexAngle(ThinRight))
	assert.Equal(t, BaseAngle(ThickLeft), BaseAngle(ThickRight))
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, ThinLeft.IsThin())
	assert.True(t, ThinLeft.IsLeft())
	assert.False(t, ThinRight.IsLeft())
	assert.True(t, ThickRight.IsThick())
	assert.False(t, Type(9).Valid())

	for _, typ := range Types {
		assert.True(t, typ.Valid())
		assert.Equal(t, typ, typ.Mirror().Mirror())
		assert.NotEqual(t, typ.IsLeft(), typ.Mirror().IsLeft())
		assert.Equal(t, typ.IsThin(), typ.Mirror().IsThin())
	}
}

func TestParseType(t *testing.T) {
	for _, typ := range Types {
		parsed, err := ParseType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, parsed)
	}

	parsed, err := ParseType("thick-right")
	require.NoError(t, err)
	assert.Equal(t, ThickRight, parsed)

	_, err = ParseType("kite")
	assert.Error(t, err)
}

func TestTypeStringUnknown(t *testing.T) {
	assert.Equal(t, "Type(7)", Type(7).String())
}
