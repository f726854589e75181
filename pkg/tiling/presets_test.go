package tiling

import (
	"math"
	"testing"

	"github.com/philipparndt/gopenrose/pkg/geometry"
	"github.com/philipparndt/gopenrose/pkg/robinson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleMatchesReferenceSeed(t *testing.T) {
	seeds := Single()
	require.Len(t, seeds, 1)

	seed := seeds[0]
	assert.Equal(t, robinson.ThinLeft, seed.Type())
	assert.Equal(t, geometry.NewPoint(300, 350), seed.Apex())
	assert.Equal(t, 100.0, seed.LegLength())
	assert.InDelta(t, math.Pi/4, seed.Rotation(), 1e-12)
}

func TestSunCoversFullTurn(t *testing.T) {
	center := geometry.NewPoint(10, 20)
	sun := Sun(center, 5)
	require.Len(t, sun, 10)

	// Neighbouring triangles share a leg.
	for i := range sun {
		b1, _ := sun[i].BasePoints()
		_, b2 := sun[(i+1)%len(sun)].BasePoints()
		assert.True(t, b1.ApproxEqual(b2, 1e-9), "triangles %d and %d", i, i+1)
	}

	total := 0.0
	for _, tri := range sun {
		assert.Equal(t, center, tri.Apex())
		total += tri.Type().VertexAngle()
	}
	assert.InDelta(t, 2*math.Pi, total, 1e-9)
}

func TestKiteAndDartShareLeg(t *testing.T) {
	for name, pair := range map[string][]robinson.Triangle{
		"kite": Kite(geometry.NewPoint(0, 0), 10, 0.7),
		"dart": Dart(geometry.NewPoint(0, 0), 10, 0.7),
	} {
		require.Len(t, pair, 2, name)
		_, leftB2 := pair[0].BasePoints()
		rightB1, _ := pair[1].BasePoints()
		assert.True(t, leftB2.ApproxEqual(rightB1, 1e-9), name)
		assert.Equal(t, pair[0].Type().Mirror(), pair[1].Type(), name)
	}
}

func TestPreset(t *testing.T) {
	for _, name := range PresetNames() {
		seeds, err := Preset(name, geometry.NewPoint(0, 0), 10)
		require.NoError(t, err, name)
		assert.NotEmpty(t, seeds, name)
	}

	_, err := Preset("rhombus", geometry.NewPoint(0, 0), 10)
	assert.ErrorIs(t, err, ErrUnknownPreset)

	_, err = Preset("sun", geometry.NewPoint(0, 0), 0)
	assert.ErrorIs(t, err, robinson.ErrDegenerate)
}

func TestPresetNamesSorted(t *testing.T) {
	assert.Equal(t, []string{"dart", "kite", "single", "sun"}, PresetNames())
}
