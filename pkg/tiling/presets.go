package tiling

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gopenrose/pkg/geometry"
	"github.com/philipparndt/gopenrose/pkg/robinson"
)

// ErrUnknownPreset is returned by Preset for names it does not know
var ErrUnknownPreset = errors.New("unknown preset")

// Single returns the classic one-triangle seed: a thin left triangle with its
// apex at (300, 350), legs of 100 and the altitude at 45°.
func Single() []robinson.Triangle {
	return []robinson.Triangle{
		robinson.MustNew(robinson.ThinLeft, geometry.NewPoint(300, 350), 100, math.Pi/4),
	}
}

// Sun returns ten thin triangles meeting at center, alternating chirality so
// that neighbours are mirror images across their shared leg.
func Sun(center geometry.Point, radius float64) []robinson.Triangle {
	step := robinson.ThinLeft.VertexAngle()
	triangles := make([]robinson.Triangle, 0, 10)
	for i := 0; i < 10; i++ {
		typ := robinson.ThinLeft
		if i%2 == 1 {
			typ = robinson.ThinRight
		}
		rotation := float64(i)*step + step/2
		triangles = append(triangles, robinson.MustNew(typ, center, radius, rotation))
	}
	return triangles
}

// Kite returns a mirror pair of thin triangles sharing the leg that points
// in the given direction.
func Kite(apex geometry.Point, leg, direction float64) []robinson.Triangle {
	half := robinson.ThinLeft.VertexAngle() / 2
	return []robinson.Triangle{
		robinson.MustNew(robinson.ThinLeft, apex, leg, direction+half),
		robinson.MustNew(robinson.ThinRight, apex, leg, direction-half),
	}
}

// Dart returns a mirror pair of thick triangles sharing the leg that points
// in the given direction.
func Dart(apex geometry.Point, leg, direction float64) []robinson.Triangle {
	half := robinson.ThickLeft.VertexAngle() / 2
	return []robinson.Triangle{
		robinson.MustNew(robinson.ThickLeft, apex, leg, direction+half),
		robinson.MustNew(robinson.ThickRight, apex, leg, direction-half),
	}
}

var presets = map[string]func(center geometry.Point, size float64) []robinson.Triangle{
	"single": func(geometry.Point, float64) []robinson.Triangle { return Single() },
	"sun":    Sun,
	"kite": func(center geometry.Point, size float64) []robinson.Triangle {
		return Kite(center.Add(geometry.NewPoint(-size/2, 0)), size, 0)
	},
	"dart": func(center geometry.Point, size float64) []robinson.Triangle {
		return Dart(center.Add(geometry.NewPoint(0, size/2)), size, math.Pi/2)
	},
}

// Preset returns a named seed centred on center. Size is the leg length of
// the seed triangles; the "single" preset ignores both arguments.
func Preset(name string, center geometry.Point, size float64) ([]robinson.Triangle, error) {
	build, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	if size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		return nil, fmt.Errorf("%w: preset size %g", robinson.ErrDegenerate, size)
	}
	return build(center, size), nil
}

// PresetNames returns the known preset names in sorted order
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
