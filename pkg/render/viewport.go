package render

import (
	"math"

	"github.com/philipparndt/gopenrose/pkg/geometry"
)

// Viewport maps tiling coordinates to surface pixels with a uniform scale
// followed by a translation. Both spaces have Y growing downward.
type Viewport struct {
	Scale  float64
	Offset geometry.Point
}

// Identity returns a viewport that leaves points unchanged
func Identity() Viewport {
	return Viewport{Scale: 1}
}

// Fit returns the viewport that centres bounds on a width×height surface,
// keeping the aspect ratio and leaving padding pixels on every side.
func Fit(bounds geometry.BoundingBox, width, height int, padding float64) Viewport {
	if bounds.IsEmpty() {
		return Identity()
	}

	size := bounds.Size()
	availW := float64(width) - 2*padding
	availH := float64(height) - 2*padding

	scale := math.Inf(1)
	if size.X > 0 {
		scale = availW / size.X
	}
	if size.Y > 0 {
		scale = math.Min(scale, availH/size.Y)
	}
	if math.IsInf(scale, 1) || scale <= 0 {
		scale = 1
	}

	canvasCenter := geometry.NewPoint(float64(width)/2, float64(height)/2)
	return Viewport{
		Scale:  scale,
		Offset: canvasCenter.Sub(bounds.Center().Mul(scale)),
	}
}

// Project converts a tiling point to surface coordinates
func (v Viewport) Project(p geometry.Point) geometry.Point {
	return p.Mul(v.Scale).Add(v.Offset)
}

// Unproject converts a surface point back to tiling coordinates
func (v Viewport) Unproject(p geometry.Point) geometry.Point {
	return p.Sub(v.Offset).Mul(1 / v.Scale)
}
