// Package render draws Robinson triangles onto 2D surfaces. It only relies on
// the apex and base points of each triangle.
package render

import (
	"fmt"

	"github.com/philipparndt/gopenrose/pkg/geometry"
	"github.com/philipparndt/gopenrose/pkg/robinson"
)

// Surface is anything that can paint a triangle outline. Points are already
// in surface coordinates.
type Surface interface {
	DrawTriangle(apex, b1, b2 geometry.Point, typ robinson.Type) error
}

// Draw paints every triangle as the closed polyline apex, b1, b2, apex
func Draw(s Surface, vp Viewport, triangles []robinson.Triangle) error {
	for i, tri := range triangles {
		b1, b2 := tri.BasePoints()
		if err := s.DrawTriangle(vp.Project(tri.Apex()), vp.Project(b1), vp.Project(b2), tri.Type()); err != nil {
			return fmt.Errorf("failed to draw triangle %d: %w", i, err)
		}
	}
	return nil
}
