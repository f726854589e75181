package tiling

import (
	"math"

	"github.com/philipparndt/gopenrose/pkg/geometry"
	"github.com/philipparndt/gopenrose/pkg/robinson"
)

// Stats summarises a set of triangles
type Stats struct {
	TriangleCount int
	ByType        map[robinson.Type]int
	TotalArea     float64
	BoundingBox   geometry.BoundingBox
	MinLegLength  float64
	MaxLegLength  float64
	AvgLegLength  float64
}

// ThinCount returns the number of thin triangles of either chirality
func (s *Stats) ThinCount() int {
	return s.ByType[robinson.ThinLeft] + s.ByType[robinson.ThinRight]
}

// ThickCount returns the number of thick triangles of either chirality
func (s *Stats) ThickCount() int {
	return s.ByType[robinson.ThickLeft] + s.ByType[robinson.ThickRight]
}

// Analyze computes statistics for a set of triangles
func Analyze(triangles []robinson.Triangle) *Stats {
	stats := &Stats{
		TriangleCount: len(triangles),
		ByType:        make(map[robinson.Type]int, len(robinson.Types)),
		BoundingBox:   geometry.NewBoundingBox(),
	}

	minLeg := math.MaxFloat64
	maxLeg := 0.0
	totalLeg := 0.0

	for _, tri := range triangles {
		stats.ByType[tri.Type()]++
		stats.TotalArea += tri.Area()

		for _, v := range tri.Vertices() {
			stats.BoundingBox.Extend(v)
		}

		leg := tri.LegLength()
		totalLeg += leg
		minLeg = math.Min(minLeg, leg)
		maxLeg = math.Max(maxLeg, leg)
	}

	if len(triangles) > 0 {
		stats.MinLegLength = minLeg
		stats.MaxLegLength = maxLeg
		stats.AvgLegLength = totalLeg / float64(len(triangles))
	}

	return stats
}

// Bounds returns the bounding box of all triangle corners
func Bounds(triangles []robinson.Triangle) geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, tri := range triangles {
		for _, v := range tri.Vertices() {
			bbox.Extend(v)
		}
	}
	return bbox
}
