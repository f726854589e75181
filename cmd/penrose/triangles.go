package main

import (
	"fmt"

	"github.com/philipparndt/gopenrose/pkg/geometry"
	"github.com/spf13/cobra"
)

var (
	triCount   int
	triDegrees bool
)

var trianglesCmd = &cobra.Command{
	Use:   "triangles",
	Short: "List the triangles of a generated tiling",
	Long:  "Display type, apex, base points, leg length and rotation for each triangle.",
	Args:  cobra.NoArgs,
	RunE:  runTriangles,
}

func init() {
	rootCmd.AddCommand(trianglesCmd)

	trianglesCmd.Flags().IntVarP(&triCount, "count", "n", 10, "Number of triangles to display (0 for all)")
	trianglesCmd.Flags().BoolVarP(&triDegrees, "degrees", "d", false, "Show rotations in degrees")
}

func runTriangles(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	triangles, err := buildTiling(cfg)
	if err != nil {
		return err
	}

	count := triCount
	if count <= 0 || count > len(triangles) {
		count = len(triangles)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "First %d of %d Triangles\n", count, len(triangles))
	fmt.Fprintln(out, "====================")

	for i, tri := range triangles[:count] {
		b1, b2 := tri.BasePoints()
		rotation, unit := tri.Rotation(), "rad"
		if triDegrees {
			rotation, unit = geometry.Degrees(rotation), "deg"
		}

		fmt.Fprintf(out, "Triangle #%d: %s\n", i, tri.Type())
		fmt.Fprintf(out, "  Apex: %s\n", formatPoint(tri.Apex()))
		fmt.Fprintf(out, "  Base: %s, %s\n", formatPoint(b1), formatPoint(b2))
		fmt.Fprintf(out, "  Leg: %.6f units\n", tri.LegLength())
		fmt.Fprintf(out, "  Rotation: %.6f %s\n\n", rotation, unit)
	}
	return nil
}

func formatPoint(p geometry.Point) string {
	return fmt.Sprintf("(%.3f, %.3f)", p.X, p.Y)
}
