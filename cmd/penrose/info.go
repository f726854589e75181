package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/philipparndt/gopenrose/pkg/robinson"
	"github.com/philipparndt/gopenrose/pkg/tiling"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display statistics about a generated tiling",
	Long:  "Show triangle counts per type, total area, bounding box and leg length statistics.",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	triangles, err := buildTiling(cfg)
	if err != nil {
		return err
	}
	stats := tiling.Analyze(triangles)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Penrose Tiling Information")
	fmt.Fprintln(out, "==========================")
	if cfg.Preset != "" {
		fmt.Fprintf(out, "Preset: %s\n", cfg.Preset)
	} else {
		fmt.Fprintf(out, "Seeds: %d\n", len(cfg.Seeds))
	}
	fmt.Fprintf(out, "Generations: %d\n\n", cfg.Generations)

	fmt.Fprintln(out, "Triangles:")
	fmt.Fprintf(out, "  Total: %s\n", humanize.Comma(int64(stats.TriangleCount)))
	fmt.Fprintf(out, "  Thin: %s\n", humanize.Comma(int64(stats.ThinCount())))
	fmt.Fprintf(out, "  Thick: %s\n", humanize.Comma(int64(stats.ThickCount())))
	for _, typ := range robinson.Types {
		fmt.Fprintf(out, "    %s: %s\n", typ, humanize.Comma(int64(stats.ByType[typ])))
	}
	fmt.Fprintf(out, "  Total Area: %.6f square units\n\n", stats.TotalArea)

	if stats.TriangleCount == 0 {
		return nil
	}

	size := stats.BoundingBox.Size()
	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: (%.3f, %.3f)\n", stats.BoundingBox.Min.X, stats.BoundingBox.Min.Y)
	fmt.Fprintf(out, "  Max: (%.3f, %.3f)\n", stats.BoundingBox.Max.X, stats.BoundingBox.Max.Y)
	fmt.Fprintf(out, "  Size: %.3f x %.3f\n\n", size.X, size.Y)

	fmt.Fprintln(out, "Leg Lengths:")
	fmt.Fprintf(out, "  Minimum: %.6f units\n", stats.MinLegLength)
	fmt.Fprintf(out, "  Maximum: %.6f units\n", stats.MaxLegLength)
	fmt.Fprintf(out, "  Average: %.6f units\n", stats.AvgLegLength)
	return nil
}
