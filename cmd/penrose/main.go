package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/philipparndt/gopenrose/pkg/tiling"
	"github.com/philipparndt/gopenrose/version"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "penrose",
	Short: "Generate Penrose P3 tilings by Robinson triangle subdivision",
	Long: `penrose builds aperiodic Penrose rhomb tilings by repeatedly splitting
Robinson triangles. Seeds come from a named preset or a YAML config file,
and the result can be rendered to PNG or inspected as text.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	addTilingFlags(rootCmd)
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	tiling.SetLogger(logger)
	gg.SetLogger(logger)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
