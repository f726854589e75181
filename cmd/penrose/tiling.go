package main

import (
	"fmt"

	"github.com/philipparndt/gopenrose/pkg/config"
	"github.com/philipparndt/gopenrose/pkg/robinson"
	"github.com/philipparndt/gopenrose/pkg/tiling"
	"github.com/spf13/cobra"
)

// tilingFlags are shared by every command that builds a tiling
type tilingFlags struct {
	configPath  string
	preset      string
	generations int
	workers     int
	width       int
	height      int
}

var tf tilingFlags

func addTilingFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&tf.configPath, "config", "c", "", "YAML config file")
	flags.StringVarP(&tf.preset, "preset", "p", "", fmt.Sprintf("Seed preset %v", tiling.PresetNames()))
	flags.IntVarP(&tf.generations, "generations", "g", 0, "Number of subdivision rounds")
	flags.IntVarP(&tf.workers, "workers", "w", 0, "Worker goroutines per generation")
	flags.IntVar(&tf.width, "width", 0, "Canvas width in pixels")
	flags.IntVar(&tf.height, "height", 0, "Canvas height in pixels")
}

// loadConfig reads the config file when given and applies explicitly set flags
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if tf.configPath != "" {
		loaded, err := config.Load(tf.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags overrides config values with flags the user actually set
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("preset") {
		cfg.Preset = tf.preset
		cfg.Seeds = nil
	}
	if flags.Changed("generations") {
		cfg.Generations = tf.generations
	}
	if flags.Changed("workers") {
		cfg.Workers = tf.workers
	}
	if flags.Changed("width") {
		cfg.Canvas.Width = tf.width
	}
	if flags.Changed("height") {
		cfg.Canvas.Height = tf.height
	}
	return cfg.Validate()
}

// buildTiling generates the tiling described by cfg
func buildTiling(cfg *config.Config) ([]robinson.Triangle, error) {
	seeds, err := cfg.Triangles()
	if err != nil {
		return nil, err
	}
	return tiling.Generate(seeds, cfg.Generations, &tiling.Options{Workers: cfg.Workers})
}
