package main

import (
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/philipparndt/gopenrose/pkg/config"
	"github.com/philipparndt/gopenrose/pkg/render"
	"github.com/philipparndt/gopenrose/pkg/tiling"
	"github.com/philipparndt/gopenrose/pkg/watcher"
	"github.com/spf13/cobra"
)

var (
	renderOut     string
	renderBackend string
	renderCaption bool
	renderWatch   bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a tiling to a PNG file",
	Long: `Generate a tiling and draw it to a PNG image. The gg backend produces
anti-aliased output; the raster backend draws exact one-pixel outlines.
With --watch the image is re-rendered every time the config file changes.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "penrose.png", "Output PNG file")
	renderCmd.Flags().StringVarP(&renderBackend, "backend", "b", "gg", "Drawing backend (gg or raster)")
	renderCmd.Flags().BoolVar(&renderCaption, "caption", false, "Write the generation and triangle count onto the image")
	renderCmd.Flags().BoolVar(&renderWatch, "watch", false, "Re-render when the config file changes")
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderBackend != "gg" && renderBackend != "raster" {
		return fmt.Errorf("unknown backend %q (use gg or raster)", renderBackend)
	}
	if renderWatch && tf.configPath == "" {
		return fmt.Errorf("--watch requires --config")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := renderToFile(cfg, renderOut); err != nil {
		return err
	}
	if !renderWatch {
		return nil
	}

	var mu sync.Mutex
	cw, err := watcher.New(tf.configPath, 200*time.Millisecond, func(cfg *config.Config, err error) {
		if err != nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()

		if err := applyFlags(cmd, cfg); err != nil {
			slog.Warn("ignoring config change", "err", err)
			return
		}
		if err := renderToFile(cfg, renderOut); err != nil {
			slog.Error("render failed", "err", err)
		}
	})
	if err != nil {
		return err
	}
	defer cw.Close()
	cw.Start()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	slog.Info("watching for changes", "config", cw.Path())
	<-ctx.Done()
	return nil
}

// renderToFile generates the tiling for cfg and writes it as PNG
func renderToFile(cfg *config.Config, path string) error {
	start := time.Now()

	triangles, err := buildTiling(cfg)
	if err != nil {
		return err
	}

	style, err := render.ParseStyle(cfg.Style.Background, cfg.Style.Thin, cfg.Style.Thick, cfg.Style.Stroke, cfg.Style.LineWidth)
	if err != nil {
		return err
	}

	width, height := cfg.Canvas.Width, cfg.Canvas.Height
	vp := render.Fit(tiling.Bounds(triangles), width, height, cfg.Canvas.Padding)
	caption := fmt.Sprintf("generation %d, %s triangles", cfg.Generations, humanize.Comma(int64(len(triangles))))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer f.Close()

	switch renderBackend {
	case "raster":
		surface := render.NewRaster(width, height, style)
		if err := render.Draw(surface, vp, triangles); err != nil {
			return err
		}
		if renderCaption {
			surface.Caption(caption)
		}
		err = surface.EncodePNG(f)
	default:
		surface := render.NewCanvas(width, height, style)
		defer surface.Close()

		if err := render.Draw(surface, vp, triangles); err != nil {
			return err
		}
		if renderCaption {
			err = png.Encode(f, render.Annotate(surface.Image(), caption, style))
		} else {
			err = surface.EncodePNG(f)
		}
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	slog.Info("rendered tiling",
		"out", path,
		"backend", renderBackend,
		"triangles", humanize.Comma(int64(len(triangles))),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return nil
}
