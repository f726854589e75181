package main

import (
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"
	"github.com/philipparndt/gopenrose/pkg/config"
	"github.com/philipparndt/gopenrose/pkg/geometry"
	"github.com/philipparndt/gopenrose/pkg/render"
	"github.com/philipparndt/gopenrose/pkg/robinson"
	"github.com/philipparndt/gopenrose/pkg/tiling"
	"github.com/philipparndt/gopenrose/pkg/viewer"
)

// maxGenerations keeps the number of canvas lines manageable
const maxGenerations = 10

type App struct {
	window     fyne.Window
	cfg        *config.Config
	seeds      []robinson.Triangle
	generation int
	view       *viewer.TilingView
	infoLabel  *widget.Label
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	tiling.SetLogger(slog.Default())

	a := app.New()
	w := a.NewWindow("Penrose Tiling")

	appInstance := &App{window: w}
	if err := appInstance.load(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	appInstance.setupMainUI()

	w.Resize(fyne.NewSize(1000, 800))
	w.ShowAndRun()
}

// load reads an optional config file given as the first argument
func (a *App) load(args []string) error {
	cfg := config.Default()
	if len(args) > 0 {
		loaded, err := config.Load(args[0])
		if err != nil {
			return err
		}
		cfg = loaded
	}

	seeds, err := cfg.Triangles()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.seeds = seeds
	a.generation = min(cfg.Generations, maxGenerations)
	return nil
}

func (a *App) setupMainUI() {
	style, err := render.ParseStyle(a.cfg.Style.Background, a.cfg.Style.Thin, a.cfg.Style.Thick, a.cfg.Style.Stroke, a.cfg.Style.LineWidth)
	if err != nil {
		style = render.DefaultStyle()
	}

	a.view = viewer.NewTilingView(nil, style)
	a.infoLabel = widget.NewLabel("")

	refineButton := widget.NewButton("Refine", func() {
		if a.generation < maxGenerations {
			a.generation++
			a.update()
		}
	})
	coarsenButton := widget.NewButton("Coarsen", func() {
		if a.generation > 0 {
			a.generation--
			a.update()
		}
	})

	presetSelect := widget.NewSelect(tiling.PresetNames(), func(name string) {
		seeds, err := tiling.Preset(name, geometry.NewPoint(0, 0), a.cfg.PresetSize)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.seeds = seeds
		a.update()
	})
	if a.cfg.Preset != "" {
		presetSelect.Selected = a.cfg.Preset
	}

	controls := container.NewHBox(
		widget.NewLabel("Preset:"),
		presetSelect,
		coarsenButton,
		refineButton,
		a.infoLabel,
	)

	content := container.NewBorder(
		controls, // top
		nil,      // bottom
		nil,      // left
		nil,      // right
		a.view,   // center
	)
	a.window.SetContent(content)

	a.update()
}

// update regenerates the tiling for the current generation
func (a *App) update() {
	triangles, err := tiling.Generate(a.seeds, a.generation, &tiling.Options{Workers: a.cfg.Workers})
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to generate tiling: %w", err), a.window)
		return
	}

	stats := tiling.Analyze(triangles)
	a.infoLabel.SetText(fmt.Sprintf("Generation %d: %s triangles (%s thin, %s thick)",
		a.generation,
		humanize.Comma(int64(stats.TriangleCount)),
		humanize.Comma(int64(stats.ThinCount())),
		humanize.Comma(int64(stats.ThickCount())),
	))
	a.view.SetTriangles(triangles)
}
