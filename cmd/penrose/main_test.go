package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/gopenrose/pkg/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCommand builds a standalone command so flag state does not leak
// between tests through rootCmd.
func newTestCommand(run func(*cobra.Command, []string) error) *cobra.Command {
	tf = tilingFlags{}
	cmd := &cobra.Command{Use: "test", RunE: run, SilenceUsage: true}
	addTilingFlags(cmd)
	return cmd
}

func TestApplyFlagsOnlyOverridesChanged(t *testing.T) {
	cmd := newTestCommand(nil)
	require.NoError(t, cmd.ParseFlags([]string{"-g", "3", "--preset", "kite"}))

	cfg := config.Default()
	require.NoError(t, applyFlags(cmd, cfg))

	assert.Equal(t, 3, cfg.Generations)
	assert.Equal(t, "kite", cfg.Preset)
	assert.Equal(t, config.Default().Workers, cfg.Workers)
	assert.Equal(t, config.Default().Canvas, cfg.Canvas)
}

func TestApplyFlagsRejectsUnknownPreset(t *testing.T) {
	cmd := newTestCommand(nil)
	require.NoError(t, cmd.ParseFlags([]string{"--preset", "pentagon"}))

	err := applyFlags(cmd, config.Default())
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestTrianglesCommand(t *testing.T) {
	cmd := newTestCommand(runTriangles)
	cmd.Flags().IntVarP(&triCount, "count", "n", 10, "")
	cmd.Flags().BoolVarP(&triDegrees, "degrees", "d", false, "")

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--preset", "single", "-g", "2", "-n", "0"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "First 4 of 4 Triangles")
	assert.Contains(t, out.String(), "Triangle #3:")
	assert.NotContains(t, out.String(), "Triangle #4:")
}

func TestInfoCommand(t *testing.T) {
	cmd := newTestCommand(runInfo)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--preset", "sun", "-g", "7"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Preset: sun")
	assert.Contains(t, out.String(), "Total: 1,280")
	assert.Contains(t, out.String(), "Thin: 640")
}

func TestRenderToFile(t *testing.T) {
	defer func(b string, c bool) { renderBackend, renderCaption = b, c }(renderBackend, renderCaption)

	cfg := config.Default()
	cfg.Generations = 3
	cfg.Canvas.Width, cfg.Canvas.Height = 120, 90

	for _, backend := range []string{"gg", "raster"} {
		renderBackend = backend
		renderCaption = true

		path := filepath.Join(t.TempDir(), backend+".png")
		require.NoError(t, renderToFile(cfg, path), backend)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}
