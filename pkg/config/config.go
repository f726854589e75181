// Package config loads the YAML file that describes what to tile and how to
// draw it.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/philipparndt/gopenrose/pkg/geometry"
	"github.com/philipparndt/gopenrose/pkg/robinson"
	"github.com/philipparndt/gopenrose/pkg/tiling"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Config describes a tiling run
type Config struct {
	Generations int     `yaml:"generations"`
	Workers     int     `yaml:"workers"`
	Preset      string  `yaml:"preset"`
	PresetSize  float64 `yaml:"preset_size"`
	Seeds       []Seed  `yaml:"seeds"`
	Canvas      Canvas  `yaml:"canvas"`
	Style       Style   `yaml:"style"`
}

// Seed is one explicitly placed starting triangle. Rotation is in radians;
// RotationDegrees takes precedence when set.
type Seed struct {
	Type            string     `yaml:"type"`
	Apex            [2]float64 `yaml:"apex"`
	LegLength       float64    `yaml:"leg_length"`
	Rotation        float64    `yaml:"rotation"`
	RotationDegrees *float64   `yaml:"rotation_degrees"`
}

// Canvas sets the size of the drawing surface in pixels
type Canvas struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Padding float64 `yaml:"padding"`
}

// Style holds colours as hex strings ("#rrggbb" or "#rrggbbaa")
type Style struct {
	Background string  `yaml:"background"`
	Thin       string  `yaml:"thin"`
	Thick      string  `yaml:"thick"`
	Stroke     string  `yaml:"stroke"`
	LineWidth  float64 `yaml:"line_width"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Generations: 6,
		Workers:     1,
		Preset:      "sun",
		PresetSize:  300,
		Canvas: Canvas{
			Width:   800,
			Height:  800,
			Padding: 20,
		},
		Style: Style{
			Background: "#fdfcf7",
			Thin:       "#e07a5f",
			Thick:      "#3d405b",
			Stroke:     "#1b1b1b",
			LineWidth:  1,
		},
	}
}

// Load reads and validates a configuration file. Fields missing from the
// file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates YAML configuration data
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// An explicit seed list replaces the default preset.
	if len(cfg.Seeds) > 0 && !mentionsPreset(data) {
		cfg.Preset = ""
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values that cannot be rendered
func (c *Config) Validate() error {
	if c.Generations < 0 {
		return fmt.Errorf("%w: generations must not be negative, got %d", ErrInvalid, c.Generations)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalid, c.Workers)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas must be at least 1x1, got %dx%d", ErrInvalid, c.Canvas.Width, c.Canvas.Height)
	}
	if c.Canvas.Padding < 0 || 2*c.Canvas.Padding >= float64(min(c.Canvas.Width, c.Canvas.Height)) {
		return fmt.Errorf("%w: padding %g does not fit the canvas", ErrInvalid, c.Canvas.Padding)
	}
	if c.Style.LineWidth < 0 {
		return fmt.Errorf("%w: line width must not be negative", ErrInvalid)
	}
	if c.Preset == "" && len(c.Seeds) == 0 {
		return fmt.Errorf("%w: either a preset or at least one seed is required", ErrInvalid)
	}
	if c.Preset != "" && len(c.Seeds) > 0 {
		return fmt.Errorf("%w: preset %q and explicit seeds are mutually exclusive", ErrInvalid, c.Preset)
	}
	if _, err := c.Triangles(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Triangles builds the seed triangles, either from the preset (centred on
// the canvas) or from the explicit seed list.
func (c *Config) Triangles() ([]robinson.Triangle, error) {
	if c.Preset != "" {
		center := geometry.NewPoint(float64(c.Canvas.Width)/2, float64(c.Canvas.Height)/2)
		return tiling.Preset(c.Preset, center, c.PresetSize)
	}

	triangles := make([]robinson.Triangle, 0, len(c.Seeds))
	for i, seed := range c.Seeds {
		tri, err := seed.Triangle()
		if err != nil {
			return nil, fmt.Errorf("seed %d: %w", i, err)
		}
		triangles = append(triangles, tri)
	}
	return triangles, nil
}

// Triangle converts the seed into a validated triangle
func (s Seed) Triangle() (robinson.Triangle, error) {
	typ, err := robinson.ParseType(s.Type)
	if err != nil {
		return robinson.Triangle{}, err
	}

	rotation := s.Rotation
	if s.RotationDegrees != nil {
		rotation = geometry.Radians(*s.RotationDegrees)
	}

	return robinson.New(typ, geometry.NewPoint(s.Apex[0], s.Apex[1]), s.LegLength, rotation)
}

// mentionsPreset reports whether the document sets the preset key itself
func mentionsPreset(data []byte) bool {
	var probe map[string]yaml.Node
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return false
	}
	_, ok := probe["preset"]
	return ok
}
