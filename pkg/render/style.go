package render

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/philipparndt/gopenrose/pkg/robinson"
)

// Style holds the colours used by every surface
type Style struct {
	Background gg.RGBA
	Thin       gg.RGBA
	Thick      gg.RGBA
	Stroke     gg.RGBA
	LineWidth  float64
}

// DefaultStyle returns a light background with dark outlines
func DefaultStyle() Style {
	return Style{
		Background: gg.White,
		Thin:       gg.Hex("#e07a5f"),
		Thick:      gg.Hex("#3d405b"),
		Stroke:     gg.Black,
		LineWidth:  1,
	}
}

// ParseStyle builds a style from hex colour strings
func ParseStyle(background, thin, thick, stroke string, lineWidth float64) (Style, error) {
	style := Style{LineWidth: lineWidth}
	fields := []struct {
		name string
		hex  string
		dst  *gg.RGBA
	}{
		{"background", background, &style.Background},
		{"thin", thin, &style.Thin},
		{"thick", thick, &style.Thick},
		{"stroke", stroke, &style.Stroke},
	}

	for _, f := range fields {
		c, err := ParseColor(f.hex)
		if err != nil {
			return Style{}, fmt.Errorf("%s colour: %w", f.name, err)
		}
		*f.dst = c
	}
	return style, nil
}

// Fill returns the fill colour for a triangle type
func (s Style) Fill(typ robinson.Type) gg.RGBA {
	if typ.IsThin() {
		return s.Thin
	}
	return s.Thick
}

// ParseColor accepts "#rgb", "#rgba", "#rrggbb" and "#rrggbbaa"
func ParseColor(hex string) (gg.RGBA, error) {
	digits := hex
	if len(digits) > 0 && digits[0] == '#' {
		digits = digits[1:]
	}

	switch len(digits) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("invalid colour %q", hex)
	}
	for _, c := range digits {
		isHex := (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
		if !isHex {
			return gg.RGBA{}, fmt.Errorf("invalid colour %q", hex)
		}
	}
	return gg.Hex(digits), nil
}
