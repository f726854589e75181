package render

import (
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/philipparndt/gopenrose/pkg/geometry"
	"github.com/philipparndt/gopenrose/pkg/robinson"
)

// Canvas is an anti-aliased surface backed by a gg drawing context
type Canvas struct {
	dc    *gg.Context
	style Style
}

// NewCanvas creates a canvas cleared to the style's background
func NewCanvas(width, height int, style Style) *Canvas {
	dc := gg.NewContext(width, height)
	dc.ClearWithColor(style.Background)
	dc.SetLineJoin(gg.LineJoinRound)
	return &Canvas{dc: dc, style: style}
}

// DrawTriangle fills the triangle with its type colour and strokes the outline
func (c *Canvas) DrawTriangle(apex, b1, b2 geometry.Point, typ robinson.Type) error {
	c.dc.MoveTo(apex.X, apex.Y)
	c.dc.LineTo(b1.X, b1.Y)
	c.dc.LineTo(b2.X, b2.Y)
	c.dc.ClosePath()

	c.dc.SetFillBrush(gg.Solid(c.style.Fill(typ)))
	if c.style.LineWidth <= 0 {
		return c.dc.Fill()
	}
	if err := c.dc.FillPreserve(); err != nil {
		c.dc.ClearPath()
		return err
	}

	c.dc.SetLineWidth(c.style.LineWidth)
	c.dc.SetStrokeBrush(gg.Solid(c.style.Stroke))
	return c.dc.Stroke()
}

// Image returns the rendered pixels
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the canvas as PNG
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// SavePNG writes the canvas to a PNG file
func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}

// Close releases the drawing context
func (c *Canvas) Close() error {
	return c.dc.Close()
}
