package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/philipparndt/gopenrose/pkg/geometry"
	"github.com/philipparndt/gopenrose/pkg/robinson"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Raster is an aliased surface that writes straight into an RGBA image with a
// scanline fill and one-pixel Bresenham outlines. It is fast and its output
// is exact, which makes it useful for previews and pixel tests.
type Raster struct {
	img    *image.RGBA
	thin   color.RGBA
	thick  color.RGBA
	stroke color.RGBA
	text   color.RGBA
	lines  bool
}

// NewRaster creates a raster cleared to the style's background
func NewRaster(width, height int, style Style) *Raster {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(toRGBA(style.Background)), image.Point{}, draw.Src)

	return &Raster{
		img:    img,
		thin:   toRGBA(style.Thin),
		thick:  toRGBA(style.Thick),
		stroke: toRGBA(style.Stroke),
		text:   toRGBA(style.Stroke),
		lines:  style.LineWidth > 0,
	}
}

// DrawTriangle fills the triangle and draws its outline
func (r *Raster) DrawTriangle(apex, b1, b2 geometry.Point, typ robinson.Type) error {
	fill := r.thick
	if typ.IsThin() {
		fill = r.thin
	}
	fillTriangle(r.img, apex.X, apex.Y, b1.X, b1.Y, b2.X, b2.Y, fill)

	if r.lines {
		corners := [3]geometry.Point{apex, b1, b2}
		for i := range corners {
			from := corners[i]
			to := corners[(i+1)%3]
			drawLine(r.img, round(from.X), round(from.Y), round(to.X), round(to.Y), r.stroke)
		}
	}
	return nil
}

// Caption writes a line of text in the bottom left corner
func (r *Raster) Caption(text string) {
	drawCaption(r.img, text, r.text)
}

// Annotate copies img into a new RGBA image and writes a caption onto it in
// the style's stroke colour.
func Annotate(img image.Image, text string, style Style) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	drawCaption(out, text, toRGBA(style.Stroke))
	return out
}

func drawCaption(img *image.RGBA, text string, col color.RGBA) {
	bounds := img.Bounds()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(bounds.Min.X+8, bounds.Max.Y-8),
	}
	d.DrawString(text)
}

// Image returns the rendered pixels
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// EncodePNG writes the raster as PNG
func (r *Raster) EncodePNG(w io.Writer) error {
	return png.Encode(w, r.img)
}

func toRGBA(c interface{ Color() color.Color }) color.RGBA {
	return color.RGBAModel.Convert(c.Color()).(color.RGBA)
}

func round(v float64) int {
	return int(math.Round(v))
}

// fillTriangle fills a triangle on an image using a scanline algorithm
func fillTriangle(img *image.RGBA, x1, y1, x2, y2, x3, y3 float64, col color.RGBA) {
	vertices := [3][2]float64{{x1, y1}, {x2, y2}, {x3, y3}}

	// Sort vertices by Y coordinate (top to bottom)
	if vertices[0][1] > vertices[1][1] {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}
	if vertices[1][1] > vertices[2][1] {
		vertices[1], vertices[2] = vertices[2], vertices[1]
	}
	if vertices[0][1] > vertices[1][1] {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}

	x1, y1 = vertices[0][0], vertices[0][1]
	x2, y2 = vertices[1][0], vertices[1][1]
	x3, y3 = vertices[2][0], vertices[2][1]

	bounds := img.Bounds()
	intersections := make([]float64, 0, 3)

	for y := int(math.Max(0, math.Ceil(y1))); y <= int(math.Min(float64(bounds.Max.Y-1), y3)); y++ {
		fy := float64(y)
		intersections = intersections[:0]

		if y1 != y2 && fy >= y1 && fy <= y2 {
			t := (fy - y1) / (y2 - y1)
			intersections = append(intersections, x1+t*(x2-x1))
		}
		if y2 != y3 && fy >= y2 && fy <= y3 {
			t := (fy - y2) / (y3 - y2)
			intersections = append(intersections, x2+t*(x3-x2))
		}
		if y1 != y3 && fy >= y1 && fy <= y3 {
			t := (fy - y1) / (y3 - y1)
			intersections = append(intersections, x1+t*(x3-x1))
		}

		if len(intersections) < 2 {
			continue
		}

		xStart, xEnd := intersections[0], intersections[0]
		for _, x := range intersections[1:] {
			xStart = math.Min(xStart, x)
			xEnd = math.Max(xEnd, x)
		}

		// Clamp to image bounds
		xStart = math.Max(0, math.Ceil(xStart))
		xEnd = math.Min(float64(bounds.Max.X-1), xEnd)

		for x := int(xStart); x <= int(xEnd); x++ {
			img.SetRGBA(x, y, col)
		}
	}
}

// drawLine draws a line on an image using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := -1, -1
	if x1 < x2 {
		sx = 1
	}
	if y1 < y2 {
		sy = 1
	}

	err := dx - dy

	for {
		if x1 >= 0 && x1 < bounds.Max.X && y1 >= 0 && y1 < bounds.Max.Y {
			img.SetRGBA(x1, y1, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
