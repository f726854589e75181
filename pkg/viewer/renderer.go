package viewer

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gopenrose/pkg/geometry"
	"github.com/philipparndt/gopenrose/pkg/render"
	"github.com/philipparndt/gopenrose/pkg/robinson"
	"github.com/philipparndt/gopenrose/pkg/tiling"
)

const padding = 12

// TilingView renders a set of Robinson triangles as outlines
type TilingView struct {
	widget.BaseWidget

	mu        sync.Mutex
	triangles []robinson.Triangle
	style     render.Style
	lines     []*canvas.Line
	width     float64
	height    float64
}

// NewTilingView creates a new tiling widget
func NewTilingView(triangles []robinson.Triangle, style render.Style) *TilingView {
	v := &TilingView{
		triangles: triangles,
		style:     style,
	}
	v.ExtendBaseWidget(v)
	return v
}

// SetTriangles replaces the displayed tiling
func (v *TilingView) SetTriangles(triangles []robinson.Triangle) {
	v.mu.Lock()
	v.triangles = triangles
	width, height := v.width, v.height
	v.mu.Unlock()

	if width > 0 && height > 0 {
		v.Render(width, height)
	}
}

// Triangles returns the displayed tiling
func (v *TilingView) Triangles() []robinson.Triangle {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.triangles
}

// CreateRenderer creates the renderer for the widget
func (v *TilingView) CreateRenderer() fyne.WidgetRenderer {
	return &tilingWidgetRenderer{
		view:    v,
		objects: []fyne.CanvasObject{},
	}
}

// Render rebuilds the outline for the given widget size
func (v *TilingView) Render(width, height float64) {
	v.mu.Lock()
	v.width = width
	v.height = height

	vp := render.Fit(tiling.Bounds(v.triangles), int(width), int(height), padding)
	segs := segments(v.triangles, vp)

	v.lines = make([]*canvas.Line, 0, len(segs))
	for _, s := range segs {
		line := canvas.NewLine(v.colorFor(s.typ))
		line.StrokeWidth = float32(v.style.LineWidth)
		line.Position1 = fyne.NewPos(float32(s.from.X), float32(s.from.Y))
		line.Position2 = fyne.NewPos(float32(s.to.X), float32(s.to.Y))
		v.lines = append(v.lines, line)
	}
	v.mu.Unlock()

	v.Refresh()
}

func (v *TilingView) colorFor(typ robinson.Type) color.Color {
	return v.style.Fill(typ).Color()
}

// segment is one projected triangle edge
type segment struct {
	from, to geometry.Point
	typ      robinson.Type
}

// segments projects the closed outline apex, b1, b2 of every triangle
func segments(triangles []robinson.Triangle, vp render.Viewport) []segment {
	out := make([]segment, 0, 3*len(triangles))
	for _, tri := range triangles {
		b1, b2 := tri.BasePoints()
		corners := [3]geometry.Point{vp.Project(tri.Apex()), vp.Project(b1), vp.Project(b2)}
		for i := range corners {
			out = append(out, segment{from: corners[i], to: corners[(i+1)%3], typ: tri.Type()})
		}
	}
	return out
}

// tilingWidgetRenderer implements fyne.WidgetRenderer
type tilingWidgetRenderer struct {
	view    *TilingView
	objects []fyne.CanvasObject
}

func (r *tilingWidgetRenderer) Layout(size fyne.Size) {
	r.view.Render(float64(size.Width), float64(size.Height))
}

func (r *tilingWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *tilingWidgetRenderer) Refresh() {
	r.view.mu.Lock()
	r.objects = make([]fyne.CanvasObject, 0, len(r.view.lines))
	for _, line := range r.view.lines {
		r.objects = append(r.objects, line)
	}
	r.view.mu.Unlock()

	canvas.Refresh(r.view)
}

func (r *tilingWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *tilingWidgetRenderer) Destroy() {}
