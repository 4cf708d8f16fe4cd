// Package canvas provides the interactive label design surface.
package canvas

import (
	"image"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"label-studio/internal/editor"
	"label-studio/internal/render"
	"label-studio/pkg/geometry"
)

const (
	minZoom  = 0.25
	maxZoom  = 8.0
	zoomStep = 1.25
)

// LabelCanvas displays the open template rendered at the editor scale and
// routes pointer events to the editor: tap to select, drag to move. The
// mouse wheel zooms the view.
type LabelCanvas struct {
	widget.BaseWidget

	ed      *editor.Editor
	symbols *render.SymbolCache

	// Display state
	raster   *fynecanvas.Raster
	zoom     float64
	showGrid bool

	// Container
	scroll  *zoomScroll
	content *draggableContent
	imgSize fyne.Size

	onZoomChange func(zoom float64)
}

// zoomScroll wraps a scroll container but intercepts the wheel for zoom.
type zoomScroll struct {
	widget.BaseWidget
	scroll *container.Scroll
	canvas *LabelCanvas
}

func newZoomScroll(content fyne.CanvasObject, canvas *LabelCanvas) *zoomScroll {
	scroll := container.NewScroll(content)
	scroll.Direction = container.ScrollBoth
	zs := &zoomScroll{scroll: scroll, canvas: canvas}
	zs.ExtendBaseWidget(zs)
	return zs
}

func (zs *zoomScroll) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		zs.canvas.ZoomIn()
	} else if ev.Scrolled.DY < 0 {
		zs.canvas.ZoomOut()
	}
}

func (zs *zoomScroll) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(zs.scroll)
}

func (zs *zoomScroll) Offset() fyne.Position {
	return zs.scroll.Offset
}

func (zs *zoomScroll) Refresh() {
	zs.scroll.Refresh()
	zs.BaseWidget.Refresh()
}

func (zs *zoomScroll) Resize(size fyne.Size) {
	zs.scroll.Resize(size)
	zs.BaseWidget.Resize(size)
}

// draggableContent wraps the raster to handle mouse events.
type draggableContent struct {
	widget.BaseWidget
	canvas *LabelCanvas
	raster *fynecanvas.Raster
}

func newDraggableContent(lc *LabelCanvas, raster *fynecanvas.Raster) *draggableContent {
	dc := &draggableContent{canvas: lc, raster: raster}
	dc.ExtendBaseWidget(dc)
	return dc
}

func (dc *draggableContent) CreateRenderer() fyne.WidgetRenderer {
	return &draggableContentRenderer{content: dc}
}

func (dc *draggableContent) MinSize() fyne.Size {
	return dc.raster.MinSize()
}

// editorPoint converts a pointer event position to editor pixels.
func (dc *draggableContent) editorPoint(pos fyne.Position) geometry.Point2D {
	offset := dc.canvas.scroll.Offset()
	return geometry.NewPoint2D(
		float64(pos.X+offset.X)/dc.canvas.zoom,
		float64(pos.Y+offset.Y)/dc.canvas.zoom,
	)
}

// Dragged moves the element under the pointer. The first event of a drag
// opens an editor drag session on the hit element; later events feed it
// incremental pointer positions.
func (dc *draggableContent) Dragged(ev *fyne.DragEvent) {
	pt := dc.editorPoint(ev.Position)

	if !dc.canvas.ed.Dragging() {
		idx := dc.canvas.hitIndex(pt)
		if idx < 0 {
			return
		}
		// Anchor at the position before this event's delta
		start := geometry.NewPoint2D(
			pt.X-float64(ev.Dragged.DX)/dc.canvas.zoom,
			pt.Y-float64(ev.Dragged.DY)/dc.canvas.zoom,
		)
		dc.canvas.ed.BeginDrag(idx, start)
	}
	dc.canvas.ed.Drag(dc.canvas.ed.SelectedIndex(), pt)
	dc.canvas.Refresh()
}

func (dc *draggableContent) DragEnd() {
	dc.canvas.ed.EndDrag()
	dc.canvas.Refresh()
}

// Tapped selects the topmost element under the pointer, or clears the
// selection on empty space.
func (dc *draggableContent) Tapped(ev *fyne.PointEvent) {
	size := dc.Size()
	if ev.Position.X < 0 || ev.Position.Y < 0 ||
		ev.Position.X > size.Width || ev.Position.Y > size.Height {
		return
	}
	dc.canvas.ed.Select(dc.canvas.hitIndex(dc.editorPoint(ev.Position)))
	dc.canvas.Refresh()
}

func (dc *draggableContent) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		dc.canvas.ZoomIn()
	} else if ev.Scrolled.DY < 0 {
		dc.canvas.ZoomOut()
	}
}

type draggableContentRenderer struct {
	content *draggableContent
}

func (r *draggableContentRenderer) Layout(size fyne.Size) {
	r.content.raster.Resize(size)
}

func (r *draggableContentRenderer) MinSize() fyne.Size {
	return r.content.raster.MinSize()
}

func (r *draggableContentRenderer) Refresh() {
	r.content.raster.Refresh()
}

func (r *draggableContentRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.content.raster}
}

func (r *draggableContentRenderer) Destroy() {}

// NewLabelCanvas creates the design surface for the given editor.
func NewLabelCanvas(ed *editor.Editor, symbols *render.SymbolCache) *LabelCanvas {
	lc := &LabelCanvas{
		ed:       ed,
		symbols:  symbols,
		zoom:     1.0,
		showGrid: true,
	}

	lc.raster = fynecanvas.NewRaster(lc.draw)
	lc.raster.ScaleMode = fynecanvas.ImageScalePixels

	lc.content = newDraggableContent(lc, lc.raster)
	lc.scroll = newZoomScroll(lc.content, lc)

	lc.ExtendBaseWidget(lc)
	lc.updateContentSize()
	return lc
}

// Container returns the canvas container for embedding in layouts.
func (lc *LabelCanvas) Container() fyne.CanvasObject {
	return lc.scroll
}

// SetShowGrid toggles the millimeter grid.
func (lc *LabelCanvas) SetShowGrid(show bool) {
	lc.showGrid = show
	lc.Refresh()
}

// ShowGrid reports whether the grid is visible.
func (lc *LabelCanvas) ShowGrid() bool {
	return lc.showGrid
}

// SetZoom sets the display zoom over the editor scale.
func (lc *LabelCanvas) SetZoom(zoom float64) {
	if zoom < minZoom {
		zoom = minZoom
	}
	if zoom > maxZoom {
		zoom = maxZoom
	}
	lc.zoom = zoom
	lc.updateContentSize()

	if lc.onZoomChange != nil {
		lc.onZoomChange(zoom)
	}
}

// Zoom returns the current zoom level.
func (lc *LabelCanvas) Zoom() float64 {
	return lc.zoom
}

// ZoomIn increases the zoom level.
func (lc *LabelCanvas) ZoomIn() {
	lc.SetZoom(lc.zoom * zoomStep)
}

// ZoomOut decreases the zoom level.
func (lc *LabelCanvas) ZoomOut() {
	lc.SetZoom(lc.zoom / zoomStep)
}

// OnZoomChange sets a callback for zoom changes.
func (lc *LabelCanvas) OnZoomChange(callback func(zoom float64)) {
	lc.onZoomChange = callback
}

// Refresh refreshes the canvas display.
func (lc *LabelCanvas) Refresh() {
	lc.raster.Refresh()
}

// hitIndex returns the index of the topmost element containing the editor
// pixel point, honoring z-order, or -1.
func (lc *LabelCanvas) hitIndex(pt geometry.Point2D) int {
	t := lc.ed.Template()
	xMm := pt.X / geometry.PxPerMm
	yMm := pt.Y / geometry.PxPerMm

	order := t.PaintOrder()
	for i := len(order) - 1; i >= 0; i-- {
		if !order[i].HitTest(xMm, yMm) {
			continue
		}
		for j, el := range t.Elements {
			if el == order[i] {
				return j
			}
		}
	}
	return -1
}

// updateContentSize resizes the raster to the template at the current zoom.
func (lc *LabelCanvas) updateContentSize() {
	t := lc.ed.Template()
	w := float32(geometry.MmToPx(t.Width) * lc.zoom)
	h := float32(geometry.MmToPx(t.Height) * lc.zoom)
	if w < 1 || h < 1 {
		w, h = 400, 300
	}
	lc.imgSize = fyne.NewSize(w, h)

	lc.raster.SetMinSize(lc.imgSize)
	lc.raster.Resize(lc.imgSize)
	if lc.content != nil {
		lc.content.Resize(lc.imgSize)
		lc.content.Refresh()
	}
	lc.raster.Refresh()
	if lc.scroll != nil {
		lc.scroll.Refresh()
	}
}

// draw is the raster drawing function.
func (lc *LabelCanvas) draw(w, h int) image.Image {
	output := image.NewRGBA(image.Rect(0, 0, w, h))

	base := render.Render(lc.ed.Template(), lc.ed.Sample(), geometry.PxPerMm, lc.symbols)
	lc.compositeScaled(output, base)

	if lc.showGrid {
		lc.drawGrid(output)
	}
	if el := lc.ed.SelectedElement(); el != nil {
		lc.drawSelectionRect(output, el)
	}
	return output
}

// CreateRenderer implements fyne.Widget.
func (lc *LabelCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &labelCanvasRenderer{canvas: lc}
}

type labelCanvasRenderer struct {
	canvas *LabelCanvas
}

func (r *labelCanvasRenderer) Layout(size fyne.Size) {
	if r.canvas.scroll != nil {
		r.canvas.scroll.Resize(size)
	}
}

func (r *labelCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(100, 100)
}

func (r *labelCanvasRenderer) Refresh() {
	r.canvas.raster.Refresh()
}

func (r *labelCanvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.canvas.scroll}
}

func (r *labelCanvasRenderer) Destroy() {}
