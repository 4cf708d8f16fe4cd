package canvas

import (
	"image"
	"image/color"

	"label-studio/internal/label"
	"label-studio/pkg/colorutil"
	"label-studio/pkg/geometry"
)

// compositeScaled paints the editor-scale render into the output, scaled by
// the current zoom. Nearest-neighbor keeps millimeter boundaries crisp.
func (lc *LabelCanvas) compositeScaled(output *image.RGBA, base image.Image) {
	bounds := output.Bounds()
	src := base.Bounds()

	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			sx := int(float64(x) / lc.zoom)
			sy := int(float64(y) / lc.zoom)
			if sx >= src.Dx() || sy >= src.Dy() {
				// Outside the label area
				output.SetRGBA(x, y, color.RGBA{R: 90, G: 90, B: 90, A: 255})
				continue
			}
			output.Set(x, y, base.At(src.Min.X+sx, src.Min.Y+sy))
		}
	}
}

// drawGrid overlays the millimeter grid, with a stronger line every 5mm.
func (lc *LabelCanvas) drawGrid(output *image.RGBA) {
	spacing := geometry.PxPerMm * lc.zoom
	if spacing < 3 {
		// Too dense to be useful at low zoom
		return
	}

	bounds := output.Bounds()
	light := colorutil.Grid
	strong := color.RGBA{R: 170, G: 178, B: 192, A: 255}

	for i := 1; ; i++ {
		x := int(float64(i) * spacing)
		if x >= bounds.Max.X {
			break
		}
		col := light
		if i%5 == 0 {
			col = strong
		}
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			output.SetRGBA(x, y, col)
		}
	}
	for i := 1; ; i++ {
		y := int(float64(i) * spacing)
		if y >= bounds.Max.Y {
			break
		}
		col := light
		if i%5 == 0 {
			col = strong
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			output.SetRGBA(x, y, col)
		}
	}
}

// drawSelectionRect draws a dashed rectangle around the selected element's
// bounding box.
func (lc *LabelCanvas) drawSelectionRect(output *image.RGBA, el *label.Element) {
	r := el.Bounds()
	x1 := int(geometry.MmToPx(r.X) * lc.zoom)
	y1 := int(geometry.MmToPx(r.Y) * lc.zoom)
	x2 := int(geometry.MmToPx(r.X+r.Width) * lc.zoom)
	y2 := int(geometry.MmToPx(r.Y+r.Height) * lc.zoom)

	col := colorutil.Yellow
	bounds := output.Bounds()

	inBounds := func(x, y int) bool {
		return x >= bounds.Min.X && x < bounds.Max.X &&
			y >= bounds.Min.Y && y < bounds.Max.Y
	}

	// Dashed outline (alternate pixel runs)
	for x := x1; x <= x2; x++ {
		if (x+y1)%4 < 2 && inBounds(x, y1) {
			output.SetRGBA(x, y1, col)
		}
		if (x+y2)%4 < 2 && inBounds(x, y2) {
			output.SetRGBA(x, y2, col)
		}
	}
	for y := y1; y <= y2; y++ {
		if (x1+y)%4 < 2 && inBounds(x1, y) {
			output.SetRGBA(x1, y, col)
		}
		if (x2+y)%4 < 2 && inBounds(x2, y) {
			output.SetRGBA(x2, y, col)
		}
	}
}
