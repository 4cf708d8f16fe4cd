package render

import (
	"image"
	"log"

	"github.com/fogleman/gg"

	"label-studio/internal/label"
	"label-studio/pkg/colorutil"
	"label-studio/pkg/geometry"
)

// Render rasterizes a template at the given scale in pixels per millimeter,
// resolving variable fields against the sample record. Elements paint in
// z-index order with rotation applied about each element's center. When a
// symbol cache is supplied its editor-scale rasters are reused; a nil cache
// generates symbols directly at the target size, which the print and export
// paths use for full-resolution output.
func Render(t *label.Template, rec label.SampleRecord, scale float64, symbols *SymbolCache) image.Image {
	w := int(t.Width*scale + 0.5)
	h := int(t.Height*scale + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dc := gg.NewContext(w, h)
	dc.SetColor(colorutil.White)
	dc.Clear()

	for _, el := range t.PaintOrder() {
		drawElement(dc, el, rec, scale, symbols)
	}
	return dc.Image()
}

// ExportPNG renders the template at the given DPI and writes it as a PNG.
func ExportPNG(t *label.Template, rec label.SampleRecord, dpi float64, path string) error {
	img := Render(t, rec, dpi/geometry.MmPerInch, nil)
	return gg.SavePNG(path, img)
}

func drawElement(dc *gg.Context, el *label.Element, rec label.SampleRecord, scale float64, symbols *SymbolCache) {
	x := el.X * scale
	y := el.Y * scale
	w := el.Width * scale
	h := el.Height * scale

	dc.Push()
	defer dc.Pop()

	if el.Rotation != 0 {
		dc.RotateAbout(gg.Radians(el.Rotation), x+w/2, y+h/2)
	}

	opacity := el.Style.Opacity
	if opacity <= 0 {
		opacity = 1
	}

	if el.Style.Background != "" {
		bg := colorutil.ParseHex(el.Style.Background, colorutil.White)
		dc.SetColor(colorutil.WithOpacity(bg, opacity))
		dc.DrawRectangle(x, y, w, h)
		dc.Fill()
	}

	switch el.Type {
	case label.ElementText:
		drawText(dc, el, rec, x, y, w, h, scale, opacity)
	case label.ElementImage:
		drawImageFile(dc, el, x, y, w, h)
	case label.ElementQR, label.ElementBarcode:
		drawSymbol(dc, el, rec, x, y, w, h, symbols)
	}

	if el.Style.BorderWidth > 0 {
		border := colorutil.ParseHex(el.Style.BorderColor, colorutil.Black)
		dc.SetColor(colorutil.WithOpacity(border, opacity))
		dc.SetLineWidth(el.Style.BorderWidth * scale)
		dc.DrawRectangle(x, y, w, h)
		dc.Stroke()
	}
}

func drawText(dc *gg.Context, el *label.Element, rec label.SampleRecord, x, y, w, h, scale, opacity float64) {
	size := el.Style.FontSize
	if size <= 0 {
		size = label.DefaultStyle().FontSize
	}
	// Font sizes are in points; convert through the render scale.
	sizePx := size * scale * geometry.MmPerInch / 72

	dc.SetFontFace(Face(el.Style.Bold, sizePx))
	dc.SetColor(colorutil.WithOpacity(
		colorutil.ParseHex(el.Style.Color, colorutil.Black), opacity))
	dc.DrawStringWrapped(el.ResolvedContent(rec), x, y, 0, 0, w, 1.2, gg.AlignLeft)
}

func drawImageFile(dc *gg.Context, el *label.Element, x, y, w, h float64) {
	if el.Content == "" {
		return
	}
	img, err := gg.LoadImage(el.Content)
	if err != nil {
		log.Printf("Render: image load failed for element %s: %v", el.ID, err)
		return
	}
	drawScaled(dc, img, x, y, w, h)
}

func drawSymbol(dc *gg.Context, el *label.Element, rec label.SampleRecord, x, y, w, h float64, symbols *SymbolCache) {
	var img image.Image
	if symbols != nil {
		img = symbols.Symbol(el, rec)
	} else {
		img = generateSymbol(el, rec, int(w+0.5), int(h+0.5))
	}
	if img == nil {
		return
	}
	drawScaled(dc, img, x, y, w, h)
}

// drawScaled paints an image stretched into the target rectangle.
func drawScaled(dc *gg.Context, img image.Image, x, y, w, h float64) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	dc.Push()
	dc.Translate(x, y)
	dc.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	dc.DrawImage(img, 0, 0)
	dc.Pop()
}
