package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"label-studio/internal/label"
)

func testTemplate(t *testing.T) *label.Template {
	t.Helper()
	tmpl, err := label.NewTemplate("Render test", 50, 30)
	require.NoError(t, err)
	return tmpl
}

func TestRenderDimensionsFollowScale(t *testing.T) {
	tmpl := testTemplate(t)
	rec := label.DefaultSampleRecord()

	img := Render(tmpl, rec, 5, nil)
	assert.Equal(t, 250, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())

	img = Render(tmpl, rec, 10, nil)
	assert.Equal(t, 500, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())
}

func TestRenderEmptyTemplateIsWhite(t *testing.T) {
	img := Render(testTemplate(t), label.DefaultSampleRecord(), 5, nil)

	for _, pt := range [][2]int{{0, 0}, {249, 149}, {125, 75}} {
		r, g, b, _ := img.At(pt[0], pt[1]).RGBA()
		assert.Equal(t, uint32(0xffff), r)
		assert.Equal(t, uint32(0xffff), g)
		assert.Equal(t, uint32(0xffff), b)
	}
}

func TestRenderPaintsShape(t *testing.T) {
	tmpl := testTemplate(t)
	shape := label.NewElement(label.ElementShape)
	shape.X, shape.Y = 10, 10
	shape.Width, shape.Height = 10, 10
	shape.Style.Background = "#000000"
	shape.Style.BorderWidth = 0
	tmpl.Elements = append(tmpl.Elements, shape)

	img := Render(tmpl, label.DefaultSampleRecord(), 5, nil)

	// Center of the shape (15mm, 15mm) at 5 px/mm
	r, g, b, _ := img.At(75, 75).RGBA()
	assert.Zero(t, r)
	assert.Zero(t, g)
	assert.Zero(t, b)

	// Outside the shape stays white
	r, _, _, _ = img.At(10, 10).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestRenderSkipsMissingImageFile(t *testing.T) {
	tmpl := testTemplate(t)
	el := label.NewElement(label.ElementImage)
	el.Content = "/nonexistent/image.png"
	tmpl.Elements = append(tmpl.Elements, el)

	require.NotPanics(t, func() {
		Render(tmpl, label.DefaultSampleRecord(), 5, nil)
	})
}

func TestRenderTextDoesNotPanic(t *testing.T) {
	tmpl := testTemplate(t)
	text := label.NewElement(label.ElementText)
	text.Binding = label.BindingName
	text.Rotation = 30
	tmpl.Elements = append(tmpl.Elements, text)

	require.NotPanics(t, func() {
		Render(tmpl, label.DefaultSampleRecord(), 5, nil)
	})
}

func TestExportPNG(t *testing.T) {
	tmpl := testTemplate(t)
	qr := label.NewElement(label.ElementQR)
	qr.Binding = label.BindingSKU
	tmpl.Elements = append(tmpl.Elements, qr)

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, ExportPNG(tmpl, label.DefaultSampleRecord(), 203, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)

	// 50mm at 203 dpi is just under 400 dots
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 240, img.Bounds().Dy())
}
