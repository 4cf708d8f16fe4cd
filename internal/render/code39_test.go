package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode39Dimensions(t *testing.T) {
	img := Code39("ABC-123", 200, 50)
	b := img.Bounds()
	assert.Equal(t, 200, b.Dx())
	assert.Equal(t, 50, b.Dy())
}

func TestCode39StartsWithBar(t *testing.T) {
	img := Code39("1", 300, 20)

	// The start sentinel begins with a narrow bar at x=0.
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Zero(t, r)
	assert.Zero(t, g)
	assert.Zero(t, b)
}

func TestCode39BarsSpanFullHeight(t *testing.T) {
	img := Code39("X", 200, 30)

	for y := 0; y < 30; y++ {
		c := img.RGBAAt(0, y)
		assert.Equal(t, color.RGBA{A: 255}, c)
	}
}

func TestCode39BackgroundIsWhite(t *testing.T) {
	img := Code39("9", 400, 10)

	// The rightmost columns are quiet zone on a generous width.
	c := img.RGBAAt(399, 5)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, c)
}

func TestCode39HandlesUnknownRunes(t *testing.T) {
	require.NotPanics(t, func() {
		img := Code39("héllo_✓", 200, 20)
		assert.Equal(t, 200, img.Bounds().Dx())
	})
}

func TestCode39Lowercases(t *testing.T) {
	// Lowercase input encodes as its uppercase form.
	a := Code39("abc", 240, 20)
	b := Code39("ABC", 240, 20)
	assert.Equal(t, a.Pix, b.Pix)
}

func TestCode39TruncatesOversizedPayload(t *testing.T) {
	require.NotPanics(t, func() {
		img := Code39("AVERYLONGPAYLOADTHATCANNOTFIT0123456789", 40, 10)
		assert.Equal(t, 40, img.Bounds().Dx())
	})
}

func TestCode39MinimumSize(t *testing.T) {
	img := Code39("A", 0, 0)
	b := img.Bounds()
	assert.Equal(t, 1, b.Dx())
	assert.Equal(t, 1, b.Dy())
}
