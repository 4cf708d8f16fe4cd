package label

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewElementDefaults(t *testing.T) {
	text := NewElement(ElementText)
	assert.Equal(t, "Text", text.Content)
	assert.Equal(t, DefaultTextWidth, text.Width)
	assert.Equal(t, DefaultTextHeight, text.Height)
	assert.Equal(t, 10.0, text.Style.FontSize)
	assert.NotEmpty(t, text.ID)

	qr := NewElement(ElementQR)
	assert.Equal(t, "123456", qr.Content)
	assert.Equal(t, DefaultBoxSize, qr.Width)
	assert.Equal(t, DefaultBoxSize, qr.Height)

	// Non-text types all start as the default box
	barcode := NewElement(ElementBarcode)
	assert.Equal(t, "123456", barcode.Content)
	assert.Equal(t, DefaultBoxSize, barcode.Width)
	assert.Equal(t, DefaultBoxSize, barcode.Height)

	img := NewElement(ElementImage)
	assert.Equal(t, DefaultBoxSize, img.Width)
	assert.Equal(t, DefaultBoxSize, img.Height)

	shape := NewElement(ElementShape)
	assert.Equal(t, "#e0e0e0", shape.Style.Background)
	assert.Equal(t, 0.3, shape.Style.BorderWidth)

	// Each element gets its own id
	assert.NotEqual(t, text.ID, qr.ID)
}

func TestHitTest(t *testing.T) {
	el := NewElement(ElementShape)
	el.X, el.Y = 10, 10
	el.Width, el.Height = 20, 10

	assert.True(t, el.HitTest(10, 10))
	assert.True(t, el.HitTest(20, 15))
	assert.False(t, el.HitTest(9, 15))
	assert.False(t, el.HitTest(35, 15))
}

func TestHitTestRotated(t *testing.T) {
	// 40x4mm bar centered at (20, 12), rotated 90 degrees: it now spans
	// vertically, so points off the original horizontal extent hit and the
	// original corners miss.
	el := NewElement(ElementShape)
	el.X, el.Y = 0, 10
	el.Width, el.Height = 40, 4
	el.Rotation = 90

	assert.True(t, el.HitTest(20, 30))
	assert.True(t, el.HitTest(20, -5))
	assert.False(t, el.HitTest(2, 12))
}

func TestCloneIsIndependent(t *testing.T) {
	el := NewElement(ElementText)
	c := el.Clone()
	c.Content = "changed"
	c.Style.Bold = true

	require.Equal(t, "Text", el.Content)
	require.False(t, el.Style.Bold)
}

func TestCloneElements(t *testing.T) {
	els := []*Element{NewElement(ElementText), NewElement(ElementQR)}
	copies := CloneElements(els)

	require.Len(t, copies, 2)
	copies[0].X = 99
	require.NotEqual(t, 99.0, els[0].X)
}
