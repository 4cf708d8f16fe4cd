package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"label-studio/internal/label"
)

func TestSymbolCacheGeneratesAndCaches(t *testing.T) {
	cache := NewSymbolCache()
	rec := label.DefaultSampleRecord()

	el := label.NewElement(label.ElementQR)
	img := cache.Symbol(el, rec)
	require.NotNil(t, img)
	assert.Positive(t, img.Bounds().Dx())

	// Second call returns the same raster without regenerating.
	assert.Same(t, img, cache.Symbol(el, rec))
}

func TestSymbolCacheInvalidate(t *testing.T) {
	cache := NewSymbolCache()
	rec := label.DefaultSampleRecord()

	el := label.NewElement(label.ElementBarcode)
	first := cache.Symbol(el, rec)

	cache.Invalidate(el.ID)
	second := cache.Symbol(el, rec)
	assert.NotSame(t, first, second)

	cache.InvalidateAll()
	third := cache.Symbol(el, rec)
	assert.NotSame(t, second, third)
}

func TestSymbolCacheFailureYieldsEmptyRaster(t *testing.T) {
	cache := NewSymbolCache()
	rec := label.DefaultSampleRecord()

	// A zero-size QR element cannot be scaled; the failure is cached as an
	// empty raster instead of erroring on every repaint.
	el := label.NewElement(label.ElementQR)
	el.Width, el.Height = 0, 0

	img := cache.Symbol(el, rec)
	require.NotNil(t, img)
	assert.Zero(t, img.Bounds().Dx())

	assert.Same(t, img, cache.Symbol(el, rec))
}

func TestSymbolCacheIgnoresNonSymbolElements(t *testing.T) {
	cache := NewSymbolCache()
	assert.Nil(t, cache.Symbol(label.NewElement(label.ElementText), label.DefaultSampleRecord()))
}

func TestSymbolUsesResolvedContent(t *testing.T) {
	cache := NewSymbolCache()

	el := label.NewElement(label.ElementBarcode)
	el.Binding = label.BindingSKU
	rec := label.DefaultSampleRecord()

	withBinding := cache.Symbol(el, rec)
	require.NotNil(t, withBinding)

	cache.Invalidate(el.ID)
	literal := label.NewElement(label.ElementBarcode)
	literal.ID = el.ID
	literal.Content = rec.SKU

	// Same payload renders the same bars.
	direct := cache.Symbol(literal, rec)
	assert.Equal(t, withBinding, direct)
}
