package render

import (
	"image"
	"log"
	"sync"

	"label-studio/internal/label"
	"label-studio/pkg/geometry"
)

// emptyRaster is cached in place of a symbol that failed to generate, so a
// single bad element never blocks the rest of the canvas from rendering.
func emptyRaster() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 0, 0))
}

// SymbolCache holds generated QR and barcode rasters keyed by element id,
// sized for the editor canvas scale. Entries are invalidated whenever the
// owning element's rendered content changes.
type SymbolCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewSymbolCache creates an empty symbol cache.
func NewSymbolCache() *SymbolCache {
	return &SymbolCache{images: make(map[string]image.Image)}
}

// Symbol returns the cached raster for a QR or barcode element, generating
// it on first use. Generation failures are logged and cached as an empty
// raster. Non-symbol element types return nil.
func (c *SymbolCache) Symbol(el *label.Element, rec label.SampleRecord) image.Image {
	if el.Type != label.ElementQR && el.Type != label.ElementBarcode {
		return nil
	}

	c.mu.RLock()
	img, ok := c.images[el.ID]
	c.mu.RUnlock()
	if ok {
		return img
	}

	img = generateSymbol(el, rec,
		int(geometry.MmToPx(el.Width)), int(geometry.MmToPx(el.Height)))

	c.mu.Lock()
	c.images[el.ID] = img
	c.mu.Unlock()
	return img
}

// Invalidate drops the cached raster for one element.
func (c *SymbolCache) Invalidate(elementID string) {
	c.mu.Lock()
	delete(c.images, elementID)
	c.mu.Unlock()
}

// InvalidateAll drops every cached raster.
func (c *SymbolCache) InvalidateAll() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// generateSymbol renders the element's symbol at the given pixel size.
func generateSymbol(el *label.Element, rec label.SampleRecord, w, h int) image.Image {
	payload := el.ResolvedContent(rec)

	switch el.Type {
	case label.ElementQR:
		size := w
		if h < size {
			size = h
		}
		img, err := EncodeQR(payload, size)
		if err != nil {
			log.Printf("QR: generation failed for element %s: %v", el.ID, err)
			return emptyRaster()
		}
		return img
	case label.ElementBarcode:
		return Code39(payload, w, h)
	}
	return nil
}
