package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeQR(t *testing.T) {
	img, err := EncodeQR("https://example.com/p/SKU-0001", 100)
	require.NoError(t, err)

	b := img.Bounds()
	assert.Equal(t, 100, b.Dx())
	assert.Equal(t, 100, b.Dy())
}

func TestEncodeQRTooSmallFails(t *testing.T) {
	// A 2px target cannot hold the module grid.
	_, err := EncodeQR("payload that needs many modules", 2)
	assert.Error(t, err)
}
