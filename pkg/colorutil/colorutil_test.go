package colorutil

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHex(t *testing.T) {
	assert.Equal(t, Black, ParseHex("#000000", White))
	assert.Equal(t, color.RGBA{R: 0x1A, G: 0x56, B: 0xDB, A: 255}, ParseHex("#1a56db", White))
	assert.Equal(t, White, ParseHex("#fff", Black))
	assert.Equal(t, color.RGBA{R: 0xAA, G: 0xBB, B: 0xCC, A: 255}, ParseHex("#abc", White))

	// Invalid input falls back
	assert.Equal(t, White, ParseHex("", White))
	assert.Equal(t, White, ParseHex("#12", White))
	assert.Equal(t, White, ParseHex("#zzzzzz", White))
}

func TestWithOpacityPremultiplies(t *testing.T) {
	// RGBA is premultiplied, so every channel scales together and the
	// result stays in gamut (channel values never exceed alpha).
	half := WithOpacity(White, 0.5)
	assert.Equal(t, color.RGBA{R: 127, G: 127, B: 127, A: 127}, half)
	assert.LessOrEqual(t, half.R, half.A)

	assert.Equal(t, White, WithOpacity(White, 1))
	assert.Equal(t, White, WithOpacity(White, 1.5))
	assert.Equal(t, color.RGBA{}, WithOpacity(White, -1))
}
