// Package render provides the symbol renderers (QR, Code 39) and the
// raster compositor for label templates.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
)

// code39Patterns maps each supported character to its 9-element bar/space
// pattern, encoded as 9 bits with the first element in the high bit. A set
// bit is a wide element, a clear bit a narrow one; elements alternate
// bar, space, bar, ... starting with a bar. The table covers digits,
// uppercase letters, and the standard punctuation set.
var code39Patterns = map[rune]uint16{
	'0': 0b000110100, '1': 0b100100001, '2': 0b001100001,
	'3': 0b101100000, '4': 0b000110001, '5': 0b100110000,
	'6': 0b001110000, '7': 0b000100101, '8': 0b100100100,
	'9': 0b001100100,
	'A': 0b100001001, 'B': 0b001001001, 'C': 0b101001000,
	'D': 0b000011001, 'E': 0b100011000, 'F': 0b001011000,
	'G': 0b000001101, 'H': 0b100001100, 'I': 0b001001100,
	'J': 0b000011100, 'K': 0b100000011, 'L': 0b001000011,
	'M': 0b101000010, 'N': 0b000010011, 'O': 0b100010010,
	'P': 0b001010010, 'Q': 0b000000111, 'R': 0b100000110,
	'S': 0b001000110, 'T': 0b000010110, 'U': 0b110000001,
	'V': 0b011000001, 'W': 0b111000000, 'X': 0b010010001,
	'Y': 0b110010000, 'Z': 0b011010000,
	'-': 0b010000101, '.': 0b110000100, ' ': 0b011000100,
	'*': 0b010010100, '$': 0b010101000, '/': 0b010100010,
	'+': 0b010001010, '%': 0b000101010,
}

// elements per encoded character: 3 wide + 6 narrow plus a narrow
// inter-character gap, measured in narrow units (wide = 3x narrow).
const unitsPerChar = 3*3 + 6 + 1

// code39Pattern returns the bar pattern for a character. Characters
// outside the table map to the space pattern so rendering never fails.
func code39Pattern(ch rune) uint16 {
	if p, ok := code39Patterns[ch]; ok {
		return p
	}
	return code39Patterns[' ']
}

// Code39 renders a Code 39 symbol for the given text into a raster of the
// requested pixel size. The payload is uppercased and wrapped in the '*'
// start/stop sentinels. The narrow bar width is derived from the target
// width and the estimated symbol length; drawing stops at the right edge,
// so oversized payloads are truncated rather than rejected.
func Code39(text string, widthPx, heightPx int) *image.RGBA {
	if widthPx < 1 {
		widthPx = 1
	}
	if heightPx < 1 {
		heightPx = 1
	}

	out := image.NewRGBA(image.Rect(0, 0, widthPx, heightPx))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	payload := "*" + strings.ToUpper(text) + "*"
	narrow := widthPx / (len(payload) * unitsPerChar)
	if narrow < 1 {
		narrow = 1
	}
	wide := narrow * 3

	x := 0
	for _, ch := range payload {
		pattern := code39Pattern(ch)
		for i := 0; i < 9; i++ {
			w := narrow
			if pattern&(1<<(8-i)) != 0 {
				w = wide
			}
			if i%2 == 0 {
				drawBar(out, x, w, heightPx)
			}
			x += w
			if x >= widthPx {
				return out
			}
		}
		// Inter-character gap.
		x += narrow
		if x >= widthPx {
			return out
		}
	}
	return out
}

// drawBar fills a vertical black bar of the given width starting at x.
func drawBar(out *image.RGBA, x, w, h int) {
	maxX := out.Bounds().Max.X
	for dx := 0; dx < w && x+dx < maxX; dx++ {
		for y := 0; y < h; y++ {
			out.SetRGBA(x+dx, y, color.RGBA{A: 255})
		}
	}
}
