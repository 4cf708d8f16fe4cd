// Package colorutil provides shared color utilities for the label designer.
package colorutil

import (
	"image/color"
	"strconv"
	"strings"
)

// Common colors used throughout the application.
var (
	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Grid   = color.RGBA{R: 210, G: 215, B: 225, A: 255}
)

// ParseHex parses a "#RRGGBB" or "#RGB" color string as used by element
// styles. Invalid or empty strings fall back to the given color.
func ParseHex(s string, fallback color.RGBA) color.RGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3:
		v, err := strconv.ParseUint(s, 16, 16)
		if err != nil {
			return fallback
		}
		r := uint8(v >> 8 & 0xf)
		g := uint8(v >> 4 & 0xf)
		b := uint8(v & 0xf)
		return color.RGBA{R: r*16 + r, G: g*16 + g, B: b*16 + b, A: 255}
	case 6:
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return fallback
		}
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
	default:
		return fallback
	}
}

// WithOpacity scales a color by an opacity factor in [0, 1]. RGBA is
// alpha-premultiplied, so the color channels scale with the alpha.
func WithOpacity(c color.RGBA, opacity float64) color.RGBA {
	if opacity >= 1 {
		return c
	}
	if opacity < 0 {
		opacity = 0
	}
	c.R = uint8(float64(c.R) * opacity)
	c.G = uint8(float64(c.G) * opacity)
	c.B = uint8(float64(c.B) * opacity)
	c.A = uint8(float64(c.A) * opacity)
	return c
}
