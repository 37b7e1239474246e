// Package colorutil converts between the color spaces used by the demos.
package colorutil

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSVToRGB converts a hue given in turns (1.0 is a full revolution) plus a
// saturation and value in [0, 1] to RGB components in [0, 1]. Hue wraps, so
// callers may keep incrementing it. Zero or negative saturation yields grey
// (v, v, v).
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	if s <= 0 {
		return v, v, v
	}
	h -= math.Floor(h)
	if h >= 1 {
		h = 0
	}
	c := colorful.Hsv(h*360, s, v)
	return c.R, c.G, c.B
}

// HSV is HSVToRGB scaled to an opaque 8-bit color. Channels are truncated.
func HSV(h, s, v float64) color.RGBA {
	r, g, b := HSVToRGB(h, s, v)
	return color.RGBA{
		R: to8(r),
		G: to8(g),
		B: to8(b),
		A: 255,
	}
}

func to8(f float64) uint8 {
	return uint8(math.Max(0, math.Min(1, f)) * 255)
}
