package colorutil

import (
	"image/color"
	"math"
	"testing"
)

const tolerance = 1e-6

func near(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestHSVToRGBHueCheckpoints(t *testing.T) {
	tests := []struct {
		name    string
		h       float64
		r, g, b float64
	}{
		{"red", 0, 1, 0, 0},
		{"green", 1.0 / 3, 0, 1, 0},
		{"blue", 2.0 / 3, 0, 0, 1},
		{"yellow", 1.0 / 6, 1, 1, 0},
		{"full turn wraps to red", 1, 1, 0, 0},
		{"hue keeps wrapping", 2 + 1.0/3, 0, 1, 0},
		{"negative hue", -1.0 / 3, 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := HSVToRGB(tt.h, 1, 1)
			if !near(r, tt.r) || !near(g, tt.g) || !near(b, tt.b) {
				t.Errorf("HSVToRGB(%v, 1, 1) = (%v, %v, %v), want (%v, %v, %v)",
					tt.h, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestHSVToRGBZeroSaturation(t *testing.T) {
	for _, h := range []float64{0, 0.25, 0.5, 0.9, 3.7} {
		for _, v := range []float64{0, 0.3, 1} {
			r, g, b := HSVToRGB(h, 0, v)
			if r != v || g != v || b != v {
				t.Errorf("HSVToRGB(%v, 0, %v) = (%v, %v, %v), want grey %v", h, v, r, g, b, v)
			}
		}
	}
}

func TestHSVToRGBValueScales(t *testing.T) {
	r, g, b := HSVToRGB(0.5, 1, 0.5)
	if !near(r, 0) || !near(g, 0.5) || !near(b, 0.5) {
		t.Errorf("got (%v, %v, %v), want (0, 0.5, 0.5)", r, g, b)
	}
}

func TestHSV(t *testing.T) {
	tests := []struct {
		name string
		h    float64
		want color.RGBA
	}{
		{"red", 0, color.RGBA{255, 0, 0, 255}},
		{"cyan", 0.5, color.RGBA{0, 255, 255, 255}},
		{"blue", 2.0 / 3, color.RGBA{0, 0, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSV(tt.h, 1, 1); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
