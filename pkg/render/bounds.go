package render

import (
	"image"
	"math"

	"github.com/taigrr/blockshade/pkg/math3d"
)

// AABB represents an axis-aligned bounding box in screen space, where X and
// Y are pixels and Z is unused by the rasterizer.
type AABB struct {
	Min math3d.Vec3
	Max math3d.Vec3
}

// BoundsOf returns the smallest AABB containing points. The zero AABB is
// returned for an empty slice.
func BoundsOf(points []math3d.Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	b := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min = b.Min.Min(p)
		b.Max = b.Max.Max(p)
	}
	return b
}

// Center returns the center of the AABB.
func (b AABB) Center() math3d.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the dimensions of the AABB.
func (b AABB) Size() math3d.Vec3 {
	return b.Max.Sub(b.Min)
}

// Rect returns the pixel rectangle covering the box's X/Y extent. It rounds
// outward, so every pixel a projected vertex can land on is inside.
func (b AABB) Rect() image.Rectangle {
	return image.Rect(
		clampInt(math.Floor(b.Min.X)),
		clampInt(math.Floor(b.Min.Y)),
		clampInt(math.Ceil(b.Max.X))+1,
		clampInt(math.Ceil(b.Max.Y))+1,
	)
}

// Visible reports whether any part of the box can land inside r. NaN
// coordinates are treated as visible and left to the rasterizer.
func (b AABB) Visible(r image.Rectangle) bool {
	if math.IsNaN(b.Min.X) || math.IsNaN(b.Min.Y) || math.IsNaN(b.Max.X) || math.IsNaN(b.Max.Y) {
		return true
	}
	return b.Rect().Overlaps(r)
}

// Bounds returns the framebuffer's pixel rectangle.
func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.Width, fb.Height)
}

// polygonBounds returns the half-open pixel rectangle spanned by points.
func polygonBounds(points []image.Point) image.Rectangle {
	if len(points) == 0 {
		return image.Rectangle{}
	}
	r := image.Rectangle{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}
	r.Max.X++
	r.Max.Y++
	return r
}

func clampInt(f float64) int {
	const limit = 1 << 30
	return int(math.Max(-limit, math.Min(limit, f)))
}
