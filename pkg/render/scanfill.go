package render

import (
	"image"
	"image/color"
	"slices"
)

// FillPolygon paints the interior of the closed loop described by points
// using a horizontal scan-line fill.
//
// For every row between the lowest and highest vertex, each non-horizontal
// edge contributes one intersection when the row lies in [yLow, yHigh). The
// intersections are sorted and the pixels between consecutive pairs are
// filled inclusively. Pixels outside the framebuffer are dropped.
func (fb *Framebuffer) FillPolygon(points []image.Point, c color.RGBA) {
	if len(points) == 0 {
		return
	}

	ymin, ymax := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		ymin = min(ymin, p.Y)
		ymax = max(ymax, p.Y)
	}
	// Rows outside the buffer can never receive a pixel.
	ymin = max(ymin, 0)
	ymax = min(ymax, fb.Height-1)

	for y := ymin; y <= ymax; y++ {
		fb.xs = intersections(y, points, fb.xs[:0])
		slices.Sort(fb.xs)
		fb.fillSpans(y, fb.xs, c)
	}
}

// intersections appends to dst the x coordinate where each edge of the loop
// crosses row y. Division truncates toward zero.
func intersections(y int, points []image.Point, dst []int) []int {
	for i, p0 := range points {
		p1 := points[(i+1)%len(points)]
		if p0.Y == p1.Y {
			continue
		}
		if p0.Y > p1.Y {
			p0, p1 = p1, p0
		}
		if y >= p0.Y && y < p1.Y {
			dst = append(dst, p0.X+(y-p0.Y)*(p1.X-p0.X)/(p1.Y-p0.Y))
		}
	}
	return dst
}

// fillSpans fills [xs[0], xs[1]], [xs[2], xs[3]], ... on row y. A trailing
// unpaired intersection is ignored.
func (fb *Framebuffer) fillSpans(y int, xs []int, c color.RGBA) {
	for i := 0; i+1 < len(xs); i += 2 {
		start := max(xs[i], 0)
		end := min(xs[i+1], fb.Width-1)
		for x := start; x <= end; x++ {
			fb.SetPixel(x, y, c)
		}
	}
}

// StrokePolygon outlines the closed loop described by points.
func (fb *Framebuffer) StrokePolygon(points []image.Point, c color.RGBA) {
	for i, p0 := range points {
		p1 := points[(i+1)%len(points)]
		fb.DrawLine(p0.X, p0.Y, p1.X, p1.Y, c)
	}
}
