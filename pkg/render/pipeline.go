package render

import (
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/taigrr/blockshade/pkg/math3d"
)

// Transform places a model in the scene.
type Transform struct {
	Position math3d.Vec3
	Rotation math3d.Vec3 // Euler angles in degrees
	Scale    math3d.Vec3
}

// Material controls how a model's faces are colored.
type Material struct {
	Color color.RGBA

	// Flat skips lighting and paints every face at full brightness.
	Flat bool

	// Wireframe outlines faces instead of filling them.
	Wireframe bool
}

const (
	ambient  = 34
	diffuse  = 220
	maxLevel = 255
)

type faceDepth struct {
	idx int
	z   float64
}

// RenderMesh draws the convex hull of vertices into the framebuffer.
//
// The hull is taken on the raw vertices, then each vertex is scaled by
// t.Scale divided by the camera-relative depth, rotated by t.Rotation minus
// the camera orientation (X, then Y, then Z), and offset by the
// camera-relative position. Faces are painted in descending order of their
// normal's Z component, which approximates back to front for convex solids.
func (s *Screen) RenderMesh(vertices []math3d.Vec3, t Transform, m Material) {
	if len(vertices) == 0 {
		return
	}

	posv := s.Camera.Offset(t.Position)
	fz := posv.Z + 1
	if posv.Z > -0.01 && posv.Z <= 0 {
		fz = posv.Z + 1.01
	}
	size := t.Scale.Div(fz)

	faces := s.hull.Faces(vertices)
	if len(faces) == 0 {
		return
	}

	rot := math3d.EulerZYX(t.Rotation.Sub(s.Camera.Rotation()).Radians())
	s.verts = s.verts[:0]
	for _, v := range vertices {
		s.verts = append(s.verts, rot.MulVec3(v.Mul(size)).Add(posv))
	}
	verts := s.verts
	view := s.fb.Bounds()
	if !BoundsOf(verts).Visible(view) {
		return
	}

	s.order = s.order[:0]
	for i, f := range faces {
		var z float64
		if len(f) >= 3 {
			z = FaceNormal(verts[f[0]], verts[f[1]], verts[f[2]]).Z
		}
		s.order = append(s.order, faceDepth{idx: i, z: z})
	}
	slices.SortStableFunc(s.order, func(a, b faceDepth) int {
		switch {
		case a.z < b.z:
			return -1
		case a.z > b.z:
			return 1
		}
		return 0
	})

	for i := len(s.order) - 1; i >= 0; i-- {
		face := faces[s.order[i].idx]
		if len(face) < 3 {
			continue
		}

		normal := FaceNormal(verts[face[0]], verts[face[1]], verts[face[2]])
		shaded := Shade(m.Color, Brightness(normal, s.light, m.Flat))

		s.poly = s.poly[:0]
		for _, idx := range face {
			s.poly = append(s.poly, Project(verts[idx]))
		}
		if !polygonBounds(s.poly).Overlaps(view) {
			continue
		}

		if m.Wireframe {
			s.fb.StrokePolygon(s.poly, shaded)
		} else {
			s.fb.FillPolygon(s.poly, shaded)
		}
	}
}

// FaceNormal returns the unit normal of the plane through a, b and c using
// the two edges leaving a.
func FaceNormal(a, b, c math3d.Vec3) math3d.Vec3 {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// Brightness maps a face normal to a light level in [34, 255]. Faces turned
// away from the light sit at the ambient floor; flat materials always get
// full brightness.
func Brightness(normal, light math3d.Vec3, flat bool) uint8 {
	if flat {
		return maxLevel
	}
	d := normal.Dot(light)
	if !(d > 0) {
		d = 0
	}
	d = min(d, 1)
	return uint8(min(d*diffuse+ambient, maxLevel))
}

// Shade scales each channel of c by brightness/255, rounding toward zero.
func Shade(c color.RGBA, brightness uint8) color.RGBA {
	b := float64(brightness)
	return color.RGBA{
		R: uint8(float64(c.R) / maxLevel * b),
		G: uint8(float64(c.G) / maxLevel * b),
		B: uint8(float64(c.B) / maxLevel * b),
		A: 255,
	}
}

// Project drops the Z component and truncates X and Y toward zero.
func Project(v math3d.Vec3) image.Point {
	return image.Pt(truncate(v.X), truncate(v.Y))
}

// truncate converts f to an int, mapping NaN to 0 and saturating instead of
// overflowing.
func truncate(f float64) int {
	const limit = 1 << 30
	switch {
	case math.IsNaN(f):
		return 0
	case f > limit:
		return limit
	case f < -limit:
		return -limit
	}
	return int(f)
}
