package render

import (
	"github.com/taigrr/blockshade/pkg/math3d"
	"github.com/taigrr/blockshade/pkg/shapes"
)

// Cube draws a box; t.Scale gives the half-extent on each axis.
func (s *Screen) Cube(t Transform, m Material) {
	s.RenderMesh(shapes.Cube(), t, m)
}

// Pyramid draws a square-based pyramid; t.Scale gives the half-extent on
// each axis.
func (s *Screen) Pyramid(t Transform, m Material) {
	s.RenderMesh(shapes.Pyramid(), t, m)
}

// Icosphere draws a sphere approximated by a subdivided icosahedron. Every
// vertex lies on the unit sphere, so radius is the drawn radius before depth
// scaling.
func (s *Screen) Icosphere(pos, rot math3d.Vec3, radius float64, subdivisions int, m Material) {
	s.RenderMesh(shapes.Icosphere(subdivisions, s.hull), Transform{
		Position: pos,
		Rotation: rot,
		Scale:    math3d.Splat(radius),
	}, m)
}

// UVSphere draws a sphere built from a latitude/longitude grid.
func (s *Screen) UVSphere(pos, rot math3d.Vec3, radius float64, resolution int, m Material) {
	s.RenderMesh(shapes.UVSphere(resolution), Transform{
		Position: pos,
		Rotation: rot,
		Scale:    math3d.Splat(radius),
	}, m)
}
