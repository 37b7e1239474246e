// Package shapes generates model-space vertex sets for the solids blockshade
// can draw. Generators are pure: every call returns a fresh slice.
package shapes

import (
	"math"

	"github.com/taigrr/blockshade/pkg/hull"
	"github.com/taigrr/blockshade/pkg/math3d"
)

// Phi is the golden ratio as used for the icosahedron seed.
const Phi = 1.618

// Cube returns the eight corners of the cube spanning [-1, 1] on each axis.
func Cube() []math3d.Vec3 {
	return []math3d.Vec3{
		{X: 1, Y: 1, Z: 1},
		{X: 1, Y: -1, Z: 1},
		{X: -1, Y: 1, Z: 1},
		{X: -1, Y: -1, Z: 1},
		{X: 1, Y: 1, Z: -1},
		{X: 1, Y: -1, Z: -1},
		{X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: -1},
	}
}

// Pyramid returns a square-based pyramid. The base lies on y = 1 and the apex
// at y = -1, which is "up" once rows grow downward on screen.
func Pyramid() []math3d.Vec3 {
	return []math3d.Vec3{
		{X: 1, Y: 1, Z: 1},
		{X: -1, Y: 1, Z: 1},
		{X: 0, Y: -1, Z: 0},
		{X: 1, Y: 1, Z: -1},
		{X: -1, Y: 1, Z: -1},
	}
}

// icosahedron returns the twelve vertices of three orthogonal golden
// rectangles, projected onto the unit sphere.
func icosahedron() []math3d.Vec3 {
	seed := []math3d.Vec3{
		{X: -Phi, Y: 0, Z: 1},
		{X: -Phi, Y: 0, Z: -1},
		{X: Phi, Y: 0, Z: 1},
		{X: Phi, Y: 0, Z: -1},

		{X: 1, Y: Phi, Z: 0},
		{X: -1, Y: Phi, Z: 0},
		{X: 1, Y: -Phi, Z: 0},
		{X: -1, Y: -Phi, Z: 0},

		{X: 0, Y: 1, Z: Phi},
		{X: 0, Y: -1, Z: Phi},
		{X: 0, Y: 1, Z: -Phi},
		{X: 0, Y: -1, Z: -Phi},
	}
	for i := range seed {
		seed[i] = seed[i].Normalize()
	}
	return seed
}

// Icosphere starts from an icosahedron and, for each subdivision round,
// appends the great-circle midpoint of every edge of every current hull
// face. Midpoints shared by neighbouring faces are appended once per face;
// the hull oracle absorbs the duplicates.
func Icosphere(subdivisions int, o hull.Oracle) []math3d.Vec3 {
	vertices := icosahedron()
	for range subdivisions {
		faces := o.Faces(vertices)
		for _, f := range faces {
			if len(f) < 3 {
				continue
			}
			v1, v2, v3 := vertices[f[0]], vertices[f[1]], vertices[f[2]]
			vertices = append(vertices,
				v1.Slerp(v2, 0.5),
				v2.Slerp(v3, 0.5),
				v3.Slerp(v1, 0.5),
			)
		}
	}
	return vertices
}

// MinResolution is the smallest UV sphere resolution that still encloses a
// volume.
const MinResolution = 2

// UVSphere returns points on the unit sphere laid out on a latitude and
// longitude grid: resolution bands from pole to pole, 2*resolution
// meridians, plus both poles. Lower resolutions are raised to MinResolution.
func UVSphere(resolution int) []math3d.Vec3 {
	resolution = max(resolution, MinResolution)
	segments := 2 * resolution

	points := make([]math3d.Vec3, 0, 2+(resolution-1)*segments)
	points = append(points, math3d.V3(0, 1, 0))
	for i := 1; i < resolution; i++ {
		theta := math.Pi * float64(i) / float64(resolution)
		sinT, cosT := math.Sincos(theta)
		for j := range segments {
			phi := 2 * math.Pi * float64(j) / float64(segments)
			sinP, cosP := math.Sincos(phi)
			points = append(points, math3d.V3(sinT*cosP, cosT, sinT*sinP))
		}
	}
	points = append(points, math3d.V3(0, -1, 0))
	return points
}
