// Package hull turns point clouds into convex-hull face lists.
package hull

import (
	"github.com/golang/geo/r3"
	quickhull "github.com/markus-wa/quickhull-go/v2"

	"github.com/taigrr/blockshade/pkg/math3d"
)

// Oracle maps a point set to the faces of its convex hull. Each face is a list
// of indices into the input slice, wound so that (p1-p0)×(p2-p0) points away
// from the hull interior. Implementations must be deterministic.
type Oracle interface {
	Faces(points []math3d.Vec3) [][]int
}

// Quickhull is an Oracle backed by the quickhull algorithm. Faces are
// triangles; coplanar regions come back split.
type Quickhull struct {
	// Epsilon is the relative tolerance handed to quickhull.
	// Zero selects the library default.
	Epsilon float64
}

var _ Oracle = Quickhull{}

// Faces implements Oracle. Inputs with fewer than four points, or that are
// flat, return no faces.
func (q Quickhull) Faces(points []math3d.Vec3) [][]int {
	if len(points) < 4 {
		return nil
	}

	cloud := make([]r3.Vector, len(points))
	var centroid math3d.Vec3
	for i, p := range points {
		cloud[i] = r3.Vector{X: p.X, Y: p.Y, Z: p.Z}
		centroid = centroid.Add(p)
	}
	centroid = centroid.Div(float64(len(points)))

	var qh quickhull.QuickHull
	res := qh.ConvexHull(cloud, false, true, q.Epsilon)

	faces := make([][]int, 0, len(res.Indices)/3)
	for i := 0; i+2 < len(res.Indices); i += 3 {
		face := []int{res.Indices[i], res.Indices[i+1], res.Indices[i+2]}
		a, b, c := points[face[0]], points[face[1]], points[face[2]]
		n := b.Sub(a).Cross(c.Sub(a))
		if n.IsZero() {
			continue
		}
		if n.Dot(a.Sub(centroid)) < 0 {
			face[1], face[2] = face[2], face[1]
		}
		faces = append(faces, face)
	}
	if len(faces) < 4 {
		return nil
	}
	return faces
}
