package hull

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taigrr/blockshade/pkg/math3d"
)

func cube() []math3d.Vec3 {
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

func TestQuickhullCube(t *testing.T) {
	points := cube()
	faces := Quickhull{}.Faces(points)

	require.Len(t, faces, 12, "a cube triangulates into 12 hull faces")
	for _, f := range faces {
		require.Len(t, f, 3)
		for _, idx := range f {
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, len(points))
		}
	}
}

func TestQuickhullOutwardWinding(t *testing.T) {
	points := cube()
	for _, f := range (Quickhull{}).Faces(points) {
		a, b, c := points[f[0]], points[f[1]], points[f[2]]
		n := b.Sub(a).Cross(c.Sub(a)).Normalize()
		centre := a.Add(b).Add(c).Div(3)
		// The cube is centred on the origin, so outward normals agree with
		// the face centre direction.
		require.Greater(t, n.Dot(centre), 0.0, "face %v faces inward", f)
	}
}

func TestQuickhullIgnoresInteriorPoints(t *testing.T) {
	points := append(cube(), math3d.V3(0, 0, 0), math3d.V3(0.5, -0.25, 0.1))
	faces := Quickhull{}.Faces(points)

	require.NotEmpty(t, faces)
	for _, f := range faces {
		for _, idx := range f {
			require.Less(t, idx, 8, "interior point %d used by a face", idx)
		}
	}
}

func TestQuickhullPyramid(t *testing.T) {
	points := []math3d.Vec3{
		{X: 1, Y: 1, Z: 1},
		{X: -1, Y: 1, Z: 1},
		{X: 0, Y: -1, Z: 0},
		{X: 1, Y: 1, Z: -1},
		{X: -1, Y: 1, Z: -1},
	}
	faces := Quickhull{}.Faces(points)
	// Four sides plus a base split into two triangles.
	require.Len(t, faces, 6)
}

func TestQuickhullDeterministic(t *testing.T) {
	points := cube()
	first := Quickhull{}.Faces(points)
	second := Quickhull{}.Faces(points)
	require.Equal(t, first, second)
}

func TestQuickhullDegenerate(t *testing.T) {
	require.Empty(t, Quickhull{}.Faces(nil))
	require.Empty(t, Quickhull{}.Faces(cube()[:3]))
}
