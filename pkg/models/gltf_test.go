package models

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/taigrr/blockshade/pkg/math3d"
)

// encodeGLB builds a binary glTF holding one mesh per position set.
func encodeGLB(t *testing.T, sets ...[][3]float32) []byte {
	t.Helper()

	doc := gltf.NewDocument()
	for _, positions := range sets {
		idx := modeler.WritePosition(doc, positions)
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: "part",
			Primitives: []*gltf.Primitive{{
				Attributes: gltf.PrimitiveAttributes{gltf.POSITION: idx},
			}},
		})
	}

	var buf bytes.Buffer
	if err := gltf.NewEncoder(&buf).Encode(doc); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func toVecs(ps [][3]float32) []math3d.Vec3 {
	out := make([]math3d.Vec3, len(ps))
	for i, p := range ps {
		out[i] = math3d.V3(float64(p[0]), float64(p[1]), float64(p[2]))
	}
	return out
}

var tetra = [][3]float32{
	{0, 0, 0},
	{4, 0, 0},
	{0, 2, 0},
	{0, 0, 1},
}

func TestLoadPointCloudInvalidPath(t *testing.T) {
	_, err := LoadPointCloud("/nonexistent/path.glb")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestDecodePointCloud(t *testing.T) {
	data := encodeGLB(t, tetra, [][3]float32{{-1, -1, -1}})

	pc, err := DecodePointCloud(bytes.NewReader(data), "tetra.glb")
	if err != nil {
		t.Fatalf("DecodePointCloud() error = %v", err)
	}

	if pc.Name != "tetra.glb" {
		t.Errorf("Name = %q, want %q", pc.Name, "tetra.glb")
	}
	if pc.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", pc.Len())
	}
	if got := pc.Points[1]; got.X != 4 || got.Y != 0 || got.Z != 0 {
		t.Errorf("Points[1] = %v, want (4, 0, 0)", got)
	}
	if pc.BoundsMin.X != -1 || pc.BoundsMax.X != 4 {
		t.Errorf("bounds X = [%v, %v], want [-1, 4]", pc.BoundsMin.X, pc.BoundsMax.X)
	}
}

func TestLoadPointCloudFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetra.glb")
	if err := os.WriteFile(path, encodeGLB(t, tetra), 0o644); err != nil {
		t.Fatal(err)
	}

	pc, err := LoadPointCloud(path)
	if err != nil {
		t.Fatalf("LoadPointCloud() error = %v", err)
	}
	if pc.Name != "tetra.glb" || pc.Len() != 4 {
		t.Errorf("got %q with %d points, want tetra.glb with 4", pc.Name, pc.Len())
	}
}

func TestDecodeWithoutPositions(t *testing.T) {
	doc := gltf.NewDocument()
	doc.Meshes = []*gltf.Mesh{{
		Name:       "empty",
		Primitives: []*gltf.Primitive{{Attributes: gltf.PrimitiveAttributes{}}},
	}}
	var buf bytes.Buffer
	enc := gltf.NewEncoder(&buf)
	enc.AsBinary = false
	if err := enc.Encode(doc); err != nil {
		t.Fatal(err)
	}

	var logs bytes.Buffer
	logger := log.New(&logs)
	logger.SetLevel(log.DebugLevel)
	l := &Loader{Logger: logger}

	_, err := l.Decode(&buf, "empty.glb")
	if !errors.Is(err, ErrNoPositions) {
		t.Fatalf("error = %v, want ErrNoPositions", err)
	}
	if !strings.Contains(logs.String(), "skipping primitive") {
		t.Errorf("expected skipped primitive to be logged, got %q", logs.String())
	}
}

func TestNormalize(t *testing.T) {
	pc := &PointCloud{Points: toVecs(tetra)}
	pc.Normalize()

	size := pc.Size()
	if size.X < 1.999 || size.X > 2.001 {
		t.Errorf("largest dimension = %v, want 2", size.X)
	}
	center := pc.Center()
	if center.Len() > 1e-9 {
		t.Errorf("center = %v, want origin", center)
	}
	// Uniform scaling keeps proportions.
	if size.Y < 0.999 || size.Y > 1.001 {
		t.Errorf("Y extent = %v, want 1", size.Y)
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	pc := &PointCloud{}
	pc.Normalize()
	if pc.Len() != 0 || pc.Size().Len() != 0 {
		t.Errorf("empty cloud changed: %+v", pc)
	}
}
