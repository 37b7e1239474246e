package models

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/taigrr/blockshade/pkg/math3d"
)

// ErrNoPositions is returned when a document has no readable POSITION data.
var ErrNoPositions = errors.New("no vertex positions found")

// Loader reads glTF/GLB documents into point clouds.
type Loader struct {
	// Logger receives a debug entry for each skipped primitive. Nil
	// disables logging.
	Logger *log.Logger
}

// NewLoader creates a loader without logging.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadPointCloud loads every vertex position of a .gltf or .glb file.
func LoadPointCloud(path string) (*PointCloud, error) {
	return NewLoader().Load(path)
}

// DecodePointCloud reads a glTF or GLB document from r. Buffers must be
// embedded.
func DecodePointCloud(r io.Reader, name string) (*PointCloud, error) {
	return NewLoader().Decode(r, name)
}

// Load opens the document at path and collects its vertex positions.
func (l *Loader) Load(path string) (*PointCloud, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return l.fromDocument(doc, filepath.Base(path))
}

// Decode decodes a document from r and collects its vertex positions.
func (l *Loader) Decode(r io.Reader, name string) (*PointCloud, error) {
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("decode gltf: %w", err)
	}
	return l.fromDocument(doc, name)
}

func (l *Loader) fromDocument(doc *gltf.Document, name string) (*PointCloud, error) {
	pc := &PointCloud{Name: name}

	for _, m := range doc.Meshes {
		if err := l.processMesh(doc, m, pc); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}
	if len(pc.Points) == 0 {
		return nil, ErrNoPositions
	}

	pc.CalculateBounds()
	return pc, nil
}

// processMesh appends the POSITION data of every primitive in m. The hull
// ignores connectivity, so primitive mode and indices do not matter.
func (l *Loader) processMesh(doc *gltf.Document, m *gltf.Mesh, pc *PointCloud) error {
	var buf [][3]float32
	for i, prim := range m.Primitives {
		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			l.debug("skipping primitive without positions", "mesh", m.Name, "primitive", i)
			continue
		}
		if posIdx < 0 || posIdx >= len(doc.Accessors) {
			return fmt.Errorf("primitive %d: position accessor %d out of range", i, posIdx)
		}

		var err error
		buf, err = modeler.ReadPosition(doc, doc.Accessors[posIdx], buf[:0])
		if err != nil {
			return fmt.Errorf("primitive %d: read positions: %w", i, err)
		}
		for _, p := range buf {
			pc.Points = append(pc.Points, math3d.V3(float64(p[0]), float64(p[1]), float64(p[2])))
		}
	}
	return nil
}

func (l *Loader) debug(msg string, keyvals ...any) {
	if l.Logger != nil {
		l.Logger.Debug(msg, keyvals...)
	}
}
