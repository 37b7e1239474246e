package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/charmbracelet/x/ansi"

	"github.com/taigrr/blockshade/pkg/hull"
	"github.com/taigrr/blockshade/pkg/math3d"
)

// HalfBlock is the glyph every cell is drawn with: the foreground paints the
// upper pixel and the background the lower one.
const HalfBlock = "▀"

var (
	// ErrZeroLight is returned when a Screen is built with a zero light
	// direction.
	ErrZeroLight = errors.New("light direction must be non-zero")

	// ErrInvalidSize is returned when the size provider reports a
	// non-positive terminal size.
	ErrInvalidSize = errors.New("invalid terminal size")
)

// Sizer reports the terminal size in cells. *uv.Terminal satisfies it.
type Sizer interface {
	GetSize() (width, height int, err error)
}

// StaticSize is a Sizer with a fixed answer, for headless rendering.
type StaticSize struct {
	Width, Height int
}

// GetSize implements Sizer.
func (s StaticSize) GetSize() (int, int, error) {
	return s.Width, s.Height, nil
}

// Screen owns a framebuffer sized to the terminal along with the camera and
// light used by the mesh pipeline. A Screen is not safe for concurrent use.
type Screen struct {
	Camera Camera

	fb    *Framebuffer
	light math3d.Vec3
	hull  hull.Oracle

	// per-draw scratch
	verts []math3d.Vec3
	order []faceDepth
	poly  []image.Point

	out   bytes.Buffer
	style ansi.Style
}

// NewScreen queries sizer once and allocates a framebuffer of width columns
// by twice as many rows. The light direction is normalized here and never
// again.
func NewScreen(sizer Sizer, light math3d.Vec3) (*Screen, error) {
	if light.IsZero() {
		return nil, ErrZeroLight
	}

	width, height, err := sizer.GetSize()
	if err != nil {
		return nil, fmt.Errorf("query terminal size: %w", err)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	return &Screen{
		fb:    NewFramebuffer(width, height*2),
		light: light.Normalize(),
		hull:  hull.Quickhull{},
	}, nil
}

// SetHull replaces the convex hull oracle used to extract faces.
func (s *Screen) SetHull(o hull.Oracle) {
	s.hull = o
}

// Hull returns the convex hull oracle in use.
func (s *Screen) Hull() hull.Oracle {
	return s.hull
}

// Light returns the unit light direction.
func (s *Screen) Light() math3d.Vec3 {
	return s.light
}

// Framebuffer returns the pixel grid backing the screen.
func (s *Screen) Framebuffer() *Framebuffer {
	return s.fb
}

// Size returns the screen size in terminal cells.
func (s *Screen) Size() (cols, rows int) {
	return s.fb.Width, (s.fb.Height + 1) / 2
}

// Clear resets every pixel to black.
func (s *Screen) Clear() {
	s.fb.Clear()
}

// Flush writes the whole framebuffer to w as 24-bit colored half blocks,
// one row pair per terminal row, in a single Write call.
func (s *Screen) Flush(w io.Writer) error {
	s.out.Reset()
	cols, rows := s.Size()
	for row := range rows {
		for col := range cols {
			top := s.fb.GetPixel(col, row*2)
			bot := s.fb.GetPixel(col, row*2+1)
			s.style = s.style[:0].ForegroundColor(top).BackgroundColor(bot)
			s.out.WriteString(s.style.String())
			s.out.WriteString(HalfBlock)
		}
	}
	if _, err := w.Write(s.out.Bytes()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}
