package main

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/blockshade/pkg/colorutil"
	"github.com/taigrr/blockshade/pkg/math3d"
	"github.com/taigrr/blockshade/pkg/render"
)

// scene is one animated demo driven by the terminal loop.
type scene interface {
	// Resize is called once before the first frame and after every
	// terminal resize, with the size in cells.
	Resize(cols, rows int)
	Update()
	Render(s *render.Screen)
	// HandleKey returns true when the session should end.
	HandleKey(s *render.Screen, ev uv.KeyPressEvent) bool
}

// drawFunc draws one solid onto a screen.
type drawFunc func(s *render.Screen, t render.Transform, m render.Material)

var shapeNames = []string{"cube", "pyramid", "icosphere", "uvsphere"}

const (
	defaultIcoDetail = 2
	defaultUVDetail  = 12
)

// lookupShape resolves a shape by name. detail is the icosphere subdivision
// count or the UV sphere resolution; zero picks a per-shape default.
func lookupShape(name string, detail int) (drawFunc, error) {
	switch strings.ToLower(name) {
	case "cube":
		return (*render.Screen).Cube, nil
	case "pyramid":
		return (*render.Screen).Pyramid, nil
	case "icosphere":
		if detail == 0 {
			detail = defaultIcoDetail
		}
		return func(s *render.Screen, t render.Transform, m render.Material) {
			s.Icosphere(t.Position, t.Rotation, t.Scale.X, detail, m)
		}, nil
	case "uvsphere":
		if detail == 0 {
			detail = defaultUVDetail
		}
		return func(s *render.Screen, t render.Transform, m render.Material) {
			s.UVSphere(t.Position, t.Rotation, t.Scale.X, detail, m)
		}, nil
	}
	return nil, fmt.Errorf("unknown shape %q (want one of %s)", name, strings.Join(shapeNames, ", "))
}

// meshDraw draws the hull of a fixed point set.
func meshDraw(points []math3d.Vec3) drawFunc {
	return func(s *render.Screen, t render.Transform, m render.Material) {
		s.RenderMesh(points, t, m)
	}
}

// bounceScene is a colour cycling icosphere bouncing off the edges.
type bounceScene struct {
	cfg    *config
	ball   *Bouncer
	radius float64
	spin   float64
	hue    float64
}

const (
	bounceSpeed = 35.0 // pixels per second
	bounceSpin  = 5.0  // degrees per frame
	hueStep     = 0.01
)

func newBounceScene(cfg *config) *bounceScene {
	return &bounceScene{cfg: cfg}
}

func (b *bounceScene) Resize(cols, rows int) {
	b.radius = float64(rows) / 3
	lo, hi := b.bounds(cols, rows)
	if b.ball == nil {
		center := harmonica.Point{X: float64(cols) / 2, Y: float64(rows)}
		b.ball = NewBouncer(b.cfg.fps, center, harmonica.Vector{X: bounceSpeed, Y: bounceSpeed}, lo, hi)
		return
	}
	b.ball.SetBounds(lo, hi)
}

// bounds keeps the whole sphere on screen. Pixel space is cols wide and
// 2*rows tall.
func (b *bounceScene) bounds(cols, rows int) (harmonica.Point, harmonica.Point) {
	return harmonica.Point{X: b.radius, Y: b.radius},
		harmonica.Point{X: float64(cols) - b.radius, Y: float64(rows*2) - b.radius}
}

func (b *bounceScene) Update() {
	b.ball.Update()
	if b.ball.Velocity().X >= 0 {
		b.spin += bounceSpin
	} else {
		b.spin -= bounceSpin
	}
	b.hue = math.Mod(b.hue+hueStep, 1)
}

func (b *bounceScene) Render(s *render.Screen) {
	p := b.ball.Position()
	s.Icosphere(
		math3d.V3(p.X, p.Y, 0),
		math3d.V3(0, 0, b.spin),
		b.radius,
		b.cfg.detailOr(defaultIcoDetail),
		render.Material{
			Color:     colorutil.HSV(b.hue, 1, 1),
			Flat:      b.cfg.flat,
			Wireframe: b.cfg.wireframe,
		},
	)
}

func (b *bounceScene) HandleKey(*render.Screen, uv.KeyPressEvent) bool {
	return true
}

// spinScene is a single solid the user can rotate.
type spinScene struct {
	cfg       *config
	draw      drawFunc
	rotation  *Orientation
	autoYaw   float64
	pos       math3d.Vec3
	size      float64
	flat      bool
	wireframe bool
}

const (
	initialPitch  = 25.0
	autoYawSpeed  = 3.0 // degrees per frame
	impulse       = 4.0
	randomImpulse = 12.0
	zoomStep      = 10.0
	maxZoom       = 90.0
)

func newSpinScene(cfg *config, draw drawFunc) *spinScene {
	sc := &spinScene{
		cfg:       cfg,
		draw:      draw,
		rotation:  NewOrientation(cfg.fps),
		autoYaw:   autoYawSpeed,
		flat:      cfg.flat,
		wireframe: cfg.wireframe,
	}
	sc.rotation.Pitch.Turn(initialPitch)
	return sc
}

func (sc *spinScene) Resize(cols, rows int) {
	sc.pos = math3d.V3(float64(cols)/2, float64(rows), 0)
	sc.size = float64(rows) / 1.8
}

func (sc *spinScene) Update() {
	sc.rotation.Yaw.Turn(sc.autoYaw)
	sc.rotation.Update()
}

func (sc *spinScene) Render(s *render.Screen) {
	sc.draw(s, sc.transform(), render.Material{
		Color:     sc.cfg.color,
		Flat:      sc.flat,
		Wireframe: sc.wireframe,
	})
}

func (sc *spinScene) transform() render.Transform {
	return render.Transform{
		Position: sc.pos,
		Rotation: sc.rotation.Degrees(),
		Scale:    math3d.Splat(sc.size),
	}
}

func (sc *spinScene) HandleKey(s *render.Screen, ev uv.KeyPressEvent) bool {
	switch {
	case ev.MatchString("escape", "ctrl+c"):
		return true
	case ev.MatchString("w", "up"):
		sc.rotation.Push(math3d.V3(-impulse, 0, 0))
	case ev.MatchString("s", "down"):
		sc.rotation.Push(math3d.V3(impulse, 0, 0))
	case ev.MatchString("a", "left"):
		sc.rotation.Push(math3d.V3(0, -impulse, 0))
	case ev.MatchString("d", "right"):
		sc.rotation.Push(math3d.V3(0, impulse, 0))
	case ev.MatchString("q"):
		sc.rotation.Push(math3d.V3(0, 0, -impulse))
	case ev.MatchString("e"):
		sc.rotation.Push(math3d.V3(0, 0, impulse))
	case ev.MatchString("space"):
		sc.rotation.Push(math3d.V3(
			(rand.Float64()-0.5)*randomImpulse,
			(rand.Float64()-0.5)*randomImpulse,
			(rand.Float64()-0.5)*randomImpulse,
		))
	case ev.MatchString("r"):
		sc.rotation.Reset()
		sc.rotation.Pitch.Turn(initialPitch)
		s.Camera.SetPosition(math3d.Vec3{})
	case ev.MatchString("x"):
		sc.wireframe = !sc.wireframe
	case ev.MatchString("f"):
		sc.flat = !sc.flat
	case ev.MatchString("+", "="):
		zoom(&s.Camera, zoomStep)
	case ev.MatchString("-", "_"):
		zoom(&s.Camera, -zoomStep)
	}
	return false
}

// zoom moves the camera along z. Depth is divided by 100 before use, so a
// camera z of 100 would put the solid at the depth singularity.
func zoom(c *render.Camera, dz float64) {
	z := c.Position.Z + dz
	z = math.Max(-maxZoom, math.Min(maxZoom, z))
	c.SetPosition(math3d.V3(c.Position.X, c.Position.Y, z))
}
