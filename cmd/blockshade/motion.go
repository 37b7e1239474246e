package main

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/blockshade/pkg/math3d"
)

// maxSpin caps how fast any axis turns, in degrees per frame.
const maxSpin = 30.0

// RotationAxis is one Euler angle in degrees. Velocity is in degrees per
// frame, is capped at MaxVelocity and decays toward zero on a critically
// damped spring.
type RotationAxis struct {
	Angle       float64
	Velocity    float64
	MaxVelocity float64

	decay     harmonica.Spring
	decayRate float64
}

func newRotationAxis(fps int, maxVelocity float64) RotationAxis {
	return RotationAxis{
		MaxVelocity: maxVelocity,
		decay:       harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Push adds dv to the velocity, clamped to ±MaxVelocity.
func (a *RotationAxis) Push(dv float64) {
	a.Velocity = clamp(a.Velocity+dv, -a.MaxVelocity, a.MaxVelocity)
}

// Turn rotates by d degrees without touching the velocity.
func (a *RotationAxis) Turn(d float64) {
	a.Angle = wrapDegrees(a.Angle + d)
}

// Update advances one frame.
func (a *RotationAxis) Update() {
	a.Turn(a.Velocity)
	a.Velocity, a.decayRate = a.decay.Update(a.Velocity, a.decayRate, 0)
}

// wrapDegrees maps d into [0, 360).
func wrapDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// Orientation is the pitch, yaw and roll of a spinning solid.
type Orientation struct {
	Pitch, Yaw, Roll RotationAxis
	fps              int
}

func NewOrientation(fps int) *Orientation {
	o := &Orientation{fps: fps}
	o.Reset()
	return o
}

func (o *Orientation) Update() {
	o.Pitch.Update()
	o.Yaw.Update()
	o.Roll.Update()
}

// Push adds an angular impulse in degrees per frame, x being pitch.
func (o *Orientation) Push(d math3d.Vec3) {
	o.Pitch.Push(d.X)
	o.Yaw.Push(d.Y)
	o.Roll.Push(d.Z)
}

// Reset stops all motion and returns every angle to zero.
func (o *Orientation) Reset() {
	o.Pitch = newRotationAxis(o.fps, maxSpin)
	o.Yaw = newRotationAxis(o.fps, maxSpin)
	o.Roll = newRotationAxis(o.fps, maxSpin)
}

// Degrees returns (pitch, yaw, roll) as an x, y, z rotation vector.
func (o *Orientation) Degrees() math3d.Vec3 {
	return math3d.V3(o.Pitch.Angle, o.Yaw.Angle, o.Roll.Angle)
}

// Bouncer moves a point in a box using a harmonica projectile and reflects
// its velocity off the walls.
type Bouncer struct {
	proj     *harmonica.Projectile
	dt       float64
	min, max harmonica.Point
}

// NewBouncer starts at pos with vel in pixels per second. The box spans
// [min, max] on x and y.
func NewBouncer(fps int, pos harmonica.Point, vel harmonica.Vector, min, max harmonica.Point) *Bouncer {
	dt := harmonica.FPS(fps)
	return &Bouncer{
		proj: harmonica.NewProjectile(dt, pos, vel, harmonica.Vector{}),
		dt:   dt,
		min:  min,
		max:  max,
	}
}

// SetBounds replaces the box, for example after a resize.
func (b *Bouncer) SetBounds(min, max harmonica.Point) {
	b.min, b.max = min, max
}

func (b *Bouncer) Position() harmonica.Point {
	return b.proj.Position()
}

func (b *Bouncer) Velocity() harmonica.Vector {
	return b.proj.Velocity()
}

// Update advances one frame. It reports whether a wall was hit.
func (b *Bouncer) Update() (harmonica.Point, bool) {
	p := b.proj.Update()
	v := b.proj.Velocity()

	bounced := false
	if p.X <= b.min.X && v.X < 0 || p.X >= b.max.X && v.X > 0 {
		v.X = -v.X
		bounced = true
	}
	if p.Y <= b.min.Y && v.Y < 0 || p.Y >= b.max.Y && v.Y > 0 {
		v.Y = -v.Y
		bounced = true
	}
	if !bounced {
		return p, false
	}

	p.X = clamp(p.X, b.min.X, b.max.X)
	p.Y = clamp(p.Y, b.min.Y, b.max.Y)
	b.proj = harmonica.NewProjectile(b.dt, p, v, harmonica.Vector{})
	return p, true
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
