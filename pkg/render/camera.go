package render

import (
	"github.com/taigrr/blockshade/pkg/math3d"
)

// Camera is the viewer state shared by every draw call on a Screen.
// Callers move it between frames; the pipeline only reads it.
type Camera struct {
	// Position in world space
	Position math3d.Vec3

	// Orientation (Euler angles in degrees)
	Pitch float64 // Rotation around X axis
	Yaw   float64 // Rotation around Y axis
	Roll  float64 // Rotation around Z axis
}

// SetPosition sets the camera position.
func (c *Camera) SetPosition(pos math3d.Vec3) {
	c.Position = pos
}

// SetRotation sets the camera rotation (pitch, yaw, roll in degrees).
func (c *Camera) SetRotation(pitch, yaw, roll float64) {
	c.Pitch = pitch
	c.Yaw = yaw
	c.Roll = roll
}

// Move translates the camera by delta.
func (c *Camera) Move(delta math3d.Vec3) {
	c.Position = c.Position.Add(delta)
}

// Turn adds the given angles (degrees) to the current orientation.
func (c *Camera) Turn(pitch, yaw, roll float64) {
	c.Pitch += pitch
	c.Yaw += yaw
	c.Roll += roll
}

// Rotation returns the orientation as a (pitch, yaw, roll) vector in degrees.
func (c Camera) Rotation() math3d.Vec3 {
	return math3d.V3(c.Pitch, c.Yaw, c.Roll)
}

// Offset returns pos relative to the camera. Only the camera's Z coordinate
// is divided by 100 before subtracting; existing scenes are tuned to that.
func (c Camera) Offset(pos math3d.Vec3) math3d.Vec3 {
	return math3d.V3(
		pos.X-c.Position.X,
		pos.Y-c.Position.Y,
		pos.Z-c.Position.Z/100,
	)
}
