package graphics

import (
	"github.com/go-gl/mathgl/mgl32"

	"sandbox/internal/player"
)

// Camera derives the view and projection matrices for a frame.
type Camera struct {
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
}

// NewCamera returns a camera for the given viewport size.
func NewCamera(width, height int, fov float32) *Camera {
	return &Camera{
		AspectRatio: float32(width) / float32(height),
		FOV:         fov,
		NearPlane:   0.1,
		FarPlane:    1000.0,
	}
}

// SetViewport updates the aspect ratio after a resize.
func (c *Camera) SetViewport(width, height int) {
	if height > 0 {
		c.AspectRatio = float32(width) / float32(height)
	}
}

// GetProjectionMatrix returns the perspective projection.
func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// GetViewMatrix builds the view matrix for a camera target by applying
// the inverse of the target's rotation and translation to the world.
func (c *Camera) GetViewMatrix(target player.CameraTarget) mgl32.Mat4 {
	pos := target.CamPosition()
	rot := target.CamRotation()

	pitch := mgl32.HomogRotate3DX(-rot.X())
	yaw := mgl32.HomogRotate3DY(-rot.Y())
	translate := mgl32.Translate3D(-pos.X(), -pos.Y(), -pos.Z())

	return pitch.Mul4(yaw).Mul4(translate)
}
