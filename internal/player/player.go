// Package player models the free-flying first-person viewpoint.
package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// CameraTarget is anything the camera can follow: it only needs a
// position and a pitch/yaw rotation. The camera applies the inverse of
// these transforms to the world, which reads as movement through it.
type CameraTarget interface {
	CamPosition() mgl32.Vec3
	CamRotation() mgl32.Vec2 // x: pitch, y: yaw, radians
}

// Player is a position plus a view rotation. It applies movement and
// rotation deltas handed to it each frame; it never reads input
// devices itself.
type Player struct {
	position mgl32.Vec3
	rotation mgl32.Vec2 // pitch, yaw
}

// New returns a player at the origin, looking down -Z.
func New() *Player {
	return &Player{}
}

// WithPosition returns a player at pos with the default rotation.
func WithPosition(pos mgl32.Vec3) *Player {
	return &Player{position: pos}
}

// Slide moves the player by a world-space delta.
func (p *Player) Slide(delta mgl32.Vec3) {
	p.position = p.position.Add(delta)
}

// MoveX strafes the player along its own X axis: positive delta moves
// right relative to the current yaw. Vertical look does not affect it.
func (p *Player) MoveX(delta float32) {
	rot := -p.rotation.Y()
	p.position[0] += delta * float32(math.Cos(float64(rot)))
	p.position[2] += delta * float32(math.Sin(float64(rot)))
}

// MoveZ moves the player along its own Z axis: negative delta is
// forward (model space looks down -Z).
func (p *Player) MoveZ(delta float32) {
	rot := math.Pi/2 - p.rotation.Y()
	p.position[0] += delta * float32(math.Cos(float64(rot)))
	p.position[2] += delta * float32(math.Sin(float64(rot)))
}

// Spin rotates the view by a pitch/yaw delta. Pitch is clamped to
// straight up and straight down; yaw wraps into [0, 2π).
func (p *Player) Spin(delta mgl32.Vec2) {
	p.rotation = p.rotation.Add(delta)

	const halfPi = math.Pi / 2
	if p.rotation[0] < -halfPi {
		p.rotation[0] = -halfPi
	} else if p.rotation[0] > halfPi {
		p.rotation[0] = halfPi
	}

	if p.rotation[1] < 0 {
		p.rotation[1] += 2 * math.Pi
	} else if p.rotation[1] >= 2*math.Pi {
		p.rotation[1] -= 2 * math.Pi
	}
}

// CamPosition implements CameraTarget.
func (p *Player) CamPosition() mgl32.Vec3 {
	return p.position
}

// CamRotation implements CameraTarget.
func (p *Player) CamRotation() mgl32.Vec2 {
	return p.rotation
}
