package player

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < eps
}

func TestSlide(t *testing.T) {
	p := New()
	p.Slide(mgl32.Vec3{1, 2, 3})
	p.Slide(mgl32.Vec3{-1, 0, 1})

	pos := p.CamPosition()
	if !near(pos.X(), 0) || !near(pos.Y(), 2) || !near(pos.Z(), 4) {
		t.Fatalf("position after slides: %v", pos)
	}
}

func TestMoveRelativeToYaw(t *testing.T) {
	// With no yaw, MoveX strafes along +X and MoveZ along +Z.
	p := New()
	p.MoveX(2)
	p.MoveZ(-3)
	pos := p.CamPosition()
	if !near(pos.X(), 2) || !near(pos.Z(), -3) {
		t.Fatalf("unrotated move: %v", pos)
	}

	// Quarter turn: the player's X axis now lies along world -Z.
	p = New()
	p.Spin(mgl32.Vec2{0, math.Pi / 2})
	p.MoveX(1)
	pos = p.CamPosition()
	if !near(pos.X(), 0) || !near(pos.Z(), -1) {
		t.Fatalf("rotated strafe: %v", pos)
	}

	p = New()
	p.Spin(mgl32.Vec2{0, math.Pi / 2})
	p.MoveZ(-1)
	pos = p.CamPosition()
	if !near(pos.X(), -1) || !near(pos.Z(), 0) {
		t.Fatalf("rotated advance: %v", pos)
	}
}

func TestSpinClampsPitch(t *testing.T) {
	p := New()
	p.Spin(mgl32.Vec2{10, 0})
	if got := p.CamRotation().X(); !near(got, math.Pi/2) {
		t.Fatalf("pitch after looking far up: %v", got)
	}

	p.Spin(mgl32.Vec2{-20, 0})
	if got := p.CamRotation().X(); !near(got, -math.Pi/2) {
		t.Fatalf("pitch after looking far down: %v", got)
	}
}

func TestSpinWrapsYaw(t *testing.T) {
	p := New()
	p.Spin(mgl32.Vec2{0, 2*math.Pi + 0.25})
	if got := p.CamRotation().Y(); !near(got, 0.25) {
		t.Fatalf("yaw after over-rotation: %v", got)
	}

	p = New()
	p.Spin(mgl32.Vec2{0, -0.25})
	if got := p.CamRotation().Y(); !near(got, 2*math.Pi-0.25) {
		t.Fatalf("yaw after negative rotation: %v", got)
	}
}
