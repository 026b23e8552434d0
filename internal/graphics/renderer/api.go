package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"sandbox/internal/graphics"
	"sandbox/internal/player"
	"sandbox/internal/scene"
)

// RenderContext is the shared per-frame state handed to every
// renderable.
type RenderContext struct {
	Camera *graphics.Camera
	Scene  *scene.Manager
	Player *player.Player
	DT     float64
	View   mgl32.Mat4
	Proj   mgl32.Mat4
}

// Renderable is the lifecycle of one render feature.
type Renderable interface {
	Init(gfx *graphics.Context) error
	Render(rc RenderContext)
	Dispose()
	SetViewport(width, height int)
}
