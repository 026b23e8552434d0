package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"sandbox/internal/graphics"
	"sandbox/internal/profiling"
)

// Renderer owns the frame clear and fans the render context out to its
// renderables in registration order.
type Renderer struct {
	gfx         *graphics.Context
	renderables []Renderable
}

// NewRenderer initializes every renderable against the context.
func NewRenderer(gfx *graphics.Context, renderables ...Renderable) (*Renderer, error) {
	for _, r := range renderables {
		if err := r.Init(gfx); err != nil {
			return nil, fmt.Errorf("init renderable %T: %w", r, err)
		}
	}
	return &Renderer{gfx: gfx, renderables: renderables}, nil
}

// Render clears the frame and draws every renderable.
func (r *Renderer) Render(rc RenderContext) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(0.53, 0.70, 0.92, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	for _, renderable := range r.renderables {
		renderable.Render(rc)
	}
}

// SetViewport forwards a resize to the GL viewport and every
// renderable.
func (r *Renderer) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}

// Dispose releases every renderable.
func (r *Renderer) Dispose() {
	for _, renderable := range r.renderables {
		renderable.Dispose()
	}
}
