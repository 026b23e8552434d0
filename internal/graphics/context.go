package graphics

import (
	"fmt"
	"log"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Context is the capability token for talking to the GPU. Everything
// that touches OpenGL state takes a *Context; code without one cannot
// issue graphics calls. It must only be used from the thread that owns
// the GL context (the main thread, locked at startup).
type Context struct {
	window *glfw.Window
}

// NewContext makes the window's GL context current and initializes the
// bindings.
func NewContext(window *glfw.Window) (*Context, error) {
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initialize OpenGL bindings: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	log.Printf("OpenGL %s", version)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)

	return &Context{window: window}, nil
}

// Window returns the underlying window.
func (c *Context) Window() *glfw.Window {
	return c.window
}
