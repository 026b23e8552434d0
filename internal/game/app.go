// Package game wires input, scene streaming and rendering into the
// per-frame loop.
package game

import (
	"log"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"sandbox/internal/config"
	"sandbox/internal/graphics"
	"sandbox/internal/graphics/renderer"
	"sandbox/internal/input"
	"sandbox/internal/player"
	"sandbox/internal/profiling"
	"sandbox/internal/scene"
)

// App owns the main loop. Everything it touches lives on the main
// thread; background workers only ever reach it through the scene
// manager's channel drain.
type App struct {
	window *glfw.Window
	inputs *input.Manager

	camera *graphics.Camera
	player *player.Player
	scene  *scene.Manager
	render *renderer.Renderer

	fpsLimiter  *FPSLimiter
	lastTime    time.Time
	logProfiles bool
}

// NewApp assembles the loop around its collaborators.
func NewApp(window *glfw.Window, inputs *input.Manager, camera *graphics.Camera,
	p *player.Player, sc *scene.Manager, render *renderer.Renderer) *App {
	return &App{
		window:     window,
		inputs:     inputs,
		camera:     camera,
		player:     p,
		scene:      sc,
		render:     render,
		fpsLimiter: NewFPSLimiter(),
		lastTime:   time.Now(),
	}
}

// Run ticks until the window closes.
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()

	now := time.Now()
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now

	glfw.PollEvents()

	if a.inputs.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}
	if a.inputs.JustPressed(input.ActionToggleProfiling) {
		a.logProfiles = !a.logProfiles
	}

	a.applyMovement(dt)

	// Ingest whatever the generation workers completed since the last
	// frame. Never blocks.
	a.scene.FinalizeSectors()

	view := a.camera.GetViewMatrix(a.player)
	proj := a.camera.GetProjectionMatrix()
	a.render.Render(renderer.RenderContext{
		Camera: a.camera,
		Scene:  a.scene,
		Player: a.player,
		DT:     dt,
		View:   view,
		Proj:   proj,
	})

	a.window.SwapBuffers()

	processing := time.Since(startTick)
	if a.logProfiles || processing > 33*time.Millisecond {
		log.Printf("frame %v, %d sectors live, top: %s",
			processing.Round(100*time.Microsecond), a.scene.Len(), profiling.TopN(4))
	}

	a.inputs.PostUpdate()
	a.fpsLimiter.Wait()
}

// applyMovement turns held actions and accumulated mouse travel into
// player deltas.
func (a *App) applyMovement(dt float64) {
	speed := config.GetMoveSpeed() * float32(dt)

	if a.inputs.IsPressed(input.ActionMoveForward) {
		a.player.MoveZ(-speed)
	} else if a.inputs.IsPressed(input.ActionMoveBackward) {
		a.player.MoveZ(speed)
	}

	if a.inputs.IsPressed(input.ActionMoveRight) {
		a.player.MoveX(speed)
	} else if a.inputs.IsPressed(input.ActionMoveLeft) {
		a.player.MoveX(-speed)
	}

	if a.inputs.IsPressed(input.ActionAscend) {
		a.player.Slide(mgl32.Vec3{0, speed, 0})
	} else if a.inputs.IsPressed(input.ActionDescend) {
		a.player.Slide(mgl32.Vec3{0, -speed, 0})
	}

	dx, dy := a.inputs.ConsumeMouseDelta()
	if dx != 0 || dy != 0 {
		sens := config.GetMouseSensitivity()
		a.player.Spin(mgl32.Vec2{
			mgl32.DegToRad(float32(dy * sens)),
			mgl32.DegToRad(float32(-dx * sens)),
		})
	}
}
