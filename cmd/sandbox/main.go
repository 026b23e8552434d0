package main

import (
	"log"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"sandbox/internal/config"
	"sandbox/internal/game"
	"sandbox/internal/gen"
	"sandbox/internal/graphics"
	"sandbox/internal/graphics/renderables/sectors"
	"sandbox/internal/graphics/renderer"
	"sandbox/internal/input"
	"sandbox/internal/player"
	"sandbox/internal/scene"
	"sandbox/internal/world"
)

const terrainAtlasPath = "assets/textures/terrain.png"

func init() { runtime.LockOSThread() }

func main() {
	if err := glfw.Init(); err != nil {
		log.Fatalf("initialize GLFW: %v", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		log.Fatalf("create window: %v", err)
	}

	gfx, err := graphics.NewContext(window)
	if err != nil {
		log.Fatalf("create graphics context: %v", err)
	}

	texture, atlas, err := gfx.LoadTerrainAtlas(terrainAtlasPath)
	if err != nil {
		log.Fatalf("load terrain atlas: %v", err)
	}

	// Background generation starts immediately; results queue up until
	// the frame loop drains them.
	controller := gen.Launch(atlas, controllerOptions())
	defer controller.Close()

	sceneMgr := scene.NewManager(controller.Results(), gfx)
	defer sceneMgr.Release()

	width, height := window.GetSize()
	camera := graphics.NewCamera(width, height, config.GetFOV())

	rend, err := renderer.NewRenderer(gfx, sectors.NewSectors(texture))
	if err != nil {
		log.Fatalf("create renderer: %v", err)
	}
	defer rend.Dispose()
	rend.SetViewport(width, height)

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		camera.SetViewport(w, h)
		rend.SetViewport(w, h)
	})

	inputs := input.NewManager()
	inputs.InstallCallbacks(window)

	// Spawn above the generated ground layer, facing -Z.
	p := player.WithPosition(mgl32.Vec3{8, 4, 8})

	game.NewApp(window, inputs, camera, p, sceneMgr, rend).Run()
}

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(960, 540, "sandbox", nil, nil)
	if err != nil {
		return nil, err
	}

	glfw.SwapInterval(0)
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	return window, nil
}

func controllerOptions() gen.Options {
	span := config.GetGenSpanXZ()

	var generate gen.GenerateFunc
	switch config.GetWorldProfile() {
	case config.WorldHalfStone:
		generate = world.GenerateHalfStone
	default:
		generate = world.GenerateSuperflat
	}

	policy := gen.PanicFatal
	if !config.GetWorkerPanicFatal() {
		policy = gen.PanicIsolate
	}

	return gen.Options{
		Workers: config.GetGenWorkers(),
		Span: gen.Span{
			MinX: -span, MaxX: span,
			MinY: -1, MaxY: -1,
			MinZ: -span, MaxZ: span,
		},
		Generate:    generate,
		PanicPolicy: policy,
	}
}
