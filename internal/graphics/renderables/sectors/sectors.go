// Package sectors renders every live sector of the scene: one draw
// call per sector, all sharing the terrain atlas and shader.
package sectors

import (
	_ "embed"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"sandbox/internal/graphics"
	"sandbox/internal/graphics/renderer"
	"sandbox/internal/profiling"
	"sandbox/internal/scene"
	"sandbox/internal/world"
)

//go:embed shaders/main.vert
var vertexShaderSrc string

//go:embed shaders/main.frag
var fragmentShaderSrc string

// Sectors draws the world's sector meshes.
type Sectors struct {
	shader  *graphics.Shader
	texture uint32
}

// NewSectors creates the renderable around an already-loaded terrain
// atlas texture.
func NewSectors(texture uint32) *Sectors {
	return &Sectors{texture: texture}
}

// Init compiles the terrain shader.
func (s *Sectors) Init(gfx *graphics.Context) error {
	shader, err := gfx.NewShader(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return err
	}
	s.shader = shader
	return nil
}

// Render draws every sector that has geometry. Sectors without
// geometry are live but invisible; they cost nothing here.
func (s *Sectors) Render(rc renderer.RenderContext) {
	defer profiling.Track("sectors.Render")()

	s.shader.Use()
	s.shader.SetMatrix4("view", &rc.View[0])
	s.shader.SetMatrix4("projection", &rc.Proj[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, s.texture)
	s.shader.SetInt("terrainTexture", 0)

	rc.Scene.Each(func(idx world.SectorIndex, sec *scene.Sector) {
		if sec.Geometry == nil {
			return
		}
		model := translationMatrix(idx)
		s.shader.SetMatrix4("model", &model[0])
		sec.Geometry.Draw()
	})

	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func translationMatrix(idx world.SectorIndex) mgl32.Mat4 {
	origin := idx.Origin()
	return mgl32.Translate3D(origin.X(), origin.Y(), origin.Z())
}

// SetViewport is a no-op; the camera owns aspect handling.
func (s *Sectors) SetViewport(width, height int) {}

// Dispose releases the shader. Sector geometry belongs to the scene
// manager, not to the renderable.
func (s *Sectors) Dispose() {
	if s.shader != nil {
		s.shader.Release()
		s.shader = nil
	}
}
