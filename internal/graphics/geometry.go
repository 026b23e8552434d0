package graphics

import (
	"errors"

	"github.com/go-gl/gl/v4.1-core/gl"

	"sandbox/internal/meshing"
	"sandbox/internal/scene"
)

// vertexFloats is the number of float32 per vertex: position plus UV.
const vertexFloats = 5

// SectorGeometry is an uploaded sector mesh: one VAO with an
// interleaved vertex buffer and an index buffer.
type SectorGeometry struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// Upload converts pre-geometry into a render-ready vertex array. It
// implements scene.Uploader, making the context itself the capability
// the sector manager finalizes geometry through.
func (c *Context) Upload(geo *meshing.PreGeometry) (scene.Geometry, error) {
	if geo == nil || len(geo.Vertices) == 0 {
		return nil, errors.New("refusing to upload empty pre-geometry")
	}

	// Flatten into the interleaved layout the vertex attributes expect.
	data := make([]float32, 0, len(geo.Vertices)*vertexFloats)
	for _, v := range geo.Vertices {
		data = append(data, v.Pos[0], v.Pos[1], v.Pos[2], v.UV[0], v.UV[1])
	}

	g := &SectorGeometry{indexCount: int32(len(geo.Indices))}

	gl.GenVertexArrays(1, &g.vao)
	gl.GenBuffers(1, &g.vbo)
	gl.GenBuffers(1, &g.ebo)

	gl.BindVertexArray(g.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(geo.Indices)*4, gl.Ptr(geo.Indices), gl.STATIC_DRAW)

	stride := int32(vertexFloats * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	return g, nil
}

// Draw renders the mesh. The caller binds the shader and textures and
// sets uniforms first.
func (g *SectorGeometry) Draw() {
	gl.BindVertexArray(g.vao)
	gl.DrawElements(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

// Release frees the GPU buffers.
func (g *SectorGeometry) Release() {
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
		g.vbo = 0
	}
	if g.ebo != 0 {
		gl.DeleteBuffers(1, &g.ebo)
		g.ebo = 0
	}
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
		g.vao = 0
	}
	g.indexCount = 0
}
