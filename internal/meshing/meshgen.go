package meshing

import (
	"sandbox/internal/world"
)

// Vertex is one corner of a rendered block face: position in sector
// space plus the atlas texture coordinate.
type Vertex struct {
	Pos [3]float32
	UV  [2]float32
}

// PreGeometry is a CPU-side mesh: interleaved vertices and the triangle
// indices into them. It is built once per sector on a worker and
// consumed exactly once when uploaded to the graphics context.
type PreGeometry struct {
	Vertices []Vertex
	Indices  []uint32
}

// FaceCount returns the number of quads in the mesh.
func (g *PreGeometry) FaceCount() int {
	return len(g.Vertices) / 4
}

// The unit cube's eight corners. Face tables index into this array.
var cubeCorners = [8][3]float32{
	{0, 0, 0},
	{0, 1, 0},
	{1, 1, 0},
	{1, 0, 0},
	{1, 0, 1},
	{1, 1, 1},
	{0, 1, 1},
	{0, 0, 1},
}

// faceInfo statically describes one cube face: which corners form it
// (wound counter-clockwise seen from outside), which spatial axes map
// to texture U and V, and whether either texture axis runs opposite to
// the raw axis value.
type faceInfo struct {
	side    world.Side
	corners [4]int
	uAxis   int
	vAxis   int
	flipU   bool
	flipV   bool
}

var cubeFaces = [world.SideCount]faceInfo{
	{side: world.SideFront, corners: [4]int{7, 4, 5, 6}, uAxis: 0, vAxis: 1},
	{side: world.SideBack, corners: [4]int{3, 0, 1, 2}, uAxis: 0, vAxis: 1, flipU: true},
	{side: world.SideRight, corners: [4]int{4, 3, 2, 5}, uAxis: 2, vAxis: 1, flipU: true},
	{side: world.SideLeft, corners: [4]int{0, 7, 6, 1}, uAxis: 2, vAxis: 1},
	{side: world.SideTop, corners: [4]int{6, 5, 2, 1}, uAxis: 0, vAxis: 2},
	{side: world.SideBottom, corners: [4]int{0, 3, 4, 7}, uAxis: 0, vAxis: 2, flipV: true},
}

// BuildSectorMesh produces the visible-surface mesh for one sector, or
// nil when nothing in the sector is renderable. A nil result is a valid
// outcome, not an error: an all-air sector simply has no geometry.
//
// Voxels on the outer shell of the sector are skipped entirely; they
// act as a padding layer owned by the logically adjacent sector, which
// sidesteps cross-sector neighbor lookups during meshing. A face whose
// neighbor lies outside the sector is always emitted, since its
// occlusion cannot be decided locally.
func BuildSectorMesh(data *world.SectorData, atlas Atlas) *PreGeometry {
	var (
		verts   []Vertex
		indices []uint32
		next    uint32
	)

	for i := 0; i < world.SectorVolume; i++ {
		c := world.CoordsAt(i)
		b := data.Block(c)
		if b == world.BlockAir || c.OnShell() {
			continue
		}

		for f := range cubeFaces {
			face := &cubeFaces[f]

			if nb, ok := c.Neighbor(face.side); ok && !data.Block(nb).IsTransparent() {
				continue // hidden by a solid neighbor
			}

			emitFace(&verts, b, c, face, atlas)
			indices = append(indices,
				next, next+1, next+2,
				next, next+2, next+3,
			)
			next += 4
		}
	}

	if len(verts) == 0 {
		return nil
	}
	return &PreGeometry{Vertices: verts, Indices: indices}
}

// emitFace appends the four vertices of one block face.
func emitFace(verts *[]Vertex, b world.Block, c world.SectorCoords, face *faceInfo, atlas Atlas) {
	tile := b.TextureID(face.side)
	perRow := atlas.TilesPerRow()
	col := tile % perRow
	row := tile / perRow

	// Inward bias keeps samples off the tile border so neighboring
	// tiles never bleed in.
	bias := 1.0 / (16.0 * float32(atlas.TileSizePx))

	for _, ci := range face.corners {
		corner := cubeCorners[ci]

		u := corner[face.uAxis]
		if face.flipU {
			u = 1 - u
		}
		v := corner[face.vAxis]
		if face.flipV {
			v = 1 - v
		}
		// Texture origin is top left, model space Y grows upward.
		v = 1 - v

		if u < 0.5 {
			u += bias
		} else {
			u -= bias
		}
		if v < 0.5 {
			v += bias
		} else {
			v -= bias
		}

		*verts = append(*verts, Vertex{
			Pos: [3]float32{
				corner[0] + float32(c.X),
				corner[1] + float32(c.Y),
				corner[2] + float32(c.Z),
			},
			UV: [2]float32{
				(u + float32(col)) * float32(atlas.TileSizePx) / float32(atlas.WidthPx),
				(v + float32(row)) * float32(atlas.TileSizePx) / float32(atlas.HeightPx),
			},
		})
	}
}
