package meshing

import (
	"testing"

	"sandbox/internal/world"
)

var testAtlas = Atlas{WidthPx: 256, HeightPx: 256, TileSizePx: 16}

func TestAirSectorHasNoMesh(t *testing.T) {
	data := world.NewSectorData()
	if geo := BuildSectorMesh(data, testAtlas); geo != nil {
		t.Fatalf("air-only sector: got %d faces, want no geometry", geo.FaceCount())
	}
}

func TestSolidSectorHasNoMesh(t *testing.T) {
	// A fully solid sector's only surface lies in the padding layer,
	// which the adjacent sector owns; nothing is meshed locally.
	data := world.GenerateSuperflat(world.SectorIndex{Y: -1})
	if geo := BuildSectorMesh(data, testAtlas); geo != nil {
		t.Fatalf("solid sector: got %d faces, want no geometry", geo.FaceCount())
	}
}

func TestSingleInteriorVoxel(t *testing.T) {
	data := world.NewSectorData()
	data.SetBlock(world.SectorCoords{X: 8, Y: 8, Z: 8}, world.BlockStone)

	geo := BuildSectorMesh(data, testAtlas)
	if geo == nil {
		t.Fatal("single interior voxel: got no geometry")
	}
	if len(geo.Vertices) != 24 {
		t.Fatalf("single interior voxel: got %d vertices, want 24", len(geo.Vertices))
	}
	if len(geo.Indices) != 36 {
		t.Fatalf("single interior voxel: got %d indices, want 36", len(geo.Indices))
	}
}

func TestAdjacentVoxelsCullSharedFace(t *testing.T) {
	data := world.NewSectorData()
	data.SetBlock(world.SectorCoords{X: 7, Y: 8, Z: 8}, world.BlockStone)
	data.SetBlock(world.SectorCoords{X: 8, Y: 8, Z: 8}, world.BlockStone)

	geo := BuildSectorMesh(data, testAtlas)
	if geo == nil {
		t.Fatal("adjacent voxels: got no geometry")
	}
	// Two cubes minus the shared face on each side: 2*6 - 2 = 10 quads.
	if geo.FaceCount() != 10 {
		t.Fatalf("adjacent voxels: got %d faces, want 10", geo.FaceCount())
	}

	// The culled faces are the ones at the shared x=8 plane; no emitted
	// quad may lie entirely in that plane.
	for i := 0; i < len(geo.Vertices); i += 4 {
		inPlane := true
		for j := 0; j < 4; j++ {
			if geo.Vertices[i+j].Pos[0] != 8 {
				inPlane = false
				break
			}
		}
		if inPlane {
			t.Fatalf("quad %d lies in the shared x=8 plane", i/4)
		}
	}
}

func TestShellVoxelsNotMeshed(t *testing.T) {
	shell := []world.SectorCoords{
		{X: 0, Y: 8, Z: 8},
		{X: world.SectorMax, Y: 8, Z: 8},
		{X: 8, Y: 0, Z: 8},
		{X: 8, Y: world.SectorMax, Z: 8},
		{X: 8, Y: 8, Z: 0},
		{X: 8, Y: 8, Z: world.SectorMax},
		{X: 0, Y: 0, Z: 0},
	}

	for _, c := range shell {
		data := world.NewSectorData()
		data.SetBlock(c, world.BlockStone)
		if geo := BuildSectorMesh(data, testAtlas); geo != nil {
			t.Fatalf("shell voxel %v: got %d faces, want no geometry", c, geo.FaceCount())
		}
	}
}

func TestHalfStoneSector(t *testing.T) {
	data := world.GenerateHalfStone(world.SectorIndex{Y: -1})
	geo := BuildSectorMesh(data, testAtlas)
	if geo == nil {
		t.Fatal("half-stone sector: got no geometry")
	}

	// Only the interior 14x14 top surface at the y=7/8 boundary is
	// exposed: the slab's vertical sides sit on the outer shell and the
	// interior side faces all border stone.
	const wantFaces = 14 * 14
	if geo.FaceCount() != wantFaces {
		t.Fatalf("half-stone sector: got %d faces, want %d", geo.FaceCount(), wantFaces)
	}
	if len(geo.Vertices) != wantFaces*4 || len(geo.Indices) != wantFaces*6 {
		t.Fatalf("half-stone sector: got %d vertices / %d indices, want %d / %d",
			len(geo.Vertices), len(geo.Indices), wantFaces*4, wantFaces*6)
	}

	// Every emitted quad must be a top face in the y=8 plane.
	for i, v := range geo.Vertices {
		if v.Pos[1] != 8 {
			t.Fatalf("vertex %d at y=%v, want 8", i, v.Pos[1])
		}
	}
}

func TestTileUVRect(t *testing.T) {
	// One grass voxel; its top face uses a tile past the first, which
	// catches row/column mix-ups that tile zero would hide.
	data := world.NewSectorData()
	c := world.SectorCoords{X: 8, Y: 8, Z: 8}
	data.SetBlock(c, world.BlockGrass)

	geo := BuildSectorMesh(data, testAtlas)
	if geo == nil {
		t.Fatal("grass voxel: got no geometry")
	}

	tile := world.BlockGrass.TextureID(world.SideTop)
	perRow := testAtlas.TilesPerRow()
	tileU := float32(testAtlas.TileSizePx) / float32(testAtlas.WidthPx)
	tileV := float32(testAtlas.TileSizePx) / float32(testAtlas.HeightPx)
	minU := float32(tile%perRow) * tileU
	minV := float32(tile/perRow) * tileV

	// Half-texel bias pulls every sample inside the tile rectangle.
	biasU := 1.0 / (16.0 * float32(testAtlas.TileSizePx)) * tileU
	biasV := 1.0 / (16.0 * float32(testAtlas.TileSizePx)) * tileV

	// Locate the top face: all four vertices at y=9.
	var face []Vertex
	for i := 0; i < len(geo.Vertices); i += 4 {
		quad := geo.Vertices[i : i+4]
		top := true
		for _, v := range quad {
			if v.Pos[1] != 9 {
				top = false
				break
			}
		}
		if top {
			face = quad
			break
		}
	}
	if face == nil {
		t.Fatal("grass voxel: no top face found")
	}

	approx := func(got, want, tol float32) bool {
		d := got - want
		if d < 0 {
			d = -d
		}
		return d <= tol*1.001
	}

	seen := map[[2]bool]bool{}
	for _, v := range face {
		u, vv := v.UV[0], v.UV[1]
		uLow := approx(u, minU, biasU)
		uHigh := approx(u, minU+tileU, biasU)
		vLow := approx(vv, minV, biasV)
		vHigh := approx(vv, minV+tileV, biasV)
		if (!uLow && !uHigh) || (!vLow && !vHigh) {
			t.Fatalf("UV %v outside tile rect [%v,%v]x[%v,%v]", v.UV, minU, minU+tileU, minV, minV+tileV)
		}
		seen[[2]bool{uHigh, vHigh}] = true
	}
	if len(seen) != 4 {
		t.Fatalf("top face covers %d distinct tile corners, want 4", len(seen))
	}
}

func BenchmarkBuildSectorMesh_HalfStone(b *testing.B) {
	data := world.GenerateHalfStone(world.SectorIndex{Y: -1})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = BuildSectorMesh(data, testAtlas)
	}
}
