package world

// Block identifies one kind of voxel.
//
// The zero value is BlockAir, so freshly allocated sector storage is
// empty without any further initialization.
type Block uint8

const (
	BlockAir Block = iota
	BlockStone
	BlockSoil
	BlockGrass
)

// Side represents one of the six faces of a cube.
type Side int

const (
	SideFront Side = iota // +Z
	SideBack              // -Z
	SideRight             // +X
	SideLeft              // -X
	SideTop               // +Y
	SideBottom            // -Y

	SideCount = 6
)

// Terrain atlas tile indices, zero-based, row-major from the top left.
const (
	tileStone = iota
	tileSoil
	tileGrassSide
	tileGrassTop
)

// IsTransparent reports whether the block does not occlude the faces of
// its neighbors. Face culling keys off this, not off rendering itself.
func (b Block) IsTransparent() bool {
	return b == BlockAir
}

// TextureID returns the terrain-atlas tile index for the given face of
// the block. Air is never meshed, so asking for its texture is a bug in
// the caller.
func (b Block) TextureID(side Side) int {
	switch b {
	case BlockStone:
		return tileStone
	case BlockSoil:
		return tileSoil
	case BlockGrass:
		switch side {
		case SideTop:
			return tileGrassTop
		case SideBottom:
			return tileSoil
		default:
			return tileGrassSide
		}
	}
	panic("world: no texture for block " + b.String())
}

func (b Block) String() string {
	switch b {
	case BlockAir:
		return "air"
	case BlockStone:
		return "stone"
	case BlockSoil:
		return "soil"
	case BlockGrass:
		return "grass"
	}
	return "unknown"
}

// Offset returns the unit step along the side's outward normal.
func (s Side) Offset() (dx, dy, dz int) {
	switch s {
	case SideFront:
		return 0, 0, 1
	case SideBack:
		return 0, 0, -1
	case SideRight:
		return 1, 0, 0
	case SideLeft:
		return -1, 0, 0
	case SideTop:
		return 0, 1, 0
	case SideBottom:
		return 0, -1, 0
	}
	panic("world: invalid side")
}
