package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// SectorDim is the number of voxels along one edge of a sector.
	SectorDim = 16

	// SectorMax is the largest valid coordinate component.
	SectorMax = SectorDim - 1

	// SectorVolume is the total number of voxels in one cubic sector.
	SectorVolume = SectorDim * SectorDim * SectorDim
)

// SectorCoords addresses one voxel relative to the back lower left of a
// sector. Components must be below SectorDim; constructing coordinates
// out of range is a caller bug and trips the array bounds check on use.
type SectorCoords struct {
	X, Y, Z uint8
}

// Index returns the flat array index of the coordinates.
func (c SectorCoords) Index() int {
	return int(c.X) + int(c.Y)*SectorDim + int(c.Z)*SectorDim*SectorDim
}

// CoordsAt inverts Index, recovering the coordinates of a flat index.
func CoordsAt(idx int) SectorCoords {
	return SectorCoords{
		X: uint8(idx % SectorDim),
		Y: uint8(idx / SectorDim % SectorDim),
		Z: uint8(idx / (SectorDim * SectorDim)),
	}
}

// Neighbor returns the coordinates one step along the given side, and
// false when that step would leave the sector. This is the only spatial
// adjacency primitive; cross-sector neighbors are not resolved here.
func (c SectorCoords) Neighbor(side Side) (SectorCoords, bool) {
	dx, dy, dz := side.Offset()
	x := int(c.X) + dx
	y := int(c.Y) + dy
	z := int(c.Z) + dz
	if x < 0 || x > SectorMax || y < 0 || y > SectorMax || z < 0 || z > SectorMax {
		return SectorCoords{}, false
	}
	return SectorCoords{X: uint8(x), Y: uint8(y), Z: uint8(z)}, true
}

// OnShell reports whether the coordinates lie on the outer padding layer
// of the sector. Shell voxels are never meshed by their own sector.
func (c SectorCoords) OnShell() bool {
	return c.X == 0 || c.X == SectorMax ||
		c.Y == 0 || c.Y == SectorMax ||
		c.Z == 0 || c.Z == SectorMax
}

// SectorData holds the voxel data for one sector as a dense array.
type SectorData struct {
	blocks [SectorVolume]Block
}

// NewSectorData returns sector data filled with air.
func NewSectorData() *SectorData {
	return &SectorData{}
}

// Block returns the block at the given coordinates.
func (d *SectorData) Block(c SectorCoords) Block {
	return d.blocks[c.Index()]
}

// SetBlock replaces the block at the given coordinates.
func (d *SectorData) SetBlock(c SectorCoords, b Block) {
	d.blocks[c.Index()] = b
}

// Each calls fn for every voxel in flat index order. The order carries
// no meaning beyond being deterministic.
func (d *SectorData) Each(fn func(SectorCoords, Block)) {
	for i := range d.blocks {
		fn(CoordsAt(i), d.blocks[i])
	}
}

// SectorIndex locates a sector on the infinite world grid.
type SectorIndex struct {
	X, Y, Z int
}

// Origin returns the world-space position of the sector's back lower
// left corner.
func (s SectorIndex) Origin() mgl32.Vec3 {
	return mgl32.Vec3{
		float32(s.X * SectorDim),
		float32(s.Y * SectorDim),
		float32(s.Z * SectorDim),
	}
}
