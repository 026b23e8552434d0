package world

// Superflat world layer: every sector at this grid height is solid
// ground, everything else is air.
const groundLayerY = -1

// GenerateSuperflat synthesizes the block data for one sector of the
// placeholder flat world. Sectors at Y == -1 are soil capped with a
// layer of grass; all other sectors are empty.
//
// The result depends only on idx, so workers can generate sectors in
// any order and still produce identical worlds.
func GenerateSuperflat(idx SectorIndex) *SectorData {
	data := NewSectorData()

	if idx.Y != groundLayerY {
		return data
	}

	data.Each(func(c SectorCoords, _ Block) {
		if c.Y == SectorMax {
			data.SetBlock(c, BlockGrass)
		} else {
			data.SetBlock(c, BlockSoil)
		}
	})

	return data
}

// GenerateHalfStone fills the bottom half of every ground-layer sector
// with stone. Unlike GenerateSuperflat, whose sectors are solid cubes
// whose only surface lies in the skipped padding layer, the half-stone
// world exposes a renderable plane at mid-height, which makes it the
// fixture of choice for exercising the mesh pipeline end to end.
func GenerateHalfStone(idx SectorIndex) *SectorData {
	data := NewSectorData()

	if idx.Y != groundLayerY {
		return data
	}

	for x := 0; x < SectorDim; x++ {
		for y := 0; y < SectorDim/2; y++ {
			for z := 0; z < SectorDim; z++ {
				data.SetBlock(SectorCoords{X: uint8(x), Y: uint8(y), Z: uint8(z)}, BlockStone)
			}
		}
	}

	return data
}
