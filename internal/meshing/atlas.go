package meshing

import "fmt"

// DefaultTileSizePx is the per-tile edge length the terrain atlas is
// expected to use.
const DefaultTileSizePx = 16

// Atlas carries the texture-atlas metadata needed to derive tile UVs.
// It is plain data and safe to copy into generation workers.
type Atlas struct {
	WidthPx    int
	HeightPx   int
	TileSizePx int
}

// TilesPerRow returns how many tiles fit across the atlas.
func (a Atlas) TilesPerRow() int {
	return a.WidthPx / a.TileSizePx
}

// TilesPerCol returns how many tile rows the atlas holds.
func (a Atlas) TilesPerCol() int {
	return a.HeightPx / a.TileSizePx
}

// Validate checks that the atlas dimensions divide evenly into tiles.
// A failure here is a misconfigured asset, callers treat it as fatal.
func (a Atlas) Validate() error {
	if a.TileSizePx <= 0 {
		return fmt.Errorf("atlas tile size %dpx is not positive", a.TileSizePx)
	}
	if a.WidthPx <= 0 || a.HeightPx <= 0 {
		return fmt.Errorf("atlas dimensions %dx%d are not positive", a.WidthPx, a.HeightPx)
	}
	if a.WidthPx%a.TileSizePx != 0 || a.HeightPx%a.TileSizePx != 0 {
		return fmt.Errorf("atlas dimensions %dx%d are not divisible by tile size %d",
			a.WidthPx, a.HeightPx, a.TileSizePx)
	}
	return nil
}
