package graphics

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/png"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"

	"sandbox/internal/meshing"
)

// LoadTexture loads a 2D texture from a PNG file and uploads it with
// nearest-neighbor sampling, which keeps block tiles crisp.
func (c *Context) LoadTexture(path string) (uint32, int, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("open texture file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("decode %s: %w", path, err)
	}

	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, image.Point{}, draw.Src)

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(rgba.Rect.Size().X),
		int32(rgba.Rect.Size().Y),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix),
	)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return texture, rgba.Rect.Size().X, rgba.Rect.Size().Y, nil
}

// LoadTerrainAtlas loads the terrain texture and derives the atlas
// metadata the mesh generator needs. Dimensions that do not divide
// into whole tiles are a broken asset and surface as an error.
func (c *Context) LoadTerrainAtlas(path string) (uint32, meshing.Atlas, error) {
	texture, w, h, err := c.LoadTexture(path)
	if err != nil {
		return 0, meshing.Atlas{}, err
	}

	atlas := meshing.Atlas{
		WidthPx:    w,
		HeightPx:   h,
		TileSizePx: meshing.DefaultTileSizePx,
	}
	if err := atlas.Validate(); err != nil {
		gl.DeleteTextures(1, &texture)
		return 0, meshing.Atlas{}, fmt.Errorf("%s: %w", path, err)
	}

	return texture, atlas, nil
}
