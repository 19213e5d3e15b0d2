package render

import (
	"image"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/victorrobotxt/TerraFract/internal/biome"
	"github.com/victorrobotxt/TerraFract/internal/core"
)

// HeightImage renders a normalized elevation grid through the terrain
// colormap.
func HeightImage(g *core.Grid) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.W, g.H))
	FillHeightRGBA(img.Pix, g)
	return img
}

// BiomeImage wraps a rendered biome color grid as an image without copying.
func BiomeImage(c *biome.ColorGrid) *image.RGBA {
	return &image.RGBA{Pix: c.Pix, Stride: 4 * c.W, Rect: image.Rect(0, 0, c.W, c.H)}
}

// ClassImage renders the raw class map through the biome palette, without
// elevation shading. Useful for inspecting classification boundaries.
func ClassImage(c *biome.ClassGrid) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.W, c.H))
	cells := make([]uint8, len(c.Classes))
	for i, cl := range c.Classes {
		cells[i] = uint8(cl)
	}
	FillPaletteRGBA(img.Pix, cells, biome.Palette[:])
	return img
}

// Upscale returns the image enlarged by an integer factor with
// nearest-neighbor sampling, keeping cell boundaries crisp.
func Upscale(img *image.RGBA, factor int) *image.RGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// SavePNG writes the image to path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
