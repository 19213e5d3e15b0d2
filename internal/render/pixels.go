package render

import (
	"image/color"

	"github.com/victorrobotxt/TerraFract/internal/core"
)

// terrainStops is the elevation colormap: deep water through shore, lowland,
// highland and peak. Stops are interpolated linearly by normalized height.
var terrainStops = []struct {
	z   float64
	col color.RGBA
}{
	{0.00, color.RGBA{R: 40, G: 84, B: 140, A: 255}},
	{0.20, color.RGBA{R: 70, G: 130, B: 180, A: 255}},
	{0.25, color.RGBA{R: 194, G: 178, B: 128, A: 255}},
	{0.50, color.RGBA{R: 60, G: 140, B: 60, A: 255}},
	{0.75, color.RGBA{R: 130, G: 110, B: 90, A: 255}},
	{0.90, color.RGBA{R: 160, G: 160, B: 160, A: 255}},
	{1.00, color.RGBA{R: 255, G: 250, B: 250, A: 255}},
}

// FillHeightRGBA converts a normalized elevation grid into RGBA pixels using
// the terrain colormap. buf must hold 4 bytes per cell.
func FillHeightRGBA(buf []byte, g *core.Grid) {
	for i, z := range g.Values() {
		col := terrainColor(z)
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

func terrainColor(z float64) color.RGBA {
	if z <= terrainStops[0].z {
		return terrainStops[0].col
	}
	for i := 1; i < len(terrainStops); i++ {
		hi := terrainStops[i]
		if z > hi.z {
			continue
		}
		lo := terrainStops[i-1]
		t := (z - lo.z) / (hi.z - lo.z)
		return lerpRGBA(lo.col, hi.col, t)
	}
	return terrainStops[len(terrainStops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(a.R) + t*(float64(b.R)-float64(a.R))),
		G: uint8(float64(a.G) + t*(float64(b.G)-float64(a.G))),
		B: uint8(float64(a.B) + t*(float64(b.B)-float64(a.B))),
		A: 255,
	}
}

// FillPaletteRGBA converts small categorical cell values into RGBA pixels
// using a palette. When the palette is empty the buffer is cleared to
// transparent black.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
