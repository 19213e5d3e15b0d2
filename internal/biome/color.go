package biome

import "github.com/victorrobotxt/TerraFract/internal/core"

// Height shading keeps valleys darker than peaks: shade = 0.7 + 0.3*z.
const (
	shadeBase = 0.7
	shadeSpan = 0.3
)

// ColorGrid holds the rendered RGBA pixels, 4 bytes per cell in row-major
// order, ready for image export or blitting.
type ColorGrid struct {
	W, H int
	Pix  []uint8
}

// renderClasses maps each class through the palette and applies height-based
// shading from the normalized elevation grid.
func renderClasses(classes *ClassGrid, elev *core.Grid) *ColorGrid {
	out := &ColorGrid{W: classes.W, H: classes.H, Pix: make([]uint8, 4*classes.W*classes.H)}
	zv := elev.Values()
	for i, c := range classes.Classes {
		col := Palette[c]
		shade := shadeBase + shadeSpan*zv[i]
		base := i * 4
		out.Pix[base+0] = shadeByte(col.R, shade)
		out.Pix[base+1] = shadeByte(col.G, shade)
		out.Pix[base+2] = shadeByte(col.B, shade)
		out.Pix[base+3] = 255
	}
	return out
}

func shadeByte(v uint8, shade float64) uint8 {
	s := float64(v) * shade
	if s > 255 {
		s = 255
	}
	return uint8(s)
}
