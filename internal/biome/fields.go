package biome

import (
	"math"

	"github.com/victorrobotxt/TerraFract/internal/core"
)

const defaultWetnessSigma = 3

// Slope returns the normalized central-difference gradient magnitude of the
// grid. Boundary cells use one-sided differences.
func Slope(g *core.Grid) *core.Grid {
	out := core.NewGrid(g.W, g.H)
	values := out.Values()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			dzdx := oneAxisGradient(g, x, y, 1, 0)
			dzdy := oneAxisGradient(g, x, y, 0, 1)
			values[y*g.W+x] = math.Hypot(dzdx, dzdy)
		}
	}
	out.Normalize()
	return out
}

func oneAxisGradient(g *core.Grid, x, y, ax, ay int) float64 {
	x0, y0 := x-ax, y-ay
	x1, y1 := x+ax, y+ay
	span := 2.0
	if x0 < 0 || y0 < 0 {
		x0, y0 = x, y
		span = 1
	}
	if x1 >= g.W || y1 >= g.H {
		x1, y1 = x, y
		span = 1
	}
	return (g.At(x1, y1) - g.At(x0, y0)) / span
}

// Wetness approximates moisture by smoothing the inverted elevation: low
// ground stays wet after blurring. sigma controls the blur radius. Output is
// normalized to [0,1].
func Wetness(g *core.Grid, sigma int) *core.Grid {
	out := core.NewGrid(g.W, g.H)
	values := out.Values()
	for i, v := range g.Values() {
		values[i] = 1 - v
	}
	if sigma > 0 {
		// Three box-blur passes approximate a Gaussian of that radius.
		for pass := 0; pass < 3; pass++ {
			boxBlur(out, sigma)
		}
	}
	out.Normalize()
	return out
}

// boxBlur runs a separable mean filter of the given radius in place,
// clamping at the boundary.
func boxBlur(g *core.Grid, radius int) {
	w, h := g.W, g.H
	src := g.Values()
	tmp := make([]float64, len(src))

	// Horizontal.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum, count := 0.0, 0
			for k := -radius; k <= radius; k++ {
				xx := x + k
				if xx < 0 || xx >= w {
					continue
				}
				sum += src[y*w+xx]
				count++
			}
			tmp[y*w+x] = sum / float64(count)
		}
	}

	// Vertical.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum, count := 0.0, 0
			for k := -radius; k <= radius; k++ {
				yy := y + k
				if yy < 0 || yy >= h {
					continue
				}
				sum += tmp[yy*w+x]
				count++
			}
			src[y*w+x] = sum / float64(count)
		}
	}
}
