package heightmap

import (
	"github.com/aquilax/go-perlin"

	"github.com/victorrobotxt/TerraFract/internal/core"
)

// Perlin source shape. Alpha is the smoothness falloff of the reference
// implementation, beta the frequency spacing of its internal octaves, n the
// number of octaves it pre-mixes. Our own octave loop layers on top of this
// base noise, so n stays at 1.
const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinN     = 1
)

// fbm sums Octaves layers of seeded Perlin noise. Layer i samples at
// frequency lacunarity^i / scale and weighs persistence^i.
func fbm(p Params) *core.Grid {
	noise := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, p.Seed)
	g := core.NewGrid(p.Size, p.Size)
	values := g.Values()

	for y := 0; y < p.Size; y++ {
		fy := float64(y) / p.Scale
		for x := 0; x < p.Size; x++ {
			fx := float64(x) / p.Scale
			amp, freq := 1.0, 1.0
			val := 0.0
			for o := 0; o < p.Octaves; o++ {
				val += amp * noise.Noise2D(fx*freq, fy*freq)
				amp *= p.Persistence
				freq *= p.Lacunarity
			}
			values[y*p.Size+x] = val
		}
	}

	return g
}
