// Package heightmap synthesizes square elevation grids via midpoint
// displacement, fractal Brownian motion, or a weighted blend of the two.
// Every variant is bit-for-bit deterministic per seed and returns a grid
// normalized to [0,1].
package heightmap

import (
	"fmt"

	"github.com/victorrobotxt/TerraFract/internal/core"
)

// Generate dispatches on the configured algorithm and returns a fresh
// normalized grid. Validation happens before any allocation.
func Generate(p Params) (*core.Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	var g *core.Grid
	switch p.Algo {
	case AlgoDiamondSquare:
		g = diamondSquare(p.Size, p.Roughness, core.NewRNG(p.Seed))
	case AlgoFBM:
		g = fbm(p)
	case AlgoHybrid:
		g = hybrid(p)
	}
	g.Normalize()
	if err := g.CheckFinite(); err != nil {
		return nil, fmt.Errorf("%s generation: %w", p.Algo, err)
	}
	return g, nil
}

// hybrid blends normalized diamond-square and FBM surfaces generated from the
// same seed. Blend weighs the diamond-square component.
func hybrid(p Params) *core.Grid {
	ds := diamondSquare(p.Size, p.Roughness, core.NewRNG(p.Seed))
	ds.Normalize()
	fb := fbm(p)
	fb.Normalize()

	w := p.Blend
	out := ds.Values()
	for i, v := range fb.Values() {
		out[i] = w*out[i] + (1-w)*v
	}
	return ds
}
