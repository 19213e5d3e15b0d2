// Package carve imprints Voronoi ridgelines onto an existing elevation grid.
package carve

import (
	"fmt"
	"math"

	"github.com/victorrobotxt/TerraFract/internal/core"
)

// VoronoiCliffs scatters numSites seeded sites across the grid and raises
// every cell near a Voronoi cell boundary, in place. The boundary seam is
// where the nearest and second-nearest site distances nearly agree; the lift
// is ridgeHeight * exp(-(d2-d1)^2 / (2*sigma^2)) with sigma = N/numSites, so
// seams become sharp ridges and cell interiors stay untouched. The grid is
// renormalized to [0,1] afterward.
func VoronoiCliffs(g *core.Grid, numSites int, ridgeHeight float64, seed int64) error {
	if numSites <= 0 {
		return fmt.Errorf("voronoi sites %d: %w", numSites, core.ErrInvalidParameter)
	}
	if ridgeHeight < 0 {
		return fmt.Errorf("ridge height %v: %w", ridgeHeight, core.ErrInvalidParameter)
	}

	rng := core.NewRNG(seed)
	sx := make([]float64, numSites)
	sy := make([]float64, numSites)
	for i := 0; i < numSites; i++ {
		sx[i] = rng.Float64() * float64(g.W)
		sy[i] = rng.Float64() * float64(g.H)
	}

	side := g.W
	if g.H > side {
		side = g.H
	}
	sigma := float64(side) / float64(numSites)
	denom := 2 * sigma * sigma

	values := g.Values()
	for y := 0; y < g.H; y++ {
		fy := float64(y)
		for x := 0; x < g.W; x++ {
			fx := float64(x)
			d1 := math.Inf(1)
			d2 := math.Inf(1)
			for s := 0; s < numSites; s++ {
				d := math.Hypot(fx-sx[s], fy-sy[s])
				switch {
				case d < d1:
					d2 = d1
					d1 = d
				case d < d2:
					d2 = d
				}
			}
			seam := d2 - d1
			if math.IsInf(seam, 0) { // single site: no boundary anywhere
				continue
			}
			values[y*g.W+x] += ridgeHeight * math.Exp(-seam*seam/denom)
		}
	}

	g.Normalize()
	return g.CheckFinite()
}
