package erosion

import (
	"fmt"

	"github.com/victorrobotxt/TerraFract/internal/core"
)

// Fraction of standing water lost to evaporation after each pass. Evaporation
// shrinks carrying capacity, which is what forces gradual deposition.
const evaporation = 0.3

// Hydraulic applies rainfall-driven erosion. Each iteration rains rainAmount
// onto every cell, routes water toward all lower neighbors of the water
// surface weighted by drop, dissolves solubility*flow of rock into suspended
// sediment carried with the flow, deposits sediment above the carrying
// capacity (solubility * standing water), and evaporates. When the run ends
// all remaining suspended sediment settles back into the grid, so rock plus
// sediment is conserved; water never leaves through the boundary because
// boundary cells have no out-of-grid neighbors.
func Hydraulic(g *core.Grid, iterations int, rainAmount, solubility float64) error {
	if iterations < 0 {
		return fmt.Errorf("hydraulic iterations %d: %w", iterations, core.ErrInvalidParameter)
	}
	if rainAmount < 0 {
		return fmt.Errorf("rain amount %v: %w", rainAmount, core.ErrInvalidParameter)
	}
	if solubility < 0 {
		return fmt.Errorf("solubility %v: %w", solubility, core.ErrInvalidParameter)
	}
	if iterations == 0 {
		return nil
	}

	w, h := g.W, g.H
	total := w * h
	water := make([]float64, total)
	sediment := make([]float64, total)
	waterNext := make([]float64, total)
	var outFrac [4][]float64
	for d := range outFrac {
		outFrac[d] = make([]float64, total)
	}

	z := g.Values()

	for it := 0; it < iterations; it++ {
		for i := range water {
			water[i] += rainAmount
		}

		// Scatter: fraction of this cell's water leaving toward each lower
		// neighbor of the water surface, from the pre-pass state.
		parallelRows(h, func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				for x := 0; x < w; x++ {
					i := y*w + x
					surf := z[i] + water[i]
					totalDrop := 0.0
					var drops [4]float64
					for d := 0; d < 4; d++ {
						nx, ny := x+dx[d], y+dy[d]
						drops[d] = 0
						if nx < 0 || nx >= w || ny < 0 || ny >= h {
							continue
						}
						ni := ny*w + nx
						if drop := surf - (z[ni] + water[ni]); drop > 0 {
							drops[d] = drop
							totalDrop += drop
						}
					}
					for d := 0; d < 4; d++ {
						if totalDrop > 0 {
							outFrac[d][i] = drops[d] / totalDrop
						} else {
							outFrac[d][i] = 0
						}
					}
				}
			}
		})

		// Gather: move the water, dissolve rock in proportion to outflow, and
		// drop the picked-up sediment at the receiving cell.
		parallelRows(h, func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				for x := 0; x < w; x++ {
					i := y*w + x
					outTotal := 0.0
					for d := 0; d < 4; d++ {
						outTotal += outFrac[d][i]
					}
					remaining := water[i] * (1 - outTotal)

					inflow := 0.0
					picked := 0.0
					for d := 0; d < 4; d++ {
						nx, ny := x+dx[d], y+dy[d]
						if nx < 0 || nx >= w || ny < 0 || ny >= h {
							continue
						}
						ni := ny*w + nx
						flow := water[ni] * outFrac[opposite[d]][ni]
						inflow += flow
						picked += solubility * flow
					}
					waterNext[i] = remaining + inflow
					sediment[i] += picked
				}
			}
		})

		// The rock dissolved on behalf of receiving cells leaves the source.
		parallelRows(h, func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				for x := 0; x < w; x++ {
					i := y*w + x
					outTotal := 0.0
					for d := 0; d < 4; d++ {
						outTotal += outFrac[d][i]
					}
					z[i] -= solubility * water[i] * outTotal
				}
			}
		})

		water, waterNext = waterNext, water

		// Deposit anything above capacity, then evaporate.
		parallelRows(h, func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				for x := 0; x < w; x++ {
					i := y*w + x
					capacity := solubility * water[i]
					if excess := sediment[i] - capacity; excess > 0 {
						z[i] += excess
						sediment[i] = capacity
					}
					water[i] *= 1 - evaporation
				}
			}
		})
	}

	// Suspended sediment settles when the simulation stops.
	for i := range sediment {
		z[i] += sediment[i]
	}

	if err := g.CheckFinite(); err != nil {
		return fmt.Errorf("hydraulic erosion: %w", err)
	}
	return nil
}
