package erosion

import (
	"fmt"

	"github.com/victorrobotxt/TerraFract/internal/core"
)

// talus transfer fraction: half the largest excess moves per pass. Keeping
// the total outflow at half the steepest gap means a transfer can never
// invert the slope it relaxes, so settling is monotonic.
const thermalTransfer = 0.5

// Thermal applies angle-of-repose erosion: wherever a cell rises above its
// 4-neighbors by more than talusAngle, a fraction of the steepest excess
// moves downhill, split across the exceeding neighbors in proportion to each
// one's excess. Total mass is conserved exactly; no renormalization happens
// here. Boundary cells skip their missing neighbors.
func Thermal(g *core.Grid, iterations int, talusAngle float64) error {
	if iterations < 0 {
		return fmt.Errorf("thermal iterations %d: %w", iterations, core.ErrInvalidParameter)
	}
	if talusAngle <= 0 {
		return fmt.Errorf("talus angle %v: %w", talusAngle, core.ErrInvalidParameter)
	}
	if iterations == 0 {
		return nil
	}

	w, h := g.W, g.H
	total := w * h
	var out [4][]float64
	for d := range out {
		out[d] = make([]float64, total)
	}
	next := make([]float64, total)

	for it := 0; it < iterations; it++ {
		curr := g.Values()

		// Scatter: per-cell outflow toward each lower neighbor. Each worker
		// writes only its own cells' buffers.
		parallelRows(h, func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				for x := 0; x < w; x++ {
					i := y*w + x
					hv := curr[i]
					var excess [4]float64
					maxExcess, totalExcess := 0.0, 0.0
					for d := 0; d < 4; d++ {
						excess[d] = 0
						nx, ny := x+dx[d], y+dy[d]
						if nx < 0 || nx >= w || ny < 0 || ny >= h {
							continue
						}
						if e := hv - curr[ny*w+nx] - talusAngle; e > 0 {
							excess[d] = e
							totalExcess += e
							if e > maxExcess {
								maxExcess = e
							}
						}
					}
					if totalExcess == 0 {
						out[0][i], out[1][i], out[2][i], out[3][i] = 0, 0, 0, 0
						continue
					}
					move := thermalTransfer * maxExcess / totalExcess
					for d := 0; d < 4; d++ {
						out[d][i] = move * excess[d]
					}
				}
			}
		})

		// Gather: subtract own outflow, add the neighbors' flow toward us.
		parallelRows(h, func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				for x := 0; x < w; x++ {
					i := y*w + x
					v := curr[i]
					for d := 0; d < 4; d++ {
						v -= out[d][i]
						nx, ny := x+dx[d], y+dy[d]
						if nx >= 0 && nx < w && ny >= 0 && ny < h {
							v += out[opposite[d]][ny*w+nx]
						}
					}
					next[i] = v
				}
			}
		})

		copy(curr, next)
	}

	if err := g.CheckFinite(); err != nil {
		return fmt.Errorf("thermal erosion: %w", err)
	}
	return nil
}
