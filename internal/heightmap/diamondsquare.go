package heightmap

import "github.com/victorrobotxt/TerraFract/internal/core"

// diamondSquare runs midpoint displacement on an n x n grid, n = 2^k+1.
// The four corners are seeded randomly; each pass fills square centers
// (diamond step) and edge midpoints (square step) with the neighbor average
// plus a random offset. The offset amplitude starts at roughness and halves
// every subdivision level.
func diamondSquare(n int, roughness float64, rng *core.RNG) *core.Grid {
	g := core.NewGrid(n, n)

	g.Set(0, 0, rng.Float64())
	g.Set(n-1, 0, rng.Float64())
	g.Set(0, n-1, rng.Float64())
	g.Set(n-1, n-1, rng.Float64())

	scale := roughness
	for step := n - 1; step > 1; step /= 2 {
		half := step / 2

		// Diamond step: centers of all step-sized squares.
		for y := 0; y < n-1; y += step {
			for x := 0; x < n-1; x += step {
				avg := (g.At(x, y) + g.At(x+step, y) + g.At(x, y+step) + g.At(x+step, y+step)) * 0.25
				g.Set(x+half, y+half, avg+rng.Offset()*scale)
			}
		}

		// Square step: edge midpoints, averaging only in-bounds neighbors.
		for y := 0; y < n; y += half {
			for x := (y + half) % step; x < n; x += step {
				sum := 0.0
				count := 0
				if x-half >= 0 {
					sum += g.At(x-half, y)
					count++
				}
				if x+half < n {
					sum += g.At(x+half, y)
					count++
				}
				if y-half >= 0 {
					sum += g.At(x, y-half)
					count++
				}
				if y+half < n {
					sum += g.At(x, y+half)
					count++
				}
				g.Set(x, y, sum/float64(count)+rng.Offset()*scale)
			}
		}

		scale *= 0.5
	}

	return g
}
