package spectral

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/victorrobotxt/TerraFract/internal/core"
)

// BoxCountDimension estimates the fractal dimension of the surface's
// above-mean set by box counting: the grid is binarized at its mean, covered
// with boxes of shrinking size, and the count of occupied boxes is regressed
// against box size in log-log space.
func BoxCountDimension(g *core.Grid) float64 {
	side := g.W
	if g.H < side {
		side = g.H
	}
	if side < 2 {
		return 0
	}

	mean := g.Mean()
	var logInv, logN []float64
	for box := side / 2; box >= 1; box /= 2 {
		count := 0
		for by := 0; by < g.H; by += box {
			for bx := 0; bx < g.W; bx += box {
				if boxOccupied(g, bx, by, box, mean) {
					count++
				}
			}
		}
		if count > 0 {
			logInv = append(logInv, math.Log(1/float64(box)))
			logN = append(logN, math.Log(float64(count)))
		}
	}
	if len(logN) < 2 {
		return 0
	}
	_, slope := stat.LinearRegression(logInv, logN, nil, false)
	return slope
}

func boxOccupied(g *core.Grid, bx, by, box int, threshold float64) bool {
	for y := by; y < by+box && y < g.H; y++ {
		for x := bx; x < bx+box && x < g.W; x++ {
			if g.At(x, y) > threshold {
				return true
			}
		}
	}
	return false
}
