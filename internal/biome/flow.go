package biome

import (
	"math"
	"sort"

	"github.com/victorrobotxt/TerraFract/internal/core"
)

// 8-neighborhood offsets for drainage routing.
var (
	flowDX = [8]int{-1, 1, 0, 0, -1, -1, 1, 1}
	flowDY = [8]int{0, 0, -1, 1, -1, 1, -1, 1}
)

// FlowAccumulation returns the D8 drainage area of every cell: each cell
// starts with one unit of flow and passes everything it gathers to its lowest
// strictly-lower neighbor. Cells are processed from highest to lowest so
// upstream contributions are complete before a cell drains. Pits and flats
// keep their accumulated flow.
func FlowAccumulation(g *core.Grid) *core.Grid {
	w, h := g.W, g.H
	zv := g.Values()

	acc := core.NewGrid(w, h)
	acc.Fill(1)
	av := acc.Values()

	order := make([]int, len(zv))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return zv[order[a]] > zv[order[b]] })

	for _, i := range order {
		x, y := i%w, i/w
		low := zv[i]
		recv := -1
		for d := 0; d < 8; d++ {
			nx, ny := x+flowDX[d], y+flowDY[d]
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			j := ny*w + nx
			if zv[j] < low {
				low = zv[j]
				recv = j
			}
		}
		if recv >= 0 {
			av[recv] += av[i]
		}
	}
	return acc
}

// FlowWetness is a WetnessFunc built on drainage: cells gathering more flow
// read wetter. Accumulation counts are heavily skewed toward channels, so
// they are log-compressed before normalization.
func FlowWetness(g *core.Grid) *core.Grid {
	acc := FlowAccumulation(g)
	values := acc.Values()
	for i, a := range values {
		values[i] = math.Log1p(a)
	}
	acc.Normalize()
	return acc
}
