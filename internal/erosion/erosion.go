// Package erosion implements iterative thermal and hydraulic weathering of an
// elevation grid. Both simulators mutate the grid in place over exactly the
// requested number of iterations; within one iteration every transfer is
// computed from the previous iteration's state (per-direction outflow buffers
// plus a gather pass), never from partially-updated neighbors.
package erosion

import (
	"runtime"
	"sync"
)

// 4-connected neighborhood. opposite[d] names the direction a neighbor uses
// to flow back into this cell, which is what the gather pass reads.
var (
	dx       = [4]int{1, -1, 0, 0}
	dy       = [4]int{0, 0, 1, -1}
	opposite = [4]int{1, 0, 3, 2}
)

// parallelRows splits [0,h) into contiguous bands and runs fn on each band
// concurrently. Same worker layout as the parameter-sweep tools.
func parallelRows(h int, fn func(y0, y1 int)) {
	workers := runtime.NumCPU()
	if workers > h {
		workers = h
	}
	if workers <= 1 {
		fn(0, h)
		return
	}
	band := (h + workers - 1) / workers
	var wg sync.WaitGroup
	for y0 := 0; y0 < h; y0 += band {
		y1 := y0 + band
		if y1 > h {
			y1 = h
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			fn(y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}
