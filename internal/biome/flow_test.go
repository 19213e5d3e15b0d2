package biome

import (
	"slices"
	"testing"

	"github.com/victorrobotxt/TerraFract/internal/core"
)

func TestFlowAccumulationRampDrainsDownhill(t *testing.T) {
	g := ramp(8, 1)
	acc := FlowAccumulation(g)
	// Every cell drains one step left, so the lowest cell collects the whole
	// row and the highest keeps only its own unit.
	if got := acc.At(0, 0); got != 8 {
		t.Fatalf("outlet accumulation %v, want 8", got)
	}
	if got := acc.At(7, 0); got != 1 {
		t.Fatalf("summit accumulation %v, want 1", got)
	}
}

func TestFlowAccumulationValleyConcentrates(t *testing.T) {
	// A V-shaped valley sloping toward the top row: the channel column must
	// out-gather its hillsides.
	g := core.NewGrid(9, 9)
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			side := x - 4
			if side < 0 {
				side = -side
			}
			g.Set(x, y, float64(side)*0.1+float64(y)*0.01)
		}
	}
	acc := FlowAccumulation(g)
	if acc.At(4, 0) <= acc.At(0, 0) || acc.At(4, 0) <= acc.At(8, 0) {
		t.Fatalf("channel outlet %v not above hillside outlets %v, %v",
			acc.At(4, 0), acc.At(0, 0), acc.At(8, 0))
	}
}

func TestFlowAccumulationPitKeepsFlow(t *testing.T) {
	g := core.NewGrid(5, 5)
	g.Fill(0.5)
	g.Set(2, 2, 0.1)
	acc := FlowAccumulation(g)
	// The pit has no lower neighbor and retains everything its neighbors send.
	if got := acc.At(2, 2); got != 9 {
		t.Fatalf("pit accumulation %v, want 9 (itself plus 8 neighbors)", got)
	}
}

func TestFlowAccumulationDeterministic(t *testing.T) {
	g := noisy(16, 16, 6)
	a := FlowAccumulation(g)
	b := FlowAccumulation(g)
	if !slices.Equal(a.Values(), b.Values()) {
		t.Fatal("same grid accumulated differently on repeat")
	}
}

func TestFlowWetnessFavorsChannels(t *testing.T) {
	w := FlowWetness(ramp(16, 16))
	min, max := w.MinMax()
	if min < 0 || max > 1 {
		t.Fatalf("flow wetness range [%v,%v] escapes [0,1]", min, max)
	}
	// The left column drains the whole map and must read wetter than the
	// ridge on the right.
	if w.At(0, 8) <= w.At(15, 8) {
		t.Fatalf("outlet wetness %v not above ridge wetness %v", w.At(0, 8), w.At(15, 8))
	}
}

func TestFlowWetnessAsWetnessFunc(t *testing.T) {
	opts := DefaultOptions()
	opts.WetnessFunc = FlowWetness

	_, classes, err := Synthesize(noisy(32, 32, 7), opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(classes.Classes) != 32*32 {
		t.Fatalf("class grid has %d cells", len(classes.Classes))
	}
}
