package erosion

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/victorrobotxt/TerraFract/internal/core"
)

func TestHydraulicRejectsBadParams(t *testing.T) {
	g := rough(8, 8, 10)
	before := append([]float64(nil), g.Values()...)

	if err := Hydraulic(g, -1, 0.01, 0.1); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("negative iterations returned %v, want ErrInvalidParameter", err)
	}
	if err := Hydraulic(g, 5, -0.01, 0.1); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("negative rain returned %v, want ErrInvalidParameter", err)
	}
	if err := Hydraulic(g, 5, 0.01, -0.1); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("negative solubility returned %v, want ErrInvalidParameter", err)
	}
	if !slices.Equal(before, g.Values()) {
		t.Fatal("rejected call mutated the grid")
	}
}

func TestHydraulicZeroIterationsIsNoOp(t *testing.T) {
	g := rough(16, 16, 11)
	before := append([]float64(nil), g.Values()...)
	if err := Hydraulic(g, 0, 0.01, 0.1); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(before, g.Values()) {
		t.Fatal("zero iterations changed the grid")
	}
}

func TestHydraulicConservesRockPlusSediment(t *testing.T) {
	// Water is not height; rock leaves only as suspended sediment, and all of
	// it settles back when the run ends, so the grid total must hold.
	g := rough(33, 33, 12)
	before := g.Sum()
	if err := Hydraulic(g, 30, 0.01, 0.1); err != nil {
		t.Fatal(err)
	}
	after := g.Sum()
	if rel := math.Abs(after-before) / math.Abs(before); rel > 1e-6 {
		t.Fatalf("mass drifted from %v to %v (rel %v)", before, after, rel)
	}
}

func TestHydraulicErodesRelief(t *testing.T) {
	g := rough(33, 33, 13)
	before := append([]float64(nil), g.Values()...)
	if err := Hydraulic(g, 50, 0.01, 0.1); err != nil {
		t.Fatal(err)
	}
	if slices.Equal(before, g.Values()) {
		t.Fatal("50 iterations left the grid untouched")
	}
	if err := g.CheckFinite(); err != nil {
		t.Fatal(err)
	}
}

func TestHydraulicBoundarySafety(t *testing.T) {
	for _, size := range []int{2, 3, 5} {
		g := rough(size, size, 14)
		if err := Hydraulic(g, 25, 0.02, 0.2); err != nil {
			t.Fatalf("size %d: %v", size, err)
		}
		if err := g.CheckFinite(); err != nil {
			t.Fatalf("size %d: %v", size, err)
		}
	}
}

func TestHydraulicDeterministic(t *testing.T) {
	a := rough(32, 32, 15)
	b := a.Clone()
	if err := Hydraulic(a, 20, 0.01, 0.1); err != nil {
		t.Fatal(err)
	}
	if err := Hydraulic(b, 20, 0.01, 0.1); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a.Values(), b.Values()) {
		t.Fatal("identical runs produced different grids")
	}
}
