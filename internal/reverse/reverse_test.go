package reverse

import (
	"errors"
	"math"
	"testing"

	"github.com/victorrobotxt/TerraFract/internal/core"
	"github.com/victorrobotxt/TerraFract/internal/heightmap"
	"github.com/victorrobotxt/TerraFract/internal/spectral"
)

func fbmGrid(t *testing.T, size int, persistence, lacunarity float64, seed int64) *core.Grid {
	t.Helper()
	g, err := heightmap.Generate(heightmap.Params{
		Algo: heightmap.AlgoFBM, Size: size, Seed: seed,
		Octaves: 6, Persistence: persistence, Lacunarity: lacunarity, Scale: float64(size) / 2,
	})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestFitRecoversFBMSlope(t *testing.T) {
	real := fbmGrid(t, 129, 0.6, 2.0, 11)

	res, err := Fit(real, Options{Seed: 11})
	if err != nil {
		t.Fatal(err)
	}
	if res.Beta >= 0 {
		t.Fatalf("observed slope %v, want negative for a fractal surface", res.Beta)
	}
	if res.H < 0 || res.H > 1 {
		t.Fatalf("H estimate %v outside [0,1]", res.H)
	}
	if res.Persistence <= 0 || res.Persistence >= 1 {
		t.Fatalf("fitted persistence %v outside (0,1)", res.Persistence)
	}
	if res.SlopeErr > 0.5 {
		t.Fatalf("slope residual %v above the default tolerance", res.SlopeErr)
	}
	if res.Synth == nil || res.Synth.W != real.W || res.Synth.H != real.H {
		t.Fatal("synthesized grid missing or wrong shape")
	}

	norm := real.Clone()
	norm.Normalize()
	if diff := math.Abs(res.Synth.Mean() - norm.Mean()); diff > 1e-9 {
		t.Fatalf("synthesized mean %v differs from input mean %v", res.Synth.Mean(), norm.Mean())
	}

	// The synthesized surface must carry a spectrum close to the input's.
	synthExp, err := spectral.EstimateExponent(res.Synth)
	if err != nil {
		t.Fatal(err)
	}
	if diff := synthExp.Beta - res.Beta; diff < -1 || diff > 1 {
		t.Fatalf("synthesized slope %v too far from observed %v", synthExp.Beta, res.Beta)
	}
}

func TestFitDeterministic(t *testing.T) {
	real := fbmGrid(t, 65, 0.5, 2.0, 12)

	a, err := Fit(real, Options{Seed: 12})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Fit(real, Options{Seed: 12})
	if err != nil {
		t.Fatal(err)
	}
	if a.Persistence != b.Persistence || a.Lacunarity != b.Lacunarity || a.Beta != b.Beta {
		t.Fatalf("repeated fits disagree: %+v vs %+v", a, b)
	}
}

func TestFitConvergenceBudget(t *testing.T) {
	real := fbmGrid(t, 65, 0.5, 2.0, 13)

	// An unreachable tolerance must exhaust the budget and report it rather
	// than loop forever.
	_, err := Fit(real, Options{Seed: 13, Tolerance: 1e-12, MaxRefine: 2})
	if !errors.Is(err, core.ErrFitConvergence) {
		t.Fatalf("impossible tolerance returned %v, want ErrFitConvergence", err)
	}
}

func TestFitRejectsTinyGrid(t *testing.T) {
	g := core.NewGrid(4, 4)
	if _, err := Fit(g, Options{}); err == nil {
		t.Fatal("4x4 grid fitted without error; the spectrum band is empty")
	}
}
