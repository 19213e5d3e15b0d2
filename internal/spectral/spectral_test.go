package spectral

import (
	"errors"
	"math"
	"testing"

	"github.com/victorrobotxt/TerraFract/internal/core"
	"github.com/victorrobotxt/TerraFract/internal/heightmap"
)

func whiteNoise(n int, seed int64) *core.Grid {
	g := core.NewGrid(n, n)
	rng := core.NewRNG(seed)
	for i := range g.Values() {
		g.Values()[i] = rng.Float64()
	}
	return g
}

func TestRadialPowerSpectrumShape(t *testing.T) {
	g := whiteNoise(64, 1)
	bins, err := RadialPowerSpectrum(g)
	if err != nil {
		t.Fatal(err)
	}
	if len(bins) == 0 {
		t.Fatal("no spectrum bins")
	}
	prev := 0.0
	for _, b := range bins {
		if b.Freq <= prev {
			t.Fatalf("bins not strictly increasing: %v after %v", b.Freq, prev)
		}
		prev = b.Freq
		if b.Power < 0 || math.IsNaN(b.Power) {
			t.Fatalf("invalid power %v at freq %v", b.Power, b.Freq)
		}
	}
	// The DC term is excluded by contract.
	if bins[0].Freq < 1 {
		t.Fatalf("first bin at freq %v includes DC", bins[0].Freq)
	}
}

func TestRadialPowerSpectrumRejectsTinyGrid(t *testing.T) {
	g := core.NewGrid(1, 1)
	if _, err := RadialPowerSpectrum(g); !errors.Is(err, core.ErrInvalidSize) {
		t.Fatalf("1x1 grid returned %v, want ErrInvalidSize", err)
	}
}

func TestWhiteNoiseSlopeNearFlat(t *testing.T) {
	g := whiteNoise(128, 2)
	exp, err := EstimateExponent(g)
	if err != nil {
		t.Fatal(err)
	}
	// White noise has no frequency preference: the log-log slope hovers
	// around zero.
	if math.Abs(exp.Beta) > 0.5 {
		t.Fatalf("white-noise slope %v, want ~0", exp.Beta)
	}
}

func TestFBMSlopeFallsWithFrequency(t *testing.T) {
	g, err := heightmap.Generate(heightmap.Params{
		Algo: heightmap.AlgoFBM, Size: 128, Seed: 3,
		Octaves: 6, Persistence: 0.5, Lacunarity: 2.0, Scale: 64,
	})
	if err != nil {
		t.Fatal(err)
	}
	exp, err := EstimateExponent(g)
	if err != nil {
		t.Fatal(err)
	}
	if exp.Beta >= -0.5 {
		t.Fatalf("fractal surface slope %v, want clearly negative", exp.Beta)
	}
}

func TestSpectralSlopeOrdersByPersistence(t *testing.T) {
	// Higher persistence keeps more high-frequency energy, flattening the
	// spectrum, so its slope must sit above the low-persistence one.
	slope := func(persistence float64) float64 {
		g, err := heightmap.Generate(heightmap.Params{
			Algo: heightmap.AlgoFBM, Size: 128, Seed: 4,
			Octaves: 6, Persistence: persistence, Lacunarity: 2.0, Scale: 64,
		})
		if err != nil {
			t.Fatal(err)
		}
		exp, err := EstimateExponent(g)
		if err != nil {
			t.Fatal(err)
		}
		return exp.Beta
	}

	rough := slope(0.8)
	smooth := slope(0.3)
	if rough <= smooth {
		t.Fatalf("slope(persistence=0.8)=%v not above slope(persistence=0.3)=%v", rough, smooth)
	}
}

func TestBoxCountDimensionPlausible(t *testing.T) {
	g := whiteNoise(64, 5)
	d := BoxCountDimension(g)
	// The above-mean set of a noisy surface nearly fills the plane.
	if d < 1 || d > 2.5 {
		t.Fatalf("box-counting dimension %v outside plausible [1,2.5]", d)
	}
}
