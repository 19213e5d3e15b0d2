package heightmap

import (
	"errors"
	"slices"
	"testing"

	"github.com/victorrobotxt/TerraFract/internal/core"
)

func TestGenerateDeterministic(t *testing.T) {
	for _, algo := range []Algo{AlgoDiamondSquare, AlgoFBM, AlgoHybrid} {
		p := DefaultParams()
		p.Algo = algo
		p.Size = 33
		p.Seed = 99

		a, err := Generate(p)
		if err != nil {
			t.Fatalf("%s: %v", algo, err)
		}
		b, err := Generate(p)
		if err != nil {
			t.Fatalf("%s: %v", algo, err)
		}
		if !slices.Equal(a.Values(), b.Values()) {
			t.Fatalf("%s: identical params produced different grids", algo)
		}

		p.Seed = 100
		c, err := Generate(p)
		if err != nil {
			t.Fatalf("%s: %v", algo, err)
		}
		if slices.Equal(a.Values(), c.Values()) {
			t.Fatalf("%s: different seeds produced identical grids", algo)
		}
	}
}

func TestDiamondSquareSizeInvariant(t *testing.T) {
	for k := 1; k <= 7; k++ {
		size := 1<<k + 1
		p := DefaultParams()
		p.Size = size
		if _, err := Generate(p); err != nil {
			t.Fatalf("size %d (2^%d+1) rejected: %v", size, k, err)
		}

		p.Size = 1 << k
		if _, err := Generate(p); !errors.Is(err, core.ErrInvalidSize) {
			t.Fatalf("even size %d returned %v, want ErrInvalidSize", 1<<k, err)
		}
	}
}

func TestGenerateOutputRange(t *testing.T) {
	for _, algo := range []Algo{AlgoDiamondSquare, AlgoFBM, AlgoHybrid} {
		p := DefaultParams()
		p.Algo = algo
		p.Size = 65
		g, err := Generate(p)
		if err != nil {
			t.Fatalf("%s: %v", algo, err)
		}
		if g.W != 65 || g.H != 65 {
			t.Fatalf("%s: got %dx%d grid, want 65x65", algo, g.W, g.H)
		}
		min, max := g.MinMax()
		if min < 0 || max > 1 {
			t.Fatalf("%s: output range [%v,%v] escapes [0,1]", algo, min, max)
		}
		if err := g.CheckFinite(); err != nil {
			t.Fatalf("%s: %v", algo, err)
		}
	}
}

func TestValidateRejectsBadParams(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Params)
		want   error
	}{
		{"unknown algo", func(p *Params) { p.Algo = "simplex" }, core.ErrInvalidParameter},
		{"zero roughness", func(p *Params) { p.Roughness = 0 }, core.ErrInvalidParameter},
		{"huge roughness", func(p *Params) { p.Roughness = 2 }, core.ErrInvalidParameter},
		{"zero octaves", func(p *Params) { p.Algo = AlgoFBM; p.Octaves = 0 }, core.ErrInvalidParameter},
		{"persistence one", func(p *Params) { p.Algo = AlgoFBM; p.Persistence = 1 }, core.ErrInvalidParameter},
		{"lacunarity one", func(p *Params) { p.Algo = AlgoFBM; p.Lacunarity = 1 }, core.ErrInvalidParameter},
		{"negative scale", func(p *Params) { p.Algo = AlgoFBM; p.Scale = -1 }, core.ErrInvalidParameter},
		{"blend above one", func(p *Params) { p.Algo = AlgoHybrid; p.Blend = 1.5 }, core.ErrInvalidParameter},
		{"fbm tiny size", func(p *Params) { p.Algo = AlgoFBM; p.Size = 1 }, core.ErrInvalidSize},
	}
	for _, tc := range cases {
		p := DefaultParams()
		p.Size = 33
		tc.mutate(&p)
		if _, err := Generate(p); !errors.Is(err, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestHybridBlendExtremes(t *testing.T) {
	p := DefaultParams()
	p.Size = 33

	ds, err := Generate(p)
	if err != nil {
		t.Fatal(err)
	}

	p.Algo = AlgoHybrid
	p.Blend = 1
	blended, err := Generate(p)
	if err != nil {
		t.Fatal(err)
	}
	// Full diamond-square weight reproduces the diamond-square surface.
	if !slices.Equal(ds.Values(), blended.Values()) {
		t.Fatal("blend=1 hybrid differs from pure diamond-square output")
	}
}
