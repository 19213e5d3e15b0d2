// Package reverse fits FBM generation parameters to an observed elevation
// grid by spectral regression and re-synthesizes a matching surface.
//
// The search is empirical rather than closed-form: candidate
// (persistence, lacunarity) pairs are scored by synthesizing a small probe
// grid and comparing its spectral slope against the target's, swept across a
// worker pool, then the best candidate's persistence is refined by shrinking
// steps under a hard budget.
package reverse

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/victorrobotxt/TerraFract/internal/core"
	"github.com/victorrobotxt/TerraFract/internal/heightmap"
	"github.com/victorrobotxt/TerraFract/internal/spectral"
)

// Options bounds the fit.
type Options struct {
	Octaves   int     // octave count assumed for synthesis; 0 → 6
	Scale     float64 // base frequency for synthesis; 0 → max(W,H)/2
	Seed      int64   // seed for probe and final synthesis
	ProbeSize int     // candidate probe grid edge; 0 → 65
	Tolerance float64 // acceptable |slope error|; 0 → 0.5
	MaxRefine int     // persistence refinement budget; 0 → 16
}

// Result is the fitted parameter set plus the re-synthesized surface.
type Result struct {
	H           float64
	Persistence float64
	Lacunarity  float64
	Octaves     int
	Scale       float64
	Beta        float64 // observed spectral slope of the input
	SlopeErr    float64 // residual |probe slope - Beta| of the winner
	Synth       *core.Grid
}

func (o Options) withDefaults(g *core.Grid) Options {
	if o.Octaves == 0 {
		o.Octaves = 6
	}
	if o.Scale == 0 {
		side := g.W
		if g.H > side {
			side = g.H
		}
		o.Scale = float64(side) / 2
	}
	if o.ProbeSize == 0 {
		o.ProbeSize = 65
	}
	if o.Tolerance == 0 {
		o.Tolerance = 0.5
	}
	if o.MaxRefine == 0 {
		o.MaxRefine = 16
	}
	return o
}

var (
	persistenceGrid = []float64{0.3, 0.4, 0.5, 0.6, 0.7, 0.8}
	lacunarityGrid  = []float64{1.8, 2.0, 2.2, 2.5, 3.0}
)

type candidate struct {
	persistence float64
	lacunarity  float64
}

type score struct {
	candidate
	err float64
}

// Fit estimates (H, persistence, lacunarity) from the grid's radial power
// spectrum and returns the parameters along with a surface synthesized from
// them, rescaled so its mean elevation matches the normalized input's.
// ErrFitConvergence reports a residual above tolerance after the bounded
// search; the fit never loops unboundedly.
func Fit(real *core.Grid, opts Options) (Result, error) {
	opts = opts.withDefaults(real)

	work := real.Clone()
	work.Normalize()
	exp, err := spectral.EstimateExponent(work)
	if err != nil {
		return Result{}, fmt.Errorf("reverse fit: %w", err)
	}
	target := exp.Beta

	// Surface convention: P(f) ~ f^-(2H+2), so H = (-beta-2)/2 clamped to [0,1].
	hurst := (-target - 2) / 2
	if hurst < 0 {
		hurst = 0
	} else if hurst > 1 {
		hurst = 1
	}

	best := sweep(target, opts)

	// Shrinking-step refinement of persistence around the sweep winner.
	step := 0.05
	for i := 0; i < opts.MaxRefine && best.err > opts.Tolerance/2; i++ {
		improved := best
		for _, p := range []float64{best.persistence - step, best.persistence + step} {
			if p <= 0 || p >= 1 {
				continue
			}
			e, perr := probeError(candidate{persistence: p, lacunarity: best.lacunarity}, target, opts)
			if perr == nil && e < improved.err {
				improved = score{candidate: candidate{persistence: p, lacunarity: best.lacunarity}, err: e}
			}
		}
		if improved == best {
			step /= 2
			if step < 1e-3 {
				break
			}
			continue
		}
		best = improved
	}

	if best.err > opts.Tolerance {
		return Result{}, fmt.Errorf("slope residual %.3f above tolerance %.3f after sweep: %w",
			best.err, opts.Tolerance, core.ErrFitConvergence)
	}

	synth, err := heightmap.Generate(heightmap.Params{
		Algo:        heightmap.AlgoFBM,
		Size:        real.W,
		Seed:        opts.Seed,
		Octaves:     opts.Octaves,
		Persistence: best.persistence,
		Lacunarity:  best.lacunarity,
		Scale:       opts.Scale,
	})
	if err != nil {
		return Result{}, fmt.Errorf("reverse synthesis: %w", err)
	}
	// Match the input's overall elevation level, not just its spectrum.
	synth.EqualizeMean(work.Mean())

	return Result{
		H:           hurst,
		Persistence: best.persistence,
		Lacunarity:  best.lacunarity,
		Octaves:     opts.Octaves,
		Scale:       opts.Scale,
		Beta:        target,
		SlopeErr:    best.err,
		Synth:       synth,
	}, nil
}

// sweep scores the full candidate grid across a worker pool and returns the
// lowest-residual pair.
func sweep(target float64, opts Options) score {
	var sets []candidate
	for _, p := range persistenceGrid {
		for _, l := range lacunarityGrid {
			sets = append(sets, candidate{persistence: p, lacunarity: l})
		}
	}

	jobs := make(chan candidate)
	results := make(chan score)
	var wg sync.WaitGroup

	workers := runtime.NumCPU()
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				e, err := probeError(c, target, opts)
				if err != nil {
					e = math.Inf(1)
				}
				results <- score{candidate: c, err: e}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, c := range sets {
			jobs <- c
		}
		close(jobs)
	}()

	best := score{err: math.Inf(1)}
	for res := range results {
		if res.err < best.err {
			best = res
		}
	}
	return best
}

// probeError synthesizes a small FBM grid with the candidate parameters and
// measures how far its spectral slope lands from the target.
func probeError(c candidate, target float64, opts Options) (float64, error) {
	probe, err := heightmap.Generate(heightmap.Params{
		Algo:        heightmap.AlgoFBM,
		Size:        opts.ProbeSize,
		Seed:        opts.Seed,
		Octaves:     opts.Octaves,
		Persistence: c.persistence,
		Lacunarity:  c.lacunarity,
		Scale:       float64(opts.ProbeSize) / 2,
	})
	if err != nil {
		return 0, err
	}
	exp, err := spectral.EstimateExponent(probe)
	if err != nil {
		return 0, err
	}
	return math.Abs(exp.Beta - target), nil
}
