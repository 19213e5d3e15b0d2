package heightmap

import (
	"fmt"

	"github.com/victorrobotxt/TerraFract/internal/core"
)

// Algo selects the generation algorithm.
type Algo string

const (
	AlgoDiamondSquare Algo = "diamond-square"
	AlgoFBM           Algo = "fbm"
	AlgoHybrid        Algo = "hybrid"
)

// Params configures a single generation request. Immutable once validated.
type Params struct {
	Algo Algo
	Size int
	Seed int64

	// Diamond-square.
	Roughness float64

	// FBM.
	Octaves     int
	Persistence float64
	Lacunarity  float64
	Scale       float64

	// Hybrid blend weight for the diamond-square component.
	Blend float64
}

// DefaultParams returns the standard generation settings.
func DefaultParams() Params {
	return Params{
		Algo:        AlgoDiamondSquare,
		Size:        257,
		Seed:        0,
		Roughness:   1.0,
		Octaves:     6,
		Persistence: 0.5,
		Lacunarity:  2.0,
		Scale:       50.0,
		Blend:       0.5,
	}
}

// IsPow2Plus1 reports whether n has the form 2^k+1 with k >= 1, the shape
// midpoint subdivision requires.
func IsPow2Plus1(n int) bool {
	return n >= 3 && (n-1)&(n-2) == 0
}

// Validate checks the parameter set for the selected algorithm before any
// work happens.
func (p Params) Validate() error {
	switch p.Algo {
	case AlgoDiamondSquare:
		return p.validateDiamondSquare()
	case AlgoFBM:
		return p.validateFBM()
	case AlgoHybrid:
		if err := p.validateDiamondSquare(); err != nil {
			return err
		}
		if err := p.validateFBM(); err != nil {
			return err
		}
		if p.Blend < 0 || p.Blend > 1 {
			return fmt.Errorf("blend %v outside [0,1]: %w", p.Blend, core.ErrInvalidParameter)
		}
		return nil
	default:
		return fmt.Errorf("unknown algorithm %q: %w", p.Algo, core.ErrInvalidParameter)
	}
}

func (p Params) validateDiamondSquare() error {
	if !IsPow2Plus1(p.Size) {
		return fmt.Errorf("diamond-square size %d is not 2^k+1: %w", p.Size, core.ErrInvalidSize)
	}
	if p.Roughness <= 0 || p.Roughness >= 2 {
		return fmt.Errorf("roughness %v outside (0,2): %w", p.Roughness, core.ErrInvalidParameter)
	}
	return nil
}

func (p Params) validateFBM() error {
	if p.Size < 2 {
		return fmt.Errorf("fbm size %d below 2: %w", p.Size, core.ErrInvalidSize)
	}
	if p.Octaves < 1 {
		return fmt.Errorf("octaves %d below 1: %w", p.Octaves, core.ErrInvalidParameter)
	}
	if p.Persistence <= 0 || p.Persistence >= 1 {
		return fmt.Errorf("persistence %v outside (0,1): %w", p.Persistence, core.ErrInvalidParameter)
	}
	if p.Lacunarity <= 1 {
		return fmt.Errorf("lacunarity %v must exceed 1: %w", p.Lacunarity, core.ErrInvalidParameter)
	}
	if p.Scale <= 0 {
		return fmt.Errorf("scale %v must be positive: %w", p.Scale, core.ErrInvalidParameter)
	}
	return nil
}
