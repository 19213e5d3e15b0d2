// Package terrain composes the full synthesis pipeline: generation, optional
// Voronoi ridge carving, then thermal and hydraulic erosion, ending with a
// normalized grid. Carving runs before erosion so the weathering passes work
// the fresh ridges like any other relief.
package terrain

import (
	"fmt"

	"github.com/victorrobotxt/TerraFract/internal/carve"
	"github.com/victorrobotxt/TerraFract/internal/core"
	"github.com/victorrobotxt/TerraFract/internal/erosion"
	"github.com/victorrobotxt/TerraFract/internal/heightmap"
)

// Run executes the configured pipeline and returns the final [0,1] grid.
func Run(cfg Config) (*core.Grid, error) {
	g, err := heightmap.Generate(cfg.Gen)
	if err != nil {
		return nil, err
	}
	if cfg.VoronoiSites > 0 {
		if err := carve.VoronoiCliffs(g, cfg.VoronoiSites, cfg.RidgeHeight, cfg.Gen.Seed); err != nil {
			return nil, fmt.Errorf("carve stage: %w", err)
		}
	}
	if cfg.ThermalIters > 0 {
		if err := erosion.Thermal(g, cfg.ThermalIters, cfg.TalusAngle); err != nil {
			return nil, fmt.Errorf("thermal stage: %w", err)
		}
	}
	if cfg.HydroIters > 0 {
		if err := erosion.Hydraulic(g, cfg.HydroIters, cfg.RainAmount, cfg.Solubility); err != nil {
			return nil, fmt.Errorf("hydraulic stage: %w", err)
		}
	}
	g.Normalize()
	return g, nil
}
