package terrain

import (
	"fmt"
	"strconv"

	"github.com/victorrobotxt/TerraFract/internal/core"
	"github.com/victorrobotxt/TerraFract/internal/heightmap"
)

// Config is the full pipeline configuration: one generation request plus the
// optional post-processing stages, in the order Run applies them.
type Config struct {
	Gen heightmap.Params

	VoronoiSites int
	RidgeHeight  float64

	ThermalIters int
	TalusAngle   float64

	HydroIters int
	RainAmount float64
	Solubility float64
}

// DefaultConfig returns the standard pipeline settings with every
// post-processing stage disabled.
func DefaultConfig() Config {
	return Config{
		Gen:         heightmap.DefaultParams(),
		RidgeHeight: 0.5,
		TalusAngle:  0.01,
		RainAmount:  0.01,
		Solubility:  0.1,
	}
}

// Option keys recognized by FromMap, and the generator each key belongs to.
var knownKeys = map[string]bool{
	"algo": true, "size": true, "seed": true,
	"roughness": true,
	"octaves":   true, "persistence": true, "lacunarity": true, "scale": true,
	"blend":         true,
	"voronoi_sites": true, "ridge_height": true,
	"thermal_iters": true, "talus_angle": true,
	"hydro_iters": true, "rain_amount": true, "solubility": true,
}

// requiredKeys lists the options each algorithm cannot run without.
var requiredKeys = map[heightmap.Algo][]string{
	heightmap.AlgoDiamondSquare: {"roughness"},
	heightmap.AlgoFBM:           {"octaves", "persistence", "lacunarity", "scale"},
	heightmap.AlgoHybrid:        {"roughness", "octaves", "persistence", "lacunarity", "scale"},
}

// FromMap builds a Config from flag-style key/value pairs. Unknown keys are
// rejected, and the options required by the selected algorithm must all be
// present. Values are validated later by the stages themselves.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()

	algo, ok := cfg["algo"]
	if !ok {
		return Config{}, fmt.Errorf("option %q: %w", "algo", core.ErrMissingParameter)
	}
	required, ok := requiredKeys[heightmap.Algo(algo)]
	if !ok {
		return Config{}, fmt.Errorf("unknown algorithm %q: %w", algo, core.ErrInvalidParameter)
	}
	for _, key := range required {
		if _, present := cfg[key]; !present {
			return Config{}, fmt.Errorf("option %q required for %s: %w", key, algo, core.ErrMissingParameter)
		}
	}

	if err := c.Apply(cfg); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Apply overlays flag-style options onto the config. Unknown keys are
// rejected; absent keys leave the current values alone, so explicit options
// can be layered over a preset.
func (c *Config) Apply(opts map[string]string) error {
	for key := range opts {
		if !knownKeys[key] {
			return fmt.Errorf("unknown option %q: %w", key, core.ErrInvalidParameter)
		}
	}
	if algo, present := opts["algo"]; present {
		if _, known := requiredKeys[heightmap.Algo(algo)]; !known {
			return fmt.Errorf("unknown algorithm %q: %w", algo, core.ErrInvalidParameter)
		}
		c.Gen.Algo = heightmap.Algo(algo)
	}

	var err error
	parseInt := func(key string, dst *int) {
		if v, present := opts[key]; present && err == nil {
			parsed, perr := strconv.Atoi(v)
			if perr != nil {
				err = fmt.Errorf("option %q=%q: %w", key, v, core.ErrInvalidParameter)
				return
			}
			*dst = parsed
		}
	}
	parseFloat := func(key string, dst *float64) {
		if v, present := opts[key]; present && err == nil {
			parsed, perr := strconv.ParseFloat(v, 64)
			if perr != nil {
				err = fmt.Errorf("option %q=%q: %w", key, v, core.ErrInvalidParameter)
				return
			}
			*dst = parsed
		}
	}

	parseInt("size", &c.Gen.Size)
	if v, present := opts["seed"]; present && err == nil {
		parsed, perr := strconv.ParseInt(v, 10, 64)
		if perr != nil {
			err = fmt.Errorf("option %q=%q: %w", "seed", v, core.ErrInvalidParameter)
		} else {
			c.Gen.Seed = parsed
		}
	}
	parseFloat("roughness", &c.Gen.Roughness)
	parseInt("octaves", &c.Gen.Octaves)
	parseFloat("persistence", &c.Gen.Persistence)
	parseFloat("lacunarity", &c.Gen.Lacunarity)
	parseFloat("scale", &c.Gen.Scale)
	parseFloat("blend", &c.Gen.Blend)
	parseInt("voronoi_sites", &c.VoronoiSites)
	parseFloat("ridge_height", &c.RidgeHeight)
	parseInt("thermal_iters", &c.ThermalIters)
	parseFloat("talus_angle", &c.TalusAngle)
	parseInt("hydro_iters", &c.HydroIters)
	parseFloat("rain_amount", &c.RainAmount)
	parseFloat("solubility", &c.Solubility)
	return err
}
