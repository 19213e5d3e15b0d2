package terrain

import (
	"fmt"
	"sort"

	"github.com/victorrobotxt/TerraFract/internal/core"
	"github.com/victorrobotxt/TerraFract/internal/heightmap"
)

// Presets are ready-made terrain recipes for the CLI.
var presets = map[string]func(*Config){
	"mountains": func(c *Config) {
		c.Gen.Algo = heightmap.AlgoDiamondSquare
		c.Gen.Roughness = 1.2
	},
	"hills": func(c *Config) {
		c.Gen.Algo = heightmap.AlgoFBM
		c.Gen.Octaves = 4
		c.Gen.Persistence = 0.6
		c.Gen.Scale = 80
	},
	"islands": func(c *Config) {
		c.Gen.Algo = heightmap.AlgoDiamondSquare
		c.Gen.Roughness = 0.8
	},
	"fjords": func(c *Config) {
		c.Gen.Algo = heightmap.AlgoFBM
		c.Gen.Octaves = 6
		c.Gen.Persistence = 0.4
		c.Gen.Scale = 40
	},
}

// PresetNames lists the available recipes in stable order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset applies the named recipe on top of the default config.
func Preset(name string) (Config, error) {
	apply, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("unknown preset %q: %w", name, core.ErrInvalidParameter)
	}
	cfg := DefaultConfig()
	apply(&cfg)
	return cfg, nil
}
