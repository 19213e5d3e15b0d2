// Package biome classifies elevation grids into biome categories and renders
// them as RGB color grids. Classification is a pure function of the grid:
// the same elevations always produce the same labels.
package biome

import (
	"fmt"
	"image/color"

	"github.com/victorrobotxt/TerraFract/internal/core"
)

// Class labels one cell's biome.
type Class uint8

const (
	Water Class = iota
	Sand
	Grass
	Forest
	Rock
	Snow
	numClasses
)

// String returns the lowercase biome name.
func (c Class) String() string {
	switch c {
	case Water:
		return "water"
	case Sand:
		return "sand"
	case Grass:
		return "grass"
	case Forest:
		return "forest"
	case Rock:
		return "rock"
	case Snow:
		return "snow"
	}
	return "unknown"
}

// Palette maps each class to its fixed display color.
var Palette = [numClasses]color.RGBA{
	Water:  {R: 70, G: 130, B: 180, A: 255},
	Sand:   {R: 194, G: 178, B: 128, A: 255},
	Grass:  {R: 34, G: 139, B: 34, A: 255},
	Forest: {R: 0, G: 100, B: 0, A: 255},
	Rock:   {R: 128, G: 128, B: 128, A: 255},
	Snow:   {R: 255, G: 250, B: 250, A: 255},
}

// WetnessFunc produces a normalized per-cell wetness proxy from an elevation
// grid. Injectable so alternate definitions (e.g. flow accumulation) can be
// swapped in without touching the classifier.
type WetnessFunc func(g *core.Grid) *core.Grid

// Options tunes the classification thresholds. All elevations refer to the
// normalized [0,1] grid.
type Options struct {
	WaterLevel  float64 // below: water
	SandLevel   float64 // shore band above water
	GrassLevel  float64 // top of the lowland band
	RockLevel   float64 // above: bare rock
	SnowLevel   float64 // above: snow
	SteepSlope  float64 // normalized slope that forces rock
	WetForest   float64 // wetness above which lowland becomes forest
	WetnessFunc WetnessFunc
}

// DefaultOptions returns the standard threshold set.
func DefaultOptions() Options {
	return Options{
		WaterLevel: 0.2,
		SandLevel:  0.3,
		GrassLevel: 0.6,
		RockLevel:  0.9,
		SnowLevel:  0.97,
		SteepSlope: 0.5,
		WetForest:  0.6,
	}
}

func (o Options) validate() error {
	levels := []float64{o.WaterLevel, o.SandLevel, o.GrassLevel, o.RockLevel, o.SnowLevel}
	for i := 1; i < len(levels); i++ {
		if levels[i] < levels[i-1] {
			return fmt.Errorf("biome thresholds must be nondecreasing: %w", core.ErrInvalidParameter)
		}
	}
	return nil
}

// ClassGrid holds one label per elevation cell.
type ClassGrid struct {
	W, H    int
	Classes []Class
}

// At returns the class at (x, y).
func (c *ClassGrid) At(x, y int) Class { return c.Classes[y*c.W+x] }

// Synthesize classifies every cell from normalized elevation, local slope and
// wetness, and renders the height-shaded color grid. The elevation grid is
// read-only here.
func Synthesize(g *core.Grid, opts Options) (*ColorGrid, *ClassGrid, error) {
	if err := opts.validate(); err != nil {
		return nil, nil, err
	}

	work := g.Clone()
	work.Normalize()

	slope := Slope(work)
	wetFn := opts.WetnessFunc
	if wetFn == nil {
		wetFn = func(g *core.Grid) *core.Grid { return Wetness(g, defaultWetnessSigma) }
	}
	wetness := wetFn(work)

	classes := &ClassGrid{W: g.W, H: g.H, Classes: make([]Class, g.W*g.H)}
	zv := work.Values()
	sv := slope.Values()
	wv := wetness.Values()
	for i, z := range zv {
		classes.Classes[i] = classify(z, sv[i], wv[i], opts)
	}

	colors := renderClasses(classes, work)
	return colors, classes, nil
}

// classify picks exactly one label per cell. Water and shore win first, then
// snow and rock by elevation or steepness, then the lowland grass/forest
// split by wetness.
func classify(z, slope, wet float64, o Options) Class {
	switch {
	case z <= o.WaterLevel:
		return Water
	case z <= o.SandLevel:
		return Sand
	case z > o.SnowLevel:
		return Snow
	case z > o.RockLevel || slope >= o.SteepSlope:
		return Rock
	case z > o.GrassLevel:
		return Forest
	case wet >= o.WetForest:
		return Forest
	default:
		return Grass
	}
}
