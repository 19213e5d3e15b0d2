//go:build ebiten

// Command workbench is a live erosion viewer: it generates a terrain from
// flags and steps thermal plus hydraulic erosion while rendering the height
// or biome view.
//
// Keys: space pause/resume, N single step, B toggle biome view, R reset,
// S reseed from the clock, 1/2/3 debug layers, Q/Esc quit.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/victorrobotxt/TerraFract/internal/biome"
	"github.com/victorrobotxt/TerraFract/internal/core"
	"github.com/victorrobotxt/TerraFract/internal/erosion"
	"github.com/victorrobotxt/TerraFract/internal/render"
	"github.com/victorrobotxt/TerraFract/internal/terrain"
	"github.com/victorrobotxt/TerraFract/internal/ui"
)

// Game steps erosion over a generated grid and blits it scaled up.
type Game struct {
	cfg  terrain.Config
	grid *core.Grid

	talusAngle float64
	rainAmount float64
	solubility float64

	canvas  *ebiten.Image
	pix     []byte
	scale   int
	overlay *ui.Overlay
	clock   *core.StepClock

	biomes   bool
	paused   bool
	tickOnce bool
	dirty    bool
	step     int
}

func newGame(cfg terrain.Config, scale, tps int) (*Game, error) {
	g := &Game{
		cfg:        cfg,
		talusAngle: cfg.TalusAngle,
		rainAmount: cfg.RainAmount,
		solubility: cfg.Solubility,
		scale:      scale,
		overlay:    ui.NewOverlay(scale),
		clock:      core.NewStepClock(tps),
	}
	if err := g.reset(cfg.Gen.Seed); err != nil {
		return nil, err
	}
	g.canvas = ebiten.NewImage(g.grid.W, g.grid.H)
	g.pix = make([]byte, 4*g.grid.W*g.grid.H)
	return g, nil
}

func (g *Game) reset(seed int64) error {
	cfg := g.cfg
	cfg.Gen.Seed = seed
	grid, err := terrain.Run(cfg)
	if err != nil {
		return err
	}
	g.grid = grid
	g.step = 0
	g.dirty = true
	if g.overlay != nil {
		g.overlay.Invalidate()
	}
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.biomes = !g.biomes
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.reset(g.cfg.Gen.Seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.reset(time.Now().UnixNano()); err != nil {
			return err
		}
	}

	g.overlay.Update()

	if g.tickOnce || (!g.paused && g.clock.Tick()) {
		if err := erosion.Thermal(g.grid, 1, g.talusAngle); err != nil {
			return err
		}
		if err := erosion.Hydraulic(g.grid, 1, g.rainAmount, g.solubility); err != nil {
			return err
		}
		g.step++
		g.tickOnce = false
		g.dirty = true
		g.overlay.Invalidate()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.dirty {
		view := g.grid.Clone()
		view.Normalize()
		if g.biomes {
			colors, _, err := biome.Synthesize(view, biome.DefaultOptions())
			if err == nil {
				copy(g.pix, colors.Pix)
			}
		} else {
			render.FillHeightRGBA(g.pix, view)
		}
		g.canvas.WritePixels(g.pix)
		g.dirty = false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.canvas, op)

	min, max := g.grid.MinMax()
	status := fmt.Sprintf("step %d  range [%.3f, %.3f]", g.step, min, max)
	g.overlay.Draw(screen, g.grid, status)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.grid.W * g.scale, g.grid.H * g.scale
}

func main() {
	size := flag.Int("size", 257, "map edge length")
	seed := flag.Int64("seed", 1337, "random seed")
	preset := flag.String("preset", "mountains", "terrain recipe")
	scale := flag.Int("scale", 2, "pixels per cell")
	tps := flag.Int("tps", 10, "erosion steps per second")
	flag.Parse()

	cfg, err := terrain.Preset(*preset)
	if err != nil {
		log.Fatal(err)
	}
	cfg.Gen.Size = *size
	cfg.Gen.Seed = *seed

	game, err := newGame(cfg, *scale, *tps)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle(fmt.Sprintf("terrafract workbench (%s)", *preset))
	ebiten.SetWindowSize(game.grid.W**scale, game.grid.H**scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
