//go:build ebiten

// Package ui holds the optional debug overlay for the interactive viewer.
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/victorrobotxt/TerraFract/internal/biome"
	"github.com/victorrobotxt/TerraFract/internal/core"
)

// Overlay draws optional diagnostic layers on top of the terrain view.
// Key 1 toggles the slope layer, key 2 the wetness layer, key 3 the
// status readout.
type Overlay struct {
	scale int

	showSlope bool
	showWet   bool
	showInfo  bool

	slopeImg *ebiten.Image
	wetImg   *ebiten.Image
	buf      []byte
	dirty    bool
}

// NewOverlay constructs an overlay for a view scaled by the given factor.
func NewOverlay(scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{scale: scale, showInfo: true, dirty: true}
}

// Invalidate marks the cached layers stale after the grid changed.
func (o *Overlay) Invalidate() {
	o.dirty = true
}

// Update handles the layer toggle keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showSlope = !o.showSlope
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showWet = !o.showWet
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showInfo = !o.showInfo
	}
}

// Draw renders the enabled layers over the screen. The status line is shown
// verbatim when the readout is enabled.
func (o *Overlay) Draw(screen *ebiten.Image, g *core.Grid, status string) {
	if g == nil || g.W <= 0 || g.H <= 0 {
		return
	}
	if o.dirty {
		o.rebuild(g)
		o.dirty = false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	if o.showSlope && o.slopeImg != nil {
		screen.DrawImage(o.slopeImg, op)
	}
	if o.showWet && o.wetImg != nil {
		screen.DrawImage(o.wetImg, op)
	}
	if o.showInfo {
		ebitenutil.DebugPrintAt(screen, status, 4, 4)
	}
}

func (o *Overlay) rebuild(g *core.Grid) {
	total := g.W * g.H
	if o.slopeImg == nil || o.slopeImg.Bounds().Dx() != g.W || o.slopeImg.Bounds().Dy() != g.H {
		o.slopeImg = ebiten.NewImage(g.W, g.H)
		o.wetImg = ebiten.NewImage(g.W, g.H)
		o.buf = make([]byte, 4*total)
	}
	o.fillLayer(o.slopeImg, biome.Slope(g), color.RGBA{R: 255, G: 120, B: 40})
	o.fillLayer(o.wetImg, biome.Wetness(g, 3), color.RGBA{R: 64, G: 164, B: 223})
}

// fillLayer tints the image by the field intensity, transparent where the
// field is zero.
func (o *Overlay) fillLayer(img *ebiten.Image, field *core.Grid, tint color.RGBA) {
	const maxAlpha = 140.0
	values := field.Values()
	for i, v := range values {
		base := i * 4
		if v <= 0 {
			o.buf[base+0] = 0
			o.buf[base+1] = 0
			o.buf[base+2] = 0
			o.buf[base+3] = 0
			continue
		}
		if v > 1 {
			v = 1
		}
		alpha := math.Round(maxAlpha * math.Sqrt(v))
		o.buf[base+0] = uint8(float64(tint.R) * v)
		o.buf[base+1] = uint8(float64(tint.G) * v)
		o.buf[base+2] = uint8(float64(tint.B) * v)
		o.buf[base+3] = uint8(alpha)
	}
	img.WritePixels(o.buf)
}
