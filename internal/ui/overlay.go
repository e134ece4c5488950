//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"swell/internal/core"
	"swell/internal/water"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type fieldProvider interface {
	Field() *water.Field
}

// Overlay draws optional debugging visuals over the water view: the swell
// target the springs pull toward, per-sample velocity bars and the sample
// points themselves.
type Overlay struct {
	sim         core.Sim
	scale       int
	showTarget  bool
	showVel     bool
	showSamples bool

	pixel   *ebiten.Image
	targets []float64
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles layers from the digit keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showTarget = !o.showTarget
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showVel = !o.showVel
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showSamples = !o.showSamples
	}
}

// Draw paints the enabled layers onto the scaled screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || !(o.showTarget || o.showVel || o.showSamples) {
		return
	}
	provider, ok := o.sim.(fieldProvider)
	if !ok {
		return
	}
	field := provider.Field()
	s := float64(o.scale)
	spacing := field.Spacing() * s
	still := field.StillWater() * s

	if o.showVel {
		for i, v := range field.Velocity() {
			h := clamp(v*velocityScale, -maxBarLength, maxBarLength) * s
			if math.Abs(h) < 0.5 {
				continue
			}
			col := colorVelDown
			if v < 0 {
				col = colorVelUp
			}
			x := float64(i) * spacing
			o.drawLine(screen, x, still, x, still+h, math.Max(1, s*0.5), col)
		}
	}

	if o.showTarget {
		o.targets = field.Targets(o.targets)
		for i := 1; i < len(o.targets); i++ {
			x1 := float64(i-1) * spacing
			x2 := float64(i) * spacing
			o.drawLine(screen, x1, still+o.targets[i-1]*s, x2, still+o.targets[i]*s, math.Max(1, s*0.5), colorTarget)
		}
	}

	if o.showSamples {
		for x, y := range field.Surface() {
			o.drawPoint(screen, x*s, y*s, math.Max(2, s), colorSample)
		}
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 || thickness <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

const (
	velocityScale = 0.25
	maxBarLength  = 40.0
)

var (
	colorTarget  = color.RGBA{R: 255, G: 214, B: 90, A: 220}
	colorVelUp   = color.RGBA{R: 120, G: 255, B: 160, A: 200}
	colorVelDown = color.RGBA{R: 255, G: 110, B: 110, A: 200}
	colorSample  = color.RGBA{R: 255, G: 255, B: 255, A: 200}
)
