package render

import (
	"image/color"
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	tweenFrequency = 6.0
	tweenDamping   = 1.0
	tweenEpsilon   = 0.5
)

// Tween eases the displayed palette toward the active weather's colors so a
// preset change fades instead of snapping. It only affects what is drawn.
type Tween struct {
	spring  harmonica.Spring
	pos     [9]float64
	vel     [9]float64
	target  [9]float64
	started bool
}

// NewTween returns a critically damped palette tween stepped at fps.
func NewTween(fps int) *Tween {
	if fps <= 0 {
		fps = 60
	}
	return &Tween{spring: harmonica.NewSpring(harmonica.FPS(fps), tweenFrequency, tweenDamping)}
}

// SetTarget sets the palette to ease toward. The first target is adopted
// immediately.
func (t *Tween) SetTarget(p Palette) {
	t.target = channels(p)
	if !t.started {
		t.pos = t.target
		t.started = true
	}
}

// Update advances the tween by one frame.
func (t *Tween) Update() {
	for i := range t.pos {
		t.pos[i], t.vel[i] = t.spring.Update(t.pos[i], t.vel[i], t.target[i])
	}
}

// Settled reports whether every channel is within half a level of its target.
func (t *Tween) Settled() bool {
	for i := range t.pos {
		if math.Abs(t.pos[i]-t.target[i]) > tweenEpsilon {
			return false
		}
	}
	return true
}

// Palette returns the current eased palette.
func (t *Tween) Palette() Palette {
	return Palette{
		Top:  channelColor(t.pos[0:3]),
		Mid:  channelColor(t.pos[3:6]),
		Deep: channelColor(t.pos[6:9]),
	}
}

func channels(p Palette) [9]float64 {
	return [9]float64{
		float64(p.Top.R), float64(p.Top.G), float64(p.Top.B),
		float64(p.Mid.R), float64(p.Mid.G), float64(p.Mid.B),
		float64(p.Deep.R), float64(p.Deep.G), float64(p.Deep.B),
	}
}

func channelColor(c []float64) color.RGBA {
	return color.RGBA{R: level(c[0]), G: level(c[1]), B: level(c[2]), A: 255}
}

func level(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}
