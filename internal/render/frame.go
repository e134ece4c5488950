package render

import (
	"image/color"
	"iter"
	"math"

	"swell/internal/core"
)

// Source is what a frame is built from. scene.Scene satisfies it.
type Source interface {
	Size() core.Size
	StillWater() float64
	SurfaceSamples() iter.Seq2[float64, float64]
	ActiveParticles() iter.Seq2[core.Vec2, float64]
}

// Point is a vertex in logical pixels.
type Point struct {
	X, Y float32
}

// Band is one pixel row of the body gradient.
type Band struct {
	Y     int
	Color color.RGBA
}

// Sprite is a square spray particle centred on X, Y.
type Sprite struct {
	X, Y  float32
	Size  float32
	Color color.NRGBA
}

// Frame holds the draw primitives for one picture of the sea, back to front:
// the filled body polygon, the gradient bands clipped to it, the outline and
// crest strokes, then the spray sprites.
type Frame struct {
	Width, Height int
	StillWater    float32

	Surface []Point
	Polygon []Point
	Crest   []Point

	Fill    color.RGBA
	Bands   []Band
	Outline color.RGBA
	Top     color.RGBA

	Sprites []Sprite
}

var sprayColor = color.NRGBA{R: 230, G: 240, B: 255, A: 255}

const (
	spraySize     = 2
	sprayMinAlpha = 0.35
)

// Build fills f from src using pal. Slices in f are reused between calls.
// Building reads src only.
func Build(f *Frame, src Source, pal Palette) {
	size := src.Size()
	still := src.StillWater()
	f.Width, f.Height = size.W, size.H
	f.StillWater = float32(still)

	f.Surface = f.Surface[:0]
	for x, y := range src.SurfaceSamples() {
		f.Surface = append(f.Surface, Point{X: float32(x), Y: float32(y)})
	}

	f.Polygon = append(f.Polygon[:0], f.Surface...)
	f.Polygon = append(f.Polygon,
		Point{X: float32(size.W), Y: float32(size.H)},
		Point{X: 0, Y: float32(size.H)},
	)

	f.Crest = f.Crest[:0]
	for _, p := range f.Surface {
		f.Crest = append(f.Crest, Point{X: p.X, Y: p.Y - 1})
	}

	f.Fill = pal.Deep
	f.Outline = pal.Mid
	f.Top = pal.Top

	f.Bands = f.Bands[:0]
	start := int(math.Floor(still))
	if start < 0 {
		start = 0
	}
	body := size.H - start
	for dy := 0; dy < body; dy++ {
		t := float64(dy) / float64(body)
		f.Bands = append(f.Bands, Band{Y: start + dy, Color: pal.Band(t)})
	}

	f.Sprites = f.Sprites[:0]
	for pos, frac := range src.ActiveParticles() {
		c := sprayColor
		c.A = uint8(math.Round(255 * (sprayMinAlpha + (1-sprayMinAlpha)*core.Clamp(frac, 0, 1))))
		f.Sprites = append(f.Sprites, Sprite{X: float32(pos.X), Y: float32(pos.Y), Size: spraySize, Color: c})
	}
}

// BandAt returns the gradient color for row y and whether the row belongs to
// the body gradient.
func (f *Frame) BandAt(y int) (color.RGBA, bool) {
	if len(f.Bands) == 0 {
		return color.RGBA{}, false
	}
	i := y - f.Bands[0].Y
	if i < 0 || i >= len(f.Bands) {
		return color.RGBA{}, false
	}
	return f.Bands[i].Color, true
}
