package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Sky is the backdrop above the water.
var Sky = color.RGBA{R: 84, G: 175, B: 245, A: 255}

// Palette is the three-color scheme of a sea state.
type Palette struct {
	Top  color.RGBA
	Mid  color.RGBA
	Deep color.RGBA
}

// NewPalette builds a Palette from crest, body and deep colors.
func NewPalette(top, mid, deep color.RGBA) Palette {
	return Palette{Top: top, Mid: mid, Deep: deep}
}

// Band blends from Mid at t=0 to Deep at t=1.
func (p Palette) Band(t float64) color.RGBA {
	return blend(p.Mid, p.Deep, t)
}

func blend(a, b color.RGBA, t float64) color.RGBA {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	c := toColorful(a).BlendRgb(toColorful(b), t).Clamped()
	r, g, bl := c.RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 255}
}

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
