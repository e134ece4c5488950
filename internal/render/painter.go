//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Painter draws frames onto an ebiten image at logical resolution.
type Painter struct {
	w, h int

	white    *ebiten.Image
	whiteSub *ebiten.Image

	gradient *ebiten.Image
	gradBuf  []byte

	vs []ebiten.Vertex
	is []uint16
}

// NewPainter allocates a painter for a w*h logical canvas.
func NewPainter(w, h int) *Painter {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Painter{
		w:        w,
		h:        h,
		white:    white,
		whiteSub: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		gradient: ebiten.NewImage(1, h),
		gradBuf:  make([]byte, 4*h),
	}
}

// Size returns the logical canvas dimensions.
func (p *Painter) Size() (int, int) { return p.w, p.h }

// Draw paints f onto dst, which is expected to be p.w*p.h logical pixels.
func (p *Painter) Draw(dst *ebiten.Image, f *Frame) {
	if len(f.Surface) == 0 {
		return
	}
	p.fillPolygon(dst, f.Polygon, f.Fill)
	p.fillGradient(dst, f)
	p.stroke(dst, f.Surface, f.Outline)
	p.stroke(dst, f.Crest, f.Top)
	for _, s := range f.Sprites {
		half := s.Size / 2
		vector.DrawFilledRect(dst, s.X-half, s.Y-half, s.Size, s.Size, s.Color, false)
	}
}

func (p *Painter) polygonVertices(poly []Point) {
	var path vector.Path
	path.MoveTo(poly[0].X, poly[0].Y)
	for _, pt := range poly[1:] {
		path.LineTo(pt.X, pt.Y)
	}
	path.Close()
	p.vs, p.is = path.AppendVerticesAndIndicesForFilling(p.vs[:0], p.is[:0])
}

func (p *Painter) fillPolygon(dst *ebiten.Image, poly []Point, col color.RGBA) {
	if len(poly) < 3 {
		return
	}
	p.polygonVertices(poly)
	r, g, b, a := float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, float32(col.A)/255
	for i := range p.vs {
		p.vs[i].SrcX = 1
		p.vs[i].SrcY = 1
		p.vs[i].ColorR = r
		p.vs[i].ColorG = g
		p.vs[i].ColorB = b
		p.vs[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{FillRule: ebiten.EvenOdd, AntiAlias: true}
	dst.DrawTriangles(p.vs, p.is, p.whiteSub, op)
}

// fillGradient redraws the polygon textured with a one pixel wide column
// holding the band colors, so each row below still water takes its band
// color only where it lies inside the body.
func (p *Painter) fillGradient(dst *ebiten.Image, f *Frame) {
	if len(f.Polygon) < 3 {
		return
	}
	clear(p.gradBuf)
	for _, b := range f.Bands {
		if b.Y < 0 || b.Y >= p.h {
			continue
		}
		o := 4 * b.Y
		p.gradBuf[o+0] = b.Color.R
		p.gradBuf[o+1] = b.Color.G
		p.gradBuf[o+2] = b.Color.B
		p.gradBuf[o+3] = b.Color.A
	}
	p.gradient.WritePixels(p.gradBuf)

	p.polygonVertices(f.Polygon)
	maxY := float32(p.h) - 0.5
	for i := range p.vs {
		y := p.vs[i].DstY
		if y < 0 {
			y = 0
		}
		if y > maxY {
			y = maxY
		}
		p.vs[i].SrcX = 0.5
		p.vs[i].SrcY = y
		p.vs[i].ColorR = 1
		p.vs[i].ColorG = 1
		p.vs[i].ColorB = 1
		p.vs[i].ColorA = 1
	}
	op := &ebiten.DrawTrianglesOptions{FillRule: ebiten.EvenOdd, AntiAlias: true}
	dst.DrawTriangles(p.vs, p.is, p.gradient, op)
}

func (p *Painter) stroke(dst *ebiten.Image, pts []Point, col color.RGBA) {
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(dst, a.X, a.Y, b.X, b.Y, 1, col, true)
	}
}
