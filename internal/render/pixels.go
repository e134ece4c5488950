package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Canvas rasterizes frames into an RGBA image on the CPU. It is used by the
// terminal driver and for snapshots; the ebiten painter draws the same frame
// on the GPU.
type Canvas struct {
	img      *image.RGBA
	gradient *image.RGBA
	z        *vector.Rasterizer
}

// NewCanvas allocates a w*h canvas.
func NewCanvas(w, h int) *Canvas {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	r := image.Rect(0, 0, w, h)
	return &Canvas{
		img:      image.NewRGBA(r),
		gradient: image.NewRGBA(r),
		z:        vector.NewRasterizer(w, h),
	}
}

// Image exposes the rendered pixels.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Size returns the canvas dimensions.
func (c *Canvas) Size() (int, int) { return c.img.Rect.Dx(), c.img.Rect.Dy() }

// Render clears the canvas to sky and draws f on top.
func (c *Canvas) Render(f *Frame, sky color.Color) {
	bounds := c.img.Bounds()
	draw.Draw(c.img, bounds, image.NewUniform(sky), image.Point{}, draw.Src)

	if len(f.Surface) == 0 {
		return
	}

	c.fillPolygon(f.Polygon, image.NewUniform(f.Fill))
	c.paintBands(f)
	c.fillPolygon(f.Polygon, c.gradient)

	c.stroke(f.Surface, f.Outline)
	c.stroke(f.Crest, f.Top)

	for _, s := range f.Sprites {
		half := s.Size / 2
		x0 := int(math.Floor(float64(s.X - half)))
		y0 := int(math.Floor(float64(s.Y - half)))
		size := int(math.Ceil(float64(s.Size)))
		rect := image.Rect(x0, y0, x0+size, y0+size).Intersect(bounds)
		if rect.Empty() {
			continue
		}
		draw.Draw(c.img, rect, image.NewUniform(s.Color), image.Point{}, draw.Over)
	}
}

func (c *Canvas) fillPolygon(poly []Point, src image.Image) {
	if len(poly) < 3 {
		return
	}
	w, h := c.Size()
	c.z.Reset(w, h)
	c.z.DrawOp = draw.Over
	c.z.MoveTo(poly[0].X, poly[0].Y)
	for _, p := range poly[1:] {
		c.z.LineTo(p.X, p.Y)
	}
	c.z.ClosePath()
	c.z.Draw(c.img, c.img.Bounds(), src, image.Point{})
}

// paintBands writes the gradient rows into the gradient layer, leaving every
// other row transparent so the polygon fill shows through above still water.
func (c *Canvas) paintBands(f *Frame) {
	clear(c.gradient.Pix)
	w, h := c.Size()
	for _, b := range f.Bands {
		if b.Y < 0 || b.Y >= h {
			continue
		}
		row := c.gradient.Pix[b.Y*c.gradient.Stride : b.Y*c.gradient.Stride+4*w]
		for x := 0; x < w; x++ {
			row[4*x+0] = b.Color.R
			row[4*x+1] = b.Color.G
			row[4*x+2] = b.Color.B
			row[4*x+3] = b.Color.A
		}
	}
}

// stroke draws a one pixel wide anti-aliased polyline by rasterizing a thin
// quad per segment.
func (c *Canvas) stroke(pts []Point, col color.RGBA) {
	if len(pts) < 2 {
		return
	}
	w, h := c.Size()
	c.z.Reset(w, h)
	c.z.DrawOp = draw.Over
	const half = 0.5
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		dx, dy := b.X-a.X, b.Y-a.Y
		length := float32(math.Hypot(float64(dx), float64(dy)))
		if length < 1e-4 {
			continue
		}
		nx, ny := -dy/length*half, dx/length*half
		c.z.MoveTo(a.X+nx, a.Y+ny)
		c.z.LineTo(b.X+nx, b.Y+ny)
		c.z.LineTo(b.X-nx, b.Y-ny)
		c.z.LineTo(a.X-nx, a.Y-ny)
		c.z.ClosePath()
	}
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}
