package core

// Size describes the logical dimensions of a simulation view in pixels.
type Size struct {
	W int
	H int
}

// Vec2 is a 2D point or displacement in screen space (y grows downward).
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Scale returns v*s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// Sim defines the contract drivers use to run a frame-stepped simulation.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	AdvanceFrame(dt float64)
}
