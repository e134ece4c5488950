// Package water implements the spring-mass height field that models the sea
// surface.
package water

import (
	"iter"
	"math"

	"swell/internal/weather"
)

// Field is a row of evenly spaced surface samples. Each sample carries a
// vertical displacement and velocity and is pulled toward the swell curve of
// the active profile while being coupled to its neighbours.
//
// Field is not safe for concurrent use.
type Field struct {
	cfg Config
	n   int

	disp  []float64
	vel   []float64
	force []float64

	phase1, phase2 float64

	tension float64
	spread  float64
	damping float64

	profile *weather.Profile
}

// New allocates a field covering cfg.Width with one sample every
// cfg.PointSpacing units. It panics on a nil profile or non-positive
// dimensions.
func New(profile *weather.Profile, cfg Config) *Field {
	if profile == nil {
		panic("water: nil profile")
	}
	if !(cfg.Width > 0) || !(cfg.PointSpacing > 0) {
		panic("water: width and point spacing must be positive")
	}
	n := int(math.Floor(cfg.Width/cfg.PointSpacing)) + 1
	if n <= 0 {
		panic("water: field must contain at least one sample")
	}
	return &Field{
		cfg:     cfg,
		n:       n,
		disp:    make([]float64, n),
		vel:     make([]float64, n),
		force:   make([]float64, n),
		tension: math.Max(cfg.Tension, 0),
		spread:  math.Max(cfg.Spread, 0),
		damping: math.Max(cfg.Damping, 0),
		profile: profile,
	}
}

// Len returns the number of samples.
func (f *Field) Len() int { return f.n }

// Spacing returns the horizontal distance between samples.
func (f *Field) Spacing() float64 { return f.cfg.PointSpacing }

// StillWater returns the screen y of the undisturbed surface.
func (f *Field) StillWater() float64 { return f.cfg.StillWater }

// Config returns the construction parameters.
func (f *Field) Config() Config { return f.cfg }

// Displacement exposes the backing displacement slice. Callers must not
// resize it.
func (f *Field) Displacement() []float64 { return f.disp }

// Velocity exposes the backing velocity slice.
func (f *Field) Velocity() []float64 { return f.vel }

// Phases returns the two swell phases.
func (f *Field) Phases() (float64, float64) { return f.phase1, f.phase2 }

// Profile returns the active weather profile.
func (f *Field) Profile() *weather.Profile { return f.profile }

// SetProfile swaps the active profile. Displacement, velocity and phases are
// kept, so the surface eases toward the new swell on its own.
func (f *Field) SetProfile(p *weather.Profile) {
	if p == nil {
		return
	}
	f.profile = p
}

// Reset zeroes displacement, velocity and both phases.
func (f *Field) Reset() {
	clear(f.disp)
	clear(f.vel)
	clear(f.force)
	f.phase1, f.phase2 = 0, 0
}

// Index maps a horizontal position to its sample index. ok is false when the
// position falls outside the field.
func (f *Field) Index(x float64) (int, bool) {
	k := math.Floor(x / f.cfg.PointSpacing)
	if math.IsNaN(k) || k < 0 || k >= float64(f.n) {
		return 0, false
	}
	return int(k), true
}

// Disturb applies an impulse at x by subtracting magnitude from the velocity
// of the sample under it. Positions outside the field are ignored.
func (f *Field) Disturb(x, magnitude float64) {
	k, ok := f.Index(x)
	if !ok {
		return
	}
	f.vel[k] -= magnitude
}

// HeightAt returns the screen y of the surface at x using the nearest sample,
// clamped to the field's ends.
func (f *Field) HeightAt(x float64) float64 {
	k := math.Floor(x / f.cfg.PointSpacing)
	switch {
	case math.IsNaN(k) || k < 0:
		k = 0
	case k >= float64(f.n):
		k = float64(f.n - 1)
	}
	return f.cfg.StillWater + f.disp[int(k)]
}

// Surface yields (x, y) for every sample in screen space. The sequence reads
// the live state and can be ranged over any number of times.
func (f *Field) Surface() iter.Seq2[float64, float64] {
	return func(yield func(float64, float64) bool) {
		for i := 0; i < f.n; i++ {
			if !yield(float64(i)*f.cfg.PointSpacing, f.cfg.StillWater+f.disp[i]) {
				return
			}
		}
	}
}

// Targets writes the current swell curve into dst, growing it if needed.
func (f *Field) Targets(dst []float64) []float64 {
	if cap(dst) < f.n {
		dst = make([]float64, f.n)
	}
	dst = dst[:f.n]
	for i := range dst {
		dst[i] = f.profile.Swell(float64(i)*f.cfg.PointSpacing, f.phase1, f.phase2)
	}
	return dst
}

// Update advances the field by dt seconds. Non-positive dt is a no-op, dt is
// capped at MaxFrame and frames longer than MaxStep are split into equal
// substeps.
func (f *Field) Update(dt float64) {
	if !(dt > 0) {
		return
	}
	if f.cfg.MaxFrame > 0 && dt > f.cfg.MaxFrame {
		dt = f.cfg.MaxFrame
	}
	steps := 1
	if f.cfg.MaxStep > 0 && dt > f.cfg.MaxStep {
		steps = int(math.Ceil(dt / f.cfg.MaxStep))
	}
	h := dt / float64(steps)
	for s := 0; s < steps; s++ {
		f.step(h)
	}
}

func (f *Field) step(dt float64) {
	p := f.profile
	f.phase1 += p.Speed1 * dt
	f.phase2 += p.Speed2 * dt

	// Forces come from the pre-step snapshot so neighbour coupling is
	// symmetric regardless of iteration order.
	last := f.n - 1
	for i := 0; i <= last; i++ {
		d := f.disp[i]
		target := p.Swell(float64(i)*f.cfg.PointSpacing, f.phase1, f.phase2)
		force := f.tension * (d - target)
		if i > 0 {
			force += f.spread * (d - f.disp[i-1])
		}
		if i < last {
			force += f.spread * (d - f.disp[i+1])
		}
		f.force[i] = force
	}

	decay := math.Exp(-f.damping * dt)
	for i := 0; i <= last; i++ {
		v := (f.vel[i] - f.force[i]*dt) * decay
		f.vel[i] = v
		f.disp[i] += v * dt
	}
}

// Energy returns the kinetic plus spring potential energy of the field
// relative to the current swell curve, with unit sample mass.
func (f *Field) Energy() float64 {
	p := f.profile
	e := 0.0
	for i := 0; i < f.n; i++ {
		v := f.vel[i]
		off := f.disp[i] - p.Swell(float64(i)*f.cfg.PointSpacing, f.phase1, f.phase2)
		e += 0.5*v*v + 0.5*f.tension*off*off
		if i+1 < f.n {
			dd := f.disp[i] - f.disp[i+1]
			e += 0.5 * f.spread * dd * dd
		}
	}
	return e
}

// MaxAbsDisplacement returns the largest |displacement| across the field.
func (f *Field) MaxAbsDisplacement() float64 {
	m := 0.0
	for _, d := range f.disp {
		if a := math.Abs(d); a > m {
			m = a
		}
	}
	return m
}
