// Package scene wires the water surface, the splash spray and the weather
// ring into the single stepping interface the drivers talk to.
package scene

import (
	"image/color"
	"iter"
	"math"

	"swell/internal/core"
	"swell/internal/splash"
	"swell/internal/water"
	"swell/internal/weather"
	pcore "swell/pkg/core"
)

// Scene is one sea with its spray. Events, steps and rendering reads must be
// sequenced by the caller; Scene is not safe for concurrent use.
type Scene struct {
	cfg Config

	field    *water.Field
	splashes *splash.Manager
	rng      *pcore.RNG

	state   weather.State
	seed    int64
	elapsed float64
	frames  uint64
}

// New builds a scene from cfg. It panics if the water geometry is invalid.
func New(cfg Config) *Scene {
	rng := pcore.NewRNG(cfg.Seed)
	field := water.New(cfg.Weather.Profile(), cfg.Water)
	return &Scene{
		cfg:      cfg,
		field:    field,
		splashes: splash.NewManager(field, cfg.Splash, rng),
		rng:      rng,
		state:    cfg.Weather,
		seed:     cfg.Seed,
	}
}

// Name returns the simulation identifier.
func (s *Scene) Name() string { return "swell" }

// Size returns the logical view size in pixels.
func (s *Scene) Size() core.Size {
	return core.Size{W: int(math.Ceil(s.cfg.Water.Width)), H: int(math.Ceil(s.cfg.Water.Height))}
}

// Field exposes the height field.
func (s *Scene) Field() *water.Field { return s.field }

// Splashes exposes the particle manager.
func (s *Scene) Splashes() *splash.Manager { return s.splashes }

// Elapsed returns the simulated time in seconds.
func (s *Scene) Elapsed() float64 { return s.elapsed }

// Seed returns the seed of the last reset.
func (s *Scene) Seed() int64 { return s.seed }

// Frames returns the number of frames advanced since the last reset.
func (s *Scene) Frames() uint64 { return s.frames }

// Reset calms the sea, clears the spray and reseeds the spray RNG. A zero
// seed reuses the configured one.
func (s *Scene) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.seed = seed
	s.rng.Reseed(seed)
	s.field.Reset()
	s.splashes.Clear()
	s.SetWeather(s.cfg.Weather)
	s.elapsed = 0
	s.frames = 0
}

// AdvanceFrame steps the water and then the spray by dt seconds. Frames
// longer than the water's MaxFrame are shortened for both.
func (s *Scene) AdvanceFrame(dt float64) {
	if !(dt > 0) {
		return
	}
	if limit := s.cfg.Water.MaxFrame; limit > 0 && dt > limit {
		dt = limit
	}
	s.field.Update(dt)
	s.splashes.Update(dt)
	s.elapsed += dt
	s.frames++
}

// Impact drops something into the water at x.
func (s *Scene) Impact(x, magnitude float64) {
	s.splashes.Splash(x, magnitude)
}

// Weather returns the active preset.
func (s *Scene) Weather() weather.State { return s.state }

// SetWeather switches to preset w without touching the surface state.
func (s *Scene) SetWeather(w weather.State) {
	s.state = w
	s.field.SetProfile(w.Profile())
}

// CycleWeather advances to the next preset in the ring and returns it.
func (s *Scene) CycleWeather() weather.State {
	s.SetWeather(s.state.Next())
	return s.state
}

// SurfaceSamples yields the (x, y) screen position of every surface sample.
func (s *Scene) SurfaceSamples() iter.Seq2[float64, float64] { return s.field.Surface() }

// ActiveParticles yields each spray particle's position and remaining life
// fraction.
func (s *Scene) ActiveParticles() iter.Seq2[core.Vec2, float64] { return s.splashes.Particles() }

// CurrentProfileColors returns the crest, body and deep colors of the active
// preset.
func (s *Scene) CurrentProfileColors() (top, mid, deep color.RGBA) {
	return s.field.Profile().Colors()
}

// StillWater returns the screen y of the undisturbed surface.
func (s *Scene) StillWater() float64 { return s.field.StillWater() }
