package splash

import (
	"iter"
	"math"

	"swell/internal/core"
	pcore "swell/pkg/core"
)

const maxBurst = 200

// Surface is the part of the water a splash needs: somewhere to put the
// impulse and a height to spawn spray from.
type Surface interface {
	Disturb(x, magnitude float64)
	HeightAt(x float64) float64
}

// Manager owns the live particles and couples impacts to the surface.
//
// Manager is not safe for concurrent use.
type Manager struct {
	cfg       Config
	surface   Surface
	rng       *pcore.RNG
	particles []Particle
}

// NewManager returns a Manager that disturbs surface on every splash.
func NewManager(surface Surface, cfg Config, rng *pcore.RNG) *Manager {
	if rng == nil {
		rng = pcore.NewRNG(1)
	}
	return &Manager{
		cfg:       cfg,
		surface:   surface,
		rng:       rng,
		particles: make([]Particle, 0, cfg.Burst*4),
	}
}

// Config returns the active tuning.
func (m *Manager) Config() Config { return m.cfg }

// Splash disturbs the surface at x and throws a burst of spray from just
// above the surface there.
func (m *Manager) Splash(x, magnitude float64) {
	m.surface.Disturb(x, magnitude)
	origin := core.Vec2{X: x, Y: m.surface.HeightAt(x) - m.cfg.Lift}
	for i := 0; i < m.cfg.Burst; i++ {
		m.particles = append(m.particles, Spawn(origin, m.cfg, m.rng))
	}
}

// Update advances every particle and drops the ones that expired.
func (m *Manager) Update(dt float64) {
	for i := 0; i < len(m.particles); {
		if m.particles[i].Update(dt, m.cfg.Gravity) {
			i++
			continue
		}
		last := len(m.particles) - 1
		m.particles[i] = m.particles[last]
		m.particles = m.particles[:last]
	}
}

// Len returns the number of live particles.
func (m *Manager) Len() int { return len(m.particles) }

// Clear drops every particle.
func (m *Manager) Clear() { m.particles = m.particles[:0] }

// Particles yields each live particle's position and remaining life fraction.
func (m *Manager) Particles() iter.Seq2[core.Vec2, float64] {
	return func(yield func(core.Vec2, float64) bool) {
		for i := range m.particles {
			p := &m.particles[i]
			if !yield(p.Pos, p.LifeFraction()) {
				return
			}
		}
	}
}

// Parameters reports the splash tunables.
func (m *Manager) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Splash",
		Params: []core.Parameter{
			core.IntParam("burst", "Burst", m.cfg.Burst),
			core.FloatParam("gravity", "Gravity", m.cfg.Gravity),
			core.FloatParam("life", "Lifetime", m.cfg.Lifetime),
			core.IntParam("live", "Live particles", len(m.particles)),
		},
	}}}
}

// ParameterControls lists the splash settings adjustable at runtime.
func (m *Manager) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		core.IntControl("burst", "Burst", 4, 0, maxBurst),
		core.FloatControl("gravity", "Gravity", 10, 0, 600),
	}
}

// SetIntParameter updates the burst size.
func (m *Manager) SetIntParameter(key string, value int) bool {
	if key != "burst" {
		return false
	}
	m.cfg.Burst = int(core.Clamp(float64(value), 0, maxBurst))
	return true
}

// SetFloatParameter updates gravity or lifetime.
func (m *Manager) SetFloatParameter(key string, value float64) bool {
	if math.IsNaN(value) {
		return false
	}
	switch key {
	case "gravity":
		m.cfg.Gravity = core.Clamp(value, 0, 600)
	case "life":
		if value <= 0 {
			return false
		}
		m.cfg.Lifetime = value
	default:
		return false
	}
	return true
}
