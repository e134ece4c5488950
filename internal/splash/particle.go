// Package splash simulates the spray thrown up by impacts on the water.
package splash

import (
	"math"

	"swell/internal/core"
	pcore "swell/pkg/core"
)

// Particle is a single ballistic droplet.
type Particle struct {
	Pos core.Vec2
	Vel core.Vec2

	Life    float64
	MaxLife float64
}

// Spawn launches a particle from pos with a random upward-biased angle and
// speed drawn from cfg.
func Spawn(pos core.Vec2, cfg Config, rng *pcore.RNG) Particle {
	angle := rng.Uniform(cfg.AngleMin, cfg.AngleMax)
	speed := rng.Uniform(cfg.SpeedMin, cfg.SpeedMax)
	return Particle{
		Pos:     pos,
		Vel:     core.Vec2{X: speed * math.Cos(angle), Y: speed * math.Sin(angle)},
		Life:    cfg.Lifetime,
		MaxLife: cfg.Lifetime,
	}
}

// Update applies gravity, moves the particle and burns dt of its lifetime.
// It reports whether the particle is still alive.
func (p *Particle) Update(dt, gravity float64) bool {
	if dt > 0 {
		p.Vel.Y += gravity * dt
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Life -= dt
	}
	return p.Alive()
}

// Alive reports whether the particle has lifetime left.
func (p *Particle) Alive() bool { return p.Life > 0 }

// LifeFraction is the remaining share of the initial lifetime in [0, 1].
func (p *Particle) LifeFraction() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return core.Clamp(p.Life/p.MaxLife, 0, 1)
}
