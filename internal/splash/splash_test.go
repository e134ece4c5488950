package splash

import (
	"math"
	"testing"

	"swell/internal/core"
	pcore "swell/pkg/core"
)

type disturbCall struct{ x, magnitude float64 }

type fakeSurface struct {
	height float64
	calls  []disturbCall
}

func (s *fakeSurface) Disturb(x, magnitude float64) {
	s.calls = append(s.calls, disturbCall{x, magnitude})
}

func (s *fakeSurface) HeightAt(float64) float64 { return s.height }

func TestSpawnRanges(t *testing.T) {
	cfg := DefaultConfig()
	rng := pcore.NewRNG(3)
	for i := 0; i < 500; i++ {
		p := Spawn(core.Vec2{X: 10, Y: 20}, cfg, rng)
		speed := math.Hypot(p.Vel.X, p.Vel.Y)
		if speed < cfg.SpeedMin-1e-9 || speed > cfg.SpeedMax+1e-9 {
			t.Fatalf("speed %f outside [%f, %f]", speed, cfg.SpeedMin, cfg.SpeedMax)
		}
		angle := math.Atan2(p.Vel.Y, p.Vel.X)
		if angle < cfg.AngleMin-1e-9 || angle > cfg.AngleMax+1e-9 {
			t.Fatalf("angle %f outside [%f, %f]", angle, cfg.AngleMin, cfg.AngleMax)
		}
		if p.Vel.Y >= 0 {
			t.Fatalf("spray must start moving up, got vy=%f", p.Vel.Y)
		}
		if p.Life != 1.2 || p.LifeFraction() != 1 {
			t.Fatalf("unexpected lifetime %f", p.Life)
		}
	}
}

func TestParticleFallsAndExpires(t *testing.T) {
	p := Particle{Vel: core.Vec2{X: 10, Y: 0}, Life: 1.2, MaxLife: 1.2}
	prevLife := p.Life
	for i := 0; i < 12; i++ {
		p.Update(0.1, 120)
		if p.Life >= prevLife {
			t.Fatal("life must strictly decrease")
		}
		prevLife = p.Life
	}
	if p.Vel.Y <= 0 || p.Pos.Y <= 0 {
		t.Fatalf("gravity should pull the particle down, vel=%v pos=%v", p.Vel, p.Pos)
	}
	if math.Abs(p.Pos.X-12) > 1e-9 {
		t.Fatalf("horizontal motion should be uniform, x=%f", p.Pos.X)
	}
	if p.Update(0.1, 120) {
		t.Fatal("particle should be dead after 1.3s")
	}
	if p.LifeFraction() != 0 {
		t.Fatalf("dead particle life fraction = %f", p.LifeFraction())
	}
}

func TestSplashBurstAndSingleDisturb(t *testing.T) {
	surface := &fakeSurface{height: 93}
	m := NewManager(surface, DefaultConfig(), pcore.NewRNG(9))
	m.Splash(40, 38)
	if m.Len() != 28 {
		t.Fatalf("expected 28 particles, got %d", m.Len())
	}
	m.Splash(80, 12)
	if m.Len() != 56 {
		t.Fatalf("expected 56 particles after two bursts, got %d", m.Len())
	}
	if len(surface.calls) != 2 {
		t.Fatalf("expected one disturb per splash, got %d", len(surface.calls))
	}
	if surface.calls[0] != (disturbCall{40, 38}) || surface.calls[1] != (disturbCall{80, 12}) {
		t.Fatalf("unexpected disturb calls %+v", surface.calls)
	}
	for pos, frac := range m.Particles() {
		if pos.Y != 91 {
			t.Fatalf("spawn height should sit 2 units above the surface, got %f", pos.Y)
		}
		if frac != 1 {
			t.Fatalf("fresh particle fraction %f", frac)
		}
	}
}

func TestUpdateCullsExpiredParticles(t *testing.T) {
	m := NewManager(&fakeSurface{height: 90}, DefaultConfig(), pcore.NewRNG(1))
	m.Splash(100, 30)
	for i := 0; i < 6; i++ {
		m.Update(0.1)
	}
	m.Splash(200, 30)
	if m.Len() != 56 {
		t.Fatalf("expected both bursts alive, got %d", m.Len())
	}
	for i := 0; i < 7; i++ {
		m.Update(0.1)
	}
	if m.Len() != 28 {
		t.Fatalf("expected the first burst to expire, got %d live", m.Len())
	}
	for pos, frac := range m.Particles() {
		if frac <= 0 || frac > 1 {
			t.Fatalf("live particle at %v has fraction %f", pos, frac)
		}
	}
	for i := 0; i < 13; i++ {
		m.Update(0.1)
	}
	if m.Len() != 0 {
		t.Fatalf("expected all particles gone, got %d", m.Len())
	}
	n := 0
	for range m.Particles() {
		n++
	}
	if n != 0 {
		t.Fatalf("Particles yielded %d entries after expiry", n)
	}
}

func TestSplashDeterministicForSeed(t *testing.T) {
	run := func() []core.Vec2 {
		m := NewManager(&fakeSurface{height: 90}, DefaultConfig(), pcore.NewRNG(77))
		m.Splash(160, 38)
		m.Update(0.05)
		var out []core.Vec2
		for pos := range m.Particles() {
			out = append(out, pos)
		}
		return out
	}
	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatal("burst sizes differ")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("particle %d differs between identical seeds", i)
		}
	}
}

func TestSetters(t *testing.T) {
	m := NewManager(&fakeSurface{}, DefaultConfig(), nil)
	if !m.SetIntParameter("burst", 500) || m.Config().Burst != maxBurst {
		t.Fatalf("burst should clamp to %d, got %d", maxBurst, m.Config().Burst)
	}
	if !m.SetFloatParameter("gravity", 50) || m.Config().Gravity != 50 {
		t.Fatal("gravity not applied")
	}
	if m.SetFloatParameter("life", 0) {
		t.Fatal("non-positive lifetime must be rejected")
	}
	if m.SetIntParameter("gravity", 1) || m.SetFloatParameter("burst", 1) {
		t.Fatal("setters must reject keys of the other kind")
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"burst": "12", "speed_min": "100", "speed_max": "40", "life": "-1"})
	if c.Burst != 12 {
		t.Fatalf("burst = %d", c.Burst)
	}
	if c.SpeedMin != 100 || c.SpeedMax != 100 {
		t.Fatalf("speed range should be repaired, got [%f, %f]", c.SpeedMin, c.SpeedMax)
	}
	if c.Lifetime != 1.2 {
		t.Fatalf("invalid lifetime should keep the default, got %f", c.Lifetime)
	}
}
