package scene

import (
	"slices"
	"testing"

	"swell/internal/core"
	"swell/internal/weather"
)

var _ core.Sim = (*Scene)(nil)

func TestAdvanceFrameStepsFieldThenSpray(t *testing.T) {
	s := New(DefaultConfig())
	s.Impact(160, 30)
	if s.Splashes().Len() != 28 {
		t.Fatalf("expected a burst of 28, got %d", s.Splashes().Len())
	}
	if v := s.Field().Velocity()[40]; v != -30 {
		t.Fatalf("impact should hit sample 40's velocity, got %f", v)
	}
	for i := 0; i < 13; i++ {
		s.AdvanceFrame(0.1)
	}
	if s.Splashes().Len() != 0 {
		t.Fatalf("spray should expire after 1.3s, %d left", s.Splashes().Len())
	}
	count := 0
	for range s.ActiveParticles() {
		count++
	}
	if count != 0 {
		t.Fatalf("ActiveParticles yielded %d after expiry", count)
	}
	if s.Frames() != 13 {
		t.Fatalf("expected 13 frames, got %d", s.Frames())
	}
}

func TestCycleWeatherRing(t *testing.T) {
	s := New(DefaultConfig())
	start := s.Field().Profile()
	seen := []*weather.Profile{start}
	for i := 0; i < 3; i++ {
		s.CycleWeather()
		p := s.Field().Profile()
		if i < 2 && slices.Contains(seen, p) {
			t.Fatalf("cycle %d did not change the active profile", i)
		}
		seen = append(seen, p)
	}
	if s.Weather() != weather.Calm || s.Field().Profile() != start {
		t.Fatalf("expected to be back at calm, got %s", s.Weather())
	}
}

func TestCurrentProfileColorsFollowWeather(t *testing.T) {
	s := New(DefaultConfig())
	s.CycleWeather()
	top, mid, deep := s.CurrentProfileColors()
	p := weather.Breezy.Profile()
	if top != p.Top || mid != p.Mid || deep != p.Deep {
		t.Fatal("colors do not match the breezy preset")
	}
}

func TestCycleWeatherKeepsSurface(t *testing.T) {
	s := New(DefaultConfig())
	s.Impact(100, 40)
	s.AdvanceFrame(1.0 / 60)
	disp := slices.Clone(s.Field().Displacement())
	s.CycleWeather()
	if !slices.Equal(disp, s.Field().Displacement()) {
		t.Fatal("cycling weather must not reset the surface")
	}
}

func TestResetIsDeterministic(t *testing.T) {
	s := New(DefaultConfig())
	run := func() ([]float64, []core.Vec2) {
		s.Reset(5)
		s.Impact(120, 38)
		s.CycleWeather()
		for i := 0; i < 30; i++ {
			s.AdvanceFrame(1.0 / 60)
		}
		var pos []core.Vec2
		for p := range s.ActiveParticles() {
			pos = append(pos, p)
		}
		return slices.Clone(s.Field().Displacement()), pos
	}
	d1, p1 := run()
	d2, p2 := run()
	if !slices.Equal(d1, d2) || !slices.Equal(p1, p2) {
		t.Fatal("identical seeds and inputs should reproduce the scene")
	}
	s.Reset(0)
	if s.Weather() != weather.Calm || s.Splashes().Len() != 0 || s.Elapsed() != 0 {
		t.Fatal("reset should restore the configured weather and clear spray")
	}
}

func TestParametersRouteToComponents(t *testing.T) {
	s := New(DefaultConfig())
	if !s.SetFloatParameter("tension", 120) || s.Field().Tension() != 120 {
		t.Fatal("tension should route to the field")
	}
	if !s.SetFloatParameter("gravity", 90) || s.Splashes().Config().Gravity != 90 {
		t.Fatal("gravity should route to the splash manager")
	}
	if !s.SetIntParameter("burst", 10) {
		t.Fatal("burst should be settable")
	}
	s.Impact(10, 1)
	if s.Splashes().Len() != 10 {
		t.Fatalf("expected a burst of 10, got %d", s.Splashes().Len())
	}
	if s.SetFloatParameter("nope", 1) {
		t.Fatal("unknown keys must be rejected")
	}
	snap := s.Parameters()
	if p, ok := snap.Lookup("weather"); !ok || p.Value != "calm" {
		t.Fatalf("unexpected weather parameter %+v", p)
	}
	if len(s.ParameterControls()) != 5 {
		t.Fatalf("expected 5 controls, got %d", len(s.ParameterControls()))
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"weather": "stormy", "seed": "9", "burst": "3", "tension": "100"})
	if c.Weather != weather.Stormy || c.Seed != 9 || c.Splash.Burst != 3 || c.Water.Tension != 100 {
		t.Fatalf("unexpected config %+v", c)
	}
	s := New(c)
	if s.Field().Profile() != weather.Stormy.Profile() {
		t.Fatal("scene should start on the configured weather")
	}
}

func TestResetRecordsSeed(t *testing.T) {
	s := New(DefaultConfig())
	if s.Seed() != DefaultConfig().Seed {
		t.Fatalf("expected configured seed, got %d", s.Seed())
	}
	s.Reset(42)
	if p, ok := s.Parameters().Lookup("seed"); !ok || p.Value != "42" {
		t.Fatalf("seed parameter should follow reset, got %+v", p)
	}
	s.Reset(0)
	if s.Seed() != DefaultConfig().Seed {
		t.Fatalf("zero seed should fall back to the configured one, got %d", s.Seed())
	}
}

func TestAdvanceFrameCapsStalledFrames(t *testing.T) {
	s := New(DefaultConfig())
	s.Impact(160, DefaultImpact)
	s.AdvanceFrame(5)
	if got, want := s.Elapsed(), DefaultConfig().Water.MaxFrame; got != want {
		t.Fatalf("elapsed = %v, want capped %v", got, want)
	}
	if s.Splashes().Len() != DefaultConfig().Splash.Burst {
		t.Fatal("spray should survive a capped frame shorter than its lifetime")
	}
}
