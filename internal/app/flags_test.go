package app

import (
	"flag"
	"testing"

	"swell/internal/weather"
)

func TestConfigBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("swell", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"-scale", "2", "-weather", "stormy", "-seed", "7", "-set", "tension=120", "-set", "burst = 10", "-mute"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Scale != 2 || !cfg.Mute || cfg.Seed != 7 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	sc, err := cfg.SceneConfig()
	if err != nil {
		t.Fatalf("scene config: %v", err)
	}
	if sc.Weather != weather.Stormy || sc.Seed != 7 {
		t.Fatalf("dedicated flags not applied: %+v", sc)
	}
	if sc.Water.Tension != 120 || sc.Splash.Burst != 10 {
		t.Fatalf("-set overrides not applied: tension %v burst %v", sc.Water.Tension, sc.Splash.Burst)
	}
}

func TestDedicatedFlagsWinOverSet(t *testing.T) {
	cfg := NewConfig()
	cfg.Sets["weather"] = "breezy"
	cfg.Sets["seed"] = "99"
	sc, err := cfg.SceneConfig()
	if err != nil {
		t.Fatalf("scene config: %v", err)
	}
	if sc.Weather != weather.Calm || sc.Seed != 1337 {
		t.Fatalf("expected flag values, got weather %v seed %d", sc.Weather, sc.Seed)
	}
}

func TestSettingsRejectsMalformedPairs(t *testing.T) {
	s := Settings{}
	for _, bad := range []string{"tension", "=3", ""} {
		if err := s.Set(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
	if err := s.Set("b=2"); err != nil {
		t.Fatal(err)
	}
	if err := s.Set("a=1"); err != nil {
		t.Fatal(err)
	}
	if got := s.String(); got != "a=1,b=2" {
		t.Fatalf("unexpected rendering %q", got)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"scale", func(c *Config) { c.Scale = 0 }},
		{"tps", func(c *Config) { c.TPS = -1 }},
		{"weather", func(c *Config) { c.Weather = "hurricane" }},
	}
	for _, tc := range cases {
		cfg := NewConfig()
		tc.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
		if _, err := cfg.SceneConfig(); err == nil {
			t.Fatalf("%s: SceneConfig should fail too", tc.name)
		}
	}
	if err := NewConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if dt := NewConfig().DT(); dt != 1.0/60 {
		t.Fatalf("unexpected dt %v", dt)
	}
}
