package scene

import (
	"strconv"

	"swell/internal/splash"
	"swell/internal/water"
	"swell/internal/weather"
)

// DefaultImpact is the impulse applied by a click or drop when the driver
// does not pick its own.
const DefaultImpact = 38.0

// Config gathers the sub-configurations of a scene.
type Config struct {
	Water  water.Config
	Splash splash.Config

	Seed    int64
	Weather weather.State
}

// DefaultConfig returns the standard scene.
func DefaultConfig() Config {
	return Config{
		Water:   water.DefaultConfig(),
		Splash:  splash.DefaultConfig(),
		Seed:    1337,
		Weather: weather.Calm,
	}
}

// FromMap populates a Config from flag-style key/value pairs. Keys are shared
// with water.FromMap and splash.FromMap.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	c.Water = water.FromMap(cfg)
	c.Splash = splash.FromMap(cfg)
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["weather"]; ok {
		if s, ok := weather.Parse(v); ok {
			c.Weather = s
		}
	}
	return c
}
