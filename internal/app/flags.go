package app

import (
	"flag"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"swell/internal/scene"
	"swell/internal/weather"
)

// Config represents the command-line parameters shared by the drivers.
type Config struct {
	Scale    int
	TPS      int
	Seed     int64
	Weather  string
	Impact   float64
	Mute     bool
	HUDWidth int
	Sets     Settings
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Scale:    4,
		TPS:      60,
		Seed:     1337,
		Weather:  weather.Calm.String(),
		Impact:   scene.DefaultImpact,
		HUDWidth: 240,
		Sets:     Settings{},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	if c.Sets == nil {
		c.Sets = Settings{}
	}
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the spray and for resets")
	fs.StringVar(&c.Weather, "weather", c.Weather, "initial weather (calm, breezy, stormy)")
	fs.Float64Var(&c.Impact, "impact", c.Impact, "impulse applied by a click")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable splash sounds")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the tunables panel in pixels (0 hides it)")
	fs.Var(c.Sets, "set", "override a scene setting as key=value (repeatable)")
}

// Validate reports flag values the drivers cannot run with.
func (c *Config) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if _, ok := weather.Parse(c.Weather); !ok {
		return fmt.Errorf("unknown weather %q", c.Weather)
	}
	return nil
}

// SceneConfig merges the -set overrides with the dedicated flags. The
// dedicated -seed and -weather flags win over -set.
func (c *Config) SceneConfig() (scene.Config, error) {
	if err := c.Validate(); err != nil {
		return scene.Config{}, err
	}
	values := maps.Clone(map[string]string(c.Sets))
	if values == nil {
		values = map[string]string{}
	}
	values["seed"] = strconv.FormatInt(c.Seed, 10)
	values["weather"] = c.Weather
	return scene.FromMap(values), nil
}

// DT returns the simulated seconds per tick.
func (c *Config) DT() float64 {
	if c.TPS <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(c.TPS)
}

// Settings collects repeated key=value flags.
type Settings map[string]string

func (s Settings) String() string {
	keys := slices.Sorted(maps.Keys(s))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+s[k])
	}
	return strings.Join(parts, ",")
}

// Set parses one key=value pair.
func (s Settings) Set(v string) error {
	key, value, ok := strings.Cut(v, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", v)
	}
	s[key] = strings.TrimSpace(value)
	return nil
}
