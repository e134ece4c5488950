package water

import "strconv"

// Config controls the height field geometry, spring constants and the
// timestep policy.
type Config struct {
	Width      float64
	Height     float64
	StillWater float64

	PointSpacing float64

	Tension float64
	Spread  float64
	Damping float64

	// MaxStep is the longest single integration step; longer frames are
	// split into equal substeps.
	MaxStep float64
	// MaxFrame caps the time consumed by one Update call.
	MaxFrame float64
}

// DefaultConfig returns the 320x180 design resolution used by the drivers.
func DefaultConfig() Config {
	return Config{
		Width:        320,
		Height:       180,
		StillWater:   90,
		PointSpacing: 4,
		Tension:      160,
		Spread:       50,
		Damping:      9,
		MaxStep:      1.0 / 30,
		MaxFrame:     0.25,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	positive := func(key string, dst *float64) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	nonNegative := func(key string, dst *float64) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
				*dst = parsed
			}
		}
	}
	positive("w", &c.Width)
	positive("h", &c.Height)
	nonNegative("still", &c.StillWater)
	positive("spacing", &c.PointSpacing)
	nonNegative("tension", &c.Tension)
	nonNegative("spread", &c.Spread)
	nonNegative("damping", &c.Damping)
	positive("max_step", &c.MaxStep)
	positive("max_frame", &c.MaxFrame)
	if c.StillWater > c.Height {
		c.StillWater = c.Height
	}
	return c
}
