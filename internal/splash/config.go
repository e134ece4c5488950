package splash

import (
	"math"
	"strconv"
)

// Config holds the burst size and particle kinematics.
type Config struct {
	Burst int

	Gravity  float64
	Lifetime float64

	// Launch angles in radians; 0 points right and negative values point up
	// because screen y grows downward.
	AngleMin float64
	AngleMax float64
	SpeedMin float64
	SpeedMax float64

	// Lift raises the spawn point above the surface.
	Lift float64
}

// DefaultConfig returns the standard splash tuning.
func DefaultConfig() Config {
	return Config{
		Burst:    28,
		Gravity:  120,
		Lifetime: 1.2,
		AngleMin: -2.2,
		AngleMax: -1.0,
		SpeedMin: 30,
		SpeedMax: 90,
		Lift:     2,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["burst"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Burst = parsed
		}
	}
	float := func(key string, dst *float64, ok func(float64) bool) {
		if v, present := cfg[key]; present {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && ok(parsed) {
				*dst = parsed
			}
		}
	}
	finite := func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
	nonNegative := func(v float64) bool { return v >= 0 }
	positive := func(v float64) bool { return v > 0 }
	float("gravity", &c.Gravity, finite)
	float("life", &c.Lifetime, positive)
	float("angle_min", &c.AngleMin, finite)
	float("angle_max", &c.AngleMax, finite)
	float("speed_min", &c.SpeedMin, nonNegative)
	float("speed_max", &c.SpeedMax, nonNegative)
	float("lift", &c.Lift, finite)
	if c.AngleMax < c.AngleMin {
		c.AngleMax = c.AngleMin
	}
	if c.SpeedMax < c.SpeedMin {
		c.SpeedMax = c.SpeedMin
	}
	return c
}
