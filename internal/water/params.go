package water

import (
	"math"

	"swell/internal/core"
)

const (
	maxTension = 400
	maxSpread  = 200
	maxDamping = 40
)

// Tension returns the spring constant toward the swell curve.
func (f *Field) Tension() float64 { return f.tension }

// Spread returns the neighbour coupling constant.
func (f *Field) Spread() float64 { return f.spread }

// Damping returns the exponential velocity damping rate per second.
func (f *Field) Damping() float64 { return f.damping }

// Parameters reports the field's tunables.
func (f *Field) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Geometry",
			Params: []core.Parameter{
				core.FloatParam("w", "Width", f.cfg.Width),
				core.FloatParam("still", "Still water", f.cfg.StillWater),
				core.FloatParam("spacing", "Point spacing", f.cfg.PointSpacing),
				core.IntParam("points", "Points", f.n),
			},
		},
		{
			Name: "Springs",
			Params: []core.Parameter{
				core.FloatParam("tension", "Tension", f.tension),
				core.FloatParam("spread", "Spread", f.spread),
				core.FloatParam("damping", "Damping", f.damping),
			},
		},
	}}
}

// ParameterControls lists the spring constants adjustable at runtime.
func (f *Field) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		core.FloatControl("tension", "Tension", 10, 0, maxTension),
		core.FloatControl("spread", "Spread", 5, 0, maxSpread),
		core.FloatControl("damping", "Damping", 0.5, 0, maxDamping),
	}
}

// SetFloatParameter updates a spring constant, clamping it into range.
func (f *Field) SetFloatParameter(key string, value float64) bool {
	if math.IsNaN(value) {
		return false
	}
	switch key {
	case "tension":
		f.tension = core.Clamp(value, 0, maxTension)
	case "spread":
		f.spread = core.Clamp(value, 0, maxSpread)
	case "damping":
		f.damping = core.Clamp(value, 0, maxDamping)
	default:
		return false
	}
	return true
}
