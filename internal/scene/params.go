package scene

import (
	"strconv"

	"swell/internal/core"
)

// Parameters merges the scene, field and splash tunables.
func (s *Scene) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{{
		Name: "Scene",
		Params: []core.Parameter{
			core.StringParam("weather", "Weather", s.state.String()),
			core.Int64Param("seed", "Seed", s.seed),
			core.FloatParam("elapsed", "Elapsed", s.elapsed),
			core.Parameter{
				Key:   "frames",
				Label: "Frames",
				Type:  core.ParamTypeInt,
				Value: strconv.FormatUint(s.frames, 10),
			},
		},
	}}
	groups = append(groups, s.field.Parameters().Groups...)
	groups = append(groups, s.splashes.Parameters().Groups...)
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists every runtime-adjustable value.
func (s *Scene) ParameterControls() []core.ParameterControl {
	return append(s.field.ParameterControls(), s.splashes.ParameterControls()...)
}

// SetFloatParameter routes to the field first, then the splash manager.
func (s *Scene) SetFloatParameter(key string, value float64) bool {
	return s.field.SetFloatParameter(key, value) || s.splashes.SetFloatParameter(key, value)
}

// SetIntParameter routes integer tunables to the splash manager.
func (s *Scene) SetIntParameter(key string, value int) bool {
	return s.splashes.SetIntParameter(key, value)
}
