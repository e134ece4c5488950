package main

import (
	"fmt"
	"math"

	"swell/internal/scene"
	"swell/internal/weather"
	pcore "swell/pkg/core"
)

type paramSet struct {
	weather weather.State
	dt      float64
	tension float64
	damping float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("weather=%s dt=%.4f tension=%.0f damping=%.1f", p.weather, p.dt, p.tension, p.damping)
}

type scenarioResult struct {
	params     paramSet
	peak       float64
	peakStep   int
	peakEnergy float64
	final      float64
	bounded    bool
	history    []float64
	scene      *scene.Scene
}

type sweepOptions struct {
	steps       int
	impactEvery int
	impact      float64
	limit       float64
	seed        int64
	sampleEvery int
}

func buildSets(dts, tensions, dampings []float64) []paramSet {
	var sets []paramSet
	for _, w := range weather.States() {
		for _, dt := range dts {
			for _, tension := range tensions {
				for _, damping := range dampings {
					sets = append(sets, paramSet{weather: w, dt: dt, tension: tension, damping: damping})
				}
			}
		}
	}
	return sets
}

// runScenario drives one scene with periodic impacts at random positions and
// records how far the surface strays from the still-water line.
func runScenario(base scene.Config, params paramSet, opts sweepOptions) scenarioResult {
	cfg := base
	cfg.Weather = params.weather
	cfg.Water.Tension = params.tension
	cfg.Water.Damping = params.damping
	cfg.Seed = opts.seed

	s := scene.New(cfg)
	rng := pcore.NewRNG(opts.seed)
	field := s.Field()
	width := cfg.Water.Width

	res := scenarioResult{params: params, bounded: true, scene: s}
	sampleEvery := max(opts.sampleEvery, 1)
	for step := 0; step < opts.steps; step++ {
		if opts.impactEvery > 0 && step%opts.impactEvery == 0 {
			s.Impact(rng.Uniform(0, width), opts.impact)
		}
		s.AdvanceFrame(params.dt)

		amp := field.MaxAbsDisplacement()
		if math.IsNaN(amp) || math.IsInf(amp, 0) {
			res.bounded = false
			res.peak = math.Inf(1)
			res.peakStep = step + 1
			break
		}
		if amp > res.peak {
			res.peak = amp
			res.peakStep = step + 1
		}
		if e := field.Energy(); e > res.peakEnergy {
			res.peakEnergy = e
		}
		if step%sampleEvery == 0 {
			res.history = append(res.history, amp)
		}
		if amp > opts.limit {
			res.bounded = false
			break
		}
	}
	res.final = field.MaxAbsDisplacement()
	return res
}
