package main

import (
	"testing"

	"swell/internal/scene"
	"swell/internal/weather"
)

func TestBuildSetsCoversEveryWeather(t *testing.T) {
	sets := buildSets([]float64{1.0 / 60, 0.25}, []float64{160}, []float64{9})
	if len(sets) != 2*len(weather.States()) {
		t.Fatalf("expected %d sets, got %d", 2*len(weather.States()), len(sets))
	}
	seen := map[weather.State]int{}
	for _, s := range sets {
		seen[s.weather]++
	}
	for _, w := range weather.States() {
		if seen[w] != 2 {
			t.Fatalf("weather %s appears %d times", w, seen[w])
		}
	}
}

func TestDefaultsStayBoundedUnderImpacts(t *testing.T) {
	opts := sweepOptions{steps: 600, impactEvery: 30, impact: scene.DefaultImpact, limit: 80, seed: 3, sampleEvery: 10}
	for _, dt := range []float64{1.0 / 60, 0.25} {
		p := paramSet{weather: weather.Stormy, dt: dt, tension: 160, damping: 9}
		res := runScenario(scene.DefaultConfig(), p, opts)
		if !res.bounded {
			t.Fatalf("%s blew up at step %d (peak %.2f)", p, res.peakStep, res.peak)
		}
		if res.peak <= 0 || len(res.history) != 60 {
			t.Fatalf("%s: peak %.2f history %d", p, res.peak, len(res.history))
		}
	}
}

func TestRunScenarioIsDeterministic(t *testing.T) {
	opts := sweepOptions{steps: 200, impactEvery: 20, impact: 50, limit: 80, seed: 11, sampleEvery: 1}
	p := paramSet{weather: weather.Breezy, dt: 1.0 / 30, tension: 160, damping: 9}
	a := runScenario(scene.DefaultConfig(), p, opts)
	b := runScenario(scene.DefaultConfig(), p, opts)
	if a.peak != b.peak || a.peakStep != b.peakStep || a.final != b.final {
		t.Fatalf("runs differ: %+v vs %+v", a.peak, b.peak)
	}
}
