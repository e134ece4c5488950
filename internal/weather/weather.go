// Package weather defines the swell presets that drive the water surface.
package weather

import (
	"image/color"
	"strings"
)

// Profile bundles the two swell components and the gradient colors for one
// sea state. Profiles are built once and shared by pointer; treat them as
// read-only.
type Profile struct {
	Name string

	Amp1, Wave1, Speed1 float64
	Amp2, Wave2, Speed2 float64

	Top  color.RGBA
	Mid  color.RGBA
	Deep color.RGBA
}

// State enumerates the named presets in ring order.
type State uint8

const (
	Calm State = iota
	Breezy
	Stormy

	stateCount
)

var profiles = [stateCount]Profile{
	Calm: {
		Name: "calm",
		Amp1: 2, Wave1: 90, Speed1: 0.10,
		Amp2: 1, Wave2: 45, Speed2: 0.16,
		Top:  rgb(84, 175, 245),
		Mid:  rgb(25, 117, 202),
		Deep: rgb(8, 63, 158),
	},
	Breezy: {
		Name: "breezy",
		Amp1: 4, Wave1: 60, Speed1: 0.25,
		Amp2: 2, Wave2: 30, Speed2: 0.31,
		Top:  rgb(76, 165, 225),
		Mid:  rgb(20, 102, 188),
		Deep: rgb(6, 52, 152),
	},
	Stormy: {
		Name: "stormy",
		Amp1: 7, Wave1: 40, Speed1: 0.45,
		Amp2: 3, Wave2: 22, Speed2: 0.60,
		Top:  rgb(160, 200, 235),
		Mid:  rgb(35, 80, 150),
		Deep: rgb(10, 35, 110),
	},
}

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 255} }

// Profile returns the shared preset for s. Unknown states fall back to Calm.
func (s State) Profile() *Profile {
	if s >= stateCount {
		s = Calm
	}
	return &profiles[s]
}

// Next returns the following state in the ring Calm -> Breezy -> Stormy -> Calm.
func (s State) Next() State {
	if s >= stateCount {
		return Calm
	}
	return (s + 1) % stateCount
}

// String returns the preset name.
func (s State) String() string { return s.Profile().Name }

// States lists every preset in ring order.
func States() []State {
	return []State{Calm, Breezy, Stormy}
}

// Parse resolves a preset by case-insensitive name.
func Parse(name string) (State, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range States() {
		if s.Profile().Name == name {
			return s, true
		}
	}
	return Calm, false
}

// Colors returns the top, mid and deep gradient colors.
func (p *Profile) Colors() (top, mid, deep color.RGBA) {
	return p.Top, p.Mid, p.Deep
}

// Swell evaluates the forcing curve at horizontal position x for the given
// phases.
func (p *Profile) Swell(x, phase1, phase2 float64) float64 {
	return p.Amp1*sinAt(x, p.Wave1, phase1) + p.Amp2*sinAt(x, p.Wave2, phase2)
}

// Amplitude is the largest magnitude the swell curve can reach.
func (p *Profile) Amplitude() float64 { return abs(p.Amp1) + abs(p.Amp2) }
