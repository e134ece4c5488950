// Package audio synthesizes the splash sound played on impacts.
package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
)

const (
	plopBaseFreq  = 520.0
	plopSweep     = 7.0
	plopDecay     = 9.0
	hissDecay     = 28.0
	hissLevel     = 0.35
	maxSplashGain = 0.6
)

// SplashDuration is how long the sound for an impact of the given magnitude
// rings.
func SplashDuration(magnitude float64) time.Duration {
	ms := 220 + 4*math.Min(math.Abs(magnitude), 100)
	return time.Duration(ms) * time.Millisecond
}

// SplashGenerator streams a falling "plop" tone over a short burst of hiss.
// Heavier impacts are louder and lower.
type SplashGenerator struct {
	sr    beep.SampleRate
	pos   int
	phase float64
	freq  float64
	gain  float64
	noise *rand.Rand
}

// NewSplashGenerator creates a generator for one impact.
func NewSplashGenerator(sr beep.SampleRate, magnitude float64, seed uint64) *SplashGenerator {
	m := math.Min(math.Abs(magnitude), 100) / 100
	return &SplashGenerator{
		sr:    sr,
		freq:  plopBaseFreq * (1.2 - 0.5*m),
		gain:  maxSplashGain * (0.35 + 0.65*m),
		noise: rand.New(rand.NewPCG(seed, 0x5eed)),
	}
}

func (g *SplashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		freq := g.freq * math.Exp(-plopSweep*t)
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		tone := math.Sin(g.phase) * math.Exp(-plopDecay*t)
		hiss := (2*g.noise.Float64() - 1) * hissLevel * math.Exp(-hissDecay*t)

		sample := g.gain * (tone + hiss)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SplashGenerator) Err() error {
	return nil
}

// Splash returns a finite streamer for one impact.
func Splash(sr beep.SampleRate, magnitude float64, seed uint64) beep.Streamer {
	return beep.Take(sr.N(SplashDuration(magnitude)), NewSplashGenerator(sr, magnitude, seed))
}
