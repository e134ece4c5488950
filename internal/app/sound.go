package app

import (
	"log"

	"swell/internal/audio"
)

// SplashPlayer plays the sound of an impact.
type SplashPlayer interface {
	PlaySplash(magnitude float64)
}

type silent struct{}

func (silent) PlaySplash(float64) {}

// OpenSound starts the speaker unless mute is set. Audio failures are not
// fatal: the drivers fall back to a silent player. The returned close
// function is always safe to call.
func OpenSound(mute bool) (SplashPlayer, func()) {
	if mute {
		return silent{}, func() {}
	}
	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
		return silent{}, func() {}
	}
	return sm, sm.Close
}
