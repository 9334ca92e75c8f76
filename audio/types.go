// Package audio synthesizes the game's sound cues with beep.
// Every operation degrades to a no-op when the speaker cannot be opened.
package audio

import "time"

// SoundType identifies a cue
type SoundType int

const (
	SoundEat      SoundType = iota // food eaten
	SoundPoison                    // hazard contact
	SoundCrash                     // self-collision
	SoundFanfare                   // board filled
)

// String returns the cue name used in logs
func (s SoundType) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundPoison:
		return "poison"
	case SoundCrash:
		return "crash"
	case SoundFanfare:
		return "fanfare"
	default:
		return "unknown"
	}
}

// Config holds audio settings
type Config struct {
	Enabled    bool
	Volume     float64 // 0.0-1.0
	SampleRate int
}

// DefaultConfig returns audio on at 50% volume
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     0.5,
		SampleRate: 44100,
	}
}

// Cue timings
const (
	eatNoteDuration  = 60 * time.Millisecond
	eatAttack        = 5 * time.Millisecond
	eatRelease       = 40 * time.Millisecond
	poisonDuration   = 350 * time.Millisecond
	poisonAttack     = 10 * time.Millisecond
	poisonRelease    = 250 * time.Millisecond
	crashDuration    = 250 * time.Millisecond
	crashAttack      = 5 * time.Millisecond
	crashRelease     = 180 * time.Millisecond
	fanfareNote      = 120 * time.Millisecond
	fanfareAttack    = 10 * time.Millisecond
	fanfareRelease   = 60 * time.Millisecond
	speakerBufferDur = 100 * time.Millisecond

	closeDrainTimeout = 600 * time.Millisecond
)
