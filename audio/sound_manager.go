package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-snake/game"
)

// SoundManager plays cues through a single mixer on the speaker
// Implements game.Listener so the session can drive it directly
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	ctrl        *beep.Ctrl
	initialized bool
}

// NewSoundManager creates a manager; nothing plays until Initialize succeeds
func NewSoundManager(cfg Config) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		cfg:   cfg,
		mixer: mixer,
		ctrl:  &beep.Ctrl{Streamer: mixer},
	}
}

// Initialize opens the speaker; disabled config is a successful no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(speakerBufferDur)); err != nil {
		return err
	}

	speaker.Play(sm.ctrl)
	sm.initialized = true
	return nil
}

// Close lets queued cues finish for up to closeDrainTimeout, then releases the speaker
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	deadline := time.Now().Add(closeDrainTimeout)
	for time.Now().Before(deadline) {
		speaker.Lock()
		pending := sm.mixer.Len()
		speaker.Unlock()
		if pending == 0 {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}

	speaker.Lock()
	sm.ctrl.Paused = true
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Play queues a cue; no-op when audio is not running
func (sm *SoundManager) Play(t SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s, err := GetSoundEffect(t, sm.cfg)
	if err != nil || s == nil {
		return
	}

	// Mixer is read by the speaker goroutine
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Ate plays the eat cue
func (sm *SoundManager) Ate(game.Snapshot) {
	sm.Play(SoundEat)
}

// Ended plays the cue matching the outcome; quitting is silent
func (sm *SoundManager) Ended(r game.Result) {
	if t, ok := outcomeSound(r.Outcome); ok {
		sm.Play(t)
	}
}

func outcomeSound(o game.Outcome) (SoundType, bool) {
	switch o {
	case game.OutcomeHazard:
		return SoundPoison, true
	case game.OutcomeSelfCollision:
		return SoundCrash, true
	case game.OutcomeBoardFull:
		return SoundFanfare, true
	default:
		return 0, false
	}
}
