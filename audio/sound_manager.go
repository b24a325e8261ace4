package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"slimesurvivors/game"
)

const (
	sampleRate = beep.SampleRate(44100)

	// minRepeat keeps a burst of identical events from stacking into noise
	minRepeat = 40 * time.Millisecond
)

// SoundKind names one of the game's sound effects
type SoundKind int

const (
	SoundShoot SoundKind = iota
	SoundHurt
	SoundEnemyDeath
	SoundPlayerDeath
	SoundPickup
	SoundLevelUp
	soundKindCount
)

// SoundFor maps a simulation event to its sound effect
func SoundFor(kind game.EventKind) (SoundKind, bool) {
	switch kind {
	case game.EventShotFired:
		return SoundShoot, true
	case game.EventPlayerHurt:
		return SoundHurt, true
	case game.EventEnemyKilled:
		return SoundEnemyDeath, true
	case game.EventPlayerDied:
		return SoundPlayerDeath, true
	case game.EventPickupCollected:
		return SoundPickup, true
	case game.EventLevelUp:
		return SoundLevelUp, true
	default:
		return 0, false
	}
}

// SoundManager plays event sounds through a shared mixer. It implements
// game.EventSink and degrades to silence when no audio device is available.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	lastPlayed  [soundKindCount]time.Time
	log         zerolog.Logger
}

// NewSoundManager creates a new sound manager
func NewSoundManager(log zerolog.Logger) *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		log:   log,
	}
}

// Initialize sets up the speaker. Calling it twice is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops every playing sound
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted silences or restores event sounds
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Muted reports whether event sounds are silenced
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Notify plays the sound mapped to the event, if any
func (sm *SoundManager) Notify(ev game.Event) {
	if kind, ok := SoundFor(ev.Kind); ok {
		sm.Play(kind)
	}
}

// Play starts one sound effect
func (sm *SoundManager) Play(kind SoundKind) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || kind < 0 || kind >= soundKindCount {
		return
	}
	now := time.Now()
	if now.Sub(sm.lastPlayed[kind]) < minRepeat {
		return
	}
	sm.lastPlayed[kind] = now

	streamer := GetSoundEffect(kind, sampleRate)
	if streamer == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.log.Trace().Int("sound", int(kind)).Msg("play")
}
