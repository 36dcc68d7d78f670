package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/simon/constants"
	"github.com/lixenwraith/simon/game"
)

// SoundManager plays pad tones through the system speaker
// It implements game.Audio and degrades to silence when no device is available
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	cache       *toneCache
	initialized bool

	muted  atomic.Bool
	played atomic.Uint64
}

// NewSoundManager creates a sound manager; nil selects DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	cfg.Normalize()
	sm := &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
		cache:  newToneCache(cfg),
	}
	sm.muted.Store(!cfg.Enabled)
	return sm
}

// Initialize sets up the speaker and starts the mixer
// Disabled configurations succeed without touching the device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.config.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.SpeakerBufferDuration)); err != nil {
		return fmt.Errorf("%w: %v", ErrAudioUnavailable, err)
	}

	sm.cache.preload()
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep doesn't provide a Close() for the shared speaker; an empty mixer is silent
	sm.initialized = false
}

// Play implements game.Audio
func (sm *SoundManager) Play(c game.Color) {
	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	tone := sm.cache.get(c)
	if tone == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(tone)
	speaker.Unlock()
	sm.played.Add(1)
}

// ToggleMute toggles mute state, returns true if sound is now enabled
func (sm *SoundManager) ToggleMute() bool {
	newMute := !sm.muted.Load()
	sm.muted.Store(newMute)
	return !newMute
}

// IsMuted returns current mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// IsEnabled returns true if initialized and unmuted
func (sm *SoundManager) IsEnabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && !sm.muted.Load()
}

// Played returns how many tones were queued
func (sm *SoundManager) Played() uint64 {
	return sm.played.Load()
}

// Silent is a game.Audio that plays nothing
type Silent struct{}

// Play implements game.Audio
func (Silent) Play(game.Color) {}
