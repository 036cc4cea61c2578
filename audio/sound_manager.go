package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/parameter"
)

// SoundManager plays game cues through the speaker and implements engine.EventHandler
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager, nil cfg selects defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker, a no-op when audio is disabled or already running
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup silences pending sounds and detaches the mixer
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker Close for this use, clearing the mixer leaves it silent
	sm.initialized = false
}

// Play queues a sound effect, score only affects SoundFed
func (sm *SoundManager) Play(st SoundType, score int) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}

	streamer := GetSoundEffect(st, sm.cfg, score)
	if streamer == nil {
		return fmt.Errorf("%w: %d", ErrUnknownSound, st)
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return nil
}

// HandleEvent maps game events to sounds
func (sm *SoundManager) HandleEvent(ev engine.GameEvent) {
	switch ev.Type {
	case engine.EventFed:
		_ = sm.Play(SoundFed, ev.Fruit.Score)
	case engine.EventDead:
		_ = sm.Play(SoundDead, 0)
	case engine.EventRot:
		_ = sm.Play(SoundRot, 0)
	}
}

// EventTypes returns the events this manager reacts to
func (sm *SoundManager) EventTypes() []engine.EventType {
	return []engine.EventType{engine.EventFed, engine.EventDead, engine.EventRot}
}
