package audio

import (
	"errors"

	"github.com/lixenwraith/vi-snake/parameter"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundFed  SoundType = iota // Fruit eaten
	SoundDead                  // Snake bit itself
	SoundRot                   // Fruit expired
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"fed", "dead", "rot"}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// AudioConfig holds audio output settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the stock audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundFed:  1.0,
			SoundDead: 0.8,
			SoundRot:  0.5,
		},
	}
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrUnknownSound   = errors.New("unknown sound type")
)
