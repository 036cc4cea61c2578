package audio

import (
	"encoding/json"
	"os"
	"strconv"
)

// Environment variables read by LoadAudioConfig
const (
	EnvAudioEnabled = "VI_SNAKE_AUDIO_ENABLED"
	EnvMasterVolume = "VI_SNAKE_MASTER_VOLUME"
	EnvSFXVolumes   = "VI_SNAKE_SFX_VOLUMES"
	EnvSampleRate   = "VI_SNAKE_SAMPLE_RATE"
)

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.ApplyEnv()
	return cfg
}

// ApplyEnv overrides cfg with any audio environment variables that are set and valid
func (cfg *AudioConfig) ApplyEnv() {
	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampVolume(float64(val) / 100.0)
		}
	}

	// e.g. {"fed":1.0,"rot":0.2}
	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			if cfg.EffectVolumes == nil {
				cfg.EffectVolumes = make(map[SoundType]float64, soundTypeCount)
			}
			for st := SoundType(0); st < soundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok {
					cfg.EffectVolumes[st] = clampVolume(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}
}

func clampVolume(v float64) float64 {
	return max(0, min(1, v))
}
