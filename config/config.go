// Package config loads vi-snake settings from a YAML file
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/parameter"
)

// DefaultPath is read when -config is not given; a missing default file is not an error
const DefaultPath = "vi-snake.yaml"

// Sentinel errors
var (
	ErrInvalidSize   = errors.New("invalid grid size")
	ErrInvalidSpeed  = errors.New("invalid speed")
	ErrInvalidVolume = errors.New("invalid volume")
)

// Config is the file format
type Config struct {
	Size  int                 `yaml:"size"` // 0 fits the terminal
	Seed  uint64              `yaml:"seed"` // 0 seeds from time
	Speed SpeedConfig         `yaml:"speed"`
	Keys  map[string][]string `yaml:"keys"` // action -> key names
	Audio AudioConfig         `yaml:"audio"`
}

// SpeedConfig controls the tick rate curve
type SpeedConfig struct {
	Base int `yaml:"base"`
	Step int `yaml:"step"`
}

// AudioConfig holds file-level audio settings, env vars still override them
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
	Volume  int  `yaml:"volume"` // 0-100
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Speed: SpeedConfig{
			Base: parameter.SpeedBase,
			Step: parameter.SpeedStep,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  int(parameter.AudioMasterVolume * 100),
		},
	}
}

// Load reads path over the defaults and validates the result
// When optional is set a missing file yields the defaults
func Load(path string, optional bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults, unknown fields are rejected
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Size < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, c.Size)
	}
	if c.Speed.Base <= 0 {
		return fmt.Errorf("%w: base %d must be positive", ErrInvalidSpeed, c.Speed.Base)
	}
	if c.Speed.Step < 0 {
		return fmt.Errorf("%w: step %d must not be negative", ErrInvalidSpeed, c.Speed.Step)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 100 {
		return fmt.Errorf("%w: %d not in 0-100", ErrInvalidVolume, c.Audio.Volume)
	}
	return nil
}

// SessionConfig builds the engine settings for an n×n grid
func (c *Config) SessionConfig(n int) engine.SessionConfig {
	sc := engine.DefaultSessionConfig(n)
	sc.Seed = c.Seed
	sc.BaseSpeed = c.Speed.Base
	sc.SpeedStep = c.Speed.Step
	return sc
}

// KeyTable builds the key bindings, defaults plus the file's overrides
func (c *Config) KeyTable() (*input.KeyTable, error) {
	kt, err := input.LoadKeyTable(c.Keys)
	if err != nil {
		return nil, fmt.Errorf("keys: %w", err)
	}
	return kt, nil
}

// AudioConfig builds the audio settings: file values, then environment overrides
func (c *Config) AudioConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = float64(c.Audio.Volume) / 100.0
	ac.ApplyEnv()
	return ac
}
