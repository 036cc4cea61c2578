package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/vi-snake/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator stream
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack ramp and a release tail ending at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; zero or less is silent since Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateFedSound generates a bell whose pitch rises with the fruit's score
func CreateFedSound(cfg *AudioConfig, score int) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	freq := parameter.FedSoundBaseFreq + parameter.FedSoundFreqPerScore*float64(max(score, 0))

	fund := NewEnvelope(
		NewOscillator(freq, parameter.FedSoundDuration, WaveSine, rate),
		parameter.FedSoundDuration, parameter.FedSoundAttack, parameter.FedSoundFundamentalRelease, rate)
	over := NewEnvelope(
		NewOscillator(freq*2, parameter.FedSoundDuration, WaveSine, rate),
		parameter.FedSoundDuration, parameter.FedSoundAttack, parameter.FedSoundOvertoneRelease, rate)

	mixed := beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
	return newVolume(mixed, cfg.EffectVolumes[SoundFed]*cfg.MasterVolume)
}

// CreateDeadSound generates a falling two-note saw buzz
func CreateDeadSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.DeadSoundNoteDuration

	high := NewEnvelope(NewOscillator(parameter.DeadSoundHighFreq, d, WaveSaw, rate),
		d, parameter.DeadSoundAttack, parameter.DeadSoundRelease, rate)
	low := NewEnvelope(NewOscillator(parameter.DeadSoundLowFreq, d, WaveSaw, rate),
		d, parameter.DeadSoundAttack, parameter.DeadSoundRelease, rate)

	return newVolume(beep.Seq(high, low), cfg.EffectVolumes[SoundDead]*cfg.MasterVolume)
}

// CreateRotSound generates a soft noise whoosh
func CreateRotSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, parameter.RotSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, parameter.RotSoundDuration, parameter.RotSoundAttack, parameter.RotSoundRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundRot]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for a sound type, nil if unknown
func GetSoundEffect(st SoundType, cfg *AudioConfig, score int) beep.Streamer {
	switch st {
	case SoundFed:
		return CreateFedSound(cfg, score)
	case SoundDead:
		return CreateDeadSound(cfg)
	case SoundRot:
		return CreateRotSound(cfg)
	default:
		return nil
	}
}
