package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/vi-snake/parameter"
)

// drain streams s to completion and returns every sample
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("Streamer never drained")
	return nil
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	waves := []struct {
		name string
		wave WaveType
	}{
		{"Sine", WaveSine},
		{"Square", WaveSquare},
		{"Saw", WaveSaw},
		{"Noise", WaveNoise},
	}

	for _, w := range waves {
		t.Run(w.name, func(t *testing.T) {
			samples := drain(t, NewOscillator(440, 100*time.Millisecond, w.wave, rate))
			if len(samples) != rate.N(100*time.Millisecond) {
				t.Errorf("Expected %d samples, got %d", rate.N(100*time.Millisecond), len(samples))
			}
			for i, s := range samples {
				if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
					t.Fatalf("Sample %d out of range or not mono: %v", i, s)
				}
			}
		})
	}
}

func TestOscillatorSquareLevels(t *testing.T) {
	samples := drain(t, NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100)))
	for i, s := range samples {
		if s[0] != 1 && s[0] != -1 {
			t.Fatalf("Square sample %d = %f, want ±1", i, s[0])
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	osc := NewOscillator(0, d, WaveSquare, rate) // phase stays 0: constant +1
	samples := drain(t, NewEnvelope(osc, d, 10*time.Millisecond, 20*time.Millisecond, rate))

	if len(samples) != 100 {
		t.Fatalf("Expected 100 samples, got %d", len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("Attack should start silent, got %f", samples[0][0])
	}
	if samples[5][0] != 0.5 {
		t.Errorf("Mid-attack level = %f, want 0.5", samples[5][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("Sustain level = %f, want 1", samples[50][0])
	}
	if samples[90][0] != 0.5 {
		t.Errorf("Mid-release level = %f, want 0.5", samples[90][0])
	}
	if last := samples[99][0]; last <= 0 || last > 0.1 {
		t.Errorf("Final sample = %f, want a small positive tail", last)
	}
}

func TestSoundEffectLengths(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	tests := []struct {
		name string
		st   SoundType
		want int
	}{
		{"Fed", SoundFed, rate.N(parameter.FedSoundDuration)},
		{"Dead", SoundDead, 2 * rate.N(parameter.DeadSoundNoteDuration)},
		{"Rot", SoundRot, rate.N(parameter.RotSoundDuration)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := GetSoundEffect(tt.st, cfg, 3)
			if s == nil {
				t.Fatal("Expected a streamer")
			}
			if got := len(drain(t, s)); got != tt.want {
				t.Errorf("Expected %d samples, got %d", tt.want, got)
			}
		})
	}

	if GetSoundEffect(soundTypeCount, cfg, 0) != nil {
		t.Error("Unknown sound type should have no streamer")
	}
}

func TestFedSoundPitchFollowsScore(t *testing.T) {
	cfg := DefaultAudioConfig()
	low := drain(t, CreateFedSound(cfg, 1))
	high := drain(t, CreateFedSound(cfg, 11))

	if crossings(high) <= crossings(low) {
		t.Errorf("Higher score should ring higher: crossings %d vs %d", crossings(high), crossings(low))
	}
}

func crossings(samples [][2]float64) int {
	n := 0
	for i := 1; i < len(samples); i++ {
		if math.Signbit(samples[i-1][0]) != math.Signbit(samples[i][0]) {
			n++
		}
	}
	return n
}

func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0

	for st := SoundType(0); st < soundTypeCount; st++ {
		for i, s := range drain(t, GetSoundEffect(st, cfg, 1)) {
			if s[0] != 0 || s[1] != 0 {
				t.Fatalf("%s sample %d = %v, want silence", st, i, s)
			}
		}
	}
}
