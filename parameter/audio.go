package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 100 * time.Millisecond
	AudioMasterVolume   = 0.5
)

// Fed Sound: two-partial bell, pitch rises with fruit score
const (
	FedSoundDuration           = 400 * time.Millisecond
	FedSoundAttack             = 5 * time.Millisecond
	FedSoundFundamentalRelease = 350 * time.Millisecond
	FedSoundOvertoneRelease    = 150 * time.Millisecond
	FedSoundBaseFreq           = 660.0
	FedSoundFreqPerScore       = 40.0
)

// Dead Sound: falling saw pair
const (
	DeadSoundNoteDuration = 250 * time.Millisecond
	DeadSoundAttack       = 5 * time.Millisecond
	DeadSoundRelease      = 120 * time.Millisecond
	DeadSoundHighFreq     = 220.0
	DeadSoundLowFreq      = 110.0
)

// Rot Sound: short noise whoosh
const (
	RotSoundDuration = 200 * time.Millisecond
	RotSoundAttack   = 80 * time.Millisecond
	RotSoundRelease  = 100 * time.Millisecond
)
