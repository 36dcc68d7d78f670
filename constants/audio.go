package constants

import "time"

// Audio defaults
const (
	// DefaultSampleRate is used when no override is configured
	DefaultSampleRate = 48000

	// DefaultMasterVolume is the 0.0-1.0 gain applied to every tone
	DefaultMasterVolume = 0.6

	// SpeakerBufferDuration sizes the speaker buffer
	SpeakerBufferDuration = 100 * time.Millisecond
)

// Pad tone timing
const (
	// ToneDuration matches the pad blink so sound and light end together
	ToneDuration = BlinkDuration
	ToneAttack   = 10 * time.Millisecond
	ToneRelease  = 120 * time.Millisecond
)

// Pad tone frequencies (Hz), the classic four-pad tuning
const (
	ToneGreen  = 415.3
	ToneRed    = 310.0
	ToneYellow = 252.0
	ToneBlue   = 209.0
)

