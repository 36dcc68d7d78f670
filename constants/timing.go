package constants

import "time"

// Display flash timing
const (
	// FlashRepeats is how many blank/message cycles a display flash runs
	FlashRepeats = 2

	// FlashInterval is the sub-interval between blank and message frames
	FlashInterval = 200 * time.Millisecond

	// FlashStartMessage is shown while a round is being prepared
	FlashStartMessage = "--"

	// FlashWarningMessage is shown after a wrong color press
	FlashWarningMessage = "!!"
)

// Sequencer timing
const (
	// StartDelay is the wait between pressing start and the first generation
	// Must exceed FlashRepeats*2*FlashInterval so the start flash completes first
	StartDelay = 1500 * time.Millisecond

	// PlaybackInterval is the tick between two colors of a replayed sequence
	PlaybackInterval = 1250 * time.Millisecond

	// BlinkDuration is how long a pad stays lit, independent of PlaybackInterval
	BlinkDuration = 500 * time.Millisecond

	// UnlockGrace lets the final blink of a playback finish before input opens
	UnlockGrace = 1000 * time.Millisecond

	// CorrectInputDelay is the debounce before input reopens after a correct press
	CorrectInputDelay = 500 * time.Millisecond

	// RetryDelay is the wait after a wrong press before replay or regeneration
	RetryDelay = 1500 * time.Millisecond

	// StrictReflashDelay is when the start flash repeats after a strict-mode warning
	StrictReflashDelay = 1000 * time.Millisecond
)
