package game

import "time"

// Presentation receives the sequencer's visual side effects
// Implementations must not call back into the Sequencer synchronously
type Presentation interface {
	// Blink lights a pad for the given duration and returns immediately
	Blink(c Color, d time.Duration)
	// ClearAll turns every pad off
	ClearAll()
	LockInput()
	UnlockInput()
	RenderScore(s Score)
	RenderPower(on bool)
	RenderStrict(on bool)
	// Flash announces a display flash; its frames follow through ShowMessage
	Flash(message string, repeats int, interval time.Duration)
	// ShowMessage replaces the display text
	ShowMessage(text string)
}

// Audio plays pad tones; playback is fire-and-forget
type Audio interface {
	Play(c Color)
}

// TimerCategory groups timers of which at most one may be pending
type TimerCategory int

const (
	TimerPlayback TimerCategory = iota // Sequence replay ticks and the unlock grace
	TimerDelay                         // Generation, retry and input debounce delays
	TimerFlash                         // Display flash frames
	timerCategoryCount
)

// TimerCategories lists every category, in cancellation order
var TimerCategories = [timerCategoryCount]TimerCategory{TimerPlayback, TimerDelay, TimerFlash}

func (c TimerCategory) String() string {
	switch c {
	case TimerPlayback:
		return "playback"
	case TimerDelay:
		return "delay"
	case TimerFlash:
		return "flash"
	default:
		return "unknown"
	}
}

// Scheduler runs callbacks later on the sequencer's thread
// Scheduling in a category supersedes whatever was pending in it
type Scheduler interface {
	After(cat TimerCategory, d time.Duration, fn func())
	Every(cat TimerCategory, d time.Duration, fn func())
	Cancel(cat TimerCategory)
}
