package game

import (
	"time"

	"github.com/lixenwraith/simon/constants"
)

// flashFrame is one display change at an offset from the start of a timeline
type flashFrame struct {
	at  time.Duration
	run func()
}

// flashFrames expands a display flash into alternating blank/message frames
// starting at offset: blank at interval*(2i+1), message at interval*(2i+2)
func (s *Sequencer) flashFrames(offset time.Duration, message string, repeats int, interval time.Duration) []flashFrame {
	frames := make([]flashFrame, 0, 2*repeats+1)
	frames = append(frames, flashFrame{at: offset, run: func() {
		s.presenter.Flash(message, repeats, interval)
	}})
	for i := 0; i < repeats; i++ {
		step := time.Duration(2*i) * interval
		frames = append(frames,
			flashFrame{at: offset + interval + step, run: func() { s.presenter.ShowMessage("") }},
			flashFrame{at: offset + 2*interval + step, run: func() { s.presenter.ShowMessage(message) }},
		)
	}
	return frames
}

// runFlash plays frames in order, keeping a single pending flash timer
// Frames must be sorted by offset
func (s *Sequencer) runFlash(frames []flashFrame) {
	s.sched.Cancel(TimerFlash)

	var elapsed time.Duration
	var step func(i int)
	step = func(i int) {
		for i < len(frames) && frames[i].at <= elapsed {
			frames[i].run()
			i++
		}
		if i == len(frames) {
			return
		}
		next := frames[i].at
		s.sched.After(TimerFlash, next-elapsed, func() {
			elapsed = next
			step(i)
		})
	}
	step(0)
}

func (s *Sequencer) flashStart() {
	s.runFlash(s.flashFrames(0, constants.FlashStartMessage, constants.FlashRepeats, constants.FlashInterval))
}

// flashWarning flashes the mismatch marker; strict mode follows it with the start flash
func (s *Sequencer) flashWarning() {
	frames := s.flashFrames(0, constants.FlashWarningMessage, constants.FlashRepeats, constants.FlashInterval)
	if s.state.StrictMode {
		frames = append(frames, s.flashFrames(constants.StrictReflashDelay, constants.FlashStartMessage, constants.FlashRepeats, constants.FlashInterval)...)
	}
	s.runFlash(frames)
}
