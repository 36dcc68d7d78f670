package game

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/simon/constants"
)

// Sequencer drives a Simon round: it grows the sequence, replays it with
// timed blinks and tones, validates presses and applies the failure policy
// All methods must be called from the scheduler's thread
type Sequencer struct {
	state  State
	phase  Phase
	locked bool

	presenter Presentation
	audio     Audio
	sched     Scheduler
	source    ColorSource

	log          logrus.FieldLogger
	onTransition func(from, to Phase)
}

// Option configures a Sequencer
type Option func(*Sequencer)

// WithLogger routes sequencer diagnostics to l
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Sequencer) {
		if l != nil {
			s.log = l
		}
	}
}

// WithTransitionHook registers fn to observe every phase change
func WithTransitionHook(fn func(from, to Phase)) Option {
	return func(s *Sequencer) {
		s.onTransition = fn
	}
}

// NewSequencer creates a powered-off sequencer with input locked
func NewSequencer(p Presentation, a Audio, sched Scheduler, src ColorSource, opts ...Option) *Sequencer {
	s := &Sequencer{
		phase:     PhaseOff,
		presenter: p,
		audio:     a,
		sched:     sched,
		source:    src,
		log:       logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.lockInput()
	return s
}

// Phase returns the current phase
func (s *Sequencer) Phase() Phase {
	return s.phase
}

// InputLocked reports whether color presses are currently ignored
func (s *Sequencer) InputLocked() bool {
	return s.locked
}

// Snapshot returns a detached copy of the game state
func (s *Sequencer) Snapshot() Snapshot {
	return s.state.snapshot(s.phase, s.locked)
}

// Handle dispatches one control-surface event
// Events not allowed in the current state are dropped silently
func (s *Sequencer) Handle(in Input) {
	switch in.Kind {
	case InputPower:
		if s.state.PowerOn {
			s.TurnOff()
		} else {
			s.TurnOn()
		}
	case InputStart:
		s.Start()
	case InputStrict:
		s.ToggleStrict()
	case InputColor:
		s.InputColor(in.Color)
	default:
		s.log.WithField("input", in.String()).Debug("unknown input ignored")
	}
}

// TurnOn powers the device; no-op when already on
func (s *Sequencer) TurnOn() {
	if s.state.PowerOn {
		return
	}
	s.state.PowerOn = true
	s.presenter.RenderPower(true)
	s.setPhase(PhaseReady)
}

// TurnOff fully resets the device and clears strict mode; no-op when already off
func (s *Sequencer) TurnOff() {
	if !s.state.PowerOn {
		return
	}
	s.reset()
	s.lockInput()
	s.state.StrictMode = false
	s.state.PowerOn = false
	s.presenter.RenderStrict(false)
	s.presenter.RenderPower(false)
	s.setPhase(PhaseOff)
}

// Start discards any game in progress and schedules the first round
func (s *Sequencer) Start() {
	if !s.state.PowerOn {
		s.log.Debug("start ignored while powered off")
		return
	}
	s.lockInput()
	s.reset()
	s.flashStart()
	s.sched.After(TimerDelay, constants.StartDelay, s.generate)
	s.setPhase(PhasePlayingBack)
}

// ToggleStrict flips strict mode; no-op while powered off
func (s *Sequencer) ToggleStrict() {
	if !s.state.PowerOn {
		return
	}
	s.state.StrictMode = !s.state.StrictMode
	s.presenter.RenderStrict(s.state.StrictMode)
}

// InputColor validates a pad press against the expected position
// Presses while input is locked are ignored
func (s *Sequencer) InputColor(c Color) {
	if !s.state.PowerOn || s.locked || !c.Valid() {
		s.log.WithField("color", c.String()).Debug("press ignored")
		return
	}

	s.blink(c)
	s.audio.Play(c)
	// Debounce until this press is resolved
	s.lockInput()

	if s.state.ExpectedIndex < len(s.state.Sequence) && s.state.Sequence[s.state.ExpectedIndex] == c {
		s.correctInput()
	} else {
		s.incorrectInput()
	}
}

// generate appends one color and replays the whole sequence
func (s *Sequencer) generate() {
	c := s.source.Next()
	s.lockInput()
	s.state.Sequence = append(s.state.Sequence, c)
	s.state.Score = NewScore(len(s.state.Sequence))
	s.log.WithFields(logrus.Fields{"color": c.String(), "length": len(s.state.Sequence)}).Debug("sequence extended")
	s.playSequence()
}

// playSequence replays the sequence from the first element on the playback timer
func (s *Sequencer) playSequence() {
	index := 0
	s.setPhase(PhasePlayingBack)
	s.sched.Every(TimerPlayback, constants.PlaybackInterval, func() {
		if index >= len(s.state.Sequence) {
			s.endSequence()
			return
		}
		c := s.state.Sequence[index]
		s.audio.Play(c)
		s.blink(c)
		index++
		if index == len(s.state.Sequence) {
			s.endSequence()
		}
	})
}

// endSequence replaces the playback ticker with the unlock grace timer
func (s *Sequencer) endSequence() {
	s.sched.After(TimerPlayback, constants.UnlockGrace, func() {
		s.unlockInput()
		if s.state.PowerOn {
			s.setPhase(PhaseAwaitingInput)
		}
	})
}

func (s *Sequencer) correctInput() {
	s.state.ExpectedIndex++
	s.sched.After(TimerDelay, constants.CorrectInputDelay, func() {
		s.unlockInput()
		if s.state.ExpectedIndex == len(s.state.Sequence) {
			s.generate()
			s.state.ExpectedIndex = 0
		}
	})
}

func (s *Sequencer) incorrectInput() {
	s.setPhase(PhaseFailing)
	s.flashWarning()
	s.state.ExpectedIndex = 0
	if s.state.StrictMode {
		s.state.Sequence = nil
		s.state.Score = Score{}
		s.sched.After(TimerDelay, constants.RetryDelay, s.generate)
	} else {
		s.sched.After(TimerDelay, constants.RetryDelay, s.playSequence)
	}
}

// reset clears the round and cancels every pending timer
func (s *Sequencer) reset() {
	s.state.reset()
	for _, cat := range TimerCategories {
		s.sched.Cancel(cat)
	}
	s.presenter.ClearAll()
}

func (s *Sequencer) blink(c Color) {
	s.presenter.RenderScore(s.state.Score)
	s.presenter.Blink(c, constants.BlinkDuration)
}

func (s *Sequencer) lockInput() {
	s.locked = true
	s.presenter.LockInput()
}

// unlockInput reopens input only while powered
func (s *Sequencer) unlockInput() {
	if !s.state.PowerOn {
		return
	}
	s.locked = false
	s.presenter.UnlockInput()
}

func (s *Sequencer) setPhase(to Phase) {
	from := s.phase
	if from == to {
		return
	}
	s.phase = to
	s.log.WithFields(logrus.Fields{"from": from.String(), "to": to.String()}).Debug("phase transition")
	if s.onTransition != nil {
		s.onTransition(from, to)
	}
}
