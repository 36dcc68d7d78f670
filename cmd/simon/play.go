package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/simon/audio"
	"github.com/lixenwraith/simon/config"
	"github.com/lixenwraith/simon/constants"
	"github.com/lixenwraith/simon/core"
	"github.com/lixenwraith/simon/engine"
	"github.com/lixenwraith/simon/game"
	"github.com/lixenwraith/simon/input"
	"github.com/lixenwraith/simon/journal"
	"github.com/lixenwraith/simon/render"
)

// session wires one game: sequencer on the loop, presenter, audio and journal
type session struct {
	loop      *engine.Loop
	seq       *game.Sequencer
	presenter *render.TerminalPresenter
	sound     *audio.SoundManager
	trace     *journal.Trace
	recorder  *journal.Recorder
	strict    bool
	log       logrus.FieldLogger
}

func newSession(screen tcell.Screen, cfg *config.Config, legend string) *session {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	js := journal.NewSession(seed, time.Now())
	log := logrus.WithField("session", js.ID)

	s := &session{
		loop:      engine.NewLoop(log),
		presenter: render.NewTerminalPresenter(screen, render.WithLegend(legend)),
		recorder:  journal.NewRecorder(js, engine.NewMonotonicTimeProvider()),
		strict:    cfg.Strict,
		log:       log,
	}

	var sound game.Audio = audio.Silent{}
	s.sound = audio.NewSoundManager(cfg.ToAudioConfig())
	if err := s.sound.Initialize(); err != nil {
		log.WithError(err).Warn("continuing without audio")
	} else {
		sound = s.sound
	}

	s.trace = journal.NewTrace(constants.TraceCapacity, journal.Tee(s.presenter, sound))
	s.seq = game.NewSequencer(s.trace, s.trace, s.loop, game.NewRandomSource(seed),
		game.WithLogger(log),
		game.WithTransitionHook(func(from, to game.Phase) {
			s.presenter.SetStatus(to.String())
		}),
	)
	s.presenter.SetStatus(s.seq.Phase().String())

	log.WithField("seed", seed).Info("session created")
	return s
}

// dispatch records and applies one input; runs on the loop goroutine
func (s *session) dispatch(in game.Input) {
	s.recorder.Record(in)
	s.seq.Handle(in)

	// Strict preference applies on every power-up and is journaled as a press
	if in.Kind == game.InputPower && s.strict {
		if snap := s.seq.Snapshot(); snap.PowerOn && !snap.StrictMode {
			s.dispatch(game.StrictPressed())
		}
	}
}

// close stops timers and audio and returns the recorded journal
func (s *session) close() *journal.Session {
	s.loop.Stop()
	s.sound.Cleanup()
	s.log.WithField("blinks", s.trace.Count(journal.EffectBlink)).Debug("session closed")
	return s.recorder.Session()
}

// runGame owns the terminal until the player quits
func runGame(cfg *config.Config, opts playOptions) error {
	keys := input.DefaultKeyMap()
	if err := keys.Apply(cfg.Keys); err != nil {
		return fmt.Errorf("key bindings: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	core.SetCrashTerminal(screen)
	defer func() {
		screen.Fini()
		core.SetCrashTerminal(nil)
	}()

	s := newSession(screen, cfg, keys.Legend())
	s.loop.Start()
	translator := input.NewTranslator(keys, s.presenter)

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	core.Go(func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	ticker := time.NewTicker(constants.FrameInterval)
	defer ticker.Stop()
	s.presenter.Draw(time.Now())

loop:
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				break loop
			}
			in, action := translator.Translate(ev)
			switch action {
			case input.ActionDispatch:
				s.loop.Post(func() { s.dispatch(in) })
			case input.ActionQuit:
				break loop
			case input.ActionRedraw:
				screen.Sync()
			case input.ActionMute:
				enabled := s.sound.ToggleMute()
				s.log.WithField("sound", enabled).Debug("mute toggled")
			}
		case now := <-ticker.C:
			s.presenter.Draw(now)
		}
	}

	return saveJournal(s.close(), cfg, opts)
}

// saveJournal writes the session to --record, or into the configured journal
// directory; nothing is written when neither is set
func saveJournal(js *journal.Session, cfg *config.Config, opts playOptions) error {
	path := opts.record
	if path == "" && cfg.Journal != "" {
		path = filepath.Join(cfg.Journal, js.ID+".yaml")
	}
	if path == "" {
		return nil
	}
	if err := js.SaveFile(path); err != nil {
		return fmt.Errorf("save journal: %w", err)
	}
	logrus.WithFields(logrus.Fields{"path": path, "inputs": len(js.Inputs)}).Info("journal saved")
	return nil
}
