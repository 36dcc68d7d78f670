package journal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v2"

	"github.com/lixenwraith/simon/engine"
	"github.com/lixenwraith/simon/game"
)

// Sentinel errors
var (
	ErrUnknownInput = errors.New("unknown input")
	ErrOutOfOrder   = errors.New("entries out of order")
)

// maxSettle bounds how long replay runs after the last input
const maxSettle = 10 * time.Minute

// Entry is one recorded input at a millisecond offset from session start
type Entry struct {
	OffsetMs int64  `yaml:"at_ms"`
	Input    string `yaml:"input"`
	Color    string `yaml:"color,omitempty"`
}

// NewEntry encodes an input for the journal
func NewEntry(offset time.Duration, in game.Input) Entry {
	e := Entry{
		OffsetMs: offset.Milliseconds(),
		Input:    in.Kind.String(),
	}
	if in.Kind == game.InputColor {
		e.Color = in.Color.String()
	}
	return e
}

// Decode returns the input and its offset
func (e Entry) Decode() (game.Input, time.Duration, error) {
	kind, err := game.ParseInputKind(e.Input)
	if err != nil {
		return game.Input{}, 0, fmt.Errorf("%w: %q", ErrUnknownInput, e.Input)
	}
	in := game.Input{Kind: kind}
	if kind == game.InputColor {
		c, err := game.ParseColor(e.Color)
		if err != nil {
			return game.Input{}, 0, fmt.Errorf("%w: %v", ErrUnknownInput, err)
		}
		in.Color = c
	}
	return in, time.Duration(e.OffsetMs) * time.Millisecond, nil
}

// Session is a replayable record of one play session
type Session struct {
	ID      string    `yaml:"id"`
	Seed    int64     `yaml:"seed"`
	Started time.Time `yaml:"started"`
	Inputs  []Entry   `yaml:"inputs"`
}

// NewSession creates an empty session with a fresh id
func NewSession(seed int64, started time.Time) *Session {
	return &Session{
		ID:      uuid.NewString(),
		Seed:    seed,
		Started: started.UTC(),
	}
}

// Save writes the session as YAML
func (s *Session) Save(w io.Writer) error {
	out, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// SaveFile writes the session to path, replacing any existing file
func (s *Session) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create session file: %w", err)
	}
	if err := s.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a YAML session
func Load(r io.Reader) (*Session, error) {
	in, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	var s Session
	if err := yaml.Unmarshal(in, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if _, err := uuid.Parse(s.ID); err != nil {
		return nil, fmt.Errorf("session id %q: %w", s.ID, err)
	}
	return &s, nil
}

// LoadFile reads a YAML session from path
func LoadFile(path string) (*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open session file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Recorder appends inputs to a session with offsets from its creation time
type Recorder struct {
	mu      sync.Mutex
	session *Session
	clock   engine.TimeProvider
	start   time.Time
}

// NewRecorder starts recording into s
func NewRecorder(s *Session, clock engine.TimeProvider) *Recorder {
	return &Recorder{
		session: s,
		clock:   clock,
		start:   clock.Now(),
	}
}

// Record appends one input
func (r *Recorder) Record(in game.Input) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session.Inputs = append(r.session.Inputs, NewEntry(r.clock.Now().Sub(r.start), in))
}

// Session returns a copy of the recorded session
func (r *Recorder) Session() *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *r.session
	cp.Inputs = append([]Entry(nil), r.session.Inputs...)
	return &cp
}

// Replay runs the session against a fresh sequencer on a virtual clock and
// returns the effects it produced together with the final state
// Equal sessions always produce equal traces
func Replay(s *Session, opts ...game.Option) (*Trace, game.Snapshot, error) {
	clock := engine.NewVirtualClock(s.Started)
	trace := NewTrace(0, WithClock(clock))
	seq := game.NewSequencer(trace, trace, clock, game.NewRandomSource(s.Seed), opts...)

	var last time.Duration
	for i, e := range s.Inputs {
		in, at, err := e.Decode()
		if err != nil {
			return nil, game.Snapshot{}, fmt.Errorf("entry %d: %w", i, err)
		}
		if at < last {
			return nil, game.Snapshot{}, fmt.Errorf("entry %d at %s: %w", i, at, ErrOutOfOrder)
		}
		clock.Advance(at - last)
		last = at
		seq.Handle(in)
	}

	settle(clock)
	return trace, seq.Snapshot(), nil
}

// settle runs pending timers until the sequencer is idle or maxSettle elapses
func settle(clock *engine.VirtualClock) {
	var elapsed time.Duration
	for elapsed < maxSettle {
		next, ok := clock.NextDeadline()
		if !ok {
			return
		}
		clock.Advance(next)
		elapsed += next
	}
}
