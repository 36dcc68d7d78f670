package journal

import (
	"fmt"
	"sync"
	"time"

	"github.com/gammazero/deque"

	"github.com/lixenwraith/simon/engine"
	"github.com/lixenwraith/simon/game"
)

// EffectKind identifies a presentation or audio call
type EffectKind int

const (
	EffectBlink EffectKind = iota
	EffectClearAll
	EffectLock
	EffectUnlock
	EffectScore
	EffectPower
	EffectStrict
	EffectFlash
	EffectMessage
	EffectTone
)

func (k EffectKind) String() string {
	switch k {
	case EffectBlink:
		return "blink"
	case EffectClearAll:
		return "clear"
	case EffectLock:
		return "lock"
	case EffectUnlock:
		return "unlock"
	case EffectScore:
		return "score"
	case EffectPower:
		return "power"
	case EffectStrict:
		return "strict"
	case EffectFlash:
		return "flash"
	case EffectMessage:
		return "message"
	case EffectTone:
		return "tone"
	default:
		return "unknown"
	}
}

// Effect is one recorded collaborator call
type Effect struct {
	Kind     EffectKind
	Color    game.Color
	Text     string
	On       bool
	Repeats  int
	Duration time.Duration
	At       time.Duration // Offset from the trace clock's start, zero without a clock
}

func (e Effect) String() string {
	switch e.Kind {
	case EffectBlink:
		return fmt.Sprintf("blink %s", e.Color)
	case EffectTone:
		return fmt.Sprintf("tone %s", e.Color)
	case EffectScore:
		return fmt.Sprintf("score %s", e.Text)
	case EffectPower, EffectStrict:
		if e.On {
			return e.Kind.String() + " on"
		}
		return e.Kind.String() + " off"
	case EffectFlash:
		return fmt.Sprintf("flash %s x%d %s", e.Text, e.Repeats, e.Duration)
	case EffectMessage:
		return fmt.Sprintf("message %q", e.Text)
	default:
		return e.Kind.String()
	}
}

// Trace records every Presentation and Audio call in order
// A positive capacity keeps only the most recent effects
type Trace struct {
	mu       sync.Mutex
	effects  deque.Deque[Effect]
	capacity int
	dropped  int

	clock engine.TimeProvider
	start time.Time

	presenter game.Presentation
	audio     game.Audio
}

// TraceOption configures a Trace
type TraceOption func(*Trace)

// WithClock stamps effects with offsets from the clock's current time
func WithClock(clock engine.TimeProvider) TraceOption {
	return func(t *Trace) {
		t.clock = clock
		t.start = clock.Now()
	}
}

// Tee forwards every call to the given collaborators after recording it
func Tee(p game.Presentation, a game.Audio) TraceOption {
	return func(t *Trace) {
		t.presenter = p
		t.audio = a
	}
}

// NewTrace creates a trace; capacity <= 0 keeps everything
func NewTrace(capacity int, opts ...TraceOption) *Trace {
	t := &Trace{capacity: capacity}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Trace) record(e Effect) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.clock != nil {
		e.At = t.clock.Now().Sub(t.start)
	}
	t.effects.PushBack(e)
	if t.capacity > 0 && t.effects.Len() > t.capacity {
		t.effects.PopFront()
		t.dropped++
	}
}

// Effects returns a copy of the recorded effects, oldest first
func (t *Trace) Effects() []Effect {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Effect, t.effects.Len())
	for i := range out {
		out[i] = t.effects.At(i)
	}
	return out
}

// Strings renders the recorded effects
func (t *Trace) Strings() []string {
	effects := t.Effects()
	out := make([]string, len(effects))
	for i, e := range effects {
		out[i] = e.String()
	}
	return out
}

// Last returns up to n most recent effects, oldest first
func (t *Trace) Last(n int) []Effect {
	if n <= 0 {
		return nil
	}
	effects := t.Effects()
	if n < len(effects) {
		effects = effects[len(effects)-n:]
	}
	return effects
}

// Count returns how many recorded effects have the given kind
func (t *Trace) Count(kind EffectKind) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for i := 0; i < t.effects.Len(); i++ {
		if t.effects.At(i).Kind == kind {
			n++
		}
	}
	return n
}

// Dropped returns how many effects were evicted by the capacity bound
func (t *Trace) Dropped() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dropped
}

// Reset discards recorded effects
func (t *Trace) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.effects.Clear()
	t.dropped = 0
}

// Blink implements game.Presentation
func (t *Trace) Blink(c game.Color, d time.Duration) {
	t.record(Effect{Kind: EffectBlink, Color: c, Duration: d})
	if t.presenter != nil {
		t.presenter.Blink(c, d)
	}
}

// ClearAll implements game.Presentation
func (t *Trace) ClearAll() {
	t.record(Effect{Kind: EffectClearAll})
	if t.presenter != nil {
		t.presenter.ClearAll()
	}
}

// LockInput implements game.Presentation
func (t *Trace) LockInput() {
	t.record(Effect{Kind: EffectLock})
	if t.presenter != nil {
		t.presenter.LockInput()
	}
}

// UnlockInput implements game.Presentation
func (t *Trace) UnlockInput() {
	t.record(Effect{Kind: EffectUnlock})
	if t.presenter != nil {
		t.presenter.UnlockInput()
	}
}

// RenderScore implements game.Presentation
func (t *Trace) RenderScore(s game.Score) {
	t.record(Effect{Kind: EffectScore, Text: s.String()})
	if t.presenter != nil {
		t.presenter.RenderScore(s)
	}
}

// RenderPower implements game.Presentation
func (t *Trace) RenderPower(on bool) {
	t.record(Effect{Kind: EffectPower, On: on})
	if t.presenter != nil {
		t.presenter.RenderPower(on)
	}
}

// RenderStrict implements game.Presentation
func (t *Trace) RenderStrict(on bool) {
	t.record(Effect{Kind: EffectStrict, On: on})
	if t.presenter != nil {
		t.presenter.RenderStrict(on)
	}
}

// Flash implements game.Presentation
func (t *Trace) Flash(message string, repeats int, interval time.Duration) {
	t.record(Effect{Kind: EffectFlash, Text: message, Repeats: repeats, Duration: interval})
	if t.presenter != nil {
		t.presenter.Flash(message, repeats, interval)
	}
}

// ShowMessage implements game.Presentation
func (t *Trace) ShowMessage(text string) {
	t.record(Effect{Kind: EffectMessage, Text: text})
	if t.presenter != nil {
		t.presenter.ShowMessage(text)
	}
}

// Play implements game.Audio
func (t *Trace) Play(c game.Color) {
	t.record(Effect{Kind: EffectTone, Color: c})
	if t.audio != nil {
		t.audio.Play(c)
	}
}
