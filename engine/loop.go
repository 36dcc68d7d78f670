package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/simon/core"
	"github.com/lixenwraith/simon/game"
)

// Loop is the real-time game.Scheduler
// A single goroutine runs every timer callback and every posted task, so the
// sequencer is never entered concurrently
type Loop struct {
	mu      sync.Mutex
	backlog deque.Deque[func()]
	notify  chan struct{}
	timers  map[game.TimerCategory]*loopTimer
	gen     uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Tasks run, for diagnostics
	taskCount atomic.Uint64

	log logrus.FieldLogger
}

type loopTimer struct {
	id       uint64
	timer    *time.Timer
	deadline time.Time
}

// NewLoop creates a stopped loop; call Start before scheduling
func NewLoop(log logrus.FieldLogger) *Loop {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Loop{
		notify:   make(chan struct{}, 1),
		timers:   make(map[game.TimerCategory]*loopTimer),
		stopChan: make(chan struct{}),
		log:      log,
	}
}

// Start launches the loop goroutine
func (l *Loop) Start() {
	if l.running.CompareAndSwap(false, true) {
		l.wg.Add(1)
		core.Go(l.run)
	}
}

// Stop cancels every timer and waits for the loop goroutine to exit
// Must not be called from a loop task
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		l.mu.Lock()
		for cat := range l.timers {
			l.cancelLocked(cat)
		}
		l.mu.Unlock()

		close(l.stopChan)
		if l.running.CompareAndSwap(true, false) {
			l.wg.Wait()
		}
		l.log.WithField("tasks", l.taskCount.Load()).Debug("loop stopped")
	})
}

// Post queues fn to run on the loop goroutine; never blocks
// Returns false once the loop is stopped
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.stopChan:
		return false
	default:
	}

	l.mu.Lock()
	l.backlog.PushBack(fn)
	l.mu.Unlock()

	select {
	case l.notify <- struct{}{}:
	default:
	}
	return true
}

// Sync runs fn on the loop goroutine and waits for it to return
func (l *Loop) Sync(fn func()) bool {
	done := make(chan struct{})
	if !l.Post(func() {
		defer close(done)
		fn()
	}) {
		return false
	}
	select {
	case <-done:
		return true
	case <-l.stopChan:
		return false
	}
}

// After implements game.Scheduler
func (l *Loop) After(cat game.TimerCategory, d time.Duration, fn func()) {
	l.arm(cat, d, 0, fn)
}

// Every implements game.Scheduler
func (l *Loop) Every(cat game.TimerCategory, d time.Duration, fn func()) {
	if d <= 0 {
		panic("engine: non-positive interval for Every")
	}
	l.arm(cat, d, d, fn)
}

// Cancel implements game.Scheduler
func (l *Loop) Cancel(cat game.TimerCategory) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cancelLocked(cat)
}

// Pending reports whether a timer is armed in cat
func (l *Loop) Pending(cat game.TimerCategory) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.timers[cat]
	return ok
}

func (l *Loop) arm(cat game.TimerCategory, d, period time.Duration, fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.cancelLocked(cat)
	l.gen++
	t := &loopTimer{id: l.gen, deadline: time.Now().Add(d)}
	l.timers[cat] = t
	t.timer = l.schedule(cat, t.id, d, period, fn)
}

// schedule starts the wall-clock timer; the firing is forwarded to the loop
// where stale ids are dropped
func (l *Loop) schedule(cat game.TimerCategory, id uint64, d, period time.Duration, fn func()) *time.Timer {
	return time.AfterFunc(d, func() {
		l.Post(func() {
			l.fire(cat, id, period, fn)
		})
	})
}

func (l *Loop) fire(cat game.TimerCategory, id uint64, period time.Duration, fn func()) {
	l.mu.Lock()
	t, ok := l.timers[cat]
	if !ok || t.id != id {
		l.mu.Unlock()
		return
	}
	if period > 0 {
		// Next firing is due one period after the previous deadline, not
		// after this late delivery; a missed tick fires immediately
		t.deadline = t.deadline.Add(period)
		t.timer = l.schedule(cat, id, max(time.Until(t.deadline), 0), period, fn)
	} else {
		delete(l.timers, cat)
	}
	l.mu.Unlock()

	fn()
}

func (l *Loop) cancelLocked(cat game.TimerCategory) {
	if t, ok := l.timers[cat]; ok {
		if t.timer != nil {
			t.timer.Stop()
		}
		delete(l.timers, cat)
	}
}

// run drains posted tasks until Stop
func (l *Loop) run() {
	defer l.wg.Done()

	for {
		select {
		case <-l.stopChan:
			return
		case <-l.notify:
			l.drain()
		}
	}
}

func (l *Loop) drain() {
	for {
		select {
		case <-l.stopChan:
			return
		default:
		}

		l.mu.Lock()
		if l.backlog.Len() == 0 {
			l.mu.Unlock()
			return
		}
		fn := l.backlog.PopFront()
		l.mu.Unlock()

		fn()
		l.taskCount.Add(1)
	}
}
