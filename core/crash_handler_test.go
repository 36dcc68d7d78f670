package core

import (
	"bytes"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

type fakeTerminal struct {
	finalized atomic.Bool
}

func (f *fakeTerminal) Fini() { f.finalized.Store(true) }

// withCrashCapture swaps the exit and output hooks for the duration of a test
func withCrashCapture(t *testing.T) (*bytes.Buffer, <-chan int) {
	t.Helper()
	var buf bytes.Buffer
	codes := make(chan int, 1)

	crashMu.Lock()
	prevOut, prevExit := crashOut, crashExit
	crashOut = &buf
	crashExit = func(code int) { codes <- code }
	crashMu.Unlock()

	t.Cleanup(func() {
		crashMu.Lock()
		crashOut, crashExit = prevOut, prevExit
		crashMu.Unlock()
		SetCrashTerminal(nil)
	})
	return &buf, codes
}

func TestHandleCrashNilIsNoop(t *testing.T) {
	_, codes := withCrashCapture(t)
	HandleCrash(nil)
	select {
	case code := <-codes:
		t.Fatalf("unexpected exit with code %d", code)
	default:
	}
}

func TestGoRecoversAndFinalizesTerminal(t *testing.T) {
	buf, codes := withCrashCapture(t)
	term := &fakeTerminal{}
	SetCrashTerminal(term)

	Go(func() { panic("boom") })

	select {
	case code := <-codes:
		if code != 1 {
			t.Errorf("exit code = %d, want 1", code)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("crash handler did not run")
	}

	if !term.finalized.Load() {
		t.Error("Expected terminal to be finalized before the report")
	}
	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("crash report missing panic value: %q", buf.String())
	}
}
