package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/simon/game"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name   string
		key    tcell.Key
		r      rune
		action Action
		input  game.Input
	}{
		{"green letter", tcell.KeyRune, 'g', ActionDispatch, game.ColorPressed(game.Green)},
		{"green digit", tcell.KeyRune, '1', ActionDispatch, game.ColorPressed(game.Green)},
		{"red", tcell.KeyRune, 'r', ActionDispatch, game.ColorPressed(game.Red)},
		{"yellow digit", tcell.KeyRune, '3', ActionDispatch, game.ColorPressed(game.Yellow)},
		{"blue", tcell.KeyRune, 'b', ActionDispatch, game.ColorPressed(game.Blue)},
		{"power", tcell.KeyRune, 'p', ActionDispatch, game.PowerPressed()},
		{"start", tcell.KeyRune, 's', ActionDispatch, game.StartPressed()},
		{"start enter", tcell.KeyEnter, 0, ActionDispatch, game.StartPressed()},
		{"strict", tcell.KeyRune, 't', ActionDispatch, game.StrictPressed()},
		{"quit", tcell.KeyRune, 'q', ActionQuit, game.Input{}},
		{"quit ctrl-c", tcell.KeyCtrlC, 0, ActionQuit, game.Input{}},
		{"redraw", tcell.KeyCtrlL, 0, ActionRedraw, game.Input{}},
		{"mute", tcell.KeyRune, 'm', ActionMute, game.Input{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := km.Resolve(tt.key, tt.r)
			if !ok {
				t.Fatalf("no binding for %v/%q", tt.key, tt.r)
			}
			if b.Action != tt.action {
				t.Errorf("Action = %v, want %v", b.Action, tt.action)
			}
			if b.Input != tt.input {
				t.Errorf("Input = %v, want %v", b.Input, tt.input)
			}
		})
	}

	if _, ok := km.Resolve(tcell.KeyRune, 'z'); ok {
		t.Error("unexpected binding for 'z'")
	}
}

func TestKeyMapApply(t *testing.T) {
	km := DefaultKeyMap()
	err := km.Apply(map[string]string{
		"w":     "green",
		"g":     "none",
		"space": "Start",
		"esc":   "quit",
	})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if b, ok := km.Resolve(tcell.KeyRune, 'w'); !ok || b.Input != game.ColorPressed(game.Green) {
		t.Errorf("'w' = %v, %v; want green", b, ok)
	}
	if _, ok := km.Resolve(tcell.KeyRune, 'g'); ok {
		t.Error("'g' should be unbound")
	}
	if b, ok := km.Resolve(tcell.KeyRune, ' '); !ok || b.Input != game.StartPressed() {
		t.Errorf("space = %v, %v; want start", b, ok)
	}
	if b, ok := km.Resolve(tcell.KeyEscape, 0); !ok || b.Action != ActionQuit {
		t.Errorf("esc = %v, %v; want quit", b, ok)
	}
}

func TestKeyMapApplyErrorsLeaveMapUnchanged(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]string
	}{
		{"unknown action", map[string]string{"x": "explode"}},
		{"multi-char key", map[string]string{"xx": "green"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			km := DefaultKeyMap()
			before := len(km.Runes)
			if err := km.Apply(tt.overrides); err == nil {
				t.Fatal("expected error")
			}
			if len(km.Runes) != before {
				t.Errorf("rune bindings changed on error: %d -> %d", before, len(km.Runes))
			}
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	km := DefaultKeyMap()
	clone := km.Clone()
	delete(clone.Runes, 'g')
	if _, ok := km.Runes['g']; !ok {
		t.Error("Clone shares rune map with original")
	}
}

func TestLegend(t *testing.T) {
	want := "gryb pads  p power  s start  t strict  m mute  q quit"
	if got := DefaultKeyMap().Legend(); got != want {
		t.Errorf("Legend() = %q, want %q", got, want)
	}
}

func TestActionString(t *testing.T) {
	for a, want := range map[Action]string{
		ActionNone: "none", ActionDispatch: "dispatch", ActionQuit: "quit",
		ActionRedraw: "redraw", ActionMute: "mute", Action(99): "none",
	} {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, want %q", int(a), got, want)
		}
	}
}
