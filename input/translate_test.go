package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/simon/game"
)

// padGrid splits a 20x10 area into four 10x5 pads
type padGrid struct{}

func (padGrid) HitTest(x, y int) (game.Color, bool) {
	if x < 0 || x >= 20 || y < 0 || y >= 10 {
		return 0, false
	}
	return game.AllColors[(y/5)*2+x/10], true
}

func TestTranslateMouse(t *testing.T) {
	tr := NewTranslator(nil, padGrid{})

	in, action := tr.Translate(tcell.NewEventMouse(15, 7, tcell.Button1, tcell.ModNone))
	if action != ActionDispatch || in != game.ColorPressed(game.Blue) {
		t.Fatalf("press = %v, %v; want dispatch blue", in, action)
	}

	// Held button and drag produce nothing
	if _, action := tr.Translate(tcell.NewEventMouse(2, 2, tcell.Button1, tcell.ModNone)); action != ActionNone {
		t.Errorf("drag action = %v, want none", action)
	}

	// Release, then a fresh press
	tr.Translate(tcell.NewEventMouse(2, 2, tcell.ButtonNone, tcell.ModNone))
	in, action = tr.Translate(tcell.NewEventMouse(2, 2, tcell.Button1, tcell.ModNone))
	if action != ActionDispatch || in != game.ColorPressed(game.Green) {
		t.Errorf("second press = %v, %v; want dispatch green", in, action)
	}
}

func TestTranslateMouseMissesAndSecondaryButtons(t *testing.T) {
	tr := NewTranslator(nil, padGrid{})

	if _, action := tr.Translate(tcell.NewEventMouse(50, 50, tcell.Button1, tcell.ModNone)); action != ActionNone {
		t.Errorf("off-board press action = %v, want none", action)
	}
	tr.Translate(tcell.NewEventMouse(50, 50, tcell.ButtonNone, tcell.ModNone))

	if _, action := tr.Translate(tcell.NewEventMouse(1, 1, tcell.Button2, tcell.ModNone)); action != ActionNone {
		t.Errorf("right-click action = %v, want none", action)
	}
}

func TestTranslateWithoutHitTester(t *testing.T) {
	tr := NewTranslator(DefaultKeyMap(), nil)
	if _, action := tr.Translate(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone)); action != ActionNone {
		t.Errorf("action = %v, want none", action)
	}
}

func TestTranslateResize(t *testing.T) {
	tr := NewTranslator(nil, nil)
	if _, action := tr.Translate(tcell.NewEventResize(80, 24)); action != ActionRedraw {
		t.Errorf("resize action = %v, want redraw", action)
	}
	if _, action := tr.Translate(tcell.NewEventInterrupt(nil)); action != ActionNone {
		t.Errorf("interrupt action = %v, want none", action)
	}
}
