package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/simon/game"
)

// HitTester resolves a screen cell to a pad
type HitTester interface {
	HitTest(x, y int) (game.Color, bool)
}

// Translator turns tcell events into game inputs and UI actions
// It is not safe for concurrent use; the event goroutine owns it
type Translator struct {
	keys    *KeyMap
	hit     HitTester
	buttons tcell.ButtonMask
}

// NewTranslator creates a translator; hit may be nil to ignore the mouse
func NewTranslator(keys *KeyMap, hit HitTester) *Translator {
	if keys == nil {
		keys = DefaultKeyMap()
	}
	return &Translator{keys: keys, hit: hit}
}

// Translate maps one event; the returned Input is only meaningful for ActionDispatch
func (t *Translator) Translate(ev tcell.Event) (game.Input, Action) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		b, ok := t.keys.Lookup(ev)
		if !ok {
			return game.Input{}, ActionNone
		}
		return b.Input, b.Action

	case *tcell.EventMouse:
		return t.translateMouse(ev)

	case *tcell.EventResize:
		return game.Input{}, ActionRedraw
	}
	return game.Input{}, ActionNone
}

// translateMouse fires on the press edge of the primary button only
func (t *Translator) translateMouse(ev *tcell.EventMouse) (game.Input, Action) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && t.buttons&tcell.Button1 == 0
	t.buttons = buttons

	if !pressed || t.hit == nil {
		return game.Input{}, ActionNone
	}
	x, y := ev.Position()
	c, ok := t.hit.HitTest(x, y)
	if !ok {
		return game.Input{}, ActionNone
	}
	return game.ColorPressed(c), ActionDispatch
}
