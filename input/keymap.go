package input

import (
	"maps"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// KeyMap binds printable runes and special keys to actions
type KeyMap struct {
	Runes map[rune]Binding
	Keys  map[tcell.Key]Binding
}

// DefaultKeyMap returns the built-in bindings
func DefaultKeyMap() *KeyMap {
	km := &KeyMap{
		Runes: make(map[rune]Binding),
		Keys:  make(map[tcell.Key]Binding),
	}
	bind := func(name string, runes ...rune) {
		b := actionRegistry[name]
		for _, r := range runes {
			km.Runes[r] = b
		}
	}
	bind("green", 'g', '1')
	bind("red", 'r', '2')
	bind("yellow", 'y', '3')
	bind("blue", 'b', '4')
	bind("power", 'p')
	bind("start", 's')
	bind("strict", 't')
	bind("mute", 'm')
	bind("quit", 'q')

	km.Keys[tcell.KeyEnter] = actionRegistry["start"]
	km.Keys[tcell.KeyCtrlC] = actionRegistry["quit"]
	km.Keys[tcell.KeyCtrlL] = actionRegistry["redraw"]
	return km
}

// Clone returns a deep copy
func (km *KeyMap) Clone() *KeyMap {
	return &KeyMap{
		Runes: maps.Clone(km.Runes),
		Keys:  maps.Clone(km.Keys),
	}
}

// Lookup resolves a key event to its binding
func (km *KeyMap) Lookup(ev *tcell.EventKey) (Binding, bool) {
	return km.Resolve(ev.Key(), ev.Rune())
}

// Resolve looks up r for tcell.KeyRune and k otherwise
func (km *KeyMap) Resolve(k tcell.Key, r rune) (Binding, bool) {
	if k == tcell.KeyRune {
		b, ok := km.Runes[r]
		return b, ok
	}
	b, ok := km.Keys[k]
	return b, ok
}

// Legend renders the rune bindings as a compact help line, grouped by action
func (km *KeyMap) Legend() string {
	order := []string{"green", "red", "yellow", "blue", "power", "start", "strict", "mute", "quit"}
	keys := make(map[string][]rune)
	for r, b := range km.Runes {
		if name := bindingName(b); name != "" {
			keys[name] = append(keys[name], r)
		}
	}

	var parts []string
	var pads []string
	for _, name := range order {
		runes := keys[name]
		if len(runes) == 0 {
			continue
		}
		// Letters before digits
		slices.SortFunc(runes, func(a, b rune) int {
			if d := boolRank(isDigit(a)) - boolRank(isDigit(b)); d != 0 {
				return d
			}
			return int(a - b)
		})
		switch name {
		case "green", "red", "yellow", "blue":
			pads = append(pads, string(runes[0]))
		default:
			parts = append(parts, string(runes[0])+" "+name)
		}
	}
	if len(pads) > 0 {
		parts = append([]string{strings.Join(pads, "") + " pads"}, parts...)
	}
	return strings.Join(parts, "  ")
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
