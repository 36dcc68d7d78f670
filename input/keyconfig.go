package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that are awkward as bare YAML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"colon":     ':',
	"hash":      '#',
}

// Special key names accepted in config files
var specialKeys = map[string]tcell.Key{
	"enter":     tcell.KeyEnter,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"ctrl-c":    tcell.KeyCtrlC,
	"ctrl-l":    tcell.KeyCtrlL,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"f1":        tcell.KeyF1,
	"f2":        tcell.KeyF2,
	"f3":        tcell.KeyF3,
	"f4":        tcell.KeyF4,
}

// Apply overrides km with key → action name pairs from config
// A "none" action removes the key; on error km is left unchanged
func (km *KeyMap) Apply(overrides map[string]string) error {
	next := km.Clone()

	for keyStr, actionName := range overrides {
		b, err := resolveAction(actionName)
		if err != nil {
			return fmt.Errorf("key %q: %w", keyStr, err)
		}

		if k, ok := specialKeys[strings.ToLower(keyStr)]; ok {
			mergeBinding(next.Keys, k, b)
			continue
		}

		r, err := resolveRune(keyStr)
		if err != nil {
			return err
		}
		mergeBinding(next.Runes, r, b)
	}

	*km = *next
	return nil
}

func mergeBinding[K comparable](m map[K]Binding, k K, b Binding) {
	if b.Action == ActionNone {
		delete(m, k)
		return
	}
	m[k] = b
}

// resolveRune converts a config key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid key: %q (expected single character, alias or key name)", s)
}

// resolveAction converts an action name string to a Binding
func resolveAction(name string) (Binding, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	b, ok := ActionBinding(name)
	if !ok {
		return Binding{}, fmt.Errorf("unknown action: %q", name)
	}
	return b, nil
}
