package input

import "github.com/lixenwraith/simon/game"

// Action tells the caller what to do with a translated event
type Action int

const (
	ActionNone     Action = iota
	ActionDispatch        // Feed the game.Input to the sequencer
	ActionQuit
	ActionRedraw
	ActionMute
)

func (a Action) String() string {
	switch a {
	case ActionDispatch:
		return "dispatch"
	case ActionQuit:
		return "quit"
	case ActionRedraw:
		return "redraw"
	case ActionMute:
		return "mute"
	default:
		return "none"
	}
}

// Binding is what a key resolves to
type Binding struct {
	Action Action
	Input  game.Input
}

// actionRegistry maps action names used in config files to bindings
// "none" unbinds a key
var actionRegistry = map[string]Binding{
	"none":   {},
	"power":  {ActionDispatch, game.PowerPressed()},
	"start":  {ActionDispatch, game.StartPressed()},
	"strict": {ActionDispatch, game.StrictPressed()},
	"green":  {ActionDispatch, game.ColorPressed(game.Green)},
	"red":    {ActionDispatch, game.ColorPressed(game.Red)},
	"yellow": {ActionDispatch, game.ColorPressed(game.Yellow)},
	"blue":   {ActionDispatch, game.ColorPressed(game.Blue)},
	"quit":   {Action: ActionQuit},
	"redraw": {Action: ActionRedraw},
	"mute":   {Action: ActionMute},
}

// ActionBinding returns the binding registered under name
func ActionBinding(name string) (Binding, bool) {
	b, ok := actionRegistry[name]
	return b, ok
}

// bindingName is the reverse lookup used for the legend
func bindingName(b Binding) string {
	for name, candidate := range actionRegistry {
		if name != "none" && candidate == b {
			return name
		}
	}
	return ""
}
