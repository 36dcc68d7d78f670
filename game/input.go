package game

import "fmt"

// InputKind identifies a control-surface event
type InputKind int

const (
	InputNone InputKind = iota
	InputPower
	InputStart
	InputStrict
	InputColor
)

func (k InputKind) String() string {
	switch k {
	case InputPower:
		return "power"
	case InputStart:
		return "start"
	case InputStrict:
		return "strict"
	case InputColor:
		return "color"
	default:
		return "none"
	}
}

// ParseInputKind is the inverse of InputKind.String
func ParseInputKind(s string) (InputKind, error) {
	for _, k := range []InputKind{InputPower, InputStart, InputStrict, InputColor} {
		if k.String() == s {
			return k, nil
		}
	}
	return InputNone, fmt.Errorf("unknown input %q", s)
}

// Input is one discrete event consumed by Sequencer.Handle
type Input struct {
	Kind  InputKind
	Color Color // Only meaningful for InputColor
}

// PowerPressed toggles the device on or off
func PowerPressed() Input { return Input{Kind: InputPower} }

// StartPressed starts a new game while powered
func StartPressed() Input { return Input{Kind: InputStart} }

// StrictPressed toggles strict mode while powered
func StrictPressed() Input { return Input{Kind: InputStrict} }

// ColorPressed reports a pad press
func ColorPressed(c Color) Input { return Input{Kind: InputColor, Color: c} }

func (in Input) String() string {
	if in.Kind == InputColor {
		return "color:" + in.Color.String()
	}
	return in.Kind.String()
}
