package game

// Phase is the sequencer's externally visible state
type Phase int

const (
	PhaseOff Phase = iota
	PhaseReady
	PhasePlayingBack
	PhaseAwaitingInput
	PhaseFailing
)

func (p Phase) String() string {
	switch p {
	case PhaseOff:
		return "Off"
	case PhaseReady:
		return "Ready"
	case PhasePlayingBack:
		return "PlayingBack"
	case PhaseAwaitingInput:
		return "AwaitingInput"
	case PhaseFailing:
		return "Failing"
	default:
		return "Unknown"
	}
}
