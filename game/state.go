package game

// State is the game record owned by a Sequencer
// It carries no behavior; only the Sequencer mutates it
type State struct {
	PowerOn       bool
	StrictMode    bool
	Sequence      []Color
	ExpectedIndex int
	Score         Score
}

// Snapshot is a detached copy of State plus the current phase and lock flag
type Snapshot struct {
	Phase         Phase
	PowerOn       bool
	StrictMode    bool
	InputLocked   bool
	Sequence      []Color
	ExpectedIndex int
	Score         Score
}

func (s *State) reset() {
	s.Sequence = nil
	s.ExpectedIndex = 0
	s.Score = Score{}
}

func (s *State) snapshot(phase Phase, locked bool) Snapshot {
	seq := make([]Color, len(s.Sequence))
	copy(seq, s.Sequence)
	return Snapshot{
		Phase:         phase,
		PowerOn:       s.PowerOn,
		StrictMode:    s.StrictMode,
		InputLocked:   locked,
		Sequence:      seq,
		ExpectedIndex: s.ExpectedIndex,
		Score:         s.Score,
	}
}
