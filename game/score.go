package game

import "fmt"

// Score is the round counter shown on the display
// The zero value is an undefined score, used before the first round
type Score struct {
	value   int
	defined bool
}

// NewScore returns a defined score
func NewScore(n int) Score {
	return Score{value: n, defined: true}
}

// Value returns the score and whether it is defined
func (s Score) Value() (int, bool) {
	return s.value, s.defined
}

// Defined reports whether a round has been generated
func (s Score) Defined() bool {
	return s.defined
}

// String formats the score for a two-digit display
// Values below 10 are zero padded, larger values are printed literally
func (s Score) String() string {
	if !s.defined {
		return "--"
	}
	return fmt.Sprintf("%02d", s.value)
}
