package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreString(t *testing.T) {
	tests := []struct {
		name  string
		score Score
		want  string
	}{
		{"undefined", Score{}, "--"},
		{"one", NewScore(1), "01"},
		{"nine", NewScore(9), "09"},
		{"ten", NewScore(10), "10"},
		{"forty-two", NewScore(42), "42"},
		{"hundred", NewScore(100), "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.score.String())
		})
	}
}

func TestScoreValue(t *testing.T) {
	n, ok := Score{}.Value()
	assert.False(t, ok)
	assert.Zero(t, n)

	n, ok = NewScore(12).Value()
	assert.True(t, ok)
	assert.Equal(t, 12, n)
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhaseOff, "Off"},
		{PhaseReady, "Ready"},
		{PhasePlayingBack, "PlayingBack"},
		{PhaseAwaitingInput, "AwaitingInput"},
		{PhaseFailing, "Failing"},
		{Phase(999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.phase.String())
		})
	}
}

func TestParseColor(t *testing.T) {
	for _, c := range AllColors {
		parsed, err := ParseColor(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	c, err := ParseColor("  YeLLow ")
	require.NoError(t, err)
	assert.Equal(t, Yellow, c)

	_, err = ParseColor("purple")
	assert.Error(t, err)
}

func TestColorValid(t *testing.T) {
	assert.True(t, Blue.Valid())
	assert.False(t, Color(-1).Valid())
	assert.False(t, Color(4).Valid())
	assert.Equal(t, "Color(7)", Color(7).String())
}

func TestColorTextRoundTrip(t *testing.T) {
	var c Color
	require.NoError(t, c.UnmarshalText([]byte("red")))
	assert.Equal(t, Red, c)

	out, err := Blue.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "blue", string(out))

	_, err = Color(8).MarshalText()
	assert.Error(t, err)
}

func TestFixedSourceWraps(t *testing.T) {
	src := NewFixedSource(Red, Blue)
	got := []Color{src.Next(), src.Next(), src.Next()}
	assert.Equal(t, []Color{Red, Blue, Red}, got)

	assert.Equal(t, Green, NewFixedSource().Next())
}

func TestRandomSourceUniform(t *testing.T) {
	src := NewRandomSource(99)
	counts := make(map[Color]int)
	const draws = 4000
	for i := 0; i < draws; i++ {
		c := src.Next()
		require.True(t, c.Valid())
		counts[c]++
	}

	require.Len(t, counts, 4)
	for c, n := range counts {
		// Expect ~1000 each; a wide band keeps the test stable
		assert.InDelta(t, draws/4, n, 150, "color %s drawn %d times", c, n)
	}
}

func TestRandomSourceSeeded(t *testing.T) {
	a, b := NewRandomSource(5), NewRandomSource(5)
	for i := 0; i < 32; i++ {
		require.Equal(t, a.Next(), b.Next())
	}
}

func TestInputKindRoundTrip(t *testing.T) {
	for _, k := range []InputKind{InputPower, InputStart, InputStrict, InputColor} {
		parsed, err := ParseInputKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	_, err := ParseInputKind("none")
	assert.Error(t, err)

	assert.Equal(t, "color:yellow", ColorPressed(Yellow).String())
	assert.Equal(t, "power", PowerPressed().String())
}

func TestSnapshotIsDetached(t *testing.T) {
	st := State{Sequence: []Color{Green, Red}}
	snap := st.snapshot(PhaseAwaitingInput, false)
	snap.Sequence[0] = Blue
	assert.Equal(t, Green, st.Sequence[0])
}

func TestTimerCategoryString(t *testing.T) {
	assert.Equal(t, "playback", TimerPlayback.String())
	assert.Equal(t, "delay", TimerDelay.String())
	assert.Equal(t, "flash", TimerFlash.String())
	assert.Equal(t, "unknown", TimerCategory(42).String())
}
