package game

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
)

// Color identifies one of the four pads
type Color int

const (
	Green Color = iota
	Red
	Yellow
	Blue
	colorCount
)

// AllColors lists the pads in their canonical order
var AllColors = [colorCount]Color{Green, Red, Yellow, Blue}

var colorNames = [colorCount]string{"green", "red", "yellow", "blue"}

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// Valid reports whether c is one of the four pads
func (c Color) Valid() bool {
	return c >= 0 && c < colorCount
}

// ParseColor resolves a pad name, case-insensitive
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid color %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ColorSource supplies the colors appended to the sequence
// It is the only source of nondeterminism in the sequencer
type ColorSource interface {
	Next() Color
}

// RandomSource draws pads uniformly with equal probability
type RandomSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSource creates a uniform source; equal seeds give equal sequences
func NewRandomSource(seed int64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewSource(seed))}
}

// Next implements ColorSource
func (r *RandomSource) Next() Color {
	r.mu.Lock()
	defer r.mu.Unlock()
	return AllColors[r.rng.Intn(int(colorCount))]
}

// FixedSource replays a predetermined list of colors, wrapping around at the end
type FixedSource struct {
	colors []Color
	pos    int
}

// NewFixedSource creates a source that yields colors in order
func NewFixedSource(colors ...Color) *FixedSource {
	return &FixedSource{colors: colors}
}

// Next implements ColorSource
func (f *FixedSource) Next() Color {
	if len(f.colors) == 0 {
		return Green
	}
	c := f.colors[f.pos%len(f.colors)]
	f.pos++
	return c
}
