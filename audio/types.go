package audio

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/simon/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

var waveNames = map[WaveType]string{
	WaveSine:     "sine",
	WaveSquare:   "square",
	WaveSaw:      "saw",
	WaveTriangle: "triangle",
}

func (w WaveType) String() string {
	if name, ok := waveNames[w]; ok {
		return name
	}
	return fmt.Sprintf("WaveType(%d)", int(w))
}

// ParseWave resolves a wave name
func ParseWave(s string) (WaveType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for w, n := range waveNames {
		if n == name {
			return w, nil
		}
	}
	return WaveSine, fmt.Errorf("unknown wave %q", s)
}

// AudioConfig holds synthesis and output settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	SampleRate   int
	Wave         WaveType
	ToneDuration time.Duration
}

// DefaultAudioConfig returns the built-in settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		SampleRate:   constants.DefaultSampleRate,
		Wave:         WaveSine,
		ToneDuration: constants.ToneDuration,
	}
}

// Sentinel errors
var (
	ErrAudioUnavailable = errors.New("audio output unavailable")
)
