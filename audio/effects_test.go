package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/simon/game"
)

// drain streams s to completion and returns all samples
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			return out
		}
	}
}

// TestOscillatorWaves verifies every wave stays in range and lasts its duration
func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 50 * time.Millisecond

	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveTriangle} {
		t.Run(wave.String(), func(t *testing.T) {
			osc := NewOscillator(440, duration, wave, rate)
			samples := drain(osc)

			if len(samples) != rate.N(duration) {
				t.Errorf("streamed %d samples, want %d", len(samples), rate.N(duration))
			}
			for i, s := range samples {
				if s[0] < -1.0 || s[0] > 1.0 || s[0] != s[1] {
					t.Fatalf("sample %d invalid: %v", i, s)
				}
			}
			if osc.Err() != nil {
				t.Errorf("Expected no error, got: %v", osc.Err())
			}
		})
	}
}

// TestOscillatorSquareValues verifies square wave only takes -1 or 1
func TestOscillatorSquareValues(t *testing.T) {
	osc := NewOscillator(220, 20*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	for i, s := range drain(osc) {
		if s[0] != -1.0 && s[0] != 1.0 {
			t.Fatalf("Square wave sample %d should be -1.0 or 1.0, got %f", i, s[0])
		}
	}
}

// TestEnvelopeShape verifies silence at the edges and full level in the sustain
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond
	osc := NewOscillator(0, duration, WaveSquare, rate) // Constant 1.0
	env := NewEnvelope(osc, duration, 10*time.Millisecond, 10*time.Millisecond, rate)
	samples := drain(env)

	if len(samples) == 0 {
		t.Fatal("envelope produced no samples")
	}
	if samples[0][0] != 0 {
		t.Errorf("first sample = %f, want 0 (attack start)", samples[0][0])
	}
	mid := samples[len(samples)/2][0]
	if math.Abs(mid-1.0) > 1e-9 {
		t.Errorf("sustain sample = %f, want 1.0", mid)
	}
	last := samples[len(samples)-1][0]
	if last > 0.01 {
		t.Errorf("last sample = %f, want ~0 (release end)", last)
	}
}

// TestToneFrequencies verifies each pad has a distinct audible pitch
func TestToneFrequencies(t *testing.T) {
	seen := make(map[float64]game.Color)
	for _, c := range game.AllColors {
		f := ToneFrequency(c)
		if f < 100 || f > 1000 {
			t.Errorf("ToneFrequency(%s) = %f, outside audible pad range", c, f)
		}
		if prev, dup := seen[f]; dup {
			t.Errorf("%s and %s share frequency %f", c, prev, f)
		}
		seen[f] = c
	}
	if ToneFrequency(game.Color(9)) != 0 {
		t.Error("invalid color should have no frequency")
	}
}

// TestCreateTone verifies tones last ToneDuration and respect volume
func TestCreateTone(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.SampleRate = 22050

	for _, wave := range []WaveType{WaveSine, WaveTriangle} {
		cfg.Wave = wave
		samples := drain(CreateTone(game.Red, cfg))
		want := beep.SampleRate(cfg.SampleRate).N(cfg.ToneDuration)
		if len(samples) != want {
			t.Errorf("%s: tone has %d samples, want %d", wave, len(samples), want)
		}

		peak := 0.0
		for _, s := range samples {
			peak = math.Max(peak, math.Abs(s[0]))
		}
		if peak == 0 || peak > cfg.MasterVolume+1e-6 {
			t.Errorf("%s: peak = %f, want in (0, %f]", wave, peak, cfg.MasterVolume)
		}
	}

	if CreateTone(game.Color(-1), cfg) != nil {
		t.Error("Expected nil tone for invalid color")
	}
}

// TestCreateToneZeroVolume verifies a zero master volume is silent
func TestCreateToneZeroVolume(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0
	for _, s := range drain(CreateTone(game.Blue, cfg)) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("Expected silence, got %v", s)
		}
	}
}
