package audio

import "github.com/lixenwraith/simon/constants"

// Normalize pulls out-of-range settings back to usable values in place
func (c *AudioConfig) Normalize() {
	c.MasterVolume = clampVolume(c.MasterVolume)
	if c.SampleRate <= 0 {
		c.SampleRate = constants.DefaultSampleRate
	}
	if c.ToneDuration <= 0 {
		c.ToneDuration = constants.ToneDuration
	}
	if _, ok := waveNames[c.Wave]; !ok {
		c.Wave = WaveSine
	}
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
