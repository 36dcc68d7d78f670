package audio

import (
	"sync"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/simon/game"
)

// toneCache stores rendered pad tones so Play only copies samples
type toneCache struct {
	mu     sync.RWMutex
	config *AudioConfig
	store  [4]*beep.Buffer
}

func newToneCache(cfg *AudioConfig) *toneCache {
	return &toneCache{config: cfg}
}

// get returns a fresh streamer over the cached tone, rendering it on first use
func (c *toneCache) get(color game.Color) beep.Streamer {
	if !color.Valid() {
		return nil
	}

	c.mu.RLock()
	buf := c.store[color]
	c.mu.RUnlock()
	if buf == nil {
		buf = c.render(color)
		if buf == nil {
			return nil
		}
	}
	return buf.Streamer(0, buf.Len())
}

func (c *toneCache) render(color game.Color) *beep.Buffer {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if buf := c.store[color]; buf != nil {
		return buf
	}

	tone := CreateTone(color, c.config)
	if tone == nil {
		return nil
	}
	buf := beep.NewBuffer(beep.Format{
		SampleRate:  beep.SampleRate(c.config.SampleRate),
		NumChannels: 2,
		Precision:   2,
	})
	buf.Append(tone)
	c.store[color] = buf
	return buf
}

// preload renders every pad tone
func (c *toneCache) preload() {
	for _, color := range game.AllColors {
		c.get(color)
	}
}
