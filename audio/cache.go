package audio

import (
	"sync"

	"github.com/gopxl/beep"
)

// cueCache stores pre-rendered unity-gain buffers per cue
type cueCache struct {
	rate  beep.SampleRate
	mu    sync.RWMutex
	store [cueCount]floatBuffer
	ready [cueCount]bool
}

func newCueCache(rate int) *cueCache {
	return &cueCache{rate: beep.SampleRate(rate)}
}

// get returns the cached buffer, rendering on first use
func (c *cueCache) get(cue Cue) floatBuffer {
	if cue < 0 || cue >= cueCount {
		return nil
	}

	c.mu.RLock()
	if c.ready[cue] {
		buf := c.store[cue]
		c.mu.RUnlock()
		return buf
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ready[cue] {
		return c.store[cue]
	}
	buf := renderCue(cue, c.rate)
	c.store[cue] = buf
	c.ready[cue] = true
	return buf
}

// preload renders every cue up front
func (c *cueCache) preload() {
	for cue := range cueCount {
		c.get(cue)
	}
}
