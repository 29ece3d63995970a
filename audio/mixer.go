package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/wordcosmo/parameter"
)

// activeCue tracks a playing cue instance
type activeCue struct {
	buffer floatBuffer
	pos    int
	volume float64
}

type playRequest struct {
	cue    Cue
	volume float64
}

// Mixer sums active cues and writes s16le stereo to output every buffer tick
type Mixer struct {
	output io.Writer
	cache  *cueCache

	playQueue chan playRequest
	stopChan  chan struct{}
	done      chan struct{}
	stopped   atomic.Bool

	// Mix goroutine only
	active []activeCue

	played  atomic.Uint64
	dropped atomic.Uint64

	errChan chan error
}

func newMixer(out io.Writer, cache *cueCache) *Mixer {
	return &Mixer{
		output:    out,
		cache:     cache,
		playQueue: make(chan playRequest, parameter.AudioQueueSize),
		stopChan:  make(chan struct{}),
		done:      make(chan struct{}),
		active:    make([]activeCue, 0, 8),
		errChan:   make(chan error, 1),
	}
}

func (m *Mixer) start() {
	go m.loop()
}

// stop signals the loop to halt
func (m *Mixer) stop() {
	if m.stopped.CompareAndSwap(false, true) {
		close(m.stopChan)
	}
}

// wait blocks until the loop has returned
func (m *Mixer) wait() {
	<-m.done
}

// play queues cue at volume; a full queue drops the request
func (m *Mixer) play(cue Cue, volume float64) bool {
	if m.stopped.Load() {
		return false
	}
	select {
	case m.playQueue <- playRequest{cue: cue, volume: volume}:
		return true
	default:
		m.dropped.Add(1)
		return false
	}
}

// Errors reports the first write failure
func (m *Mixer) Errors() <-chan error {
	return m.errChan
}

func (m *Mixer) loop() {
	defer close(m.done)

	ticker := time.NewTicker(parameter.AudioBufferDuration)
	defer ticker.Stop()

	samples := m.cache.rate.N(parameter.AudioBufferDuration)
	mixBuf := make([]float64, samples)
	outBytes := make([]byte, samples*parameter.AudioBytesPerFrame)

	for {
		select {
		case <-m.stopChan:
			return

		case req := <-m.playQueue:
			m.activate(req)
			m.drainQueue(4)

		case <-ticker.C:
			clear(mixBuf)
			m.active = mixActive(m.active, mixBuf)
			floatToBytes(mixBuf, outBytes)

			if _, err := m.output.Write(outBytes); err != nil {
				select {
				case m.errChan <- fmt.Errorf("%w: %v", ErrPipeClosed, err):
				default:
				}
				return
			}
		}
	}
}

func (m *Mixer) activate(req playRequest) {
	buf := m.cache.get(req.cue)
	if len(buf) == 0 {
		return
	}
	m.active = append(m.active, activeCue{buffer: buf, volume: req.volume})
	m.played.Add(1)
}

// drainQueue takes up to n more queued requests without blocking
func (m *Mixer) drainQueue(n int) {
	for range n {
		select {
		case req := <-m.playQueue:
			m.activate(req)
		default:
			return
		}
	}
}

// mixActive adds every active cue into buf and returns those with samples left
func mixActive(active []activeCue, buf []float64) []activeCue {
	remaining := active[:0]
	for i := range active {
		s := &active[i]
		for j := 0; j < len(buf) && s.pos < len(s.buffer); j++ {
			buf[j] += s.buffer[s.pos] * s.volume
			s.pos++
		}
		if s.pos < len(s.buffer) {
			remaining = append(remaining, *s)
		}
	}
	return remaining
}

// floatToBytes converts mono float64 to interleaved stereo int16 LE with a soft knee above 0.8
func floatToBytes(in []float64, out []byte) {
	for i, v := range in {
		if v > 0.8 {
			v = 0.8 + 0.2*(1-1/(1+(v-0.8)*5))
		} else if v < -0.8 {
			v = -0.8 - 0.2*(1-1/(1+(-v-0.8)*5))
		}
		v = max(-1, min(1, v))

		s := uint16(int16(v * 32767))
		idx := i * parameter.AudioBytesPerFrame
		binary.LittleEndian.PutUint16(out[idx:], s)
		binary.LittleEndian.PutUint16(out[idx+2:], s)
	}
}

// Stats returns played and dropped counts
func (m *Mixer) Stats() (played, dropped uint64) {
	return m.played.Load(), m.dropped.Load()
}
