// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
)

const (
	// MaxTaps is the number of tap slots in a MultiTapDelay.
	MaxTaps = 16

	// MaxDelaySeconds is the longest echo a MultiTapDelay can hold.
	MaxDelaySeconds = 2.0
)

type tap struct {
	frames atomic.Uint32
	gain   Param
	active atomic.Bool
}

// tapState is the per-block copy of an active tap used by Process.
type tapState struct {
	frames int
	gain   float32
}

// MultiTapDelay adds up to MaxTaps delayed copies of the input to the dry signal.
// Each channel position has its own delay line of MaxDelaySeconds.
type MultiTapDelay struct {
	sampleRate int
	channels   int
	maxFrames  int

	lines []*DelayLine
	taps  [MaxTaps]tap

	// mu serializes slot allocation between control callers. Process never takes it.
	mu sync.Mutex
}

// NewMultiTapDelay builds a delay node for the given rate and channel layout.
// All taps start inactive.
func NewMultiTapDelay(sampleRate, channels int) (*MultiTapDelay, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}

	maxFrames := int(float64(sampleRate) * MaxDelaySeconds)
	d := &MultiTapDelay{
		sampleRate: sampleRate,
		channels:   channels,
		maxFrames:  maxFrames,
		lines:      make([]*DelayLine, channels),
	}

	// One extra slot so a tap of maxFrames still reads history and not the
	// sample stored in the current frame.
	for c := range d.lines {
		line, err := NewDelayLine(maxFrames + 1)
		if err != nil {
			return nil, err
		}
		d.lines[c] = line
	}

	return d, nil
}

func (d *MultiTapDelay) SampleRate() int { return d.sampleRate }
func (d *MultiTapDelay) Channels() int   { return d.channels }

// MaxDelayFrames is the clamp applied to every tap delay.
func (d *MultiTapDelay) MaxDelayFrames() int { return d.maxFrames }

// framesFor converts a delay in milliseconds to frames, clamped to [0, maxFrames].
func (d *MultiTapDelay) framesFor(delayMs float32) uint32 {
	f := math.Round(float64(delayMs) / 1000 * float64(d.sampleRate))
	switch {
	case math.IsNaN(f) || f < 0:
		return 0
	case f > float64(d.maxFrames):
		return uint32(d.maxFrames)
	}

	return uint32(f)
}

// AddTap activates the first free slot with the given delay and gain and
// returns its id. Delays longer than MaxDelaySeconds are clamped.
// When every slot is active it returns -1 and ErrNoFreeTap, leaving all taps untouched.
func (d *MultiTapDelay) AddTap(delayMs, gain float32) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.taps {
		t := &d.taps[i]
		if t.active.Load() {
			continue
		}
		t.frames.Store(d.framesFor(delayMs))
		t.gain.Store(gain)
		t.active.Store(true)

		return i, nil
	}

	return -1, ErrNoFreeTap
}

// RemoveTap deactivates a tap. Its slot becomes available to AddTap.
func (d *MultiTapDelay) RemoveTap(id int) {
	if id < 0 || id >= MaxTaps {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	t := &d.taps[id]
	if t.active.Load() {
		t.active.Store(false)
		t.frames.Store(0)
		t.gain.Store(0)
	}
}

// SetTapGain changes the gain of an active tap.
func (d *MultiTapDelay) SetTapGain(id int, gain float32) {
	if id < 0 || id >= MaxTaps {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if t := &d.taps[id]; t.active.Load() {
		t.gain.Store(gain)
	}
}

// SetTapDelay changes the delay of an active tap, clamped like AddTap.
func (d *MultiTapDelay) SetTapDelay(id int, delayMs float32) {
	if id < 0 || id >= MaxTaps {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if t := &d.taps[id]; t.active.Load() {
		t.frames.Store(d.framesFor(delayMs))
	}
}

// Tap reports the delay in frames and the gain of an active tap.
func (d *MultiTapDelay) Tap(id int) (frames int, gain float32, ok bool) {
	if id < 0 || id >= MaxTaps {
		return 0, 0, false
	}

	t := &d.taps[id]
	if !t.active.Load() {
		return 0, 0, false
	}

	return int(t.frames.Load()), t.gain.Load(), true
}

// ActiveTaps counts the active slots.
func (d *MultiTapDelay) ActiveTaps() int {
	n := 0
	for i := range d.taps {
		if d.taps[i].active.Load() {
			n++
		}
	}

	return n
}

// Reset clears the delay history. Taps keep their settings.
// It must not run concurrently with Process.
func (d *MultiTapDelay) Reset() {
	for _, line := range d.lines {
		line.Reset()
	}
}

// snapshot copies the active, non-zero taps into dst and returns how many there are.
func (d *MultiTapDelay) snapshot(dst *[MaxTaps]tapState) int {
	n := 0
	for i := range d.taps {
		t := &d.taps[i]
		if !t.active.Load() {
			continue
		}
		frames := int(t.frames.Load())
		if frames == 0 {
			continue
		}
		dst[n] = tapState{frames: frames, gain: t.gain.Load()}
		n++
	}

	return n
}

// Process mixes the active taps into the dry signal.
func (d *MultiTapDelay) Process(dst, src []float32) {
	frames := blockFrames(dst, src, d.channels)

	var taps [MaxTaps]tapState
	n := d.snapshot(&taps)
	active := taps[:n]

	for f := range frames {
		base := f * d.channels
		for c, line := range d.lines {
			in := src[base+c]
			line.Store(in)

			out := in
			for _, t := range active {
				out += line.At(t.frames) * t.gain
			}
			dst[base+c] = out
		}

		for _, line := range d.lines {
			line.Advance()
		}
	}
}
