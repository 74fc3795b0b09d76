// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"fmt"
	"sync/atomic"
)

const (
	// ReverbChannels is the number of positions the reverb processes.
	// Positions beyond it pass through unchanged.
	ReverbChannels = 2

	numCombs     = 4
	numAllpasses = 2

	DefaultRoomSize        = 0.5
	DefaultCombFeedback    = 0.7
	DefaultDamping         = 0.3
	DefaultAllpassFeedback = 0.5
	DefaultWet             = 0.3
	DefaultDry             = 1.0
)

// Base delays in seconds. Comb lengths are scaled by roomSize*2 at construction.
var (
	combDelays    = [numCombs]float64{0.0297, 0.0371, 0.0411, 0.0437}
	allpassDelays = [numAllpasses]float64{0.005, 0.0017}
)

// comb is a feedback comb filter with a one-pole low-pass in the loop.
type comb struct {
	line   *DelayLine
	damped float32
}

func (c *comb) process(in, feedback, damp float32) float32 {
	out := c.line.Read()
	c.damped = out*(1-damp) + c.damped*damp
	c.line.Write(in + feedback*c.damped)

	return out
}

type allpass struct {
	line *DelayLine
}

func (a *allpass) process(in, feedback float32) float32 {
	buffered := a.line.Read()
	out := buffered - feedback*in
	a.line.Write(in + feedback*buffered)

	return out
}

// ReverbOption configures a Reverb at construction.
type ReverbOption func(*reverbConfig)

type reverbConfig struct {
	roomSize float32
	sized    bool
}

// WithRoomSize sets the room size used to size the comb buffers. The comb
// feedback starts at the value SetRoomSize would derive for it.
func WithRoomSize(size float32) ReverbOption {
	return func(cfg *reverbConfig) {
		cfg.roomSize = clampUnit(size)
		cfg.sized = true
	}
}

// Reverb is a Schroeder reverb for up to two channel positions.
//
// The comb buffer lengths are fixed when the node is built. SetRoomSize only
// changes the comb feedback, so a larger room after construction lengthens the
// decay but never the echo spacing.
type Reverb struct {
	sampleRate int
	channels   int
	stereo     int

	roomSize        Param
	feedback        Param
	damping         Param
	allpassFeedback Param
	wet             Param
	dry             Param
	enabled         atomic.Bool

	combs     [ReverbChannels][numCombs]comb
	allpasses [ReverbChannels][numAllpasses]allpass
}

// NewReverb builds a disabled reverb with the default parameters.
func NewReverb(sampleRate, channels int, opts ...ReverbOption) (*Reverb, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}

	cfg := reverbConfig{roomSize: DefaultRoomSize}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	r := &Reverb{
		sampleRate: sampleRate,
		channels:   channels,
		stereo:     min(channels, ReverbChannels),
	}
	r.roomSize.Store(cfg.roomSize)
	r.feedback.Store(DefaultCombFeedback)
	if cfg.sized {
		r.feedback.Store(combFeedback(cfg.roomSize))
	}
	r.damping.Store(DefaultDamping)
	r.allpassFeedback.Store(DefaultAllpassFeedback)
	r.wet.Store(DefaultWet)
	r.dry.Store(DefaultDry)

	rate := float64(sampleRate)
	for ch := range r.stereo {
		for i, seconds := range combDelays {
			line, err := NewDelayLine(max(1, int(seconds*float64(cfg.roomSize)*2*rate)))
			if err != nil {
				return nil, err
			}
			r.combs[ch][i].line = line
		}
		for i, seconds := range allpassDelays {
			line, err := NewDelayLine(max(1, int(seconds*rate)))
			if err != nil {
				return nil, err
			}
			r.allpasses[ch][i].line = line
		}
	}

	return r, nil
}

func combFeedback(size float32) float32 { return 0.6 + size*0.35 }

func clampUnit(v float32) float32 {
	return max(0, min(1, v))
}

func (r *Reverb) SampleRate() int { return r.sampleRate }
func (r *Reverb) Channels() int   { return r.channels }

// SetEnabled turns processing on or off. A disabled reverb copies its input.
func (r *Reverb) SetEnabled(enabled bool) { r.enabled.Store(enabled) }
func (r *Reverb) Enabled() bool           { return r.enabled.Load() }

// SetRoomSize stores size, clamped to [0, 1], and derives the comb feedback
// 0.6 + size*0.35 from it. Buffer lengths are not changed.
func (r *Reverb) SetRoomSize(size float32) {
	size = clampUnit(size)
	r.roomSize.Store(size)
	r.feedback.Store(combFeedback(size))
}

func (r *Reverb) RoomSize() float32     { return r.roomSize.Load() }
func (r *Reverb) CombFeedback() float32 { return r.feedback.Load() }

// SetDamping sets the low-pass coefficient of the comb feedback, clamped to [0, 1].
func (r *Reverb) SetDamping(damp float32) { r.damping.Store(clampUnit(damp)) }
func (r *Reverb) Damping() float32        { return r.damping.Load() }

func (r *Reverb) SetWet(wet float32) { r.wet.Store(wet) }
func (r *Reverb) Wet() float32       { return r.wet.Load() }
func (r *Reverb) SetDry(dry float32) { r.dry.Store(dry) }
func (r *Reverb) Dry() float32       { return r.dry.Load() }

// CombLengths reports the comb buffer sizes, in frames, of the first position.
func (r *Reverb) CombLengths() [numCombs]int {
	var out [numCombs]int
	for i := range out {
		out[i] = r.combs[0][i].line.Len()
	}

	return out
}

// Reset clears all filter memory. It must not run concurrently with Process.
func (r *Reverb) Reset() {
	for ch := range r.stereo {
		for i := range r.combs[ch] {
			r.combs[ch][i].line.Reset()
			r.combs[ch][i].damped = 0
		}
		for i := range r.allpasses[ch] {
			r.allpasses[ch][i].line.Reset()
		}
	}
}

// Process runs the reverb over a block.
func (r *Reverb) Process(dst, src []float32) {
	frames := blockFrames(dst, src, r.channels)
	n := frames * r.channels

	if !r.enabled.Load() {
		copy(dst[:n], src[:n])
		return
	}

	feedback := r.feedback.Load()
	damp := r.damping.Load()
	apFeedback := r.allpassFeedback.Load()
	wet := r.wet.Load()
	dry := r.dry.Load()

	for f := range frames {
		base := f * r.channels
		for ch := range r.stereo {
			in := src[base+ch]

			var sum float32
			for i := range r.combs[ch] {
				sum += r.combs[ch][i].process(in, feedback, damp)
			}
			out := sum * 0.25

			for i := range r.allpasses[ch] {
				out = r.allpasses[ch][i].process(out, apFeedback)
			}

			dst[base+ch] = dry*in + wet*out
		}

		for ch := r.stereo; ch < r.channels; ch++ {
			dst[base+ch] = src[base+ch]
		}
	}
}
