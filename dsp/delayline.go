// SPDX-License-Identifier: EPL-2.0

package dsp

import "fmt"

// DelayLine is a circular buffer of samples with one read/write cursor.
//
// The cursor does not move on its own: callers that need the previous cycle's
// sample call Read before Store, then Advance. Write stores and advances in one
// step for the common case.
type DelayLine struct {
	buf []float32
	pos int
}

// NewDelayLine returns a zeroed line holding frames samples.
func NewDelayLine(frames int) (*DelayLine, error) {
	if frames <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, frames)
	}

	return &DelayLine{buf: make([]float32, frames)}, nil
}

// Len returns the capacity in samples.
func (d *DelayLine) Len() int { return len(d.buf) }

// Read returns the sample under the cursor, which is the oldest one held.
func (d *DelayLine) Read() float32 { return d.buf[d.pos] }

// Store overwrites the sample under the cursor without moving it.
func (d *DelayLine) Store(v float32) { d.buf[d.pos] = v }

// Advance moves the cursor one sample forward, wrapping at the end.
func (d *DelayLine) Advance() {
	d.pos++
	if d.pos == len(d.buf) {
		d.pos = 0
	}
}

// Write stores v and advances the cursor.
func (d *DelayLine) Write(v float32) {
	d.buf[d.pos] = v
	d.Advance()
}

// At returns the sample stored delay advances ago. At(0) is the sample under
// the cursor. delay must be in [0, Len()).
func (d *DelayLine) At(delay int) float32 {
	i := d.pos - delay
	if i < 0 {
		i += len(d.buf)
	}

	return d.buf[i]
}

// Reset zeroes the buffer and rewinds the cursor.
func (d *DelayLine) Reset() {
	clear(d.buf)
	d.pos = 0
}
