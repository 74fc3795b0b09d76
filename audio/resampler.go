// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audmix/utils"
)

// maxEmptyReads bounds how many (0, nil) reads the resampler tolerates from a
// source before giving up with io.ErrNoProgress.
const maxEmptyReads = 64

// Resampler streams from src to target sample rate using cubic interpolation.
// Works on interleaved samples; preserves channel count.
// Includes basic anti-aliasing filtering when downsampling.
type Resampler struct {
	src      Source
	channels int
	dstRate  int
	srcRate  int

	// Output frame index and the source frame index held in window[1].
	// Positions are derived from them with integer math so long streams
	// do not drift.
	outFrame int64
	srcFrame int64

	// window holds the frames at t-1, t0, t+1 and t+2 around the read position.
	// real marks which of them came from the source rather than edge padding.
	window [4][]float32
	real   [4]bool
	primed bool

	in      []float32
	pending []float32
	srcEOF  bool

	// One-pole low-pass applied to incoming frames when downsampling.
	smooth      bool
	smoothAlpha float32
	smoothState []float32
	smoothInit  bool
}

// NewResampler wraps src so it reads at dstRate. A dstRate <= 0 keeps the
// source rate.
func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	if dstRate <= 0 {
		dstRate = src.SampleRate()
	}

	bufSize := max(src.BufSize(), 4*channels)
	bufSize -= bufSize % channels

	r := &Resampler{
		src:         src,
		channels:    channels,
		dstRate:     dstRate,
		srcRate:     src.SampleRate(),
		in:          make([]float32, bufSize),
		smooth:      src.SampleRate() > dstRate,
		smoothAlpha: 0.5,
		smoothState: make([]float32, channels),
	}
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// nextFrame copies the next source frame into dst. It reports false once the
// source is exhausted.
func (r *Resampler) nextFrame(dst []float32) (bool, error) {
	empty := 0
	for len(r.pending) < r.channels {
		if r.srcEOF {
			return false, nil
		}

		// A frame split across reads is completed by the next one.
		carry := copy(r.in, r.pending)
		n, err := r.src.ReadSamples(r.in[carry:])
		r.pending = r.in[:carry+n]

		switch {
		case err == io.EOF:
			r.srcEOF = true
		case err != nil:
			return false, fmt.Errorf("%w", err)
		case n == 0:
			empty++
			if empty > maxEmptyReads {
				return false, io.ErrNoProgress
			}
		}
	}

	copy(dst, r.pending[:r.channels])
	r.pending = r.pending[r.channels:]

	if r.smooth {
		if !r.smoothInit {
			copy(r.smoothState, dst)
			r.smoothInit = true
		}
		for c := range dst {
			dst[c] = r.smoothAlpha*dst[c] + (1-r.smoothAlpha)*r.smoothState[c]
			r.smoothState[c] = dst[c]
		}
	}

	return true, nil
}

// prime loads the first frames, duplicating the first one as t-1.
func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.nextFrame(r.window[1])
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}
	copy(r.window[0], r.window[1])
	r.real[0], r.real[1] = true, true

	for i := 2; i < len(r.window); i++ {
		if r.real[i], err = r.fill(r.window[i], r.window[i-1]); err != nil {
			return err
		}
	}

	return nil
}

// fill reads the next frame into dst, or repeats prev past the end of the source.
func (r *Resampler) fill(dst, prev []float32) (bool, error) {
	ok, err := r.nextFrame(dst)
	if err != nil {
		return false, err
	}
	if !ok {
		copy(dst, prev)
	}

	return ok, nil
}

// shift slides the window one source frame forward.
func (r *Resampler) shift() error {
	oldest := r.window[0]
	r.window[0], r.window[1], r.window[2] = r.window[1], r.window[2], r.window[3]
	r.real[0], r.real[1], r.real[2] = r.real[1], r.real[2], r.real[3]
	r.window[3] = oldest

	var err error
	r.real[3], err = r.fill(r.window[3], r.window[2])

	return err
}

// ReadSamples produces dst samples at the target rate.
// dst length should be a multiple of r.channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	src, dstRate := int64(r.srcRate), int64(r.dstRate)

	written := 0
	for written < len(dst) {
		at := r.outFrame * src
		for r.srcFrame < at/dstRate && r.real[1] {
			if err := r.shift(); err != nil {
				return written, err
			}
			r.srcFrame++
		}
		if !r.real[1] {
			break
		}

		x := float32(at%dstRate) / float32(dstRate)
		for c := range r.channels {
			dst[written+c] = utils.CubicInterpolate(
				r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], x)
		}
		written += r.channels
		r.outFrame++
	}

	if !r.real[1] {
		return written, io.EOF
	}

	return written, nil
}
