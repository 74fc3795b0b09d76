// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// BufferSource serves samples that are already in memory.
type BufferSource struct {
	samples    []float32
	sampleRate int
	channels   int
	off        int
}

// NewBufferSource wraps interleaved samples. Trailing samples that do not
// complete a frame are ignored.
func NewBufferSource(samples []float32, sampleRate, channels int) (*BufferSource, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRate, sampleRate)
	}

	return &BufferSource{
		samples:    samples[:len(samples)-len(samples)%channels],
		sampleRate: sampleRate,
		channels:   channels,
	}, nil
}

func (b *BufferSource) SampleRate() int { return b.sampleRate }
func (b *BufferSource) Channels() int   { return b.channels }
func (b *BufferSource) BufSize() int    { return 4096 }
func (b *BufferSource) Close() error    { return nil }

func (b *BufferSource) ReadSamples(dst []float32) (int, error) {
	if b.off >= len(b.samples) {
		return 0, io.EOF
	}

	n := len(dst) - len(dst)%b.channels
	n = copy(dst[:n], b.samples[b.off:])
	b.off += n

	if b.off >= len(b.samples) {
		return n, io.EOF
	}

	return n, nil
}
