// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// ChannelMixer converts a source to a different channel count.
//
//   - N -> 1 averages all channels.
//   - 1 -> M copies the mono channel to every output channel.
//   - N -> M with N > M averages the source channels that share an output
//     channel (source channel i folds into output i % M).
//   - N -> M with N < M repeats source channels cyclically.
//
// Samples of a source frame split across reads are held until the rest of
// the frame arrives.
type ChannelMixer struct {
	src      Source
	channels int
	tmp      []float32
	carry    int // samples of an incomplete source frame at the start of tmp
}

func NewChannelMixer(src Source, channels int) (*ChannelMixer, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}

	return newChannelMixer(src, channels), nil
}

// NewMonoMixer folds src down to a single channel.
func NewMonoMixer(src Source) *ChannelMixer {
	return newChannelMixer(src, 1)
}

func newChannelMixer(src Source, channels int) *ChannelMixer {
	return &ChannelMixer{
		src:      src,
		channels: channels,
		tmp:      make([]float32, 4096),
	}
}

func (m *ChannelMixer) SampleRate() int { return m.src.SampleRate() }
func (m *ChannelMixer) Channels() int   { return m.channels }
func (m *ChannelMixer) BufSize() int    { return m.src.BufSize() }

func (m *ChannelMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples fills dst with whole output frames.
func (m *ChannelMixer) ReadSamples(dst []float32) (int, error) {
	in := m.src.Channels()
	out := m.channels

	if in == out {
		return m.src.ReadSamples(dst)
	}

	frames := len(dst) / out
	if frames == 0 {
		return 0, nil
	}

	need := frames * in
	if cap(m.tmp) < need {
		tmp := make([]float32, max(need, 8192))
		copy(tmp, m.tmp[:m.carry])
		m.tmp = tmp
	}
	m.tmp = m.tmp[:need]

	n, err := m.src.ReadSamples(m.tmp[m.carry:])
	total := m.carry + n
	frames = total / in
	if frames == 0 {
		m.carry = total
		return 0, err
	}

	switch {
	case out == 1:
		inv := 1 / float32(in)
		for f := range frames {
			var sum float32
			for _, v := range m.tmp[f*in : f*in+in] {
				sum += v
			}
			dst[f] = sum * inv
		}
	case in == 1:
		for f := range frames {
			v := m.tmp[f]
			for c := range out {
				dst[f*out+c] = v
			}
		}
	case in > out:
		m.fold(dst, frames, in, out)
	default:
		for f := range frames {
			for c := range out {
				dst[f*out+c] = m.tmp[f*in+c%in]
			}
		}
	}

	m.carry = copy(m.tmp, m.tmp[frames*in:total])

	return frames * out, err
}

func (m *ChannelMixer) fold(dst []float32, frames, in, out int) {
	for f := range frames {
		frame := dst[f*out : f*out+out]
		clear(frame)
		for c := range in {
			frame[c%out] += m.tmp[f*in+c]
		}
		for c := range out {
			// Number of source channels folded into output c.
			shared := in / out
			if c < in%out {
				shared++
			}
			frame[c] /= float32(shared)
		}
	}
}
