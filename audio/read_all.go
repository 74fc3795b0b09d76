// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// ReadAll drains src into one interleaved buffer at sampleRate with the given
// channel count.
//
// The pipeline is built only from the stages that are needed:
//  1. Resample to sampleRate with cubic interpolation when the rates differ
//  2. Convert the channel layout with a ChannelMixer when the counts differ
//  3. Read everything in chunks of bufferSize samples
//
// A bufferSize <= 0 uses src.BufSize(). The returned slice never aliases a
// buffer owned by src.
func ReadAll(src Source, sampleRate, channels, bufferSize int) ([]float32, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRate, sampleRate)
	}
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}

	var stage Source = src
	if src.SampleRate() != sampleRate {
		stage = NewResampler(stage, sampleRate)
	}
	if src.Channels() != channels {
		mixer, err := NewChannelMixer(stage, channels)
		if err != nil {
			return nil, err
		}
		stage = mixer
	}

	if bufferSize <= 0 {
		bufferSize = src.BufSize()
	}
	bufferSize = max(bufferSize-bufferSize%channels, channels)

	buf := make([]float32, bufferSize)
	out := make([]float32, 0, bufferSize)
	empty := 0

	for {
		n, err := stage.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		if n > 0 {
			empty = 0
		} else if empty++; empty > maxEmptyReads {
			return nil, io.ErrNoProgress
		}
	}

	return out[:len(out)-len(out)%channels], nil
}
