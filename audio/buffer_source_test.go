// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"
)

func TestBufferSource(t *testing.T) {
	t.Parallel()

	samples := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7}
	src, err := NewBufferSource(samples, 22050, 2)
	if err != nil {
		t.Fatalf("NewBufferSource() error = %v", err)
	}

	if src.SampleRate() != 22050 || src.Channels() != 2 {
		t.Errorf("format = %d Hz/%d ch, want 22050 Hz/2 ch", src.SampleRate(), src.Channels())
	}

	// The trailing half frame is dropped.
	out := drain(t, src, 3)
	if len(out) != 6 {
		t.Fatalf("read %d samples, want 6", len(out))
	}
	for i := range out {
		if out[i] != samples[i] {
			t.Errorf("out[%d] = %v, want %v", i, out[i], samples[i])
		}
	}

	if n, err := src.ReadSamples(make([]float32, 4)); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after end = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestBufferSource_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sampleRate int
		channels   int
		want       error
	}{
		{"zero channels", 8000, 0, ErrInvalidChannels},
		{"negative channels", 8000, -2, ErrInvalidChannels},
		{"zero rate", 0, 1, ErrInvalidRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewBufferSource(nil, tt.sampleRate, tt.channels)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewBufferSource() error = %v, want %v", err, tt.want)
			}
		})
	}
}
