// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"slices"
	"testing"

	"github.com/ik5/audmix/internal/audiotest"
)

func TestChannelMixer_Layouts(t *testing.T) {
	t.Parallel()

	// Source channel c of every frame holds value c+1.
	byChannel := func(_, channel int) float32 { return float32(channel + 1) }

	tests := []struct {
		name string
		in   int
		out  int
		want []float32 // one output frame
	}{
		{"stereo to mono", 2, 1, []float32{1.5}},
		{"quad to mono", 4, 1, []float32{2.5}},
		{"mono to stereo", 1, 2, []float32{1, 1}},
		{"mono to quad", 1, 4, []float32{1, 1, 1, 1}},
		{"quad to stereo", 4, 2, []float32{2, 3}},
		{"three to stereo", 3, 2, []float32{2, 2}},
		{"stereo to quad", 2, 4, []float32{1, 2, 1, 2}},
		{"stereo passthrough", 2, 2, []float32{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewMockSource(8000, tt.in, 3, byChannel)
			mixer, err := NewChannelMixer(src, tt.out)
			if err != nil {
				t.Fatalf("NewChannelMixer() error = %v", err)
			}

			if mixer.Channels() != tt.out {
				t.Errorf("Channels() = %d, want %d", mixer.Channels(), tt.out)
			}
			if mixer.SampleRate() != 8000 {
				t.Errorf("SampleRate() = %d, want 8000", mixer.SampleRate())
			}

			out := drain(t, mixer, 64)
			if len(out) != 3*tt.out {
				t.Fatalf("read %d samples, want %d", len(out), 3*tt.out)
			}
			for f := range 3 {
				for c, want := range tt.want {
					got := out[f*tt.out+c]
					if math.Abs(float64(got-want)) > 1e-6 {
						t.Errorf("frame %d channel %d = %v, want %v", f, c, got, want)
					}
				}
			}
		})
	}
}

func TestChannelMixer_InvalidChannels(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 2, 10)
	for _, channels := range []int{0, -1} {
		if _, err := NewChannelMixer(src, channels); !errors.Is(err, ErrInvalidChannels) {
			t.Errorf("NewChannelMixer(%d) error = %v, want ErrInvalidChannels", channels, err)
		}
	}
}

func TestMonoMixer(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(16000, 2, 100, func(_, channel int) float32 {
		if channel == 0 {
			return 0.2
		}
		return -0.6
	})
	mono := NewMonoMixer(src)

	if mono.Channels() != 1 {
		t.Fatalf("Channels() = %d, want 1", mono.Channels())
	}

	out := drain(t, mono, 30)
	if len(out) != 100 {
		t.Fatalf("read %d samples, want 100", len(out))
	}
	for i, v := range out {
		if math.Abs(float64(v+0.2)) > 1e-6 {
			t.Fatalf("out[%d] = %v, want -0.2", i, v)
		}
	}
}

// splitSource serves its samples in reads of at most limit samples, so
// frames straddle read boundaries.
type splitSource struct {
	samples  []float32
	rate     int
	channels int
	limit    int
}

func (s *splitSource) SampleRate() int { return s.rate }
func (s *splitSource) Channels() int   { return s.channels }
func (s *splitSource) BufSize() int    { return s.limit }
func (s *splitSource) Close() error    { return nil }

func (s *splitSource) ReadSamples(dst []float32) (int, error) {
	if len(s.samples) == 0 {
		return 0, io.EOF
	}

	n := copy(dst[:min(len(dst), s.limit)], s.samples)
	s.samples = s.samples[n:]
	if len(s.samples) == 0 {
		return n, io.EOF
	}

	return n, nil
}

func TestChannelMixer_SplitFrames(t *testing.T) {
	t.Parallel()

	samples := audiotest.NewRampSource(8000, 2, 50, 0.01).Samples()
	src := &splitSource{samples: slices.Clone(samples), rate: 8000, channels: 2, limit: 3}

	out := drain(t, NewMonoMixer(src), 8)
	if len(out) != 50 {
		t.Fatalf("read %d samples, want 50", len(out))
	}
	for f, v := range out {
		want := (samples[2*f] + samples[2*f+1]) / 2
		if math.Abs(float64(v-want)) > 1e-6 {
			t.Fatalf("out[%d] = %v, want %v", f, v, want)
		}
	}
}

func TestChannelMixer_PartialFrameBuffer(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 1, 10, 0.5)
	mixer, err := NewChannelMixer(src, 2)
	if err != nil {
		t.Fatal(err)
	}

	// One sample is not enough room for a stereo frame.
	n, err := mixer.ReadSamples(make([]float32, 1))
	if n != 0 || err != nil {
		t.Errorf("ReadSamples() = (%d, %v), want (0, nil)", n, err)
	}
}

func TestChannelMixer_Close(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 2, 10)
	if err := NewMonoMixer(src).Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !src.Closed() {
		t.Error("Close() did not close the wrapped source")
	}
}

func BenchmarkChannelMixer_StereoToMono(b *testing.B) {
	src := audiotest.NewSineSource(44100, 2, 1_000_000, 440)
	mono := NewMonoMixer(src)
	buf := make([]float32, 4096)

	b.ReportAllocs()

	for b.Loop() {
		if _, err := mono.ReadSamples(buf); err != nil {
			src.Reset()
		}
	}
}
