// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/audmix/internal/audiotest"
)

func TestReadAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		srcRate    int
		srcCh      int
		frames     int
		rate       int
		channels   int
		wantFrames int
	}{
		{"unchanged", 48000, 2, 4800, 48000, 2, 4800},
		{"mono to stereo", 48000, 1, 4800, 48000, 2, 4800},
		{"stereo to mono", 48000, 2, 4800, 48000, 1, 4800},
		{"resample and remix", 44100, 1, 44100, 16000, 2, 16000},
		{"upsample", 8000, 2, 800, 48000, 2, 4800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewConstantSource(tt.srcRate, tt.srcCh, tt.frames, 0.25)
			pcm, err := ReadAll(src, tt.rate, tt.channels, 0)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}

			if got := len(pcm) / tt.channels; got != tt.wantFrames {
				t.Errorf("ReadAll() = %d frames, want %d", got, tt.wantFrames)
			}
			if len(pcm)%tt.channels != 0 {
				t.Errorf("len(pcm) = %d is not a multiple of %d", len(pcm), tt.channels)
			}
			for i, v := range pcm {
				if math.Abs(float64(v-0.25)) > 1e-5 {
					t.Fatalf("pcm[%d] = %v, want 0.25", i, v)
				}
			}
		})
	}
}

func TestReadAll_Invalid(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 1, 10)

	if _, err := ReadAll(src, 0, 1, 0); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("ReadAll(rate=0) error = %v, want ErrInvalidRate", err)
	}
	if _, err := ReadAll(src, 8000, 0, 0); !errors.Is(err, ErrInvalidChannels) {
		t.Errorf("ReadAll(channels=0) error = %v, want ErrInvalidChannels", err)
	}
}

type failingSource struct{ *audiotest.MockSource }

var errBroken = errors.New("broken stream")

func (failingSource) ReadSamples([]float32) (int, error) { return 0, errBroken }

func TestReadAll_SourceError(t *testing.T) {
	t.Parallel()

	src := failingSource{audiotest.NewSilentSource(8000, 1, 10)}
	if _, err := ReadAll(src, 8000, 1, 0); !errors.Is(err, errBroken) {
		t.Errorf("ReadAll() error = %v, want %v", err, errBroken)
	}
}

func TestReadAll_Stalled(t *testing.T) {
	t.Parallel()

	src := stalledSource{audiotest.NewSilentSource(8000, 1, 10)}
	if _, err := ReadAll(src, 8000, 1, 0); !errors.Is(err, io.ErrNoProgress) {
		t.Errorf("ReadAll() error = %v, want io.ErrNoProgress", err)
	}
}
