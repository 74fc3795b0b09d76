// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audmix/utils"
)

// BitDepth of the files Writer produces.
const BitDepth = 16

// Writer streams float32 samples into a 16-bit PCM WAV file. The RIFF sizes
// are patched on Close, so the destination must be seekable.
type Writer struct {
	enc    *gowav.Encoder
	buf    *goaudio.IntBuffer
	frames int
	wrote  bool
}

func NewWriter(w io.WriteSeeker, sampleRate, channels int) (*Writer, error) {
	if sampleRate <= 0 || channels <= 0 {
		return nil, fmt.Errorf("%w: %d Hz, %d channels", ErrInvalidFormat, sampleRate, channels)
	}

	format := &goaudio.Format{NumChannels: channels, SampleRate: sampleRate}

	return &Writer{
		enc: gowav.NewEncoder(w, sampleRate, BitDepth, channels, wavFormatPCM),
		buf: &goaudio.IntBuffer{
			Format:         format,
			Data:           make([]int, 0, 4096),
			SourceBitDepth: BitDepth,
		},
	}, nil
}

// WriteFloats appends whole frames of interleaved samples. Values outside
// [-1, 1] are clipped.
func (w *Writer) WriteFloats(samples []float32) error {
	channels := w.buf.Format.NumChannels
	n := len(samples) - len(samples)%channels

	if cap(w.buf.Data) < n {
		w.buf.Data = make([]int, n)
	}
	w.buf.Data = w.buf.Data[:n]

	for i, v := range samples[:n] {
		w.buf.Data[i] = utils.FloatToInt(v, BitDepth)
	}

	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("%w", err)
	}

	w.wrote = true
	w.frames += n / channels

	return nil
}

// Frames written so far.
func (w *Writer) Frames() int { return w.frames }

// Close finalizes the headers. It does not close the underlying writer.
func (w *Writer) Close() error {
	if !w.wrote {
		// The encoder emits its header with the first buffer.
		if err := w.WriteFloats(nil); err != nil {
			return err
		}
	}

	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Encode writes samples as a complete 16-bit WAV file.
func Encode(w io.WriteSeeker, sampleRate, channels int, samples []float32) error {
	wr, err := NewWriter(w, sampleRate, channels)
	if err != nil {
		return err
	}

	if err := wr.WriteFloats(samples); err != nil {
		return err
	}

	return wr.Close()
}
