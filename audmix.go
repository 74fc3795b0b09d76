// SPDX-License-Identifier: EPL-2.0

package audmix

import (
	"fmt"
	"os"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/formats/aiff"
	"github.com/ik5/audmix/formats/mp3"
	"github.com/ik5/audmix/formats/vorbis"
	"github.com/ik5/audmix/formats/wav"
	"github.com/ik5/audmix/mixer"
)

// DefaultRegistry returns a registry holding every bundled decoder, keyed by
// file extension.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}

// NewEngine builds a mixer.Engine that loads clips with DefaultRegistry.
// A WithDecoders option in opts takes precedence.
func NewEngine(opts ...mixer.Option) (*mixer.Engine, error) {
	return mixer.New(append([]mixer.Option{mixer.WithDecoders(DefaultRegistry())}, opts...)...)
}

// DecodeFile is a convenience function that decodes the file at path and
// converts it to interleaved float32 samples at sampleRate with the given
// channel count, the same way the engine converts clips at load.
//
// This function creates a processing pipeline:
//  1. Picks a decoder from DefaultRegistry by the file extension
//  2. Resamples to sampleRate using cubic interpolation
//  3. Converts the channel layout
//  4. Reads all samples from the pipeline
//
// Example:
//
//	pcm, err := audmix.DecodeFile("voice.mp3", 48000, 2)
func DecodeFile(path string, sampleRate, channels int) ([]float32, error) {
	dec, err := DefaultRegistry().Lookup(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	return audio.ReadAll(src, sampleRate, channels, 0)
}
