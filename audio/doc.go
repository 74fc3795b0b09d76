// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM stream contracts shared by decoders and the mixer.
//
// # Source Interface
//
// Every decoder and conversion stage implements Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float32 values in [-1.0, 1.0]. ReadSamples returns
// the number of values written, not frames, and io.EOF once the stream ends.
//
// # Conversion
//
// Resampler changes the sample rate with cubic interpolation, and
// ChannelMixer changes the channel count:
//
//	resampled := audio.NewResampler(source, 48000)
//	stereo, _ := audio.NewChannelMixer(resampled, 2)
//
// ReadAll builds that pipeline on demand and returns the whole stream in
// memory, which is how clips are prepared before playback:
//
//	pcm, err := audio.ReadAll(source, 48000, 2, 0)
//
// # Decoder Registry
//
// Registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.Lookup("drums/kick.wav")
//
// # Error Handling
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	    // Process n samples from buf
//	}
package audio
